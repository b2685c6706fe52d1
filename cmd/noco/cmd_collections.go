package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"nocogo/internal/nocobase"
)

// collectionsCmd groups operations on collection definitions
var collectionsCmd = &cobra.Command{
	Use:   "collections",
	Short: "Manage collection definitions",
}

var collectionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all collections",
	RunE:  runCollectionsList,
}

var collectionsGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Fetch one collection definition",
	RunE:  runCollectionsGet,
}

var collectionsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a collection",
	Long: `Creates a collection from a payload, see the NocoBase docs for the
payload shape.

Example:
  noco collections create --json '{"name":"test1","title":"Test","fields":[...]}'`,
	RunE: runCollectionsCreate,
}

var collectionsUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update a collection (payload must carry name)",
	RunE:  runCollectionsUpdate,
}

var collectionsDestroyCmd = &cobra.Command{
	Use:   "destroy",
	Short: "Delete a collection",
	RunE:  runCollectionsDestroy,
}

var collectionsMoveCmd = &cobra.Command{
	Use:   "move",
	Short: "Move or reorder collections",
	RunE:  runCollectionsMove,
}

var collectionsSetFieldsCmd = &cobra.Command{
	Use:   "set-fields",
	Short: "Replace a collection's field set",
	RunE:  runCollectionsSetFields,
}

func init() {
	addParamFlags(collectionsListCmd)
	addTableFlags(collectionsListCmd)

	collectionsGetCmd.Flags().String("name", "", "collection name, e.g. test1")
	collectionsGetCmd.MarkFlagRequired("name")
	addTableFlags(collectionsGetCmd)

	addJSONFlags(collectionsCreateCmd)
	addJSONFlags(collectionsUpdateCmd)
	addJSONFlags(collectionsMoveCmd)
	addJSONFlags(collectionsSetFieldsCmd)

	collectionsDestroyCmd.Flags().String("name", "", "collection name, e.g. test1")
	collectionsDestroyCmd.MarkFlagRequired("name")

	collectionsCmd.AddCommand(
		collectionsListCmd,
		collectionsGetCmd,
		collectionsCreateCmd,
		collectionsUpdateCmd,
		collectionsDestroyCmd,
		collectionsMoveCmd,
		collectionsSetFieldsCmd,
	)
}

func runCollectionsList(cmd *cobra.Command, args []string) error {
	params, err := paramsFromFlags(cmd)
	if err != nil {
		return err
	}

	client, err := newClient()
	if err != nil {
		return err
	}
	resp, err := client.CollectionsList(cmd.Context(), params)
	if err != nil {
		return err
	}
	return printResponse(cmd, resp)
}

func runCollectionsGet(cmd *cobra.Command, args []string) error {
	name, _ := cmd.Flags().GetString("name")

	client, err := newClient()
	if err != nil {
		return err
	}
	resp, err := client.CollectionsGet(cmd.Context(), name)
	if err != nil {
		return err
	}
	return printResponse(cmd, resp)
}

func runCollectionsDestroy(cmd *cobra.Command, args []string) error {
	name, _ := cmd.Flags().GetString("name")

	client, err := newClient()
	if err != nil {
		return err
	}
	resp, err := client.CollectionsDestroy(cmd.Context(), name)
	if err != nil {
		return err
	}
	return printJSON(resp)
}

func runCollectionsCreate(cmd *cobra.Command, args []string) error {
	return runCollectionsPayload(cmd, func(ctx context.Context, client *nocobase.Client, payload nocobase.Values) (nocobase.Response, error) {
		return client.CollectionsCreate(ctx, payload)
	})
}

func runCollectionsUpdate(cmd *cobra.Command, args []string) error {
	return runCollectionsPayload(cmd, func(ctx context.Context, client *nocobase.Client, payload nocobase.Values) (nocobase.Response, error) {
		return client.CollectionsUpdate(ctx, payload)
	})
}

func runCollectionsMove(cmd *cobra.Command, args []string) error {
	return runCollectionsPayload(cmd, func(ctx context.Context, client *nocobase.Client, payload nocobase.Values) (nocobase.Response, error) {
		return client.CollectionsMove(ctx, payload)
	})
}

func runCollectionsSetFields(cmd *cobra.Command, args []string) error {
	return runCollectionsPayload(cmd, func(ctx context.Context, client *nocobase.Client, payload nocobase.Values) (nocobase.Response, error) {
		return client.CollectionsSetFields(ctx, payload)
	})
}

// runCollectionsPayload is the shared body of the payload-carrying
// collection commands: resolve the payload, call, print.
func runCollectionsPayload(cmd *cobra.Command, call func(context.Context, *nocobase.Client, nocobase.Values) (nocobase.Response, error)) error {
	payload, err := payloadFromFlags(cmd)
	if err != nil {
		return err
	}
	if payload == nil {
		return fmt.Errorf("%s needs --json or --json-file", cmd.CommandPath())
	}

	client, err := newClient()
	if err != nil {
		return err
	}
	resp, err := call(cmd.Context(), client, payload)
	if err != nil {
		return err
	}
	return printJSON(resp)
}
