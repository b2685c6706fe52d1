package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// recordsCmd groups CRUD operations on arbitrary collections
var recordsCmd = &cobra.Command{
	Use:   "records",
	Short: "Create, query, update and delete records in any collection",
}

var recordsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a record",
	Long: `Creates a record from --json, --json-file or repeated --set pairs.

Example:
  noco records create --collection test1 --set name=alpha --set count=1`,
	RunE: runRecordsCreate,
}

var recordsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List records",
	Long: `Lists records, passing any query parameters straight through to the
server (page, pageSize, filter, sort, fields, appends and so on).

Examples:
  noco records list --collection test1 --param pageSize=5
  noco records list --collection test1 --params '{"filter":{"name":"alpha"}}' --table`,
	RunE: runRecordsList,
}

var recordsGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Fetch a single record by primary key",
	RunE:  runRecordsGet,
}

var recordsUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update a single record by primary key",
	RunE:  runRecordsUpdate,
}

var recordsDestroyCmd = &cobra.Command{
	Use:   "destroy",
	Short: "Delete a single record by primary key",
	RunE:  runRecordsDestroy,
}

func init() {
	recordsCmd.PersistentFlags().String("collection", "", "collection name, e.g. test1")
	recordsCmd.MarkPersistentFlagRequired("collection")

	addPayloadFlags(recordsCreateCmd)

	addParamFlags(recordsListCmd)
	addTableFlags(recordsListCmd)

	recordsGetCmd.Flags().String("pk", "", "primary key value (usually id)")
	recordsGetCmd.MarkFlagRequired("pk")
	addTableFlags(recordsGetCmd)

	recordsUpdateCmd.Flags().String("pk", "", "primary key value (usually id)")
	recordsUpdateCmd.MarkFlagRequired("pk")
	addPayloadFlags(recordsUpdateCmd)

	recordsDestroyCmd.Flags().String("pk", "", "primary key value (usually id)")
	recordsDestroyCmd.MarkFlagRequired("pk")

	recordsCmd.AddCommand(recordsCreateCmd, recordsListCmd, recordsGetCmd, recordsUpdateCmd, recordsDestroyCmd)
}

func runRecordsCreate(cmd *cobra.Command, args []string) error {
	collection, _ := cmd.Flags().GetString("collection")
	values, err := payloadFromFlags(cmd)
	if err != nil {
		return err
	}
	if values == nil {
		return fmt.Errorf("records create needs --json, --json-file or --set")
	}

	client, err := newClient()
	if err != nil {
		return err
	}
	resp, err := client.Create(cmd.Context(), collection, values)
	if err != nil {
		return err
	}
	return printJSON(resp)
}

func runRecordsList(cmd *cobra.Command, args []string) error {
	collection, _ := cmd.Flags().GetString("collection")
	params, err := paramsFromFlags(cmd)
	if err != nil {
		return err
	}

	client, err := newClient()
	if err != nil {
		return err
	}
	resp, err := client.List(cmd.Context(), collection, params)
	if err != nil {
		return err
	}
	return printResponse(cmd, resp)
}

func runRecordsGet(cmd *cobra.Command, args []string) error {
	collection, _ := cmd.Flags().GetString("collection")
	pk, _ := cmd.Flags().GetString("pk")

	client, err := newClient()
	if err != nil {
		return err
	}
	resp, err := client.Get(cmd.Context(), collection, pk, nil)
	if err != nil {
		return err
	}
	return printResponse(cmd, resp)
}

func runRecordsUpdate(cmd *cobra.Command, args []string) error {
	collection, _ := cmd.Flags().GetString("collection")
	pk, _ := cmd.Flags().GetString("pk")
	values, err := payloadFromFlags(cmd)
	if err != nil {
		return err
	}
	if values == nil {
		return fmt.Errorf("records update needs --json, --json-file or --set")
	}

	client, err := newClient()
	if err != nil {
		return err
	}
	resp, err := client.Update(cmd.Context(), collection, pk, values)
	if err != nil {
		return err
	}
	return printJSON(resp)
}

func runRecordsDestroy(cmd *cobra.Command, args []string) error {
	collection, _ := cmd.Flags().GetString("collection")
	pk, _ := cmd.Flags().GetString("pk")

	client, err := newClient()
	if err != nil {
		return err
	}
	resp, err := client.Destroy(cmd.Context(), collection, pk)
	if err != nil {
		return err
	}
	return printJSON(resp)
}
