package main

import (
	"github.com/spf13/cobra"
)

// actionCmd is the escape hatch for endpoints without a wrapped command
var actionCmd = &cobra.Command{
	Use:   "action",
	Short: "Call any action endpoint directly",
	Long: `Calls an arbitrary {resource}:{action} path for everything the wrapped
commands do not cover. The response body is printed verbatim.

Examples:
  noco action --path app:getInfo --method GET
  noco action --path test1:move --json '{"sourceId":1,"targetId":2}'`,
	RunE: runAction,
}

func init() {
	actionCmd.Flags().String("path", "", "action path, e.g. collections:list or test1:create")
	actionCmd.MarkFlagRequired("path")
	actionCmd.Flags().String("method", "POST", "HTTP method")
	addParamFlags(actionCmd)
	addPayloadFlags(actionCmd)
}

func runAction(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("path")
	method, _ := cmd.Flags().GetString("method")
	params, err := paramsFromFlags(cmd)
	if err != nil {
		return err
	}
	values, err := payloadFromFlags(cmd)
	if err != nil {
		return err
	}
	// A typed nil map inside the any would serialize as "null", so only
	// assign when there is a body to send.
	var body any
	if values != nil {
		body = values
	}

	client, err := newClient()
	if err != nil {
		return err
	}
	resp, err := client.Action(cmd.Context(), method, path, params, body)
	if err != nil {
		return err
	}
	return printJSON(resp)
}
