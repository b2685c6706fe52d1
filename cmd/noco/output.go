package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"nocogo/cmd/noco/ui"
	"nocogo/internal/nocobase"
)

// printJSON writes v to stdout as indented JSON. HTML escaping is off
// so URLs and filter operators survive verbatim.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	return nil
}

// printResponse renders a response as JSON, or as a table of its data
// rows when the command's --table flag is set.
func printResponse(cmd *cobra.Command, resp nocobase.Response) error {
	asTable, _ := cmd.Flags().GetBool("table")
	if !asTable {
		return printJSON(resp)
	}
	columns, _ := cmd.Flags().GetString("columns")
	respRows := resp.Rows()
	rows := make([]map[string]any, 0, len(respRows))
	for _, row := range respRows {
		rows = append(rows, row)
	}
	fmt.Println(ui.FormatTable(rows, ui.TableOptions{Columns: splitColumns(columns)}))
	return nil
}
