package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"nocogo/internal/nocobase"
)

// addJSONFlags registers the payload pair used by commands that take a
// whole request body.
func addJSONFlags(cmd *cobra.Command) {
	cmd.Flags().String("json", "", "payload as a JSON object string")
	cmd.Flags().String("json-file", "", "payload from a JSON or YAML file")
}

// addPayloadFlags additionally allows building the body field by field.
func addPayloadFlags(cmd *cobra.Command) {
	addJSONFlags(cmd)
	cmd.Flags().StringArray("set", nil, "field as key=value, repeatable (e.g. --set name=alpha --set count=1)")
}

func addParamFlags(cmd *cobra.Command) {
	cmd.Flags().String("params", "", "query parameters as a JSON object string")
	cmd.Flags().String("params-file", "", "query parameters from a JSON or YAML file")
	cmd.Flags().StringArray("param", nil, "query parameter as key=value, repeatable (e.g. --param page=1)")
}

func addTableFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("table", false, "render data rows as a table instead of JSON")
	cmd.Flags().String("columns", "", "table columns, comma separated (e.g. id,name,createdAt)")
}

// parseObjectArg decodes an inline JSON string or a JSON/YAML file
// (chosen by extension) into a map. Returns nil when neither source is
// given.
func parseObjectArg(inline, file string) (map[string]any, error) {
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", file, err)
		}
		obj := map[string]any{}
		switch strings.ToLower(filepath.Ext(file)) {
		case ".yaml", ".yml":
			if err := yaml.Unmarshal(data, &obj); err != nil {
				return nil, fmt.Errorf("failed to parse %s: %w", file, err)
			}
		default:
			if err := json.Unmarshal(data, &obj); err != nil {
				return nil, fmt.Errorf("failed to parse %s: %w", file, err)
			}
		}
		return obj, nil
	}
	if inline != "" {
		obj := map[string]any{}
		if err := json.Unmarshal([]byte(inline), &obj); err != nil {
			return nil, fmt.Errorf("invalid JSON argument: %w", err)
		}
		return obj, nil
	}
	return nil, nil
}

// payloadFromFlags resolves a request body from --json, --json-file or
// repeated --set pairs, in that order of precedence. Returns nil when
// none are given.
func payloadFromFlags(cmd *cobra.Command) (nocobase.Values, error) {
	inline, _ := cmd.Flags().GetString("json")
	file, _ := cmd.Flags().GetString("json-file")
	if inline != "" && file != "" {
		return nil, fmt.Errorf("use either --json or --json-file, not both")
	}
	obj, err := parseObjectArg(inline, file)
	if err != nil {
		return nil, err
	}
	if obj != nil {
		return nocobase.Values(obj), nil
	}
	pairs, _ := cmd.Flags().GetStringArray("set")
	return nocobase.ParseKeyValues(pairs)
}

// paramsFromFlags resolves query parameters from --params,
// --params-file or repeated --param pairs. Returns nil when none are
// given.
func paramsFromFlags(cmd *cobra.Command) (nocobase.Params, error) {
	inline, _ := cmd.Flags().GetString("params")
	file, _ := cmd.Flags().GetString("params-file")
	if inline != "" && file != "" {
		return nil, fmt.Errorf("use either --params or --params-file, not both")
	}
	obj, err := parseObjectArg(inline, file)
	if err != nil {
		return nil, err
	}
	if obj != nil {
		return nocobase.Params(obj), nil
	}
	pairs, _ := cmd.Flags().GetStringArray("param")
	values, err := nocobase.ParseKeyValues(pairs)
	if err != nil {
		return nil, err
	}
	if values == nil {
		return nil, nil
	}
	return nocobase.Params(values), nil
}

// splitColumns turns "id, name,createdAt" into a clean column list.
func splitColumns(s string) []string {
	var cols []string
	for _, part := range strings.Split(s, ",") {
		if col := strings.TrimSpace(part); col != "" {
			cols = append(cols, col)
		}
	}
	return cols
}
