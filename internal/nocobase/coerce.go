package nocobase

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// CoerceValue converts a textual value to a typed one: null/none, bools,
// numbers and JSON objects or arrays are recognized, anything else stays
// a string. Text starting with { or [ that fails to parse as JSON is an
// error rather than silently passed through.
func CoerceValue(text string) (any, error) {
	raw := strings.TrimSpace(text)
	switch strings.ToLower(raw) {
	case "null", "none":
		return nil, nil
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	if strings.Contains(raw, ".") {
		if f, err := strconv.ParseFloat(raw, 64); err == nil {
			return f, nil
		}
	} else if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return n, nil
	}
	if strings.HasPrefix(raw, "{") || strings.HasPrefix(raw, "[") {
		var v any
		if err := json.Unmarshal([]byte(raw), &v); err != nil {
			return nil, fmt.Errorf("invalid JSON value %q: %w", raw, err)
		}
		return v, nil
	}
	return text, nil
}

// ParseKeyValues parses repeated key=value arguments into Values, with
// each value run through CoerceValue.
func ParseKeyValues(pairs []string) (Values, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	values := Values{}
	for _, pair := range pairs {
		key, raw, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("argument must be key=value: %q", pair)
		}
		key = strings.TrimSpace(key)
		if key == "" {
			return nil, fmt.Errorf("argument key must not be empty: %q", pair)
		}
		value, err := CoerceValue(raw)
		if err != nil {
			return nil, err
		}
		values[key] = value
	}
	return values, nil
}
