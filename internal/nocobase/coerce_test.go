package nocobase

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCoerceValue(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want any
	}{
		{"null", "null", nil},
		{"none uppercase", "None", nil},
		{"true", "true", true},
		{"false mixed case", "False", false},
		{"int", "42", int64(42)},
		{"negative int", "-7", int64(-7)},
		{"float", "1.5", 1.5},
		{"leading dot float", ".5", 0.5},
		{"json object", `{"a": 1}`, map[string]any{"a": 1.0}},
		{"json array", `["x", 2]`, []any{"x", 2.0}},
		{"plain string", "hello", "hello"},
		{"dotted string", "a.b", "a.b"},
		{"untrimmed string kept", " hello ", " hello "},
		{"numeric-looking string", "1e5", "1e5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CoerceValue(tt.in)
			if err != nil {
				t.Fatalf("CoerceValue(%q) failed: %v", tt.in, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("CoerceValue(%q) mismatch (-want +got):\n%s", tt.in, diff)
			}
		})
	}
}

func TestCoerceValue_InvalidJSON(t *testing.T) {
	if _, err := CoerceValue(`{"broken`); err == nil {
		t.Error("expected error for invalid JSON object")
	}
	if _, err := CoerceValue(`[1,`); err == nil {
		t.Error("expected error for invalid JSON array")
	}
}

func TestParseKeyValues(t *testing.T) {
	values, err := ParseKeyValues([]string{
		"name=alpha",
		"count=3",
		"price=9.99",
		"active=true",
		"meta={\"tag\": \"x\"}",
		"note=",
	})
	if err != nil {
		t.Fatalf("ParseKeyValues failed: %v", err)
	}

	want := Values{
		"name":   "alpha",
		"count":  int64(3),
		"price":  9.99,
		"active": true,
		"meta":   map[string]any{"tag": "x"},
		"note":   "",
	}
	if diff := cmp.Diff(want, values); diff != "" {
		t.Errorf("ParseKeyValues mismatch (-want +got):\n%s", diff)
	}
}

func TestParseKeyValues_Errors(t *testing.T) {
	if _, err := ParseKeyValues([]string{"no-equals"}); err == nil {
		t.Error("expected error for missing =")
	}
	if _, err := ParseKeyValues([]string{"=value"}); err == nil {
		t.Error("expected error for empty key")
	}
	if values, err := ParseKeyValues(nil); err != nil || values != nil {
		t.Errorf("expected nil values for no pairs, got %v, %v", values, err)
	}
}
