package docstring

import (
	"reflect"
	"testing"
)

func TestParseReturn(t *testing.T) {
	tests := []struct {
		name string
		body string
		want *Return
	}{
		{"typed", "int: The result", &Return{Type: "int", Description: "The result"}},
		{"untyped", "The computed value", &Return{Description: "The computed value"}},
		{"generic type", "dict[str, Any]: Mapping of results", &Return{Type: "dict[str, Any]", Description: "Mapping of results"}},
		{"sentence with colon", "Result value: may be large", &Return{Description: "Result value: may be large"}},
		{"multiline", "int: The result\nspanning two lines", &Return{Type: "int", Description: "The result\nspanning two lines"}},
		{"empty", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseReturn(tt.body); !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("parseReturn(%q) = %+v, want %+v", tt.body, got, tt.want)
			}
		})
	}
}

func TestParseYieldsSection(t *testing.T) {
	p := Parse(`Generator function.

Yields:
    str: One token at a time
`)
	y := p.Yields()
	if y == nil || y.Type != "str" || y.Description != "One token at a time" {
		t.Fatalf("yields: got %+v", y)
	}
}

func TestParseRaises(t *testing.T) {
	raises := parseRaises("ValueError: If the input is empty\n    or malformed.\nerrors.KeyMissing: If the key is absent")
	want := []Raise{
		{Exception: "ValueError", Description: "If the input is empty\nor malformed."},
		{Exception: "errors.KeyMissing", Description: "If the key is absent"},
	}
	if !reflect.DeepEqual(raises, want) {
		t.Fatalf("got %+v, want %+v", raises, want)
	}
}

func TestIsTypeLike(t *testing.T) {
	tests := []struct {
		s    string
		want bool
	}{
		{"int", true},
		{"dict[str, Any]", true},
		{"np.ndarray", true},
		{"_Hidden", true},
		{"Result value", false},
		{"", false},
		{"dict[str", false},
		{"3d", false},
	}
	for _, tt := range tests {
		if got := isTypeLike(tt.s); got != tt.want {
			t.Errorf("isTypeLike(%q) = %v, want %v", tt.s, got, tt.want)
		}
	}
}
