package docstring

import (
	"reflect"
	"testing"
)

func TestHeaderName(t *testing.T) {
	tests := []struct {
		line string
		name string
		ok   bool
	}{
		{"Args:", "Args", true},
		{"Image types:", "Image types", true},
		{"References:", "References", true},
		{"    Args:", "", false},       // indented lines are body
		{"\tNote:", "", false},         // tab-indented likewise
		{"Args: something", "", false}, // content after the colon
		{"Args", "", false},
		{"", "", false},
		{"A:", "", false},          // too short to be a header
		{"1Args:", "", false},      // must start with a letter
		{"Args-List:", "", false},  // only letters, digits, spaces
		{"Default: 1.0", "", false},
	}

	for _, tt := range tests {
		name, ok := headerName(tt.line)
		if name != tt.name || ok != tt.ok {
			t.Errorf("headerName(%q) = (%q, %v), want (%q, %v)", tt.line, name, ok, tt.name, tt.ok)
		}
	}
}

func TestSplitSectionsPreservesBlankLines(t *testing.T) {
	chunks := splitSections(`Example:
    >>> first()

    >>> second()
`)
	want := []chunk{{header: "Example", body: ">>> first()\n\n>>> second()"}}
	if !reflect.DeepEqual(chunks, want) {
		t.Fatalf("got %+v, want %+v", chunks, want)
	}
}

func TestSplitSectionsDedentsOneLevel(t *testing.T) {
	chunks := splitSections(`Args:
    alpha: Factor.
        Continued.
`)
	if len(chunks) != 1 {
		t.Fatalf("got %d chunks", len(chunks))
	}
	if chunks[0].body != "alpha: Factor.\n    Continued." {
		t.Fatalf("body: got %q", chunks[0].body)
	}
}

func TestSplitSectionsLeadingBlankLines(t *testing.T) {
	chunks := splitSections("\n\nDescription here.")
	want := []chunk{{header: "", body: "Description here."}}
	if !reflect.DeepEqual(chunks, want) {
		t.Fatalf("got %+v, want %+v", chunks, want)
	}
}
