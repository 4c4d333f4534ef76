package lintdocstring

import (
	"go/parser"
	"go/token"
	"testing"

	"golang.org/x/tools/go/analysis/analysistest"
)

func TestAnalyzer(t *testing.T) {
	testdata := analysistest.TestData()
	analysistest.Run(t, testdata, Analyzer, "a")
}

func parseSource(t *testing.T, src string) []FuncDoc {
	t.Helper()
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "src.go", src, parser.ParseComments)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return Extract(file)
}

func TestExtract(t *testing.T) {
	docs := parseSource(t, `package p

// Scale applies a factor.
//
// Args:
//
//	alpha (float64): Scaling factor.
func Scale(alpha, beta float64, name string) {}

func undocumented(x int) {}
`)
	if len(docs) != 1 {
		t.Fatalf("expected 1 documented function, got %d", len(docs))
	}
	fd := docs[0]
	if fd.Sig.Name != "Scale" {
		t.Fatalf("name: got %q", fd.Sig.Name)
	}
	want := []struct{ name, typ string }{
		{"alpha", "float64"},
		{"beta", "float64"},
		{"name", "string"},
	}
	if len(fd.Sig.Params) != len(want) {
		t.Fatalf("params: got %+v", fd.Sig.Params)
	}
	for i, w := range want {
		if fd.Sig.Params[i].Name != w.name || fd.Sig.Params[i].Type != w.typ {
			t.Errorf("param %d: got %+v, want %+v", i, fd.Sig.Params[i], w)
		}
	}
}

func TestExtractSkipsReceiver(t *testing.T) {
	docs := parseSource(t, `package p

type T struct{}

// Do performs the thing.
//
// Args:
//
//	n (int): Repetitions.
func (t *T) Do(n int) {}
`)
	if len(docs) != 1 {
		t.Fatalf("expected 1 documented function, got %d", len(docs))
	}
	if len(docs[0].Sig.Params) != 1 || docs[0].Sig.Params[0].Name != "n" {
		t.Fatalf("receiver must not appear in the signature, got %+v", docs[0].Sig.Params)
	}
}

func TestExtractComplexParamTypes(t *testing.T) {
	docs := parseSource(t, `package p

// Merge combines maps.
//
// Args:
//
//	dst (map[string][]int): Destination.
func Merge(dst map[string][]int, src ...map[string][]int) {}
`)
	if len(docs) != 1 {
		t.Fatalf("expected 1 documented function, got %d", len(docs))
	}
	params := docs[0].Sig.Params
	if params[0].Type != "map[string][]int" {
		t.Fatalf("param type: got %q", params[0].Type)
	}
}
