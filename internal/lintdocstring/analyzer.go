// Package lintdocstring provides a linter for Google-style sections in
// Go doc comments.
package lintdocstring

import (
	"go/ast"
	"go/token"
	"go/types"

	"golang.org/x/tools/go/analysis"

	"github.com/gork-labs/doccheck/pkg/doccheck"
	"github.com/gork-labs/doccheck/pkg/docstring"
)

// Analyzer checks that doc comments using Google-style sections agree
// with the documented function's signature.
var Analyzer = &analysis.Analyzer{
	Name: "lintdocstring",
	Doc:  "checks Google-style doc comment sections against function signatures",
	Run:  run,
}

func run(pass *analysis.Pass) (interface{}, error) {
	checker := doccheck.New(doccheck.DefaultConfig())
	for _, file := range pass.Files {
		for _, fd := range Extract(file) {
			doc := docstring.Parse(fd.Doc)
			// Plain prose doc comments are not held to Google-style
			// rules; only section-structured ones are linted.
			if len(doc.Sections) == 0 {
				continue
			}
			for _, f := range checker.Check(doc, &fd.Sig) {
				if f.Location != "" {
					pass.Reportf(fd.Pos, "%s: %s: %s: %s", fd.Sig.Name, f.Kind, f.Location, f.Message)
				} else {
					pass.Reportf(fd.Pos, "%s: %s: %s", fd.Sig.Name, f.Kind, f.Message)
				}
			}
		}
	}
	return nil, nil
}

// FuncDoc couples a function's doc comment text with its signature.
type FuncDoc struct {
	Pos token.Pos
	Doc string
	Sig doccheck.Signature
}

// Extract collects every documented function declaration in file. The
// doc text comes back with comment markers stripped, ready for the
// docstring parser. Receivers are not part of the signature.
func Extract(file *ast.File) []FuncDoc {
	var out []FuncDoc
	for _, decl := range file.Decls {
		fn, ok := decl.(*ast.FuncDecl)
		if !ok || fn.Doc == nil {
			continue
		}
		out = append(out, FuncDoc{
			Pos: fn.Pos(),
			Doc: fn.Doc.Text(),
			Sig: signatureOf(fn),
		})
	}
	return out
}

func signatureOf(fn *ast.FuncDecl) doccheck.Signature {
	sig := doccheck.Signature{Name: fn.Name.Name}
	if fn.Type.Params == nil {
		return sig
	}
	for _, field := range fn.Type.Params.List {
		typ := types.ExprString(field.Type)
		if len(field.Names) == 0 {
			// Unnamed parameter; nothing to cross-check.
			continue
		}
		for _, name := range field.Names {
			sig.Params = append(sig.Params, doccheck.SigParam{Name: name.Name, Type: typ})
		}
	}
	return sig
}
