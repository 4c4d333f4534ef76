package main

import (
	"github.com/gork-labs/doccheck/internal/lintdocstring"
	"golang.org/x/tools/go/analysis/singlechecker"
)

func main() {
	singlechecker.Main(lintdocstring.Analyzer)
}
