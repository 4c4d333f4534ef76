// Package main provides the doccheck CLI.
package main

import (
	"os"

	"github.com/gork-labs/doccheck/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
