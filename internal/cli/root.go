// Package cli provides the command-line interface for the docstring
// checker.
package cli

import (
	"github.com/spf13/cobra"
)

// Execute creates and runs the root command.
func Execute() error {
	rootCmd := &cobra.Command{
		Use:          "doccheck",
		Short:        "Google-style docstring tools",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newCheckCommand())

	return rootCmd.Execute()
}
