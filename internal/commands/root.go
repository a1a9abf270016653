package commands

import (
	"github.com/simonhull/firebird-suite/magpie"
	"github.com/simonhull/firebird-suite/magpie/output"
	"github.com/spf13/cobra"
)

// RootCmd creates and returns the root command for the magpie CLI
func RootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "magpie",
		Short: "Drop generated Go code into runnable test files",
		Long: `Magpie turns generator output into self-contained Go test files.

Point it at a source fragment and it writes a formatted artifact you can
open, read, and run with go test:
• Wraps the source in a package clause and a no-op test hook
• Overwrites the artifact on every emission, so it always matches the input
• Formats with gofmt, goimports, or any tool taking a file argument

Learn more: https://github.com/simonhull/firebird-suite`,
		Version: magpie.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			output.SetVerbose(verbose)
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output for debugging")

	return cmd
}
