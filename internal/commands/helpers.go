package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/simonhull/firebird-suite/magpie/dump"
	"github.com/simonhull/firebird-suite/magpie/preen"
	"github.com/spf13/cobra"
)

// readSource loads the fragment from the file argument, or stdin when the
// argument is missing or "-"
func readSource(args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return data, nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", args[0], err)
	}
	return data, nil
}

// applyOverrides layers explicitly set flags over config and environment.
// Only flags the user changed win; everything else keeps the loaded value.
func applyOverrides(cmd *cobra.Command, opts *dump.Options, out, formatter string, noFormat, quiet bool) {
	if cmd.Flags().Changed("out") {
		opts.Dir = out
	}
	if cmd.Flags().Changed("formatter") {
		if f := preen.Resolve(formatter); f != nil {
			opts.Formatter = f
			opts.Format = true
		} else {
			opts.Format = false
		}
	}
	if noFormat {
		opts.Format = false
	}
	if quiet {
		opts.Notify = false
	}
}
