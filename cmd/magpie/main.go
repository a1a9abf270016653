package main

import (
	"os"

	"github.com/simonhull/firebird-suite/magpie/internal/commands"
)

func main() {
	rootCmd := commands.RootCmd()

	rootCmd.AddCommand(commands.EmitCmd())
	rootCmd.AddCommand(commands.WatchCmd())
	rootCmd.AddCommand(commands.DoctorCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
