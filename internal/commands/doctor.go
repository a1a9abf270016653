package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/simonhull/firebird-suite/magpie/dump"
	"github.com/simonhull/firebird-suite/magpie/exec"
	"github.com/simonhull/firebird-suite/magpie/internal/project"
	"github.com/simonhull/firebird-suite/magpie/output"
	"github.com/spf13/cobra"
)

// DoctorCmd returns the doctor command
func DoctorCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check the environment magpie depends on",
		Long: `Check that everything an emission needs is in place.

Verifies:
- Go toolchain on PATH (artifacts are only useful if go test can run them)
- The configured formatter is resolvable
- Module context and where artifacts land relative to it
- Artifact directory status

Exits 1 when a required check fails.`,
		Run: func(cmd *cobra.Command, args []string) {
			if err := runDoctor(context.Background()); err != nil {
				output.Error(err.Error())
				os.Exit(1)
			}
		},
	}

	return cmd
}

func runDoctor(ctx context.Context) error {
	opts, err := LoadOptions()
	if err != nil {
		return err
	}

	failed := false

	// Go toolchain
	executor := exec.NewExecutor(nil)
	if err := executor.RunWithSpinner(ctx, "Go toolchain", "go", "version"); err != nil {
		output.Error(fmt.Sprintf("Go toolchain check failed: %v", err))
		failed = true
	}

	// Formatter
	switch {
	case !opts.Format:
		output.Info("Formatting disabled")
	case opts.Formatter.Name() == "builtin":
		output.Success("Formatter: builtin (in-process)")
	default:
		name := opts.Formatter.Name()
		if path, err := exec.LookPath(name); err != nil {
			output.Error(fmt.Sprintf("Formatter %q not found on PATH", name))
			failed = true
		} else {
			output.Success(fmt.Sprintf("Formatter: %s (%s)", name, path))
		}
	}

	// Module context
	dir := artifactDir(opts)
	if info, err := project.FindModule("."); err != nil {
		output.Info("Not inside a Go module")
	} else {
		if info.GoVersion != "" {
			output.Success(fmt.Sprintf("Module: %s (go %s)", info.Path, info.GoVersion))
		} else {
			output.Success("Module: " + info.Path)
		}
		if info.Contains(dir) {
			output.Step(fmt.Sprintf("Artifacts in %s are picked up by go test ./...", dir))
		} else {
			output.Step(fmt.Sprintf("Artifacts in %s live outside the module", dir))
		}
	}

	// Artifact directory
	switch st, err := os.Stat(dir); {
	case err == nil && st.IsDir():
		output.Success("Artifact directory: " + dir)
	case err == nil:
		output.Error(fmt.Sprintf("Artifact path %s is occupied by a file", dir))
		failed = true
	case os.IsNotExist(err):
		output.Info(fmt.Sprintf("Artifact directory %s will be created on first emit", dir))
	default:
		output.Error(fmt.Sprintf("Artifact directory %s: %v", dir, err))
		failed = true
	}

	if failed {
		return fmt.Errorf("environment checks failed")
	}

	output.Success("Ready to emit")
	return nil
}

// artifactDir resolves where emissions will land, mirroring the emitter's
// fallback chain.
func artifactDir(opts *dump.Options) string {
	if opts.Dir != "" {
		return opts.Dir
	}
	cwd, err := os.Getwd()
	if err != nil {
		return dump.DefaultDir
	}
	return filepath.Join(cwd, dump.DefaultDir)
}
