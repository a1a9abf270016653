package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/simonhull/firebird-suite/magpie/dump"
	"github.com/simonhull/firebird-suite/magpie/internal/manifest"
	"github.com/simonhull/firebird-suite/magpie/output"
	"github.com/spf13/cobra"
)

// EmitCmd returns the emit command
func EmitCmd() *cobra.Command {
	var (
		name         string
		out          string
		formatter    string
		noFormat     bool
		quiet        bool
		showDiff     bool
		dryRun       bool
		manifestPath string
	)

	cmd := &cobra.Command{
		Use:   "emit [file]",
		Short: "Write a source fragment as a test artifact",
		Long: `Write a Go source fragment to a self-contained test file.

The fragment is read from [file], or from stdin when the argument is
missing or "-". The artifact lands in the configured directory (default
<cwd>/tests) as <name>_test.go, overwriting any previous emission.

Examples:
  magpie emit generated.go --name user_model
  cat generated.go | magpie emit --name user_model
  magpie emit --manifest magpie-manifest.yml
  magpie emit generated.go --diff --dry-run`,
		Args: cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			if manifestPath != "" && (len(args) > 0 || cmd.Flags().Changed("name")) {
				output.Error("--manifest is mutually exclusive with [file] and --name")
				os.Exit(1)
			}

			opts, err := LoadOptions()
			if err != nil {
				output.Error(err.Error())
				os.Exit(1)
			}
			applyOverrides(cmd, opts, out, formatter, noFormat, quiet)

			emitter := dump.New(opts)

			if manifestPath != "" {
				if err := emitManifest(ctx, emitter, manifestPath, dryRun, showDiff); err != nil {
					output.Error(err.Error())
					os.Exit(1)
				}
				return
			}

			src, err := readSource(args)
			if err != nil {
				output.Error(err.Error())
				os.Exit(1)
			}

			if err := emitOne(ctx, emitter, src, name, "", dryRun, showDiff); err != nil {
				output.Error(err.Error())
				os.Exit(1)
			}
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Artifact name (defaults to a timestamp)")
	cmd.Flags().StringVar(&out, "out", "", "Artifact directory (defaults to <cwd>/tests)")
	cmd.Flags().StringVar(&formatter, "formatter", "", "Formatter: gofmt, goimports, builtin, none, or a tool name")
	cmd.Flags().BoolVar(&noFormat, "no-format", false, "Skip formatting")
	cmd.Flags().BoolVar(&quiet, "quiet", false, "Suppress the success notification")
	cmd.Flags().BoolVar(&showDiff, "diff", false, "Show drift against the existing artifact before writing")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Resolve and compose without writing")
	cmd.Flags().StringVar(&manifestPath, "manifest", "", "Emit every entry of a YAML manifest")

	return cmd
}

// emitOne handles a single emission, honoring diff and dry-run modes.
func emitOne(ctx context.Context, emitter *dump.Emitter, src []byte, name, dir string, dryRun, showDiff bool) error {
	if !dryRun && !showDiff {
		return emitter.Emit(ctx, src, name, dir)
	}

	art, err := emitter.Plan(src, name, dir)
	if err != nil {
		return err
	}

	if showDiff {
		note, diff, err := driftReport(art)
		if err != nil {
			return err
		}
		if note != "" {
			output.Info(note)
		}
		if diff != "" {
			fmt.Print(diff)
		}
	}

	if dryRun {
		ops := []dump.Operation{
			&dump.WriteArtifactOp{Path: art.Path, Content: art.Content, Mode: 0644},
		}
		return dump.Execute(ctx, ops, dump.ExecuteOptions{DryRun: true, Writer: os.Stdout})
	}

	// Resolved name carries through so the written artifact matches the diff
	return emitter.Emit(ctx, src, art.Name, dir)
}

// driftReport compares art.Content against the file currently at art.Path.
// It returns a one-line note when there is no drift to show (missing target,
// identical content), or a unified diff when the target exists and differs.
func driftReport(art *dump.Artifact) (string, string, error) {
	existing, err := os.ReadFile(art.Path)
	if os.IsNotExist(err) {
		return "New file: " + art.Path, "", nil
	}
	if err != nil {
		return "", "", fmt.Errorf("reading existing artifact: %w", err)
	}

	if diff := dump.Diff(art.Path, art.Path, existing, art.Content); diff != "" {
		return "", diff, nil
	}
	return "No drift: " + art.Path, "", nil
}

// emitManifest emits every entry of a manifest in order. The first fatal
// error stops the batch.
func emitManifest(ctx context.Context, emitter *dump.Emitter, path string, dryRun, showDiff bool) error {
	m, err := manifest.Load(path)
	if err != nil {
		return err
	}

	for i, entry := range m.Artifacts {
		src, err := os.ReadFile(entry.Source)
		if err != nil {
			return fmt.Errorf("artifacts[%d]: reading %s: %w", i, entry.Source, err)
		}
		if err := emitOne(ctx, emitter, src, entry.Name, entry.Dir, dryRun, showDiff); err != nil {
			return fmt.Errorf("artifacts[%d]: %w", i, err)
		}
	}

	output.Verbose(fmt.Sprintf("Emitted %d artifacts from %s", len(m.Artifacts), path))
	return nil
}
