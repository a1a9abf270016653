package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/simonhull/firebird-suite/magpie/dump"
	"github.com/simonhull/firebird-suite/magpie/output"
	"github.com/spf13/cobra"
)

// debouncePeriod coalesces editor save bursts into one emission.
const debouncePeriod = 500 * time.Millisecond

// WatchCmd returns the watch command
func WatchCmd() *cobra.Command {
	var (
		name      string
		out       string
		formatter string
		noFormat  bool
		quiet     bool
	)

	cmd := &cobra.Command{
		Use:   "watch <file>",
		Short: "Re-emit a source file on every change",
		Long: `Watch a source file and re-emit the artifact whenever it changes.

The file is emitted once on startup, then on every write (debounced, so
editor save bursts produce a single emission). Stop with Ctrl+C.

Without --name the artifact is named after the watched file, so every
re-emission overwrites the same artifact.`,
		Args: cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			opts, err := LoadOptions()
			if err != nil {
				output.Error(err.Error())
				os.Exit(1)
			}
			applyOverrides(cmd, opts, out, formatter, noFormat, quiet)

			if name == "" {
				name = fileStem(args[0])
			}

			if err := watchAndEmit(ctx, dump.New(opts), args[0], name); err != nil {
				output.Error(err.Error())
				os.Exit(1)
			}
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Artifact name (defaults to the watched file's stem)")
	cmd.Flags().StringVar(&out, "out", "", "Artifact directory (defaults to <cwd>/tests)")
	cmd.Flags().StringVar(&formatter, "formatter", "", "Formatter: gofmt, goimports, builtin, none, or a tool name")
	cmd.Flags().BoolVar(&noFormat, "no-format", false, "Skip formatting")
	cmd.Flags().BoolVar(&quiet, "quiet", false, "Suppress success notifications")

	return cmd
}

// fileStem returns the base name without its extension.
func fileStem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// watchAndEmit emits once, then re-emits on every Write/Create event until
// the context is cancelled. Emission failures are reported and watching
// continues; only watcher setup failures are fatal.
func watchAndEmit(ctx context.Context, emitter *dump.Emitter, path, name string) error {
	emit := func() {
		src, err := os.ReadFile(path)
		if err != nil {
			output.Error(fmt.Sprintf("reading %s: %v", path, err))
			return
		}
		if err := emitter.Emit(ctx, src, name, ""); err != nil {
			output.Error(err.Error())
		}
	}

	// Initial emission so the artifact exists before the first change
	emit()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(path); err != nil {
		return fmt.Errorf("failed to watch %s: %w", path, err)
	}

	output.Info(fmt.Sprintf("Watching %s (Ctrl+C to stop)", path))

	var (
		mu            sync.Mutex
		debounceTimer *time.Timer
	)

	schedule := func() {
		mu.Lock()
		defer mu.Unlock()

		if debounceTimer != nil {
			debounceTimer.Stop()
		}
		debounceTimer = time.AfterFunc(debouncePeriod, emit)
	}

	for {
		select {
		case <-ctx.Done():
			mu.Lock()
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			mu.Unlock()
			output.Info("Stopped")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			// Only re-emit on Write or Create events
			if event.Op&fsnotify.Write == fsnotify.Write || event.Op&fsnotify.Create == fsnotify.Create {
				output.Verbose(fmt.Sprintf("Change detected: %s (%s)", event.Name, event.Op.String()))
				schedule()
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			output.Error(fmt.Sprintf("watch error: %v", err))
		}
	}
}
