// Package preen tidies emitted artifacts.
//
// A Formatter rewrites a Go source file in place after it lands on disk.
// Command shells out to an installed tool (gofmt, goimports, anything that
// accepts "-w <file>"); Imports formats in process with no binary required.
// Formatting is always best-effort for callers in this codebase: a failed
// format leaves the file exactly as written.
package preen

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/simonhull/firebird-suite/magpie/exec"
	"golang.org/x/tools/imports"
)

// Formatter rewrites a Go source file in place.
type Formatter interface {
	// Name identifies the formatter in logs and diagnostics.
	Name() string

	// Format rewrites the file at path, leaving it untouched on error.
	Format(ctx context.Context, path string) error
}

// Command invokes an external formatting tool as "<tool> <args...> <path>".
type Command struct {
	executor *exec.Executor
	name     string
	args     []string
}

// NewCommand builds a formatter around an external tool. A nil executor gets
// defaults (stdout/stderr passthrough), so the tool's own diagnostics remain
// visible when it rejects a file.
func NewCommand(executor *exec.Executor, name string, args ...string) *Command {
	if executor == nil {
		executor = exec.NewExecutor(nil)
	}
	return &Command{
		executor: executor,
		name:     name,
		args:     args,
	}
}

// Gofmt formats with "gofmt -w", the default formatter.
func Gofmt() *Command {
	return NewCommand(nil, "gofmt", "-w")
}

// Goimports formats with "goimports -w".
func Goimports() *Command {
	return NewCommand(nil, "goimports", "-w")
}

// Name returns the tool name.
func (c *Command) Name() string {
	return c.name
}

// Format runs the tool against path.
func (c *Command) Format(ctx context.Context, path string) error {
	cmd := exec.NewGenericCommand(c.executor, c.name).
		WithArgs(c.args...).
		WithArgs(path)

	if err := cmd.Run(ctx); err != nil {
		return fmt.Errorf("%s: %w", cmd.String(), err)
	}
	return nil
}

// Imports formats in process via golang.org/x/tools/imports: gofmt-equivalent
// output plus missing-import fixing, with no installed tool required.
type Imports struct{}

// Name returns the selector this formatter answers to.
func (Imports) Name() string {
	return "builtin"
}

// Format rewrites path with formatted source. The file is only touched when
// the formatted output differs.
func (Imports) Format(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	formatted, err := imports.Process(path, src, nil)
	if err != nil {
		return fmt.Errorf("format %s: %w", path, err)
	}

	if bytes.Equal(formatted, src) {
		return nil
	}
	return os.WriteFile(path, formatted, 0644)
}

// Resolve maps a formatter selector to an implementation:
//
//	""          → gofmt -w (the default)
//	"gofmt"     → gofmt -w
//	"goimports" → goimports -w
//	"builtin"   → in-process Imports
//	"none"      → nil (formatting disabled)
//	anything    → "<name> -w" as an external tool
func Resolve(name string) Formatter {
	switch name {
	case "", "gofmt":
		return Gofmt()
	case "goimports":
		return Goimports()
	case "builtin":
		return Imports{}
	case "none":
		return nil
	default:
		return NewCommand(nil, name, "-w")
	}
}
