package dump

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// Operation represents a file system operation that can be validated and
// executed.
//
// Validate checks whether the operation would succeed. It may have side
// effects (creating parent directories is one; it is idempotent).
// Execute performs the operation and should only run after Validate.
// Description returns a human-readable line for output.
type Operation interface {
	Validate(ctx context.Context) error
	Execute(ctx context.Context) error
	Description() string
}

// WriteArtifactOp writes one composed artifact.
//
// Overwrite is unconditional: an existing file at Path is replaced without
// prompting. Emission is last-write-wins.
type WriteArtifactOp struct {
	Path    string
	Content []byte      // must not be nil; empty is allowed
	Mode    fs.FileMode // 0644 everywhere in this codebase
}

func (op *WriteArtifactOp) Validate(ctx context.Context) error {
	dir := filepath.Dir(op.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return &PathError{Path: dir, Err: err}
	}

	if op.Content == nil {
		return fmt.Errorf("content is nil for artifact: %s", op.Path)
	}

	return nil
}

func (op *WriteArtifactOp) Execute(ctx context.Context) error {
	if err := os.WriteFile(op.Path, op.Content, op.Mode); err != nil {
		return &WriteError{Path: op.Path, Err: err}
	}
	return nil
}

func (op *WriteArtifactOp) Description() string {
	return fmt.Sprintf("Write %s (%d bytes)", op.Path, len(op.Content))
}

// ExecuteOptions configures batch execution behavior
type ExecuteOptions struct {
	DryRun bool
	Writer io.Writer // Where to write output (defaults to os.Stdout)
}

// Execute runs operations in two phases: validate all, then execute all.
// In dry-run mode the second phase only reports descriptions.
func Execute(ctx context.Context, ops []Operation, opts ExecuteOptions) error {
	if opts.Writer == nil {
		opts.Writer = os.Stdout
	}

	for _, op := range ops {
		if err := op.Validate(ctx); err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}
	}

	for _, op := range ops {
		if opts.DryRun {
			fmt.Fprintf(opts.Writer, "✓ [DRY RUN] %s\n", op.Description())
			continue
		}
		if err := op.Execute(ctx); err != nil {
			return fmt.Errorf("execution failed: %w", err)
		}
		fmt.Fprintf(opts.Writer, "✓ %s\n", op.Description())
	}

	return nil
}
