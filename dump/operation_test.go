package dump

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteArtifactOp_ValidateCreatesDirectories(t *testing.T) {
	tmp := t.TempDir()
	op := &WriteArtifactOp{
		Path:    filepath.Join(tmp, "tests", "models", "bar_test.go"),
		Content: []byte("package bar\n"),
		Mode:    0644,
	}

	if err := op.Validate(context.Background()); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	info, err := os.Stat(filepath.Join(tmp, "tests", "models"))
	if err != nil {
		t.Fatalf("parent directory not created: %v", err)
	}
	if !info.IsDir() {
		t.Fatal("parent path is not a directory")
	}
}

func TestWriteArtifactOp_ValidateNilContent(t *testing.T) {
	tmp := t.TempDir()
	op := &WriteArtifactOp{
		Path: filepath.Join(tmp, "bar_test.go"),
		Mode: 0644,
	}

	if err := op.Validate(context.Background()); err == nil {
		t.Fatal("Validate() expected error for nil content")
	}
}

func TestWriteArtifactOp_ValidatePathError(t *testing.T) {
	tmp := t.TempDir()
	occupied := filepath.Join(tmp, "occupied")
	if err := os.WriteFile(occupied, []byte("not a directory"), 0644); err != nil {
		t.Fatal(err)
	}

	op := &WriteArtifactOp{
		Path:    filepath.Join(occupied, "sub", "bar_test.go"),
		Content: []byte("package bar\n"),
		Mode:    0644,
	}

	err := op.Validate(context.Background())
	if err == nil {
		t.Fatal("Validate() expected error when a path component is a file")
	}

	var pathErr *PathError
	if !errors.As(err, &pathErr) {
		t.Fatalf("Validate() error = %T, want *PathError", err)
	}
	if pathErr.Unwrap() == nil {
		t.Error("PathError should wrap the underlying cause")
	}
}

func TestWriteArtifactOp_ExecuteWritesAndOverwrites(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "bar_test.go")

	first := &WriteArtifactOp{Path: path, Content: []byte("first\n"), Mode: 0644}
	if err := first.Execute(context.Background()); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	second := &WriteArtifactOp{Path: path, Content: []byte("second\n"), Mode: 0644}
	if err := second.Execute(context.Background()); err != nil {
		t.Fatalf("Execute() overwrite error = %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "second\n" {
		t.Errorf("file content = %q, want the second write only", got)
	}
}

func TestWriteArtifactOp_ExecuteWriteError(t *testing.T) {
	tmp := t.TempDir()
	// A directory squatting on the artifact path makes the write fail
	path := filepath.Join(tmp, "bar_test.go")
	if err := os.MkdirAll(path, 0755); err != nil {
		t.Fatal(err)
	}

	op := &WriteArtifactOp{Path: path, Content: []byte("package bar\n"), Mode: 0644}
	err := op.Execute(context.Background())
	if err == nil {
		t.Fatal("Execute() expected error when the target is a directory")
	}

	var writeErr *WriteError
	if !errors.As(err, &writeErr) {
		t.Fatalf("Execute() error = %T, want *WriteError", err)
	}
	if writeErr.Path != path {
		t.Errorf("WriteError.Path = %q, want %q", writeErr.Path, path)
	}
}

func TestWriteArtifactOp_Description(t *testing.T) {
	op := &WriteArtifactOp{Path: "tests/bar_test.go", Content: []byte("1234567"), Mode: 0644}
	want := "Write tests/bar_test.go (7 bytes)"
	if got := op.Description(); got != want {
		t.Errorf("Description() = %q, want %q", got, want)
	}
}

func TestExecute_DryRun(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "bar_test.go")

	var out bytes.Buffer
	ops := []Operation{
		&WriteArtifactOp{Path: path, Content: []byte("package bar\n"), Mode: 0644},
	}

	if err := Execute(context.Background(), ops, ExecuteOptions{DryRun: true, Writer: &out}); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if !strings.Contains(out.String(), "[DRY RUN]") {
		t.Errorf("dry-run output missing marker: %q", out.String())
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("dry run must not write the artifact")
	}
}

func TestExecute_WritesAndReports(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "bar_test.go")

	var out bytes.Buffer
	ops := []Operation{
		&WriteArtifactOp{Path: path, Content: []byte("package bar\n"), Mode: 0644},
	}

	if err := Execute(context.Background(), ops, ExecuteOptions{Writer: &out}); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if _, err := os.Stat(path); err != nil {
		t.Fatalf("artifact not written: %v", err)
	}
	if !strings.Contains(out.String(), fmt.Sprintf("✓ Write %s", path)) {
		t.Errorf("missing report line: %q", out.String())
	}
}

func TestExecute_ValidateAllBeforeExecuting(t *testing.T) {
	tmp := t.TempDir()
	good := filepath.Join(tmp, "good_test.go")

	var out bytes.Buffer
	ops := []Operation{
		&WriteArtifactOp{Path: good, Content: []byte("package good\n"), Mode: 0644},
		&WriteArtifactOp{Path: filepath.Join(tmp, "bad_test.go"), Content: nil, Mode: 0644},
	}

	err := Execute(context.Background(), ops, ExecuteOptions{Writer: &out})
	if err == nil {
		t.Fatal("Execute() expected validation error")
	}
	if _, statErr := os.Stat(good); !os.IsNotExist(statErr) {
		t.Error("no operation may execute when any validation fails")
	}
}
