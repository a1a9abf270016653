package project

import (
	"os"
	"path/filepath"
	"testing"
)

func writeGoMod(t *testing.T, dir, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, "go.mod"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestDetectModule_Success(t *testing.T) {
	tmpDir := t.TempDir()

	writeGoMod(t, tmpDir, `module github.com/test/example

go 1.21
`)

	info, err := DetectModule(tmpDir)
	if err != nil {
		t.Fatalf("DetectModule() error = %v", err)
	}

	if info.Path != "github.com/test/example" {
		t.Errorf("Path = %q, want %q", info.Path, "github.com/test/example")
	}
	if info.GoVersion != "1.21" {
		t.Errorf("GoVersion = %q, want %q", info.GoVersion, "1.21")
	}
	if info.Dir != tmpDir {
		t.Errorf("Dir = %q, want %q", info.Dir, tmpDir)
	}
}

func TestDetectModule_NotFound(t *testing.T) {
	tmpDir := t.TempDir()

	_, err := DetectModule(tmpDir)
	if err == nil {
		t.Fatal("DetectModule() expected error for missing go.mod")
	}
}

func TestDetectModule_InvalidSyntax(t *testing.T) {
	tmpDir := t.TempDir()

	writeGoMod(t, tmpDir, `this is not valid go.mod syntax
module
`)

	_, err := DetectModule(tmpDir)
	if err == nil {
		t.Fatal("DetectModule() expected error for invalid syntax")
	}
}

func TestFindModule_WalksUp(t *testing.T) {
	tmpDir := t.TempDir()
	writeGoMod(t, tmpDir, "module github.com/test/walkup\n\ngo 1.21\n")

	nested := filepath.Join(tmpDir, "internal", "deep")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatal(err)
	}

	info, err := FindModule(nested)
	if err != nil {
		t.Fatalf("FindModule() error = %v", err)
	}
	if info.Path != "github.com/test/walkup" {
		t.Errorf("Path = %q, want %q", info.Path, "github.com/test/walkup")
	}
	if info.Dir != tmpDir {
		t.Errorf("Dir = %q, want module root %q", info.Dir, tmpDir)
	}
}

func TestFindModule_NoModule(t *testing.T) {
	// TempDir lives under the system temp tree, which has no go.mod above it
	tmpDir := t.TempDir()

	_, err := FindModule(tmpDir)
	if err == nil {
		t.Fatal("FindModule() expected error outside any module")
	}
}

func TestModuleInfo_Contains(t *testing.T) {
	tmpDir := t.TempDir()
	info := &ModuleInfo{Path: "github.com/test/contains", Dir: tmpDir}

	tests := []struct {
		name string
		path string
		want bool
	}{
		{"module root", tmpDir, true},
		{"nested dir", filepath.Join(tmpDir, "tests"), true},
		{"deeply nested", filepath.Join(tmpDir, "a", "b", "c"), true},
		{"parent", filepath.Dir(tmpDir), false},
		{"sibling", filepath.Join(filepath.Dir(tmpDir), "elsewhere"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := info.Contains(tt.path); got != tt.want {
				t.Errorf("Contains(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}
