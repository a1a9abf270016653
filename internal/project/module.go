package project

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/modfile"
)

// ModuleInfo contains information from go.mod
type ModuleInfo struct {
	Path      string // Module path (e.g., "github.com/user/repo")
	GoVersion string // Go version requirement (e.g., "1.21")
	Dir       string // Directory holding the go.mod
}

// DetectModule reads go.mod in rootPath and returns module information.
// Returns an error if go.mod doesn't exist or is invalid.
func DetectModule(rootPath string) (*ModuleInfo, error) {
	modPath := filepath.Join(rootPath, "go.mod")
	data, err := os.ReadFile(modPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("go.mod not found in %s", rootPath)
		}
		return nil, fmt.Errorf("failed to read go.mod: %w", err)
	}

	modFile, err := modfile.Parse(modPath, data, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to parse go.mod: %w", err)
	}
	if modFile.Module == nil {
		return nil, fmt.Errorf("no module directive in %s", modPath)
	}

	info := &ModuleInfo{
		Path: modFile.Module.Mod.Path,
		Dir:  rootPath,
	}

	if modFile.Go != nil {
		info.GoVersion = modFile.Go.Version
	}

	return info, nil
}

// FindModule walks up from start until it finds a go.mod, then parses it.
// Artifacts emitted below the module root are picked up by go test, so
// callers use this to tell the two cases apart. Returns an error when no
// module encloses start.
func FindModule(start string) (*ModuleInfo, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", start, err)
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return DetectModule(dir)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return nil, fmt.Errorf("no go.mod above %s", start)
		}
		dir = parent
	}
}

// Contains reports whether path lies inside the module tree.
func (m *ModuleInfo) Contains(path string) bool {
	abs, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	rel, err := filepath.Rel(m.Dir, abs)
	if err != nil {
		return false
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return false
	}
	return true
}
