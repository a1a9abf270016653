package dump

import (
	"embed"
	"strings"
)

//go:embed templates/harness.go.tmpl
var templatesFS embed.FS

// harnessData feeds the artifact template.
type harnessData struct {
	Package string
	Name    string
	Source  string
}

// compose wraps src in the runnable harness for name: a generated-code
// marker, a package clause, and a no-op test referencing the name. The
// source lands verbatim apart from trailing-whitespace trimming; it is
// passed to the template as data, never parsed, so template syntax inside
// generated code is inert.
func (e *Emitter) compose(src []byte, name string) ([]byte, error) {
	data := harnessData{
		Package: name,
		Name:    name,
		Source:  strings.TrimRight(string(src), " \t\n"),
	}
	return e.renderer.RenderFS(templatesFS, "templates/harness.go.tmpl", data)
}
