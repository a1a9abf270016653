package dump

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/simonhull/firebird-suite/magpie/output"
	"github.com/simonhull/firebird-suite/magpie/preen"
)

// DefaultDir is the artifact directory used when none is configured,
// resolved under the working directory at emit time.
const DefaultDir = "tests"

// Options configures an Emitter. The zero value is an emitter with the gate
// closed: every Emit is a no-op.
type Options struct {
	// Enabled is the master switch. When false, Emit returns nil
	// immediately and the filesystem is untouched.
	Enabled bool

	// Format runs the formatter after a successful write.
	Format bool

	// Notify prints a success line after a successful write.
	Notify bool

	// Dir is the default artifact directory. Empty means DefaultDir under
	// the working directory.
	Dir string

	// Formatter overrides the formatting tool. Nil means gofmt -w.
	Formatter preen.Formatter

	// Out is the destination for notifications and formatter complaints.
	// Nil means stdout.
	Out io.Writer
}

// OptionsFromEnv builds Options from the environment:
//
//	MAGPIE_ENABLED    master switch (default false)
//	MAGPIE_FORMAT     formatting toggle (default true)
//	MAGPIE_NOTIFY     notification toggle (default true)
//	MAGPIE_OUT        default artifact directory
//	MAGPIE_FORMATTER  formatter selector (see preen.Resolve)
//
// Booleans parse per strconv.ParseBool; unset or unparsable values keep the
// default. This is how generator code paths stay silent in production and
// light up when the environment asks.
func OptionsFromEnv() *Options {
	opts := &Options{
		Enabled: envBool("MAGPIE_ENABLED", false),
		Format:  envBool("MAGPIE_FORMAT", true),
		Notify:  envBool("MAGPIE_NOTIFY", true),
		Dir:     os.Getenv("MAGPIE_OUT"),
	}

	if f := preen.Resolve(os.Getenv("MAGPIE_FORMATTER")); f != nil {
		opts.Formatter = f
	} else {
		opts.Format = false
	}

	return opts
}

// envBool reads a boolean environment variable, keeping the fallback when
// the variable is unset or unparsable.
func envBool(key string, fallback bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

// Artifact is a fully resolved emission: where the file goes and what it
// contains.
type Artifact struct {
	Name    string // resolved artifact name
	Package string // package clause in the harness
	Path    string // resolved file path
	Content []byte // composed file content
}

// Emitter writes generated source to disk as runnable test artifacts.
type Emitter struct {
	opts      Options
	formatter preen.Formatter
	renderer  *Renderer
	printer   *output.Printer

	// Clock seam for fallback names
	now func() time.Time
}

// New creates an emitter. Nil opts means "configure from the environment"
// (see OptionsFromEnv). Options are copied; later mutation of the caller's
// struct has no effect.
func New(opts *Options) *Emitter {
	if opts == nil {
		opts = OptionsFromEnv()
	}

	formatter := opts.Formatter
	if formatter == nil {
		formatter = preen.Gofmt()
	}

	return &Emitter{
		opts:      *opts,
		formatter: formatter,
		renderer:  NewRenderer(),
		printer:   output.NewPrinter(opts.Out),
		now:       time.Now,
	}
}

// Plan resolves an emission without touching the filesystem: name and
// directory fallbacks applied, harness composed. The only possible error
// classes are *PathError (working directory unavailable) and template
// failures.
func (e *Emitter) Plan(src []byte, name, dir string) (*Artifact, error) {
	resolved := e.resolveName(name)

	targetDir, err := e.resolveDir(dir)
	if err != nil {
		return nil, err
	}

	content, err := e.compose(src, resolved)
	if err != nil {
		return nil, err
	}

	return &Artifact{
		Name:    resolved,
		Package: resolved,
		Path:    filepath.Join(targetDir, SnakeCase(resolved)+"_test.go"),
		Content: content,
	}, nil
}

// Emit runs the full pipeline: gate, resolve, compose, write, format,
// notify. Path resolution and write failures return as *PathError and
// *WriteError. Formatting and notification are best-effort: their failures
// are reported on the emitter's writer and never fail the emit.
func (e *Emitter) Emit(ctx context.Context, src []byte, name, dir string) error {
	if !e.opts.Enabled {
		return nil
	}

	art, err := e.Plan(src, name, dir)
	if err != nil {
		return err
	}

	op := &WriteArtifactOp{Path: art.Path, Content: art.Content, Mode: 0644}
	if err := op.Validate(ctx); err != nil {
		return err
	}
	if err := op.Execute(ctx); err != nil {
		return err
	}

	if e.opts.Format {
		if err := e.formatter.Format(ctx, art.Path); err != nil {
			e.printer.Error(fmt.Sprintf("%s failed on %s: %v", e.formatter.Name(), art.Path, err))
		}
	}

	if e.opts.Notify {
		e.printer.Success("Wrote " + art.Path)
	}

	return nil
}

// resolveDir applies the directory fallback chain: explicit argument, then
// Options.Dir, then DefaultDir under the working directory.
func (e *Emitter) resolveDir(dir string) (string, error) {
	if dir != "" {
		return dir, nil
	}
	if e.opts.Dir != "" {
		return e.opts.Dir, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", &PathError{Path: ".", Err: err}
	}
	return filepath.Join(cwd, DefaultDir), nil
}

// Emit writes src through an emitter configured from the environment. This
// is the drop-in call for generator code paths:
//
//	dump.Emit(ctx, buf.Bytes(), "user_model", "")
//
// With MAGPIE_ENABLED unset it costs a struct allocation and returns nil.
func Emit(ctx context.Context, src []byte, name, dir string) error {
	return New(nil).Emit(ctx, src, name, dir)
}
