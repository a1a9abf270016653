package output

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestNewPrinter_NilWriter(t *testing.T) {
	p := NewPrinter(nil)
	if p.w != os.Stdout {
		t.Errorf("NewPrinter(nil) writer = %v, want os.Stdout", p.w)
	}
}

func TestPrinter_Messages(t *testing.T) {
	tests := []struct {
		name  string
		print func(p *Printer)
		want  string
	}{
		{"success", func(p *Printer) { p.Success("artifact written") }, "artifact written"},
		{"error", func(p *Printer) { p.Error("write failed") }, "write failed"},
		{"info", func(p *Printer) { p.Info("watching for changes") }, "watching for changes"},
		{"step", func(p *Printer) { p.Step("go test ./tests/") }, "go test ./tests/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.print(NewPrinter(&buf))

			got := buf.String()
			if !strings.Contains(got, tt.want) {
				t.Errorf("output = %q, want it to contain %q", got, tt.want)
			}
			if !strings.HasSuffix(got, "\n") {
				t.Errorf("output %q should end with a newline", got)
			}
		})
	}
}

func TestPrinter_VerboseGating(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.Verbose("hidden")
	if buf.Len() != 0 {
		t.Errorf("verbose output written while disabled: %q", buf.String())
	}

	p.SetVerbose(true)
	p.Verbose("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Errorf("output = %q, want it to contain %q", buf.String(), "shown")
	}

	p.SetVerbose(false)
	buf.Reset()
	p.Verbose("hidden again")
	if buf.Len() != 0 {
		t.Errorf("verbose output written after disabling: %q", buf.String())
	}
}
