// Package output provides beautiful, styled terminal output for CLI tools.
//
// All tools in the Firebird Suite use this package for consistent, delightful UX.
// Functions use lipgloss for styling but abstract away the details from callers.
//
// The package-level functions write to stdout. Components that need to direct
// messages elsewhere (or capture them in tests) construct their own Printer.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("green")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("red")).Bold(true)
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan"))
	stepStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// Printer writes styled messages to a single destination.
type Printer struct {
	w       io.Writer
	verbose bool
}

// NewPrinter creates a printer writing to w. A nil writer means stdout.
func NewPrinter(w io.Writer) *Printer {
	if w == nil {
		w = os.Stdout
	}
	return &Printer{w: w}
}

// SetVerbose enables or disables this printer's verbose output.
func (p *Printer) SetVerbose(v bool) {
	p.verbose = v
}

// Success prints a success message with 🔥 emoji and green color.
func (p *Printer) Success(msg string) {
	fmt.Fprintln(p.w, successStyle.Render("🔥 "+msg))
}

// Error prints an error message with ❌ emoji and red color.
func (p *Printer) Error(msg string) {
	fmt.Fprintln(p.w, errorStyle.Render("❌ "+msg))
}

// Info prints an informational message with ℹ️ emoji and cyan color.
func (p *Printer) Info(msg string) {
	fmt.Fprintln(p.w, infoStyle.Render("ℹ️  "+msg))
}

// Step prints an indented step message in gray.
func (p *Printer) Step(msg string) {
	fmt.Fprintln(p.w, stepStyle.Render("   "+msg))
}

// Verbose prints a debug message with 🔍 emoji only if verbose mode is enabled.
func (p *Printer) Verbose(msg string) {
	if p.verbose {
		fmt.Fprintln(p.w, stepStyle.Render("🔍 "+msg))
	}
}

// std backs the package-level functions.
var std = NewPrinter(os.Stdout)

// SetVerbose enables or disables verbose output for debugging.
// This should be called by the CLI when the --verbose flag is set.
func SetVerbose(v bool) {
	std.SetVerbose(v)
}

// Success prints a success message with 🔥 emoji and green color.
// Use this for completed operations.
//
// Example:
//
//	output.Success("Wrote tests/user_model_test.go")
func Success(msg string) {
	std.Success(msg)
}

// Error prints an error message with ❌ emoji and red color.
// Use this for failures that need user attention.
//
// Example:
//
//	output.Error("Failed to write artifact: permission denied")
func Error(msg string) {
	std.Error(msg)
}

// Info prints an informational message with ℹ️ emoji and cyan color.
// Use this for status updates or explanations.
//
// Example:
//
//	output.Info("Watching gen/output.go for changes")
func Info(msg string) {
	std.Info(msg)
}

// Step prints an indented step message in gray.
// Use this for actionable next steps or sub-items.
//
// Example:
//
//	output.Step("go test ./tests/")
func Step(msg string) {
	std.Step(msg)
}

// Verbose prints a debug message with 🔍 emoji only if verbose mode is enabled.
// Use this for detailed debugging information.
//
// Example:
//
//	output.Verbose("Resolved artifact name: out_2026_0825_143005")
func Verbose(msg string) {
	std.Verbose(msg)
}
