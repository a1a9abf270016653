package dump

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

const (
	diffContextLines = 3
	diffTabWidth     = 4
	diffMaxLines     = 10000
)

var (
	diffHeaderStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	diffHunkStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan")).Bold(true)
	diffAddedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("22"))
	diffRemovedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("52"))
)

// Diff returns a styled unified diff between two versions of an artifact,
// or "" when they are identical. Binary and oversized inputs short-circuit
// with a one-line notice. Output is informational only; emission always
// overwrites.
func Diff(oldPath, newPath string, old, newer []byte) string {
	if isBinary(old) || isBinary(newer) {
		return "Binary files differ\n"
	}

	oldLines := splitLines(string(old))
	newLines := splitLines(string(newer))

	if len(oldLines) > diffMaxLines || len(newLines) > diffMaxLines {
		return fmt.Sprintf("Files too large for diff (%d and %d lines)\n", len(oldLines), len(newLines))
	}

	script := editScript(oldLines, newLines)

	changed := false
	for _, line := range script {
		if line.op != diffKeep {
			changed = true
			break
		}
	}
	if !changed {
		return ""
	}

	hunks := buildHunks(script)
	if len(hunks) == 0 {
		return ""
	}

	var buf strings.Builder
	buf.WriteString(diffHeaderStyle.Render("--- "+oldPath) + "\n")
	buf.WriteString(diffHeaderStyle.Render("+++ "+newPath) + "\n")

	width := terminalWidth()
	for _, h := range hunks {
		formatHunk(&buf, h, width)
	}

	return buf.String()
}

// diffOp classifies a line in the edit script
type diffOp int

const (
	diffKeep diffOp = iota
	diffAdd
	diffDel
)

type diffLine struct {
	op      diffOp
	content string
	oldNum  int // 1-based line in the old file (0 when added)
	newNum  int // 1-based line in the new file (0 when removed)
}

type diffHunk struct {
	oldStart, oldCount int
	newStart, newCount int
	lines              []diffLine
}

// editScript computes the shortest edit script between two line slices.
// Myers, "An O(ND) Difference Algorithm and Its Variations" (1986).
func editScript(old, newer []string) []diffLine {
	n := len(old)
	m := len(newer)
	maxD := n + m

	v := map[int]int{1: 0}
	var trace []map[int]int

	for d := 0; d <= maxD; d++ {
		// Snapshot for backtracking
		snapshot := make(map[int]int, len(v))
		for k, x := range v {
			snapshot[k] = x
		}
		trace = append(trace, snapshot)

		for k := -d; k <= d; k += 2 {
			var x int
			if k == -d || (k != d && v[k-1] < v[k+1]) {
				x = v[k+1] // down: deletion from old
			} else {
				x = v[k-1] + 1 // right: insertion from new
			}
			y := x - k

			// Follow the diagonal over matching lines
			for x < n && y < m && old[x] == newer[y] {
				x++
				y++
			}

			v[k] = x

			if x >= n && y >= m {
				return backtrack(trace, old, newer)
			}
		}
	}

	return backtrack(trace, old, newer)
}

// backtrack rebuilds the edit script from the traced search frontiers.
func backtrack(trace []map[int]int, old, newer []string) []diffLine {
	var result []diffLine
	x, y := len(old), len(newer)

	for d := len(trace) - 1; d >= 0; d-- {
		v := trace[d]
		k := x - y

		var prevK int
		if k == -d || (k != d && v[k-1] < v[k+1]) {
			prevK = k + 1
		} else {
			prevK = k - 1
		}

		prevX := v[prevK]
		prevY := prevX - prevK

		for x > prevX && y > prevY {
			x--
			y--
			result = append([]diffLine{{op: diffKeep, content: old[x], oldNum: x + 1, newNum: y + 1}}, result...)
		}

		if d > 0 {
			if x == prevX {
				y--
				result = append([]diffLine{{op: diffAdd, content: newer[y], newNum: y + 1}}, result...)
			} else {
				x--
				result = append([]diffLine{{op: diffDel, content: old[x], oldNum: x + 1}}, result...)
			}
		}
	}

	return result
}

// buildHunks groups the edit script into hunks with surrounding context.
// Unchanged lines are committed to the open hunk only when its extent is
// known, so closing a hunk never discards change lines.
func buildHunks(lines []diffLine) []diffHunk {
	var hunks []diffHunk
	var current *diffHunk
	pending := 0 // unchanged lines after the last change, not yet committed

	for i, line := range lines {
		if line.op == diffKeep {
			if current == nil {
				continue
			}
			pending++

			// A long enough unchanged run ends the hunk: commit the trailing
			// context and let a later change open a fresh hunk
			if pending > diffContextLines*2 {
				first := i - pending + 1
				current.lines = append(current.lines, lines[first:first+diffContextLines]...)
				finalizeHunk(current)
				hunks = append(hunks, *current)
				current = nil
				pending = 0
			}
			continue
		}

		if current == nil {
			start := i - diffContextLines
			if start < 0 {
				start = 0
			}
			current = &diffHunk{}
			current.lines = append(current.lines, lines[start:i]...)
		} else if pending > 0 {
			// Interior run, short enough to carry whole
			current.lines = append(current.lines, lines[i-pending:i]...)
		}
		pending = 0
		current.lines = append(current.lines, line)
	}

	if current != nil {
		tail := pending
		if tail > diffContextLines {
			tail = diffContextLines
		}
		first := len(lines) - pending
		current.lines = append(current.lines, lines[first:first+tail]...)
		finalizeHunk(current)
		hunks = append(hunks, *current)
	}

	return hunks
}

// finalizeHunk fills in the header start/count values.
func finalizeHunk(h *diffHunk) {
	for _, line := range h.lines {
		if line.oldNum > 0 && (h.oldStart == 0 || line.oldNum < h.oldStart) {
			h.oldStart = line.oldNum
		}
		if line.newNum > 0 && (h.newStart == 0 || line.newNum < h.newStart) {
			h.newStart = line.newNum
		}
	}

	for _, line := range h.lines {
		if line.op == diffDel || line.op == diffKeep {
			h.oldCount++
		}
		if line.op == diffAdd || line.op == diffKeep {
			h.newCount++
		}
	}
}

func formatHunk(buf *strings.Builder, h diffHunk, width int) {
	header := fmt.Sprintf("@@ -%d,%d +%d,%d @@", h.oldStart, h.oldCount, h.newStart, h.newCount)
	buf.WriteString(diffHunkStyle.Render(header) + "\n")

	for _, line := range h.lines {
		content := expandTabs(line.content)
		content = truncateLine(content, width-10)

		switch line.op {
		case diffAdd:
			buf.WriteString(diffAddedStyle.Render("+"+content) + "\n")
		case diffDel:
			buf.WriteString(diffRemovedStyle.Render("-"+content) + "\n")
		default:
			buf.WriteString(" " + content + "\n")
		}
	}
}

// isBinary reports whether content looks binary (null byte in the head).
func isBinary(data []byte) bool {
	head := data
	if len(head) > 8192 {
		head = head[:8192]
	}
	return bytes.IndexByte(head, 0) != -1
}

// splitLines splits content into lines, dropping the empty tail a final
// newline produces.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.Split(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func expandTabs(s string) string {
	if !strings.Contains(s, "\t") {
		return s
	}

	var buf strings.Builder
	col := 0
	for _, r := range s {
		if r == '\t' {
			spaces := diffTabWidth - (col % diffTabWidth)
			buf.WriteString(strings.Repeat(" ", spaces))
			col += spaces
			continue
		}
		buf.WriteRune(r)
		col++
	}
	return buf.String()
}

func truncateLine(s string, maxWidth int) string {
	if maxWidth <= 0 {
		maxWidth = 80
	}
	if utf8.RuneCountInString(s) <= maxWidth {
		return s
	}

	runes := []rune(s)
	if maxWidth < 3 {
		return string(runes[:maxWidth])
	}
	return string(runes[:maxWidth-3]) + "..."
}

// terminalWidth returns the terminal width, defaulting to 80.
func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}
