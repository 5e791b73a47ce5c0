// pattern: Functional Core

package toolbar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// fitBlock pads or clips s to exactly width x height cells.
func fitBlock(s string, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	lines := splitLines(s)
	if len(lines) > height {
		lines = lines[:height]
	}
	for i, line := range lines {
		lines[i] = padRight(ansi.Truncate(line, width, ""), width)
	}
	blank := strings.Repeat(" ", width)
	for len(lines) < height {
		lines = append(lines, blank)
	}
	return strings.Join(lines, "\n")
}

// stack joins non-empty blocks vertically.
func stack(blocks ...string) string {
	parts := make([]string, 0, len(blocks))
	for _, b := range blocks {
		if b != "" {
			parts = append(parts, b)
		}
	}
	return strings.Join(parts, "\n")
}

// overlayAt paints layer over base with its top-left corner at (x, y).
// Both are line grids; base is assumed to be width cells wide.
func overlayAt(base, layer string, x, y, width int) string {
	if layer == "" {
		return base
	}
	baseLines := splitLines(base)
	for i, line := range splitLines(layer) {
		row := y + i
		if row < 0 || row >= len(baseLines) {
			continue
		}
		target := padRight(baseLines[row], width)
		left := ansi.Truncate(target, x, "")
		if w := ansi.StringWidth(left); w < x {
			left += strings.Repeat(" ", x-w)
		}

		line = ansi.Truncate(line, max(width-x, 0), "")
		right := ansi.TruncateLeft(target, x+ansi.StringWidth(line), "")

		baseLines[row] = left + line + right
	}
	return strings.Join(baseLines, "\n")
}

// splitLines splits on newlines, returning at least one element.
func splitLines(s string) []string {
	if s == "" {
		return []string{""}
	}
	return strings.Split(s, "\n")
}

func padRight(s string, width int) string {
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

// measure returns the cell size of a rendered block. An empty string has
// no size.
func measure(s string) (width, height int) {
	if s == "" {
		return 0, 0
	}
	return lipgloss.Width(s), lipgloss.Height(s)
}
