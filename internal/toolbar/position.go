// pattern: Functional Core

package toolbar

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"tabsview/internal/geometry"
)

// Position places the bar relative to the content.
type Position int

const (
	// Bottom anchors the bar to the bottom edge. It is the default.
	Bottom Position = iota
	// Top anchors the bar to the top edge.
	Top
)

// Edge is a vertical edge of a frame.
type Edge int

const (
	EdgeBottom Edge = iota
	EdgeTop
)

// EdgeSet is a set of vertical edges.
type EdgeSet uint8

const (
	EdgeSetTop EdgeSet = 1 << iota
	EdgeSetBottom
)

// Has reports whether the set contains e.
func (s EdgeSet) Has(e Edge) bool {
	switch e {
	case EdgeTop:
		return s&EdgeSetTop != 0
	default:
		return s&EdgeSetBottom != 0
	}
}

// Suppress zeroes the insets on every edge in the set.
func (s EdgeSet) Suppress(in geometry.Insets) geometry.Insets {
	if s.Has(EdgeTop) {
		in.Top = 0
	}
	if s.Has(EdgeBottom) {
		in.Bottom = 0
	}
	return in
}

// Reserve returns r with rows taken away at edge e.
func (e Edge) Reserve(r geometry.Rect, rows int) geometry.Rect {
	rows = min(max(rows, 0), max(r.Height, 0))
	if e == EdgeTop {
		return geometry.Rect{X: r.X, Y: r.Y + rows, Width: r.Width, Height: r.Height - rows}
	}
	return geometry.Rect{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height - rows}
}

// Edge is the content edge that receives the reserved inset.
func (p Position) Edge() Edge {
	if p == Top {
		return EdgeTop
	}
	return EdgeBottom
}

// Alignment anchors the bar within the layer stack.
func (p Position) Alignment() lipgloss.Position {
	if p == Top {
		return lipgloss.Top
	}
	return lipgloss.Bottom
}

// KeyboardEdges returns the edges where the bar ignores the keyboard.
func (p Position) KeyboardEdges(ignoresKeyboard bool) EdgeSet {
	if !ignoresKeyboard {
		return 0
	}
	if p == Top {
		return EdgeSetTop
	}
	return EdgeSetBottom
}

func (p Position) String() string {
	if p == Top {
		return "top"
	}
	return "bottom"
}

// Toggle returns the opposite position.
func (p Position) Toggle() Position {
	if p == Top {
		return Bottom
	}
	return Top
}

// ParsePosition parses "top" or "bottom". An empty string is Bottom.
func ParsePosition(s string) (Position, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "bottom":
		return Bottom, nil
	case "top":
		return Top, nil
	default:
		return Bottom, fmt.Errorf("unknown bar position %q (want top or bottom)", s)
	}
}
