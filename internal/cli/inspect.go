// pattern: Functional Core
package cli

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"tabsview/internal/geometry"
	"tabsview/internal/toolbar"
)

// LayoutParams describes a headless layout pass.
type LayoutParams struct {
	Width           int
	Height          int
	Position        toolbar.Position
	BarHeight       int
	Keyboard        int // rows covered at the bottom edge
	IgnoresKeyboard bool
	Render          bool
}

// LayoutReport is the outcome of a headless layout pass.
type LayoutReport struct {
	Frame           geometry.Rect   `json:"frame"`
	Position        string          `json:"position"`
	IgnoresKeyboard bool            `json:"ignores_keyboard"`
	Keyboard        geometry.Insets `json:"keyboard"`
	ContentFrame    *geometry.Rect  `json:"content_frame"`
	BarFrame        *geometry.Rect  `json:"bar_frame"`
	Inset           geometry.Size   `json:"inset"`
	Phase           string          `json:"phase"`
	Screen          []string        `json:"screen,omitempty"`
}

// InspectLayout mounts a container with a blank content view and a bar of
// p.BarHeight full-width rows, sizes it and reports what it measured.
// Animation is off, so the reported inset is final.
func InspectLayout(p LayoutParams) LayoutReport {
	content := toolbar.ViewFunc(func(_ toolbar.Env, width, height int) string {
		return fill("·", width, height)
	})
	bar := toolbar.ViewFunc(func(_ toolbar.Env, width, _ int) string {
		return fill("━", width, p.BarHeight)
	})
	keyboard := toolbar.ViewFunc(func(_ toolbar.Env, width, height int) string {
		return fill("░", width, height)
	})

	m := toolbar.New(content, bar,
		toolbar.WithPosition(p.Position),
		toolbar.WithIgnoresKeyboard(p.IgnoresKeyboard),
		toolbar.WithAnimation(nil),
		toolbar.WithKeyboardView(keyboard),
	)
	m, _ = m.Update(tea.WindowSizeMsg{Width: p.Width, Height: p.Height})
	m, _ = m.Update(toolbar.KeyboardMsg{Insets: geometry.Insets{Bottom: p.Keyboard}})

	report := LayoutReport{
		Frame:           m.Frame(),
		Position:        p.Position.String(),
		IgnoresKeyboard: p.IgnoresKeyboard,
		Keyboard:        geometry.Insets{Bottom: p.Keyboard},
		Inset:           m.Inset(),
		Phase:           m.Phase().String(),
	}
	if r, ok := m.ContentFrame(); ok {
		report.ContentFrame = &r
	}
	if r, ok := m.BarFrame(); ok {
		report.BarFrame = &r
	}
	if p.Render {
		report.Screen = strings.Split(ansi.Strip(m.View()), "\n")
	}
	return report
}

func fill(glyph string, width, rows int) string {
	if width <= 0 || rows <= 0 {
		return ""
	}
	line := strings.Repeat(glyph, width)
	lines := make([]string, rows)
	for i := range lines {
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}
