package demo

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"tabsview/internal/theme"
	"tabsview/internal/toolbar"
)

var keyboardRows = []string{
	"q w e r t y u i o p",
	"a s d f g h j k l",
	"z x c v b n m",
	"space",
}

// keyboardView draws the simulated on-screen keyboard into the region the
// container reports as covered.
type keyboardView struct {
	theme *theme.Theme
}

func (k keyboardView) Render(_ toolbar.Env, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	keycap := k.theme.KeycapStyle().Padding(0, 1)

	rows := make([]string, 0, len(keyboardRows))
	for _, row := range keyboardRows {
		keys := strings.Fields(row)
		caps := make([]string, len(keys))
		for i, key := range keys {
			caps[i] = keycap.Render(key)
		}
		rows = append(rows, strings.Join(caps, " "))
	}
	if len(rows) > height {
		rows = rows[:height]
	}

	return k.theme.KeyboardStyle().
		Width(width).
		Height(height).
		MaxHeight(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(strings.Join(rows, "\n"))
}
