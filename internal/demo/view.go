// pattern: Imperative Shell

package demo

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"tabsview/internal/logging"
)

// View renders the demo.
func (m Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	layout := ComputeLayout(m.width, m.height, m.logPanelOpen)

	parts := []string{m.renderHeader(layout.Header.Width), m.tabs.View()}

	if m.logPanelOpen {
		separator := m.theme.HelpStyle().Render(strings.Repeat("─", layout.Separator.Width))
		parts = append(parts, separator, m.renderLogPanel(layout))
	}

	parts = append(parts, m.renderStatusBar(layout.StatusBar.Width))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) renderHeader(width int) string {
	sel := m.selection.Get()
	c := m.tabs.Container()

	animation := "off"
	if c.Animation() != nil {
		animation = "on"
	}
	keyboard := "avoids keyboard"
	if c.IgnoresKeyboard() {
		keyboard = "ignores keyboard"
	}
	info := fmt.Sprintf("  bar %s · %s · animation %s · inset %s",
		c.Position(), keyboard, animation, c.DisplayedInset())

	header := m.theme.TitleStyle(sel.id).Render("tabsview") + m.theme.HelpStyle().Render(info)
	return ansi.Truncate(header, width, "…")
}

func (m Model) renderStatusBar(width int) string {
	var statusText string
	if m.spinning {
		statusText = m.statusSpinner.View() + " "
	}
	if m.statusMessage != "" {
		style := m.theme.StatusBarStyle()
		if m.statusIsError {
			style = m.theme.ErrorStyle()
		}
		statusText += style.Render(m.statusMessage)
	}

	h := m.help
	h.Width = max(width-lipgloss.Width(statusText)-2, 0)
	help := h.ShortHelpView(m.keys.bindings(m.currentPage().Focused()))

	spacerWidth := width - lipgloss.Width(statusText) - lipgloss.Width(help)
	if spacerWidth < 1 {
		spacerWidth = 1
	}

	line := statusText + strings.Repeat(" ", spacerWidth) + help
	return m.theme.StatusBarStyle().Render(ansi.Truncate(line, width, ""))
}

// renderLogEntry formats a single log entry for display.
func (m Model) renderLogEntry(entry logging.LogEntry) string {
	ts := m.theme.HelpStyle().Render(entry.Timestamp.Format("15:04:05"))
	level := m.theme.LevelStyle(entry.Level).Render(fmt.Sprintf("%-5s", entry.Level))
	scope := m.theme.AccentStyle().Render("[" + entry.Scope + "]")

	line := fmt.Sprintf("%s %s %s %s", ts, level, scope, entry.Message)
	if fields := entry.FieldString(); fields != "" {
		line += " " + m.theme.HelpStyle().Render(fields)
	}
	return line
}

// renderLogPanel renders the log panel content.
func (m Model) renderLogPanel(layout Layout) string {
	title := fmt.Sprintf(" Logs (%d, level %s)", len(m.logs), m.logLevel())
	header := m.theme.AccentStyle().Width(layout.Logs.Width).Render(title)

	if m.logReady {
		return lipgloss.JoinVertical(lipgloss.Left, header, m.logViewport.View())
	}
	return header
}

func (m Model) logLevel() string {
	if m.cfg.LogLevel == "" {
		return "info"
	}
	return strings.ToLower(m.cfg.LogLevel)
}
