// pattern: Imperative Shell

package demo

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"tabsview/internal/config"
	"tabsview/internal/geometry"
	"tabsview/internal/logging"
	"tabsview/internal/tabs"
	"tabsview/internal/toolbar"
)

// doubleCtrlCWindow is the maximum time between two ctrl+c presses to trigger quit.
const doubleCtrlCWindow = 500 * time.Millisecond

// statusTimeout is how long a status message stays up.
const statusTimeout = 3 * time.Second

// logEntriesMsg delivers log entries from the logging channel.
type logEntriesMsg struct {
	entries []logging.LogEntry
}

// clearStatusMsg is sent after a timed delay to clear the status bar.
type clearStatusMsg struct {
	seq int
}

// ConfigReloadedMsg carries a reloaded config file. Err is set when the
// file could not be read or is invalid; the running settings stay.
type ConfigReloadedMsg struct {
	Config config.Config
	Err    error
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m.relayout()

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tabs.SelectionChangedMsg[page]:
		var cmd tea.Cmd
		if m.pages[msg.From.id].Focused() {
			m.pages[msg.From.id].Blur()
			cmd = m.showKeyboard(false)
		}
		status := m.setStatus(msg.To.title+" tab", false)
		return m, tea.Batch(cmd, status)

	case ConfigReloadedMsg:
		if msg.Err != nil {
			m.logger.Warn("config reload failed", "error", msg.Err)
			cmd := m.setStatus("config: "+firstLine(msg.Err.Error()), true)
			return m, cmd
		}
		return m.applyConfig(msg.Config)

	case logEntriesMsg:
		for _, entry := range msg.entries {
			m.addLogEntry(entry)
		}
		if m.logPanelOpen && m.logReady {
			m.updateLogViewportContent()
		}
		return m, m.consumeLogEntries()

	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.statusMessage = ""
			m.statusIsError = false
		}
		return m, nil

	case spinner.TickMsg:
		if !m.tabs.Container().Animating() {
			m.spinning = false
			return m, nil
		}
		var cmd tea.Cmd
		m.statusSpinner, cmd = m.statusSpinner.Update(msg)
		return m, cmd

	case tea.MouseMsg:
		layout := ComputeLayout(m.width, m.height, m.logPanelOpen)
		if m.logPanelOpen && m.logReady && layout.Logs.Rect().Contains(geometry.Point{X: msg.X, Y: msg.Y}) {
			var cmd tea.Cmd
			m.logViewport, cmd = m.logViewport.Update(msg)
			m.logAutoScroll = m.logViewport.AtBottom()
			return m, cmd
		}
	}

	return m.forward(msg)
}

// forward hands msg to the tab container.
func (m Model) forward(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.tabs, cmd = m.tabs.Update(msg)
	spin := m.spin()
	return m, tea.Batch(cmd, spin)
}

// spin starts the status spinner while the bar inset animates.
func (m *Model) spin() tea.Cmd {
	if m.spinning || !m.tabs.Container().Animating() {
		return nil
	}
	m.spinning = true
	return m.statusSpinner.Tick
}

// relayout places the tab container and sizes the log viewport.
func (m Model) relayout() (Model, tea.Cmd) {
	layout := ComputeLayout(m.width, m.height, m.logPanelOpen)

	if m.logPanelOpen {
		h := layout.LogViewportHeight()
		if !m.logReady {
			m.logViewport = viewport.New(layout.Logs.Width, h)
			m.logReady = true
		} else {
			m.logViewport.Width = layout.Logs.Width
			m.logViewport.Height = h
		}
		m.updateLogViewportContent()
	}

	frame := layout.Content.Rect()
	return m.forward(toolbar.LayoutMsg{
		Frame: frame,
		Env:   toolbar.NewEnv(frame, m.tabs.Container().Position(), toolbar.InsetReader{}),
	})
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.logger.Debug("key pressed", "key", msg.String(), "typing", m.currentPage().Focused())

	// Handle quit shortcuts first (ctrl+d always, ctrl+c double-press)
	if msg.Type == tea.KeyCtrlD {
		return m, tea.Quit
	}
	if msg.Type == tea.KeyCtrlC {
		now := m.now()
		if !m.lastCtrlCTime.IsZero() && now.Sub(m.lastCtrlCTime) <= doubleCtrlCWindow {
			m.logger.Debug("quit via double ctrl+c")
			return m, tea.Quit
		}
		m.lastCtrlCTime = now
		cmd := m.setStatus("ctrl+c ctrl+c to quit", false)
		return m, cmd
	}

	if m.currentPage().Focused() {
		if key.Matches(msg, m.keys.Blur) {
			m.currentPage().Blur()
			cmd := m.showKeyboard(false)
			return m, cmd
		}
		return m.forward(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Position):
		p := m.tabs.Container().Position().Toggle()
		var cmd tea.Cmd
		m.tabs, cmd = m.tabs.SetPosition(p)
		m.logger.Info("bar moved", "position", p.String())
		cmds := []tea.Cmd{cmd, m.spin(), m.setStatus("bar at "+p.String(), false)}
		return m, tea.Batch(cmds...)

	case key.Matches(msg, m.keys.Keyboard):
		ignore := !m.tabs.Container().IgnoresKeyboard()
		var cmd tea.Cmd
		m.tabs, cmd = m.tabs.SetIgnoresKeyboard(ignore)
		status := "bar avoids the keyboard"
		if ignore {
			status = "bar ignores the keyboard"
		}
		cmds := []tea.Cmd{cmd, m.spin(), m.setStatus(status, false)}
		return m, tea.Batch(cmds...)

	case key.Matches(msg, m.keys.Animation):
		if m.tabs.Container().Animation() != nil {
			m.tabs = m.tabs.SetAnimation(nil)
			cmd := m.setStatus("animation off", false)
			return m, cmd
		}
		a := m.cfg.ToolbarAnimation()
		if a == nil {
			a = toolbar.DefaultAnimation()
		}
		m.tabs = m.tabs.SetAnimation(a)
		cmd := m.setStatus("animation on", false)
		return m, cmd

	case key.Matches(msg, m.keys.Focus):
		focus := m.currentPage().Focus()
		keyboard := m.showKeyboard(true)
		return m, tea.Batch(focus, keyboard)

	case key.Matches(msg, m.keys.Logs):
		m.logPanelOpen = !m.logPanelOpen
		m.logAutoScroll = true
		return m.relayout()
	}

	if m.logPanelOpen && m.logReady && isScrollKey(msg) {
		var cmd tea.Cmd
		m.logViewport, cmd = m.logViewport.Update(msg)
		m.logAutoScroll = m.logViewport.AtBottom()
		return m, cmd
	}

	return m.forward(msg)
}

// isScrollKey reports keys the log panel takes over while open.
func isScrollKey(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "pgup", "pgdown":
		return true
	}
	return false
}

// showKeyboard raises or lowers the simulated keyboard.
func (m *Model) showKeyboard(show bool) tea.Cmd {
	m.keyboardShown = show
	var insets geometry.Insets
	if show {
		insets.Bottom = m.cfg.KeyboardHeight
	}
	m.logger.Debug("keyboard", "shown", show, "rows", insets.Bottom)

	var cmd tea.Cmd
	m.tabs, cmd = m.tabs.Update(toolbar.KeyboardMsg{Insets: insets})
	spin := m.spin()
	return tea.Batch(cmd, spin)
}

// applyConfig re-applies the bar settings of a reloaded config. The
// animation is swapped first so the change itself animates.
func (m Model) applyConfig(cfg config.Config) (Model, tea.Cmd) {
	var cmds []tea.Cmd
	prev := m.cfg
	m.cfg = cfg

	m.tabs = m.tabs.SetAnimation(cfg.ToolbarAnimation())

	var cmd tea.Cmd
	m.tabs, cmd = m.tabs.SetPosition(cfg.BarPosition())
	cmds = append(cmds, cmd)
	m.tabs, cmd = m.tabs.SetIgnoresKeyboard(cfg.IgnoresKeyboard)
	cmds = append(cmds, cmd)

	if m.keyboardShown && cfg.KeyboardHeight != prev.KeyboardHeight {
		cmds = append(cmds, m.showKeyboard(true))
	}

	if m.levels != nil && cfg.LogLevel != prev.LogLevel {
		if err := m.levels.SetLevel(cfg.LogLevel); err != nil {
			m.logger.Warn("log level not changed", "error", err)
		}
	}
	if cfg.Theme != prev.Theme {
		m.logger.Info("theme changes apply on restart", "theme", cfg.Theme)
	}

	m.logger.Info("config reloaded",
		"position", cfg.Position,
		"ignores_keyboard", cfg.IgnoresKeyboard,
		"animation", cfg.Animation.Enabled,
	)
	cmds = append(cmds, m.spin(), m.setStatus("config reloaded", false))
	batch := tea.Batch(cmds...)
	return m, batch
}

// setStatus shows msg in the status bar until it times out or is replaced.
func (m *Model) setStatus(msg string, isError bool) tea.Cmd {
	m.statusSeq++
	m.statusMessage = msg
	m.statusIsError = isError
	seq := m.statusSeq
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}

func (m *Model) updateLogViewportContent() {
	lines := make([]string, 0, len(m.logs))
	for _, entry := range m.logs {
		lines = append(lines, m.renderLogEntry(entry))
	}
	if len(lines) == 0 {
		lines = append(lines, m.theme.HelpStyle().Render("No log entries"))
	}
	m.logViewport.SetContent(strings.Join(lines, "\n"))
	if m.logAutoScroll {
		m.logViewport.GotoBottom()
	}
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i] + fmt.Sprintf(" (+%d more)", strings.Count(s[i:], "\n"))
	}
	return s
}
