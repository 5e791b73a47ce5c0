package demo

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"tabsview/internal/config"
	"tabsview/internal/logging"
	"tabsview/internal/tabs"
	"tabsview/internal/theme"
	"tabsview/internal/toolbar"
)

// maxLogEntries bounds the log panel history.
const maxLogEntries = 500

// LevelSetter changes the minimum log level at runtime.
type LevelSetter interface {
	SetLevel(level string) error
}

// Model is the demo application: a header, the tab container, an optional
// log panel and a status bar.
type Model struct {
	width  int
	height int

	cfg    config.Config
	theme  *theme.Theme
	logger *logging.ScopedLogger

	selection *tabs.State[page]
	pages     map[string]*pageView
	tabs      tabs.Model[page]
	keys      keyMap
	help      help.Model

	keyboardShown bool

	statusSpinner spinner.Model
	spinning      bool
	statusMessage string
	statusIsError bool
	statusSeq     int
	lastCtrlCTime time.Time
	now           func() time.Time

	logEntries    <-chan logging.LogEntry
	levels        LevelSetter
	logPanelOpen  bool
	logReady      bool
	logViewport   viewport.Model
	logs          []logging.LogEntry
	logAutoScroll bool
}

// NewModel creates the demo for cfg. logs may be nil.
func NewModel(cfg config.Config, logs logging.LoggerProvider) Model {
	th := theme.New(cfg.Theme)

	pages := make(map[string]*pageView, len(demoPages))
	for _, p := range demoPages {
		pages[p.id] = newPageView(p, th)
	}
	selection := tabs.NewState(demoPages[0])

	label := func(p page, _ bool) string { return p.title }
	content := func(p page) toolbar.View { return pages[p.id] }

	opts := append(cfg.ToolbarOptions(),
		toolbar.WithKeyboardView(keyboardView{theme: th}),
		toolbar.WithLogger(scoped(logs, "toolbar")),
	)
	tm := tabs.New(demoPages, selection, tabs.DefaultBar(label, th.Tabs()), content, opts...).
		WithLogger(scoped(logs, "tabs"))

	s := spinner.New()
	s.Spinner = spinner.MiniDot
	s.Style = th.AccentStyle()

	return Model{
		cfg:           cfg,
		theme:         th,
		logger:        scoped(logs, "app"),
		selection:     selection,
		pages:         pages,
		tabs:          tm,
		keys:          defaultKeyMap(),
		help:          help.New(),
		statusSpinner: s,
		now:           time.Now,
		logAutoScroll: true,
	}
}

func scoped(logs logging.LoggerProvider, scope string) *logging.ScopedLogger {
	if logs == nil {
		return logging.NopLogger()
	}
	return logs.For(scope)
}

// WithLogEntries streams entries into the log panel.
func (m Model) WithLogEntries(entries <-chan logging.LogEntry) Model {
	m.logEntries = entries
	return m
}

// WithLevelSetter lets config reloads change the log level.
func (m Model) WithLevelSetter(l LevelSetter) Model {
	m.levels = l
	return m
}

// Init returns the initial command to run.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.tabs.Init(),
		m.consumeLogEntries(),
	)
}

// consumeLogEntries waits for the next log entry and hands over whatever
// else is already buffered.
func (m Model) consumeLogEntries() tea.Cmd {
	ch := m.logEntries
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		entry, ok := <-ch
		if !ok {
			return nil
		}
		entries := []logging.LogEntry{entry}
		for len(entries) < maxLogEntries {
			select {
			case e, ok := <-ch:
				if !ok {
					return logEntriesMsg{entries: entries}
				}
				entries = append(entries, e)
			default:
				return logEntriesMsg{entries: entries}
			}
		}
		return logEntriesMsg{entries: entries}
	}
}

func (m *Model) addLogEntry(entry logging.LogEntry) {
	m.logs = append(m.logs, entry)
	if over := len(m.logs) - maxLogEntries; over > 0 {
		m.logs = m.logs[over:]
	}
}

// currentPage returns the view of the selected tab.
func (m Model) currentPage() *pageView {
	return m.pages[m.selection.Get().id]
}

// Selected returns the id of the selected tab.
func (m Model) Selected() string {
	return m.selection.Get().id
}

// Container returns the toolbar container behind the tabs.
func (m Model) Container() toolbar.Model {
	return m.tabs.Container()
}

// KeyboardShown reports whether the simulated keyboard is up.
func (m Model) KeyboardShown() bool {
	return m.keyboardShown
}

// Status returns the status bar message.
func (m Model) Status() string {
	return m.statusMessage
}
