// pattern: Imperative Shell

package tabs

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"tabsview/internal/logging"
	"tabsview/internal/toolbar"
)

// Tab is a tab identity: comparable by value with a stable key.
type Tab interface {
	comparable
	ID() string
}

// BarBuilder builds the tab bar for a position, the tabs and the selection.
type BarBuilder[T Tab] func(position toolbar.Position, tabs []T, selection Binding[T]) toolbar.View

// ContentBuilder builds the content of one tab.
type ContentBuilder[T Tab] func(tab T) toolbar.View

// SelectionChangedMsg is emitted after the selection moved to another tab.
type SelectionChangedMsg[T Tab] struct {
	From T
	To   T
}

// Model is a toolbar container whose bar switches between tabs. Only the
// selected tab's content is built, on every render.
type Model[T Tab] struct {
	tabs      []T
	selection Binding[T]
	container toolbar.Model
	keys      KeyMap
	logger    *logging.ScopedLogger
}

// New creates a tab container. Geometry options are passed to the
// underlying toolbar container.
func New[T Tab](tabs []T, selection Binding[T], bar BarBuilder[T], content ContentBuilder[T], opts ...toolbar.Option) Model[T] {
	tabList := append([]T(nil), tabs...)

	contentView := toolbar.Lazy(func(toolbar.Env) toolbar.View {
		return content(selection.Get())
	})
	barView := toolbar.Lazy(func(env toolbar.Env) toolbar.View {
		return bar(env.Position(), tabList, selection)
	})

	return Model[T]{
		tabs:      tabList,
		selection: selection,
		container: toolbar.New(contentView, barView, opts...),
		keys:      DefaultKeyMap(),
		logger:    logging.NopLogger(),
	}
}

// WithKeys replaces the tab shortcuts.
func (m Model[T]) WithKeys(k KeyMap) Model[T] {
	m.keys = k
	return m
}

// WithLogger sets the logger for selection changes.
func (m Model[T]) WithLogger(l *logging.ScopedLogger) Model[T] {
	if l != nil {
		m.logger = l
	}
	return m
}

// Init implements tea.Model.
func (m Model[T]) Init() tea.Cmd {
	return m.container.Init()
}

// Update handles the tab shortcuts and forwards everything else to the
// container. Selection changes, however they happen, are reported with a
// SelectionChangedMsg.
func (m Model[T]) Update(msg tea.Msg) (Model[T], tea.Cmd) {
	before := m.selection.Get()

	var cmd tea.Cmd
	if km, ok := msg.(tea.KeyMsg); ok && m.handleKey(km) {
		m.container, cmd = m.container.Refresh()
	} else {
		m.container, cmd = m.container.Update(msg)
	}

	after := m.selection.Get()
	if after == before {
		return m, cmd
	}
	m.logger.Info("tab selected", "from", before.ID(), "to", after.ID())
	changed := func() tea.Msg { return SelectionChangedMsg[T]{From: before, To: after} }
	return m, tea.Batch(cmd, changed)
}

// handleKey applies a tab shortcut and reports whether msg was one.
func (m Model[T]) handleKey(msg tea.KeyMsg) bool {
	switch {
	case key.Matches(msg, m.keys.Next):
		m.step(1)
	case key.Matches(msg, m.keys.Prev):
		m.step(-1)
	case key.Matches(msg, m.keys.Jump):
		i, ok := jumpIndex(msg)
		if ok && i < len(m.tabs) {
			m.Select(m.tabs[i])
		}
	default:
		return false
	}
	return true
}

func (m Model[T]) step(delta int) {
	n := len(m.tabs)
	if n == 0 {
		return
	}
	i := m.index()
	if i < 0 {
		i = 0
	} else {
		i = ((i+delta)%n + n) % n
	}
	m.Select(m.tabs[i])
}

// index returns the position of the selected tab, or -1.
func (m Model[T]) index() int {
	sel := m.selection.Get()
	for i, t := range m.tabs {
		if t == sel {
			return i
		}
	}
	return -1
}

// Select sets the selection through the binding.
func (m Model[T]) Select(tab T) {
	m.selection.Set(tab)
}

// View implements tea.Model.
func (m Model[T]) View() string {
	return m.container.View()
}

// Render lets a tab container be nested wherever a View is expected.
func (m Model[T]) Render(toolbar.Env, int, int) string {
	return m.container.View()
}

// Selected returns the selected tab.
func (m Model[T]) Selected() T { return m.selection.Get() }

// Tabs returns the tabs in bar order.
func (m Model[T]) Tabs() []T { return m.tabs }

// Keys returns the tab shortcuts.
func (m Model[T]) Keys() KeyMap { return m.keys }

// Container returns the underlying toolbar container.
func (m Model[T]) Container() toolbar.Model { return m.container }

// SetPosition moves the bar.
func (m Model[T]) SetPosition(p toolbar.Position) (Model[T], tea.Cmd) {
	var cmd tea.Cmd
	m.container, cmd = m.container.SetPosition(p)
	return m, cmd
}

// SetIgnoresKeyboard toggles keyboard avoidance for the bar.
func (m Model[T]) SetIgnoresKeyboard(ignore bool) (Model[T], tea.Cmd) {
	var cmd tea.Cmd
	m.container, cmd = m.container.SetIgnoresKeyboard(ignore)
	return m, cmd
}

// SetAnimation replaces the inset animation. nil disables it.
func (m Model[T]) SetAnimation(a *toolbar.Animation) Model[T] {
	m.container = m.container.SetAnimation(a)
	return m
}
