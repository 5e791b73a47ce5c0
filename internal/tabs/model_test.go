package tabs

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"tabsview/internal/logging"
	"tabsview/internal/toolbar"
)

type color string

func (c color) ID() string { return string(c) }

const (
	red   color = "red"
	green color = "green"
	blue  color = "blue"
)

var allColors = []color{red, green, blue}

// recorder builds content views and remembers which tabs it was asked for.
type recorder struct {
	calls []color
}

func (r *recorder) build(c color) toolbar.View {
	r.calls = append(r.calls, c)
	return toolbar.Text("page " + c.ID())
}

func (r *recorder) reset() { r.calls = nil }

func newColorTabs(t *testing.T, sel Binding[color], rec *recorder, opts ...toolbar.Option) Model[color] {
	t.Helper()
	opts = append([]toolbar.Option{toolbar.WithAnimation(nil)}, opts...)
	m := New(allColors, sel, DefaultBar(plainLabel, plainStyles()), rec.build, opts...)
	m, _ = m.Update(tea.WindowSizeMsg{Width: 30, Height: 10})
	return m
}

func TestModel_PressingBarItemSwitchesContent(t *testing.T) {
	sel := NewState(red)
	rec := &recorder{}
	m := newColorTabs(t, sel, rec)

	if !strings.Contains(m.View(), "page red") {
		t.Fatalf("initial view should show red:\n%s", m.View())
	}

	// Click the third item on the bottom bar's item row.
	rec.reset()
	m, cmd := m.Update(tea.MouseMsg{X: 25, Y: 9, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if sel.Get() != blue {
		t.Fatalf("selection = %v, want blue", sel.Get())
	}
	if cmd == nil {
		t.Error("selection change should produce a SelectionChangedMsg command")
	}

	rec.reset()
	view := m.View()
	if !strings.Contains(view, "page blue") {
		t.Errorf("view should show blue:\n%s", view)
	}
	for _, c := range rec.calls {
		if c != blue {
			t.Errorf("content builder invoked with %v after selecting blue", c)
		}
	}
	if len(rec.calls) == 0 {
		t.Error("content builder was not invoked")
	}
}

func TestModel_BuildsOnlySelectedContent(t *testing.T) {
	sel := NewState(green)
	rec := &recorder{}
	m := newColorTabs(t, sel, rec)
	_ = m.View()

	for _, c := range rec.calls {
		if c != green {
			t.Errorf("content builder invoked with %v, only green is selected", c)
		}
	}
}

func TestModel_KeyboardShortcuts(t *testing.T) {
	tests := []struct {
		name  string
		start color
		msg   tea.KeyMsg
		want  color
	}{
		{"next", red, tea.KeyMsg{Type: tea.KeyCtrlRight}, green},
		{"next wraps", blue, tea.KeyMsg{Type: tea.KeyCtrlRight}, red},
		{"prev wraps", red, tea.KeyMsg{Type: tea.KeyCtrlLeft}, blue},
		{"jump", red, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'3'}, Alt: true}, blue},
		{"jump out of range", green, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'9'}, Alt: true}, green},
		{"plain digit ignored", red, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'2'}}, red},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel := NewState(tt.start)
			m := newColorTabs(t, sel, &recorder{})
			m, _ = m.Update(tt.msg)
			if sel.Get() != tt.want {
				t.Errorf("selection = %v, want %v", sel.Get(), tt.want)
			}
			if m.Selected() != tt.want {
				t.Errorf("Selected() = %v, want %v", m.Selected(), tt.want)
			}
		})
	}
}

func TestModel_SelectionChangedMsg(t *testing.T) {
	sel := NewState(red)
	m := newColorTabs(t, sel, &recorder{})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlRight})
	if cmd == nil {
		t.Fatal("expected a command")
	}

	found := false
	for _, msg := range collect(cmd) {
		if changed, ok := msg.(SelectionChangedMsg[color]); ok {
			found = true
			if changed.From != red || changed.To != green {
				t.Errorf("SelectionChangedMsg = %+v, want red -> green", changed)
			}
		}
	}
	if !found {
		t.Error("no SelectionChangedMsg emitted")
	}
}

func TestModel_ExternalBinding(t *testing.T) {
	// The selection lives outside the container, e.g. in a parent model.
	current := blue
	var sets []color
	sel := NewBinding(func() color { return current }, func(c color) {
		sets = append(sets, c)
		current = c
	})
	m := newColorTabs(t, sel, &recorder{})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlLeft})
	if current != green || len(sets) != 1 {
		t.Errorf("current = %v, sets = %v; want a single Set(green)", current, sets)
	}
	_ = m
}

func TestModel_TopPositionReservesTopInset(t *testing.T) {
	sel := NewState(red)
	m := newColorTabs(t, sel, &recorder{}, toolbar.WithPosition(toolbar.Top))

	lines := strings.Split(m.View(), "\n")
	if !strings.Contains(lines[0], "*red") {
		t.Errorf("first line = %q, want the bar items", lines[0])
	}
	if lines[1] != strings.Repeat("─", 30) {
		t.Errorf("second line = %q, want the divider", lines[1])
	}
	if !strings.HasPrefix(lines[2], "page red") {
		t.Errorf("third line = %q, want content below the bar", lines[2])
	}
	if got := m.Container().Inset().Height; got != 2 {
		t.Errorf("inset height = %d, want 2", got)
	}
}

func TestModel_SetPositionMovesBar(t *testing.T) {
	sel := NewState(red)
	m := newColorTabs(t, sel, &recorder{})

	m, _ = m.SetPosition(toolbar.Top)
	frame, ok := m.Container().BarFrame()
	if !ok || frame.Y != 0 {
		t.Errorf("BarFrame() = %v, %v; want bar at the top", frame, ok)
	}
}

func TestModel_LogsSelection(t *testing.T) {
	lm := logging.NewTestLogManager(50)
	defer func() { _ = lm.Close() }()

	sel := NewState(red)
	m := newColorTabs(t, sel, &recorder{}).WithLogger(lm.For("tabs"))
	_, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlRight})

	found := false
	for _, e := range lm.Drain() {
		if e.Message == "tab selected" && e.Fields["to"] == "green" {
			found = true
		}
	}
	if !found {
		t.Error("expected a 'tab selected' log entry")
	}
}

// collect runs cmd and flattens batches.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}
