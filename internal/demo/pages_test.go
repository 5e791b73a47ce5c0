package demo

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tabsview/internal/geometry"
	"tabsview/internal/theme"
	"tabsview/internal/toolbar"
)

func placedPage(t *testing.T, p page, frame geometry.Rect) *pageView {
	t.Helper()
	v := newPageView(p, theme.New("mocha"))
	env := toolbar.NewEnv(frame, toolbar.Bottom, toolbar.InsetReader{})
	v.Update(toolbar.LayoutMsg{Frame: frame, Env: env})
	return v
}

func TestPageView_PlaceSizesBody(t *testing.T) {
	frame := geometry.Rect{X: 0, Y: 1, Width: 40, Height: 16}
	v := placedPage(t, demoPages[1], frame)

	if v.body.Width != 40 || v.body.Height != 16-pageTitleHeight-inputHeight {
		t.Errorf("body = %dx%d, want 40x%d", v.body.Width, v.body.Height, 16-pageTitleHeight-inputHeight)
	}
	if v.frame != frame {
		t.Errorf("frame = %v, want %v", v.frame, frame)
	}

	out := v.Render(toolbar.Env{}, 40, 16)
	for _, want := range []string{"Green", "This is the Green tab.", "frame      (0,1 40x16)", "bar        bottom"} {
		if !strings.Contains(out, want) {
			t.Errorf("Render() missing %q:\n%s", want, out)
		}
	}
	if h := lipgloss.Height(out); h != 16 {
		t.Errorf("Render() height = %d, want 16", h)
	}
}

func TestPageView_ScrollsWhenBlurred(t *testing.T) {
	v := placedPage(t, demoPages[0], geometry.Rect{Width: 40, Height: 12})

	v.Update(tea.KeyMsg{Type: tea.KeyPgDown})
	if v.body.YOffset == 0 {
		t.Error("pgdown should scroll the body")
	}
	if v.Value() != "" {
		t.Error("blurred text field should not take input")
	}
}

func TestPageView_TypesWhenFocused(t *testing.T) {
	v := placedPage(t, demoPages[0], geometry.Rect{Width: 40, Height: 12})

	v.Focus()
	if !v.Focused() {
		t.Fatal("Focus() should focus the text field")
	}
	v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("abc")})
	if v.Value() != "abc" {
		t.Errorf("Value() = %q, want abc", v.Value())
	}
	if v.body.YOffset != 0 {
		t.Error("typing should not scroll the body")
	}

	v.Blur()
	if v.Focused() {
		t.Error("Blur() should release the text field")
	}
}

func TestKeyboardView_FillsRegion(t *testing.T) {
	k := keyboardView{theme: theme.New("mocha")}

	tests := []struct {
		name          string
		width, height int
		wantSpace     bool
	}{
		{"full", 60, 8, true},
		{"clipped rows", 60, 2, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := k.Render(toolbar.Env{}, tt.width, tt.height)
			if h := lipgloss.Height(out); h != tt.height {
				t.Errorf("height = %d, want %d", h, tt.height)
			}
			if w := lipgloss.Width(out); w != tt.width {
				t.Errorf("width = %d, want %d", w, tt.width)
			}
			if got := strings.Contains(out, "space"); got != tt.wantSpace {
				t.Errorf("contains space key = %v, want %v", got, tt.wantSpace)
			}
			if !strings.Contains(out, "q") {
				t.Error("first row should be drawn")
			}
		})
	}

	if out := k.Render(toolbar.Env{}, 0, 4); out != "" {
		t.Errorf("zero width should render nothing, got %q", out)
	}
}
