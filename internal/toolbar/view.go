package toolbar

import (
	tea "github.com/charmbracelet/bubbletea"

	"tabsview/internal/geometry"
)

// View renders itself into a box of width x height cells.
//
// Content views should fill the box; the container pads or clips whatever
// comes back. Bar views return their natural height: the container
// measures the result and anchors it.
type View interface {
	Render(env Env, width, height int) string
}

// ViewFunc adapts a function to View.
type ViewFunc func(env Env, width, height int) string

func (f ViewFunc) Render(env Env, width, height int) string { return f(env, width, height) }

// Text is a static View.
type Text string

func (t Text) Render(Env, int, int) string { return string(t) }

// Updater is implemented by views that react to messages. Containers
// forward every message they do not consume.
type Updater interface {
	Update(msg tea.Msg) tea.Cmd
}

// MouseHandler is implemented by views that accept mouse input inside
// their measured frame.
type MouseHandler interface {
	HandleMouse(msg tea.MouseMsg, frame geometry.Rect) tea.Cmd
}

type lazyView struct {
	resolve func(Env) View
}

// Lazy returns a View that is resolved on every use, so the wrapped view
// can follow state such as the current selection.
func Lazy(resolve func(env Env) View) View {
	return lazyView{resolve: resolve}
}

func (l lazyView) Render(env Env, width, height int) string {
	v := resolve(l, env)
	if v == nil {
		return ""
	}
	return v.Render(env, width, height)
}

// resolve unwraps lazy views.
func resolve(v View, env Env) View {
	for {
		l, ok := v.(lazyView)
		if !ok {
			return v
		}
		v = l.resolve(env)
	}
}

func updateView(v View, env Env, msg tea.Msg) tea.Cmd {
	if u, ok := resolve(v, env).(Updater); ok {
		return u.Update(msg)
	}
	return nil
}
