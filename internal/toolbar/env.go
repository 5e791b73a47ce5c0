package toolbar

import (
	"strings"

	"tabsview/internal/geometry"
)

// Broadcaster holds the bar inset of one container. Only the owning
// container writes to it; descendants get an InsetReader through Env.
type Broadcaster struct {
	value geometry.Size
}

// Publish stores a new inset and reports whether it changed.
func (b *Broadcaster) Publish(s geometry.Size) bool {
	if b.value == s {
		return false
	}
	b.value = s
	return true
}

// Reader returns a read-only handle on the broadcast value.
func (b *Broadcaster) Reader() InsetReader {
	return InsetReader{b: b}
}

// InsetReader reads a Broadcaster. The zero value reads {0,0}.
type InsetReader struct {
	b *Broadcaster
}

// Inset returns the current inset.
func (r InsetReader) Inset() geometry.Size {
	if r.b == nil {
		return geometry.Size{}
	}
	return r.b.value
}

// Env is handed to every view rendered by a container. It is passed down
// the render chain explicitly; each container hands out its own.
type Env struct {
	frame    geometry.Rect
	position Position
	inset    InsetReader
}

// NewEnv builds an Env. Hosts rarely need this; containers build their own.
func NewEnv(frame geometry.Rect, position Position, inset InsetReader) Env {
	return Env{frame: frame, position: position, inset: inset}
}

// Frame is the global rectangle the view is rendered into.
func (e Env) Frame() geometry.Rect { return e.frame }

// Position is the bar position of the nearest container.
func (e Env) Position() Position { return e.position }

// BarInset is the inset the nearest container currently applies.
func (e Env) BarInset() geometry.Size { return e.inset.Inset() }

// WithFrame returns a copy of e for a sub-rectangle.
func (e Env) WithFrame(frame geometry.Rect) Env {
	e.frame = frame
	return e
}

// SafeAreaInset reserves the nearest container's bar inset around v.
//
// Use it for content mounted with WithReserveInset(false): the content
// paints the full frame, and the wrapped part stays clear of the bar.
func SafeAreaInset(v View) View {
	return ViewFunc(func(env Env, width, height int) string {
		edge := env.Position().Edge()
		rows := min(env.BarInset().Height, max(height, 0))
		inner := edge.Reserve(env.Frame(), rows)

		body := fitBlock(v.Render(env.WithFrame(inner), width, height-rows), width, height-rows)
		spacer := blankBlock(width, rows)
		if edge == EdgeTop {
			return stack(spacer, body)
		}
		return stack(body, spacer)
	})
}

func blankBlock(width, rows int) string {
	if rows <= 0 {
		return ""
	}
	line := strings.Repeat(" ", max(width, 0))
	lines := make([]string, rows)
	for i := range lines {
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}
