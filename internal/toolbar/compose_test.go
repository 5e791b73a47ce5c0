package toolbar

import (
	"strings"
	"testing"

	"tabsview/internal/geometry"
)

func TestFitBlock(t *testing.T) {
	tests := []struct {
		name string
		in   string
		w, h int
		want string
	}{
		{"pads short lines and rows", "ab", 3, 2, "ab \n   "},
		{"clips long lines and rows", "abcdef\nxyz\nmore", 4, 2, "abcd\nxyz "},
		{"zero box", "abc", 0, 3, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := fitBlock(tt.in, tt.w, tt.h); got != tt.want {
				t.Errorf("fitBlock() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStack_SkipsEmptyBlocks(t *testing.T) {
	if got := stack("", "a", "", "b"); got != "a\nb" {
		t.Errorf("stack() = %q, want %q", got, "a\nb")
	}
}

func TestOverlayAt(t *testing.T) {
	base := "....\n....\n...."
	got := overlayAt(base, "XY", 1, 1, 4)
	want := "....\n.XY.\n...."
	if got != want {
		t.Errorf("overlayAt() = %q, want %q", got, want)
	}

	clipped := overlayAt(base, "XYZW", 2, 2, 4)
	if lines := strings.Split(clipped, "\n"); lines[2] != "..XY" {
		t.Errorf("overlay past the right edge = %q, want %q", lines[2], "..XY")
	}

	if got := overlayAt(base, "XY", 0, 5, 4); got != base {
		t.Errorf("overlay below the base should be ignored, got %q", got)
	}
}

func TestMeasure(t *testing.T) {
	if w, h := measure(""); w != 0 || h != 0 {
		t.Errorf("measure(\"\") = %d, %d", w, h)
	}
	if w, h := measure("ab\nabcd\n"); w != 4 || h != 3 {
		t.Errorf("measure() = %d, %d; want 4, 3", w, h)
	}
	if w, h := measure("\x1b[1mbold\x1b[0m\n├─┤"); w != 4 || h != 2 {
		t.Errorf("measure(styled) = %d, %d; want 4, 2", w, h)
	}
}

func TestSafeAreaInset_ReservesAtEdge(t *testing.T) {
	b := &Broadcaster{}
	b.Publish(geometry.Size{Width: 6, Height: 2})

	body := ViewFunc(func(env Env, width, height int) string {
		return strings.Repeat("x", width)
	})
	v := SafeAreaInset(body)

	frame := geometry.Rect{Width: 6, Height: 4}
	bottom := v.Render(NewEnv(frame, Bottom, b.Reader()), 6, 4)
	if want := "xxxxxx\n      \n      \n      "; bottom != want {
		t.Errorf("bottom render = %q, want %q", bottom, want)
	}

	top := v.Render(NewEnv(frame, Top, b.Reader()), 6, 4)
	if want := "      \n      \nxxxxxx\n      "; top != want {
		t.Errorf("top render = %q, want %q", top, want)
	}
}

func TestBroadcaster(t *testing.T) {
	var zero InsetReader
	if !zero.Inset().IsZero() {
		t.Error("zero InsetReader should read {0,0}")
	}

	b := &Broadcaster{}
	r := b.Reader()
	if !r.Inset().IsZero() {
		t.Error("unwritten broadcaster should read {0,0}")
	}
	if !b.Publish(geometry.Size{Width: 1, Height: 1}) {
		t.Error("Publish() of a new value should report a change")
	}
	if b.Publish(geometry.Size{Width: 1, Height: 1}) {
		t.Error("Publish() of the same value should report no change")
	}
	if r.Inset() != (geometry.Size{Width: 1, Height: 1}) {
		t.Errorf("reader sees %v", r.Inset())
	}

	other := &Broadcaster{}
	if !other.Reader().Inset().IsZero() {
		t.Error("broadcasters must not share state")
	}
}

func TestLazy_ResolvesOnEveryRender(t *testing.T) {
	n := 0
	v := Lazy(func(Env) View {
		n++
		return Text("x")
	})
	v.Render(Env{}, 1, 1)
	v.Render(Env{}, 1, 1)
	if n != 2 {
		t.Errorf("resolver ran %d times, want 2", n)
	}
}
