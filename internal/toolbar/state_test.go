package toolbar

import (
	"testing"

	"tabsview/internal/geometry"
	"tabsview/internal/logging"
)

func TestLayoutState_Phases(t *testing.T) {
	s := NewLayoutState()
	if s.Phase() != Uninitialized {
		t.Fatalf("Phase() = %v, want uninitialized", s.Phase())
	}

	if animate := s.SetContentFrame(geometry.Rect{Width: 100, Height: 50}); animate {
		t.Error("first content frame should not animate")
	}
	if s.Phase() != PartiallyMeasured {
		t.Errorf("Phase() = %v, want partially-measured", s.Phase())
	}
	if !s.Inset().IsZero() {
		t.Errorf("Inset() = %v, want zero with one frame", s.Inset())
	}

	if animate := s.SetBarFrame(geometry.Rect{Y: 30, Width: 100, Height: 50}); animate {
		t.Error("first bar frame should not animate")
	}
	if s.Phase() != Measured {
		t.Errorf("Phase() = %v, want measured", s.Phase())
	}
	if want := (geometry.Size{Width: 100, Height: 20}); s.Inset() != want {
		t.Errorf("Inset() = %v, want %v", s.Inset(), want)
	}

	if animate := s.SetBarFrame(geometry.Rect{Y: 40, Width: 100, Height: 50}); !animate {
		t.Error("second bar frame should animate")
	}
	if want := (geometry.Size{Width: 100, Height: 10}); s.Inset() != want {
		t.Errorf("Inset() = %v, want %v", s.Inset(), want)
	}
}

func TestLayoutState_BarFirst(t *testing.T) {
	s := NewLayoutState()
	s.SetBarFrame(geometry.Rect{Y: 20, Width: 10, Height: 4})
	if s.Phase() != PartiallyMeasured {
		t.Errorf("Phase() = %v, want partially-measured", s.Phase())
	}
	if _, ok := s.ContentFrame(); ok {
		t.Error("ContentFrame() should be absent")
	}
	if r, ok := s.BarFrame(); !ok || r.Y != 20 {
		t.Errorf("BarFrame() = %v, %v", r, ok)
	}
}

func TestPhase_String(t *testing.T) {
	for phase, want := range map[Phase]string{
		Uninitialized:     "uninitialized",
		PartiallyMeasured: "partially-measured",
		Measured:          "measured",
	} {
		if got := phase.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", phase, got, want)
		}
	}
}

func TestReconciler_OrderIndependent(t *testing.T) {
	content := geometry.Geometry{Frame: geometry.Rect{Width: 100, Height: 50}}
	bar := geometry.Geometry{Frame: geometry.Rect{Y: 30, Width: 100, Height: 50}}

	a := newReconciler(logging.NopLogger())
	a.begin()
	a.content.Observe(content)
	a.bar.Observe(bar)

	b := newReconciler(logging.NopLogger())
	b.begin()
	b.bar.Observe(bar)
	b.content.Observe(content)

	if a.state.Inset() != b.state.Inset() {
		t.Errorf("inset depends on delivery order: %v vs %v", a.state.Inset(), b.state.Inset())
	}
	if a.state.Phase() != Measured || b.state.Phase() != Measured {
		t.Error("both reconcilers should be measured")
	}
}

func TestReconciler_AnimatesOnlyWhenEverySlotWasKnown(t *testing.T) {
	rc := newReconciler(logging.NopLogger())
	content := geometry.Geometry{Frame: geometry.Rect{Width: 80, Height: 24}}
	bar := geometry.Geometry{Frame: geometry.Rect{Y: 23, Width: 80, Height: 1}}

	changed, animate := rc.observe(content, bar)
	if !changed || animate {
		t.Errorf("first pass: changed=%v animate=%v, want true false", changed, animate)
	}

	changed, animate = rc.observe(content, bar)
	if changed {
		t.Error("unchanged pass should report no change")
	}

	bar.Frame.Y = 22
	bar.Frame.Height = 2
	changed, animate = rc.observe(content, bar)
	if !changed || !animate {
		t.Errorf("bar change: changed=%v animate=%v, want true true", changed, animate)
	}
}
