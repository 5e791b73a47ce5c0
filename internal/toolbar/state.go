// pattern: Functional Core

package toolbar

import "tabsview/internal/geometry"

// Phase describes how much of the layout has been measured.
type Phase int

const (
	// Uninitialized: neither frame has been reported.
	Uninitialized Phase = iota
	// PartiallyMeasured: exactly one frame is known.
	PartiallyMeasured
	// Measured: both frames are known.
	Measured
)

func (p Phase) String() string {
	switch p {
	case PartiallyMeasured:
		return "partially-measured"
	case Measured:
		return "measured"
	default:
		return "uninitialized"
	}
}

// LayoutState is the measured geometry of one container. The inset is
// always derived from the two frames and cannot be set directly.
type LayoutState struct {
	contentFrame *geometry.Rect
	barFrame     *geometry.Rect
	inset        geometry.Size
}

// NewLayoutState returns an unmeasured state.
func NewLayoutState() *LayoutState {
	return &LayoutState{}
}

// SetContentFrame records the content frame. It returns true when the
// slot was already measured, meaning the change may animate.
func (s *LayoutState) SetContentFrame(r geometry.Rect) bool {
	animate := s.contentFrame != nil
	s.contentFrame = &r
	s.recompute()
	return animate
}

// SetBarFrame records the bar frame. It returns true when the slot was
// already measured, meaning the change may animate.
func (s *LayoutState) SetBarFrame(r geometry.Rect) bool {
	animate := s.barFrame != nil
	s.barFrame = &r
	s.recompute()
	return animate
}

func (s *LayoutState) recompute() {
	s.inset = geometry.IntersectionSize(s.contentFrame, s.barFrame)
}

// Inset is the overlap of the content and bar frames.
func (s *LayoutState) Inset() geometry.Size {
	return s.inset
}

// ContentFrame returns the last content frame, if any.
func (s *LayoutState) ContentFrame() (geometry.Rect, bool) {
	if s.contentFrame == nil {
		return geometry.Rect{}, false
	}
	return *s.contentFrame, true
}

// BarFrame returns the last bar frame, if any.
func (s *LayoutState) BarFrame() (geometry.Rect, bool) {
	if s.barFrame == nil {
		return geometry.Rect{}, false
	}
	return *s.barFrame, true
}

// Phase reports how many slots are measured.
func (s *LayoutState) Phase() Phase {
	switch {
	case s.contentFrame != nil && s.barFrame != nil:
		return Measured
	case s.contentFrame != nil || s.barFrame != nil:
		return PartiallyMeasured
	default:
		return Uninitialized
	}
}
