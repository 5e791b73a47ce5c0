// pattern: Functional Core

package geometry

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Space selects the coordinate space a frame is expressed in.
type Space int

const (
	// Global is the program's screen, origin at the top-left cell.
	Global Space = iota
	// Local is relative to the parent's top-left corner.
	Local
)

// Geometry is the raw measurement of a view after a layout pass.
type Geometry struct {
	Frame  Rect // Frame in global space
	Parent Rect // Parent frame in global space
}

// FrameIn returns the measured frame in the given coordinate space.
func (g Geometry) FrameIn(space Space) Rect {
	if space == Local {
		return g.Frame.Translate(-g.Parent.X, -g.Parent.Y)
	}
	return g.Frame
}

// Size returns the measured size.
func (g Geometry) Size() Size {
	return g.Frame.Size()
}

// GlobalFrame is the projection used by containers that track overlap.
func GlobalFrame(g Geometry) Rect {
	return g.FrameIn(Global)
}

// Codec carries a projected value across the measurement boundary.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
}

// JSONCodec is the default Codec.
type JSONCodec struct{}

func (JSONCodec) Marshal(v any) ([]byte, error)      { return json.Marshal(v) }
func (JSONCodec) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }

// Observer reports a projection of a view's geometry, firing OnChange only
// when the projected value differs from the last one it reported.
//
// Values are compared in their encoded form. A value that cannot be encoded
// or decoded is dropped: OnSkip is told why, the last reported value is left
// untouched and OnChange does not fire.
type Observer[T any] struct {
	project  func(Geometry) T
	onChange func(T)
	codec    Codec

	// OnSkip, if set, receives the reason a measurement was dropped.
	OnSkip func(error)

	last     []byte
	reported bool
}

// NewObserver creates an observer using the JSON codec.
func NewObserver[T any](project func(Geometry) T, onChange func(T)) *Observer[T] {
	return NewObserverWithCodec(project, onChange, JSONCodec{})
}

// NewObserverWithCodec creates an observer with an explicit codec.
func NewObserverWithCodec[T any](project func(Geometry) T, onChange func(T), codec Codec) *Observer[T] {
	return &Observer[T]{project: project, onChange: onChange, codec: codec}
}

// Observe feeds one measurement through the observer. It returns true if
// OnChange was invoked.
func (o *Observer[T]) Observe(g Geometry) bool {
	data, err := o.codec.Marshal(o.project(g))
	if err != nil {
		o.skip(fmt.Errorf("encode geometry: %w", err))
		return false
	}
	if o.reported && bytes.Equal(data, o.last) {
		return false
	}

	var value T
	if err := o.codec.Unmarshal(data, &value); err != nil {
		o.skip(fmt.Errorf("decode geometry: %w", err))
		return false
	}

	o.last = data
	o.reported = true
	if o.onChange != nil {
		o.onChange(value)
	}
	return true
}

// Reset forgets the last reported value so the next measurement fires.
func (o *Observer[T]) Reset() {
	o.last = nil
	o.reported = false
}

func (o *Observer[T]) skip(err error) {
	if o.OnSkip != nil {
		o.OnSkip(err)
	}
}
