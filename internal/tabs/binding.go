// pattern: Functional Core

package tabs

// Binding is a read-write handle on a value owned elsewhere. The tab
// container never stores the selection itself; it only goes through the
// binding.
type Binding[T any] interface {
	Get() T
	Set(T)
}

type funcBinding[T any] struct {
	get func() T
	set func(T)
}

func (b funcBinding[T]) Get() T  { return b.get() }
func (b funcBinding[T]) Set(v T) { b.set(v) }

// NewBinding adapts a getter and setter to Binding.
func NewBinding[T any](get func() T, set func(T)) Binding[T] {
	return funcBinding[T]{get: get, set: set}
}

// State is a simple owned value that implements Binding.
type State[T comparable] struct {
	value    T
	onChange []func(from, to T)
}

// NewState returns a State holding initial.
func NewState[T comparable](initial T) *State[T] {
	return &State[T]{value: initial}
}

// Get returns the current value.
func (s *State[T]) Get() T {
	return s.value
}

// Set stores v and notifies observers when it differs from the current
// value.
func (s *State[T]) Set(v T) {
	if v == s.value {
		return
	}
	from := s.value
	s.value = v
	for _, fn := range s.onChange {
		fn(from, v)
	}
}

// OnChange registers fn to run after every change.
func (s *State[T]) OnChange(fn func(from, to T)) {
	s.onChange = append(s.onChange, fn)
}
