package state

import "fmt"

// subscriber pairs a callback with its registration slot so that
// unsubscribing one callback cannot disturb the delivery order of the rest.
type subscriber[T any] struct {
	id int
	fn func(T)
}

// State holds a value and notifies subscribers when it changes.
//
// State is NOT safe for concurrent use; all access must happen on one
// goroutine. Subscriber callbacks run synchronously inside Set, in
// registration order. A callback that panics aborts the remainder of the
// notification pass.
type State[T comparable] struct {
	value     T
	subs      []subscriber[T]
	nextID    int
	notifying bool
}

// New creates a cell holding the given initial value.
func New[T comparable](initial T) *State[T] {
	return &State[T]{value: initial}
}

// Value returns the current value. It has no side effects.
func (s *State[T]) Value() T { return s.value }

// Set replaces the value and notifies every subscriber with it, in
// registration order. Setting a value equal to the current one is a no-op.
//
// A Set issued against a cell that is currently notifying is dropped. This
// turns cyclic write-backs into no-ops instead of unbounded recursion.
func (s *State[T]) Set(v T) {
	if s.notifying {
		return
	}
	if v == s.value {
		return
	}
	s.value = v
	s.notifying = true
	defer func() { s.notifying = false }()
	for _, sub := range append([]subscriber[T](nil), s.subs...) {
		sub.fn(v)
	}
}

// Subscribe registers fn to be invoked on every future change. It does not
// replay the current value. The returned function removes the subscription;
// ignoring it keeps the subscription for the life of the cell.
func (s *State[T]) Subscribe(fn func(T)) (unsub func()) {
	id := s.nextID
	s.nextID++
	s.subs = append(s.subs, subscriber[T]{id: id, fn: fn})
	return func() {
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

// Cell is the untyped view of a cell, used where cells arrive through an
// any-valued attribute map. *State[T] and *Derived[T] implement it.
type Cell interface {
	// Get returns the current value.
	Get() any
	// Put writes a value back into the cell. It fails if the value's
	// dynamic type does not match the cell, or the cell is read-only.
	Put(v any) error
	// Watch registers fn for every future change and returns an
	// unsubscribe function.
	Watch(fn func(any)) (unsub func())
}

// Get implements Cell.
func (s *State[T]) Get() any { return s.value }

// Put implements Cell. The value must be assertable to T.
func (s *State[T]) Put(v any) error {
	t, ok := v.(T)
	if !ok {
		return fmt.Errorf("state: cannot put %T into cell of %T", v, s.value)
	}
	s.Set(t)
	return nil
}

// Watch implements Cell.
func (s *State[T]) Watch(fn func(any)) (unsub func()) {
	return s.Subscribe(func(v T) { fn(v) })
}

// Source is anything a Derived cell can depend on. *State[T] and
// *ListState[T] are sources.
type Source interface {
	depend(fn func()) (unsub func())
}

func (s *State[T]) depend(fn func()) func() {
	return s.Subscribe(func(T) { fn() })
}
