package state

import "errors"

// Derived is a cell whose value is recomputed from other cells. It embeds a
// State, so subscribers attach to it the same way they attach to any cell
// and fire only when the derived value actually changes.
type Derived[T comparable] struct {
	*State[T]
	compute func() T
	unsubs  []func()
}

// Derive builds a cell whose value tracks compute() over the given sources.
// The source list must be non-empty: compute is expected to read only from
// the listed sources. compute runs once to seed the initial value, then once
// per source notification — sequential writes to several sources produce one
// re-derivation each, with no batching.
func Derive[T comparable](compute func() T, from ...Source) *Derived[T] {
	d := &Derived[T]{
		State:   New(compute()),
		compute: compute,
	}
	for _, src := range from {
		d.unsubs = append(d.unsubs, src.depend(d.refresh))
	}
	return d
}

func (d *Derived[T]) refresh() {
	d.State.Set(d.compute())
}

// Put implements Cell and always fails: a derived value changes only through
// its sources.
func (d *Derived[T]) Put(v any) error {
	return errors.New("state: derived cell is read-only")
}

// Dispose detaches the cell from all of its sources. The cell keeps its last
// value and existing subscribers, but no longer recomputes. Calling Dispose
// is optional; an undisposed Derived lives as long as its sources do.
func (d *Derived[T]) Dispose() {
	for _, unsub := range d.unsubs {
		unsub()
	}
	d.unsubs = nil
}
