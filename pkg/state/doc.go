// Package state provides the reactive cells the rest of the library is built
// on: State, ListState and Derived.
//
// # Cells
//
// State holds a single value and notifies subscribers when it changes:
//
//	count := state.New(0)
//	unsub := count.Subscribe(func(v int) { fmt.Println("count:", v) })
//	count.Set(1) // prints "count: 1"
//	count.Set(1) // no-op, equal value
//	unsub()
//
// Set compares values with ==. Pointer-typed cells therefore compare by
// reference; value-typed cells compare structurally. Subscribe does not
// replay the current value; read Value() when the current value is needed
// at registration time.
//
// # Collections
//
// ListState tracks a set of uniquely identified items with separate
// addition and removal notification channels:
//
//	todos := state.NewList[*Todo]()
//	todos.OnAdd(func(t *Todo) { ... })
//	todos.OnRemove(t, func(t *Todo) { ... }) // one-shot, per item
//	todos.Add(t)
//
// # Derived values
//
// Derive recomputes a value from other cells whenever any of them changes:
//
//	total := state.Derive(func() int {
//	    return a.Value() + b.Value()
//	}, a, b)
//
// Derived subscribers fire only when the derived value actually changes.
//
// # Concurrency
//
// Cells are NOT safe for concurrent use. All reads, writes and subscription
// changes must happen on a single goroutine; notification cascades run
// synchronously within the triggering call.
package state
