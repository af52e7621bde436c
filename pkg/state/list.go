package state

import "github.com/ripple-ui/ripple/pkg/identity"

// removalSlot boxes a removal handler so an unsubscribe can tell whether the
// slot it registered is still the one in the map.
type removalSlot[T any] struct {
	fn func(T)
}

// ListState tracks a set of uniquely identified items with fine-grained
// addition and removal notification channels. Membership is keyed by
// Identity(); insertion order is preserved so that rendered child order is
// stable and predictable.
//
// The addition and removal channels are the canonical "children changed"
// signal; Add and Remove do not fire any cell-level value notification.
//
// Like State, a ListState is NOT safe for concurrent use.
type ListState[T identity.Identifiable] struct {
	items    []T
	members  map[identity.ID]struct{}
	addSubs  []subscriber[T]
	removals map[identity.ID]*removalSlot[T]
	deps     []subscriber[struct{}]
	nextID   int
}

// NewList creates a collection seeded with the given items, in order.
// Addition handlers cannot exist yet, so seeding does not notify.
func NewList[T identity.Identifiable](items ...T) *ListState[T] {
	l := &ListState[T]{
		members:  make(map[identity.ID]struct{}),
		removals: make(map[identity.ID]*removalSlot[T]),
	}
	l.Add(items...)
	return l
}

// Items returns a snapshot of the current members in insertion order.
func (l *ListState[T]) Items() []T {
	return append([]T(nil), l.items...)
}

// Len returns the number of members.
func (l *ListState[T]) Len() int { return len(l.items) }

// Contains reports whether an item with the same identity is a member.
func (l *ListState[T]) Contains(item T) bool {
	_, ok := l.members[item.Identity()]
	return ok
}

// Add inserts items, skipping any whose identity is already a member. Every
// addition handler fires once per inserted item, in registration order.
func (l *ListState[T]) Add(items ...T) {
	for _, item := range items {
		id := item.Identity()
		if _, ok := l.members[id]; ok {
			continue
		}
		l.members[id] = struct{}{}
		l.items = append(l.items, item)
		for _, sub := range append([]subscriber[T](nil), l.addSubs...) {
			sub.fn(item)
		}
		l.changed()
	}
}

// Remove erases items from the set. Per item: if present, it is erased;
// either way, a pending removal handler for its identity fires once with the
// item and is discarded. Removing an absent item is otherwise a no-op —
// callers may register removal handlers before the corresponding add.
func (l *ListState[T]) Remove(items ...T) {
	for _, item := range items {
		id := item.Identity()
		if _, ok := l.members[id]; ok {
			delete(l.members, id)
			for i := range l.items {
				if l.items[i].Identity() == id {
					l.items = append(l.items[:i], l.items[i+1:]...)
					break
				}
			}
			l.changed()
		}
		if slot, ok := l.removals[id]; ok {
			delete(l.removals, id)
			slot.fn(item)
		}
	}
}

// OnAdd registers a persistent handler fired for every item added after
// registration. It is not retroactive; iterate Items() first when existing
// members matter. Returns an unsubscribe function.
func (l *ListState[T]) OnAdd(fn func(T)) (unsub func()) {
	id := l.nextID
	l.nextID++
	l.addSubs = append(l.addSubs, subscriber[T]{id: id, fn: fn})
	return func() {
		for i, sub := range l.addSubs {
			if sub.id == id {
				l.addSubs = append(l.addSubs[:i], l.addSubs[i+1:]...)
				return
			}
		}
	}
}

// OnRemove registers a one-shot handler tied to the item's identity. Only
// the most recently registered handler per identity is retained; it fires
// once on the item's first removal and is then discarded.
func (l *ListState[T]) OnRemove(item T, fn func(T)) (unsub func()) {
	return l.setRemoval(item.Identity(), fn)
}

func (l *ListState[T]) setRemoval(id identity.ID, fn func(T)) func() {
	slot := &removalSlot[T]{fn: fn}
	l.removals[id] = slot
	return func() {
		if l.removals[id] == slot {
			delete(l.removals, id)
		}
	}
}

func (l *ListState[T]) changed() {
	for _, dep := range append([]subscriber[struct{}](nil), l.deps...) {
		dep.fn(struct{}{})
	}
}

// depend implements Source: a derived cell over a ListState recomputes on
// every membership change.
func (l *ListState[T]) depend(fn func()) func() {
	id := l.nextID
	l.nextID++
	l.deps = append(l.deps, subscriber[struct{}]{id: id, fn: func(struct{}) { fn() }})
	return func() {
		for i, dep := range l.deps {
			if dep.id == id {
				l.deps = append(l.deps[:i], l.deps[i+1:]...)
				return
			}
		}
	}
}

// Collection is the untyped view of a ListState, used where collections
// arrive through an any-valued attribute map.
type Collection interface {
	// EachItem calls fn for every current member in insertion order.
	EachItem(fn func(identity.Identifiable))
	// OnAddItem registers a persistent addition handler.
	OnAddItem(fn func(identity.Identifiable)) (unsub func())
	// OnRemoveItem registers the one-shot removal handler for an identity,
	// replacing any previous one.
	OnRemoveItem(id identity.ID, fn func(identity.Identifiable)) (unsub func())
}

// EachItem implements Collection.
func (l *ListState[T]) EachItem(fn func(identity.Identifiable)) {
	for _, item := range l.items {
		fn(item)
	}
}

// OnAddItem implements Collection.
func (l *ListState[T]) OnAddItem(fn func(identity.Identifiable)) (unsub func()) {
	return l.OnAdd(func(item T) { fn(item) })
}

// OnRemoveItem implements Collection.
func (l *ListState[T]) OnRemoveItem(id identity.ID, fn func(identity.Identifiable)) (unsub func()) {
	return l.setRemoval(id, func(item T) { fn(item) })
}
