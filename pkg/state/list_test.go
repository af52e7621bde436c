package state

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ripple-ui/ripple/pkg/identity"
)

type item struct {
	id   identity.ID
	name string
}

func (i *item) Identity() identity.ID { return i.id }

func newItem(name string) *item {
	return &item{id: identity.New(), name: name}
}

func TestListState_AddMembership(t *testing.T) {
	l := NewList[*item]()
	a := newItem("a")

	var added []*item
	l.OnAdd(func(it *item) { added = append(added, it) })

	l.Add(a)

	assert.Equal(t, []*item{a}, added)
	assert.True(t, l.Contains(a))
	assert.Equal(t, 1, l.Len())
}

func TestListState_AddDuplicateIgnored(t *testing.T) {
	l := NewList[*item]()
	a := newItem("a")
	calls := 0
	l.OnAdd(func(*item) { calls++ })

	l.Add(a)
	l.Add(a)

	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, l.Len())
}

func TestListState_ItemsKeepInsertionOrder(t *testing.T) {
	a, b, c := newItem("a"), newItem("b"), newItem("c")
	l := NewList(a, b)
	l.Add(c)

	assert.Equal(t, []*item{a, b, c}, l.Items())

	l.Remove(b)
	assert.Equal(t, []*item{a, c}, l.Items())
}

func TestListState_AdditionHandlersFireInOrder(t *testing.T) {
	l := NewList[*item]()
	var order []string
	l.OnAdd(func(*item) { order = append(order, "first") })
	l.OnAdd(func(*item) { order = append(order, "second") })

	l.Add(newItem("a"))

	assert.Equal(t, []string{"first", "second"}, order)
}

func TestListState_OnAddNotRetroactive(t *testing.T) {
	l := NewList(newItem("a"))
	calls := 0
	l.OnAdd(func(*item) { calls++ })

	assert.Zero(t, calls)
}

func TestListState_OnAddUnsubscribe(t *testing.T) {
	l := NewList[*item]()
	calls := 0
	unsub := l.OnAdd(func(*item) { calls++ })

	l.Add(newItem("a"))
	unsub()
	l.Add(newItem("b"))

	assert.Equal(t, 1, calls)
}

func TestListState_RemovalHandlerConsumedOnce(t *testing.T) {
	l := NewList[*item]()
	a := newItem("a")
	l.Add(a)

	var removed []*item
	l.OnRemove(a, func(it *item) { removed = append(removed, it) })

	l.Remove(a)
	l.Remove(a) // second removal must not re-fire

	assert.Equal(t, []*item{a}, removed)
	assert.False(t, l.Contains(a))
}

func TestListState_RemovalHandlerOverwrite(t *testing.T) {
	l := NewList[*item]()
	a := newItem("a")
	l.Add(a)

	var fired []string
	l.OnRemove(a, func(*item) { fired = append(fired, "old") })
	l.OnRemove(a, func(*item) { fired = append(fired, "new") })

	l.Remove(a)

	assert.Equal(t, []string{"new"}, fired)
}

func TestListState_RemoveAbsentIsBenign(t *testing.T) {
	l := NewList[*item]()
	a := newItem("a")

	l.Remove(a) // never added, no handler: nothing happens

	// A handler registered before the add still fires on removal of the
	// absent item.
	fired := 0
	l.OnRemove(a, func(*item) { fired++ })
	l.Remove(a)

	assert.Equal(t, 1, fired)
}

func TestListState_OnRemoveUnsubscribe(t *testing.T) {
	l := NewList[*item]()
	a := newItem("a")
	l.Add(a)

	fired := 0
	unsub := l.OnRemove(a, func(*item) { fired++ })
	unsub()
	l.Remove(a)

	assert.Zero(t, fired)
}

func TestListState_OnRemoveUnsubscribeKeepsReplacement(t *testing.T) {
	l := NewList[*item]()
	a := newItem("a")
	l.Add(a)

	fired := 0
	unsubOld := l.OnRemove(a, func(*item) {})
	l.OnRemove(a, func(*item) { fired++ })
	unsubOld() // stale unsubscribe must not drop the replacement

	l.Remove(a)

	assert.Equal(t, 1, fired)
}

func TestListState_VariadicAddRemove(t *testing.T) {
	l := NewList[*item]()
	a, b, c := newItem("a"), newItem("b"), newItem("c")

	var added []*item
	l.OnAdd(func(it *item) { added = append(added, it) })

	l.Add(a, b, c)
	assert.Equal(t, []*item{a, b, c}, added)

	l.Remove(a, c)
	assert.Equal(t, []*item{b}, l.Items())
}

func TestListState_CollectionView(t *testing.T) {
	a, b := newItem("a"), newItem("b")
	l := NewList(a, b)
	var c Collection = l

	var seen []identity.ID
	c.EachItem(func(it identity.Identifiable) { seen = append(seen, it.Identity()) })
	assert.Equal(t, []identity.ID{a.Identity(), b.Identity()}, seen)

	var addedID identity.ID
	c.OnAddItem(func(it identity.Identifiable) { addedID = it.Identity() })
	x := newItem("x")
	l.Add(x)
	assert.Equal(t, x.Identity(), addedID)

	var removedID identity.ID
	c.OnRemoveItem(x.Identity(), func(it identity.Identifiable) { removedID = it.Identity() })
	l.Remove(x)
	assert.Equal(t, x.Identity(), removedID)
}
