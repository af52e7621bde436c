package element

import (
	"fmt"

	"github.com/ripple-ui/ripple/pkg/dom"
	"github.com/ripple-ui/ripple/pkg/identity"
	"github.com/ripple-ui/ripple/pkg/state"
)

// ChildList couples an observable collection with a per-item renderer. It is
// the value a "subscribe:children" attribute expects; build one with ForEach.
type ChildList struct {
	source state.Collection
	render func(identity.Identifiable) dom.Node
}

// ForEach adapts a typed ListState and renderer into a ChildList.
func ForEach[T identity.Identifiable](list *state.ListState[T], render func(T) dom.Node) ChildList {
	return ChildList{
		source: list,
		render: func(item identity.Identifiable) dom.Node {
			return render(item.(T))
		},
	}
}

// wireChildren renders one child per current item in insertion order, then
// keeps the parent's children in sync: additions append a newly rendered
// child, removals detach exactly the child rendered for that item.
//
// Wiring claims each item's single removal-handler slot. A later OnRemove
// for the same item replaces the detach handler, so is fired instead of it.
func wireChildren(parent dom.Node, value any) error {
	cl, ok := value.(ChildList)
	if !ok {
		return directiveErr("element.wireChildren", "subscribe:"+childrenKey,
			fmt.Errorf("want element.ChildList, got %T", value))
	}
	attach := func(item identity.Identifiable) {
		child := cl.render(item)
		parent.AppendChild(child)
		cl.source.OnRemoveItem(item.Identity(), func(identity.Identifiable) {
			parent.RemoveChild(child)
		})
	}
	cl.source.EachItem(attach)
	cl.source.OnAddItem(attach)
	return nil
}
