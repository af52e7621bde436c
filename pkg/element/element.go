// Package element builds live dom nodes from a tag, an attribute map and
// children, wiring reactive cells into the tree through directive-prefixed
// attribute keys.
//
// # Directives
//
// An attribute key may carry a namespace before the first colon:
//
//	"on:click":           func(dom.Event) or func() — event listener
//	"subscribe:value":    state.Cell — cell changes write the property
//	"bind:value":         state.Cell — subscribe plus input-event write-back
//	"subscribe:children": ChildList — incremental child rendering
//
// Any other key sets a literal string attribute, or a property for
// non-string values. Unknown namespaces never fail; the key is taken
// literally.
//
// # Value application
//
// subscribe: and bind: apply the cell's current value to the property once
// at wiring time, then follow every change. Cells themselves do not replay
// on subscribe.
package element

import (
	"fmt"
	"sort"

	"github.com/ripple-ui/ripple/pkg/dom"
	ripplerr "github.com/ripple-ui/ripple/pkg/errors"
	"github.com/ripple-ui/ripple/pkg/state"
)

// Attrs maps attribute keys, directive-prefixed or plain, to their values.
type Attrs map[string]any

// inputEvent is the event a bind: directive listens for to write the
// element's property value back into the cell.
const inputEvent = "input"

// New constructs an element, wires every attribute, and appends children in
// the order given. Children are either strings, rendered as text nodes, or
// already-constructed dom.Nodes. All directive wiring is established before
// New returns.
//
// Attribute keys are wired in sorted order so construction is deterministic.
func New(doc dom.Document, tag string, attrs Attrs, children ...any) (dom.Node, error) {
	n := doc.CreateElement(tag)

	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, key := range keys {
		if err := wire(n, key, attrs[key]); err != nil {
			return nil, err
		}
	}

	for _, child := range children {
		switch c := child.(type) {
		case nil:
			// skipped, so callers can pass optional children
		case string:
			n.AppendChild(doc.CreateTextNode(c))
		case dom.Node:
			n.AppendChild(c)
		default:
			return nil, &ripplerr.Error{
				Op:   "element.New",
				Kind: ripplerr.KindDirective,
				Err:  fmt.Errorf("unsupported child type %T", child),
			}
		}
	}
	return n, nil
}

// MustNew is New for call sites that treat construction failure as a bug.
func MustNew(doc dom.Document, tag string, attrs Attrs, children ...any) dom.Node {
	n, err := New(doc, tag, attrs, children...)
	if err != nil {
		panic(err)
	}
	return n
}

func wire(n dom.Node, key string, value any) error {
	d := parseDirective(key)
	switch d.kind {
	case eventDirective:
		return wireEvent(n, d.key, value)
	case subscribeDirective:
		return wireSubscribe(n, d.key, value)
	case bindDirective:
		return wireBind(n, d.key, value)
	case childrenDirective:
		return wireChildren(n, value)
	default:
		wirePlain(n, key, value)
		return nil
	}
}

// wirePlain sets string values as attributes and everything else as an
// opaque property.
func wirePlain(n dom.Node, key string, value any) {
	if s, ok := value.(string); ok {
		n.SetAttribute(key, s)
		return
	}
	n.SetProperty(key, value)
}

func wireEvent(n dom.Node, event string, value any) error {
	switch fn := value.(type) {
	case func(dom.Event):
		n.AddEventListener(event, fn)
	case func():
		n.AddEventListener(event, func(dom.Event) { fn() })
	default:
		return directiveErr("element.wireEvent", "on:"+event,
			fmt.Errorf("want func(dom.Event) or func(), got %T", value))
	}
	return nil
}

func wireSubscribe(n dom.Node, prop string, value any) error {
	cell, ok := value.(state.Cell)
	if !ok {
		return directiveErr("element.wireSubscribe", "subscribe:"+prop,
			fmt.Errorf("want state.Cell, got %T", value))
	}
	n.SetProperty(prop, cell.Get())
	cell.Watch(func(v any) {
		n.SetProperty(prop, v)
	})
	return nil
}

// wireBind is wireSubscribe plus the reverse direction: the input event
// writes the element's property value back into the cell. Ping-pong between
// the two directions is terminated by the cell's own equality guard.
func wireBind(n dom.Node, prop string, value any) error {
	cell, ok := value.(state.Cell)
	if !ok {
		return directiveErr("element.wireBind", "bind:"+prop,
			fmt.Errorf("want state.Cell, got %T", value))
	}
	n.SetProperty(prop, cell.Get())
	cell.Watch(func(v any) {
		n.SetProperty(prop, v)
	})
	n.AddEventListener(inputEvent, func(dom.Event) {
		if err := cell.Put(n.Property(prop)); err != nil {
			ripplerr.Report(&ripplerr.Error{
				Op:        "element.wireBind",
				Kind:      ripplerr.KindBinding,
				Directive: "bind:" + prop,
				Err:       err,
			})
		}
	})
	return nil
}

func directiveErr(op, key string, err error) error {
	return &ripplerr.Error{
		Op:        op,
		Kind:      ripplerr.KindDirective,
		Directive: key,
		Err:       err,
	}
}
