// Package dom defines the element-tree contract the element constructor
// drives, plus an in-memory implementation for headless use and tests.
//
// The tree is deliberately opaque from the constructor's point of view: it
// only needs attribute and property setters, event registration, and child
// insertion and removal. Any host tree satisfying Node and Document can be
// wired instead of the in-memory one.
package dom

// Event is delivered to listeners registered with AddEventListener. Events
// carry no payload beyond their type; listeners read whatever they need from
// the target node.
type Event struct {
	Type   string
	Target Node
}

// Node is a single element in the tree.
type Node interface {
	// TagName returns the tag the node was created with. Text nodes
	// report "#text".
	TagName() string
	// SetAttribute sets a string attribute.
	SetAttribute(name, value string)
	// Attribute returns a string attribute and whether it is set.
	Attribute(name string) (string, bool)
	// SetProperty sets an arbitrarily typed named property.
	SetProperty(name string, value any)
	// Property returns a named property, or nil if unset.
	Property(name string) any
	// AddEventListener registers fn for events of the given type and
	// returns a function that removes the listener.
	AddEventListener(typ string, fn func(Event)) (remove func())
	// DispatchEvent synchronously invokes every listener registered for
	// the type, in registration order.
	DispatchEvent(typ string)
	// AppendChild adds a child after the existing children, detaching it
	// from any previous parent first.
	AppendChild(child Node)
	// RemoveChild detaches a child; absent children are ignored.
	RemoveChild(child Node)
	// ChildNodes returns a snapshot of the children in order.
	ChildNodes() []Node
	// Parent returns the parent node, or nil for a detached node.
	Parent() Node
}

// Document creates nodes.
type Document interface {
	CreateElement(tag string) Node
	CreateTextNode(text string) Node
}

// NewDocument returns an in-memory Document. The tree it produces is not
// safe for concurrent use.
func NewDocument() Document {
	return &document{}
}

type document struct{}

func (d *document) CreateElement(tag string) Node {
	return newNode(tag)
}

func (d *document) CreateTextNode(text string) Node {
	n := newNode(textTag)
	n.props[textDataProperty] = text
	return n
}

const (
	textTag          = "#text"
	textDataProperty = "data"
)

// listener boxes a callback so removal can match the exact registration.
type listener struct {
	fn func(Event)
}

type node struct {
	tag       string
	attrs     map[string]string
	props     map[string]any
	listeners map[string][]*listener
	children  []Node
	parent    Node
}

func newNode(tag string) *node {
	return &node{
		tag:       tag,
		attrs:     make(map[string]string),
		props:     make(map[string]any),
		listeners: make(map[string][]*listener),
	}
}

func (n *node) TagName() string { return n.tag }

func (n *node) SetAttribute(name, value string) {
	n.attrs[name] = value
}

func (n *node) Attribute(name string) (string, bool) {
	v, ok := n.attrs[name]
	return v, ok
}

func (n *node) SetProperty(name string, value any) {
	n.props[name] = value
}

func (n *node) Property(name string) any {
	return n.props[name]
}

func (n *node) AddEventListener(typ string, fn func(Event)) (remove func()) {
	l := &listener{fn: fn}
	n.listeners[typ] = append(n.listeners[typ], l)
	return func() {
		ls := n.listeners[typ]
		for i, cand := range ls {
			if cand == l {
				n.listeners[typ] = append(ls[:i], ls[i+1:]...)
				return
			}
		}
	}
}

func (n *node) DispatchEvent(typ string) {
	ev := Event{Type: typ, Target: n}
	for _, l := range append([]*listener(nil), n.listeners[typ]...) {
		l.fn(ev)
	}
}

func (n *node) AppendChild(child Node) {
	if c, ok := child.(*node); ok {
		if c.parent != nil {
			c.parent.RemoveChild(child)
		}
		c.parent = n
	}
	n.children = append(n.children, child)
}

func (n *node) RemoveChild(child Node) {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			if cn, ok := child.(*node); ok {
				cn.parent = nil
			}
			return
		}
	}
}

func (n *node) ChildNodes() []Node {
	return append([]Node(nil), n.children...)
}

func (n *node) Parent() Node { return n.parent }

// TextContent returns the concatenated text of the node's text descendants,
// depth-first. For a text node it is the node's own data.
func TextContent(n Node) string {
	if n.TagName() == textTag {
		if s, ok := n.Property(textDataProperty).(string); ok {
			return s
		}
		return ""
	}
	var out string
	for _, c := range n.ChildNodes() {
		out += TextContent(c)
	}
	return out
}
