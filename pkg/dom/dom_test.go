package dom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDocument_CreateElement(t *testing.T) {
	doc := NewDocument()
	n := doc.CreateElement("div")

	assert.Equal(t, "div", n.TagName())
	assert.Empty(t, n.ChildNodes())
	assert.Nil(t, n.Parent())
}

func TestDocument_CreateTextNode(t *testing.T) {
	doc := NewDocument()
	n := doc.CreateTextNode("hello")

	assert.Equal(t, "#text", n.TagName())
	assert.Equal(t, "hello", n.Property("data"))
}

func TestNode_Attributes(t *testing.T) {
	n := NewDocument().CreateElement("div")

	_, ok := n.Attribute("class")
	assert.False(t, ok)

	n.SetAttribute("class", "box")
	v, ok := n.Attribute("class")
	assert.True(t, ok)
	assert.Equal(t, "box", v)
}

func TestNode_Properties(t *testing.T) {
	n := NewDocument().CreateElement("input")

	assert.Nil(t, n.Property("value"))

	n.SetProperty("value", "x")
	assert.Equal(t, "x", n.Property("value"))

	n.SetProperty("disabled", true)
	assert.Equal(t, true, n.Property("disabled"))
}

func TestNode_AppendAndRemoveChildren(t *testing.T) {
	doc := NewDocument()
	parent := doc.CreateElement("ul")
	a := doc.CreateElement("li")
	b := doc.CreateElement("li")

	parent.AppendChild(a)
	parent.AppendChild(b)
	assert.Equal(t, []Node{a, b}, parent.ChildNodes())
	assert.Equal(t, parent, a.Parent())

	parent.RemoveChild(a)
	assert.Equal(t, []Node{b}, parent.ChildNodes())
	assert.Nil(t, a.Parent())

	parent.RemoveChild(a) // absent: ignored
	assert.Equal(t, []Node{b}, parent.ChildNodes())
}

func TestNode_AppendReparents(t *testing.T) {
	doc := NewDocument()
	first := doc.CreateElement("div")
	second := doc.CreateElement("div")
	child := doc.CreateElement("span")

	first.AppendChild(child)
	second.AppendChild(child)

	assert.Empty(t, first.ChildNodes())
	assert.Equal(t, []Node{child}, second.ChildNodes())
	assert.Equal(t, second, child.Parent())
}

func TestNode_EventListeners(t *testing.T) {
	n := NewDocument().CreateElement("button")

	var events []Event
	n.AddEventListener("click", func(ev Event) { events = append(events, ev) })

	n.DispatchEvent("click")
	n.DispatchEvent("keydown") // no listener

	assert.Len(t, events, 1)
	assert.Equal(t, "click", events[0].Type)
	assert.Equal(t, n, events[0].Target)
}

func TestNode_ListenerOrderAndRemoval(t *testing.T) {
	n := NewDocument().CreateElement("button")

	var order []string
	remove := n.AddEventListener("click", func(Event) { order = append(order, "first") })
	n.AddEventListener("click", func(Event) { order = append(order, "second") })

	n.DispatchEvent("click")
	remove()
	n.DispatchEvent("click")

	assert.Equal(t, []string{"first", "second", "second"}, order)
}

func TestTextContent(t *testing.T) {
	doc := NewDocument()
	root := doc.CreateElement("div")
	span := doc.CreateElement("span")
	span.AppendChild(doc.CreateTextNode("world"))
	root.AppendChild(doc.CreateTextNode("hello "))
	root.AppendChild(span)

	assert.Equal(t, "hello world", TextContent(root))
}
