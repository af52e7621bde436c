// Package showcase assembles the library into a small headless todo-list
// application: a draft cell with two-way input binding, a list-backed child
// renderer, and a derived item counter. The accompanying test drives it
// through simulated events the way a host runtime would.
package showcase

import (
	"fmt"
	"strings"

	"github.com/ripple-ui/ripple/pkg/dom"
	"github.com/ripple-ui/ripple/pkg/element"
	"github.com/ripple-ui/ripple/pkg/identity"
	"github.com/ripple-ui/ripple/pkg/markup"
	"github.com/ripple-ui/ripple/pkg/state"
)

// Todo is a single list entry. Clicking its rendered row removes it.
type Todo struct {
	id    identity.ID
	Label string
}

// NewTodo creates a todo with a fresh identity.
func NewTodo(label string) *Todo {
	return &Todo{id: identity.New(), Label: label}
}

// Identity implements identity.Identifiable.
func (t *Todo) Identity() identity.ID { return t.id }

const headerMarkup = `
tag: header
attrs:
  class: banner
children:
  - tag: h1
    children:
      - todos
  - tag: span
    attrs:
      class: count
      subscribe:textContent: $count
`

// App owns the cells and nodes backing the todo UI.
type App struct {
	Doc   dom.Document
	Root  dom.Node
	Input dom.Node
	Add   dom.Node
	List  dom.Node

	Draft *state.State[string]
	Todos *state.ListState[*Todo]
	Count *state.Derived[string]
}

// NewApp builds the application tree against an in-memory document.
func NewApp() (*App, error) {
	a := &App{
		Doc:   dom.NewDocument(),
		Draft: state.New(""),
		Todos: state.NewList[*Todo](),
	}
	a.Count = state.Derive(func() string {
		return fmt.Sprintf("%d item(s)", a.Todos.Len())
	}, a.Todos)

	headerSpec, err := markup.Parse([]byte(headerMarkup))
	if err != nil {
		return nil, err
	}
	header, err := markup.Build(a.Doc, headerSpec, markup.Bindings{"count": a.Count})
	if err != nil {
		return nil, err
	}

	a.Input, err = element.New(a.Doc, "input", element.Attrs{
		"type":       "text",
		"bind:value": a.Draft,
	})
	if err != nil {
		return nil, err
	}
	a.Add, err = element.New(a.Doc, "button", element.Attrs{
		"on:click": a.AddTodo,
	}, "Add")
	if err != nil {
		return nil, err
	}
	a.List, err = element.New(a.Doc, "ul", element.Attrs{
		"subscribe:children": element.ForEach(a.Todos, a.renderTodo),
	})
	if err != nil {
		return nil, err
	}
	a.Root, err = element.New(a.Doc, "div", element.Attrs{"class": "todo-app"},
		header, a.Input, a.Add, a.List)
	if err != nil {
		return nil, err
	}
	return a, nil
}

// AddTodo turns the current draft into a list entry and clears the draft.
// Blank drafts are ignored.
func (a *App) AddTodo() {
	label := strings.TrimSpace(a.Draft.Value())
	if label == "" {
		return
	}
	a.Todos.Add(NewTodo(label))
	a.Draft.Set("")
}

func (a *App) renderTodo(t *Todo) dom.Node {
	return element.MustNew(a.Doc, "li", element.Attrs{
		"class":    "todo",
		"on:click": func() { a.Todos.Remove(t) },
	}, t.Label)
}

// Type simulates the user editing the input field: the property changes and
// the host delivers an input event, which the binding writes back into Draft.
func (a *App) Type(text string) {
	a.Input.SetProperty("value", text)
	a.Input.DispatchEvent("input")
}
