// Package markup loads element trees from YAML descriptions.
//
// A document is a single node:
//
//	tag: div
//	attrs:
//	  class: todo-app
//	  subscribe:textContent: $count
//	children:
//	  - "Items: "
//	  - tag: span
//	    attrs:
//	      id: counter
//
// Attribute values starting with "$" are resolved through a Bindings map to
// cells, event handlers or child lists; everything else is passed to the
// element constructor verbatim. The package exists for fixtures, tests and
// prototyping — production code normally calls element.New directly.
package markup

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ripple-ui/ripple/pkg/dom"
	"github.com/ripple-ui/ripple/pkg/element"
	ripplerr "github.com/ripple-ui/ripple/pkg/errors"
)

// NodeSpec is one node of a parsed markup document.
type NodeSpec struct {
	Tag      string            `yaml:"tag"`
	Attrs    map[string]string `yaml:"attrs"`
	Children []ChildSpec       `yaml:"children"`
}

// ChildSpec is either literal text or a nested node.
type ChildSpec struct {
	Text string
	Node *NodeSpec
}

// UnmarshalYAML accepts a scalar as text and a mapping as a nested node.
func (c *ChildSpec) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		return value.Decode(&c.Text)
	}
	c.Node = new(NodeSpec)
	return value.Decode(c.Node)
}

// Bindings resolves "$name" attribute values to the live values — cells,
// handlers, child lists — the directives need.
type Bindings map[string]any

// Parse decodes a markup document.
func Parse(data []byte) (*NodeSpec, error) {
	var spec NodeSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, markupErr("markup.Parse", err)
	}
	if spec.Tag == "" {
		return nil, markupErr("markup.Parse", fmt.Errorf("document root is missing a tag"))
	}
	return &spec, nil
}

// Build constructs the element tree a spec describes, resolving "$name"
// attribute values through the bindings. Unresolved references fail.
func Build(doc dom.Document, spec *NodeSpec, b Bindings) (dom.Node, error) {
	if spec.Tag == "" {
		return nil, markupErr("markup.Build", fmt.Errorf("node is missing a tag"))
	}

	attrs := make(element.Attrs, len(spec.Attrs))
	for key, raw := range spec.Attrs {
		name, isRef := strings.CutPrefix(raw, "$")
		if !isRef {
			attrs[key] = raw
			continue
		}
		bound, ok := b[name]
		if !ok {
			return nil, markupErr("markup.Build",
				fmt.Errorf("unresolved binding %q for attribute %q", name, key))
		}
		attrs[key] = bound
	}

	children := make([]any, 0, len(spec.Children))
	for _, c := range spec.Children {
		if c.Node == nil {
			children = append(children, c.Text)
			continue
		}
		child, err := Build(doc, c.Node, b)
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}
	return element.New(doc, spec.Tag, attrs, children...)
}

func markupErr(op string, err error) error {
	return &ripplerr.Error{Op: op, Kind: ripplerr.KindMarkup, Err: err}
}
