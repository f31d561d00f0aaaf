package widgets

import (
	"maps"

	"github.com/goliatone/go-richtext/internal/model"
)

// Node is the tagged view of a widget element: its kind plus every attribute,
// inherited formatting included.
type Node struct {
	Kind       Kind
	Attributes map[string]any
}

// NodeFromElement reads el as a widget registered in reg.
func NodeFromElement(reg *Registry, el *model.Element) (Node, bool) {
	if el == nil {
		return Node{}, false
	}
	if _, ok := reg.Get(Kind(el.Name())); !ok {
		return Node{}, false
	}
	return Node{Kind: Kind(el.Name()), Attributes: el.Attributes()}, true
}

// Name returns the name attribute.
func (n Node) Name() string { return stringAttr(n.Attributes, AttributeName) }

// TextVal returns the textVal attribute.
func (n Node) TextVal() string { return stringAttr(n.Attributes, AttributeTextVal) }

// Element builds a detached model element for the node.
func (n Node) Element(w *model.Writer) *model.Element {
	return w.CreateElement(string(n.Kind), maps.Clone(n.Attributes))
}
