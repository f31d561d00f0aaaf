// Package view holds the view trees produced by downcast conversion: the
// editing tree shown on screen and the data tree serialised to HTML. It also
// parses HTML back into view trees for upcast conversion.
package view

import (
	"maps"
	"slices"
	"sort"
	"strings"
)

// Kind classifies view elements.
type Kind string

const (
	// KindContainer elements structure content (p, span widgets, headings).
	KindContainer Kind = "container"
	// KindAttribute elements wrap text to express formatting (strong, em, a).
	KindAttribute Kind = "attribute"
	// KindRoot is the fragment root holding top-level nodes.
	KindRoot Kind = "root"
)

// Node is an *Element or a *Text.
type Node interface {
	Parent() *Element
	setParent(parent *Element)
}

// Element is a view element.
type Element struct {
	name     string
	kind     Kind
	attrs    map[string]string
	classes  []string
	children []Node
	parent   *Element
	custom   map[string]any
}

// NewFragment returns an empty root element used as a document fragment.
func NewFragment() *Element {
	return &Element{kind: KindRoot, attrs: map[string]string{}}
}

func newElement(name string, kind Kind, attrs map[string]string) *Element {
	el := &Element{name: strings.ToLower(name), kind: kind, attrs: map[string]string{}}
	for key, value := range attrs {
		if key == "class" {
			for _, class := range strings.Fields(value) {
				el.addClass(class)
			}
			continue
		}
		el.attrs[key] = value
	}
	return el
}

// Name returns the lower-cased tag name; empty for fragments.
func (e *Element) Name() string { return e.name }

// Kind returns the element kind.
func (e *Element) Kind() Kind { return e.kind }

// IsAttributeElement reports whether the element is a formatting wrapper.
func (e *Element) IsAttributeElement() bool { return e.kind == KindAttribute }

// Parent returns the parent element.
func (e *Element) Parent() *Element { return e.parent }

func (e *Element) setParent(parent *Element) { e.parent = parent }

// Attribute returns an attribute value. "class" is derived from the class list.
func (e *Element) Attribute(key string) (string, bool) {
	if key == "class" {
		if len(e.classes) == 0 {
			return "", false
		}
		return strings.Join(e.classes, " "), true
	}
	value, ok := e.attrs[key]
	return value, ok
}

// Attributes returns every attribute including class.
func (e *Element) Attributes() map[string]string {
	out := maps.Clone(e.attrs)
	if out == nil {
		out = map[string]string{}
	}
	if len(e.classes) > 0 {
		out["class"] = strings.Join(e.classes, " ")
	}
	return out
}

// AttributeKeys returns attribute names in serialisation order: class first,
// then the rest sorted by name.
func (e *Element) AttributeKeys() []string {
	keys := make([]string, 0, len(e.attrs)+1)
	for key := range e.attrs {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	if len(e.classes) > 0 {
		keys = append([]string{"class"}, keys...)
	}
	return keys
}

// HasClass reports whether the element carries class.
func (e *Element) HasClass(class string) bool { return slices.Contains(e.classes, class) }

// Classes returns the class list in insertion order.
func (e *Element) Classes() []string { return slices.Clone(e.classes) }

func (e *Element) addClass(class string) {
	if class != "" && !e.HasClass(class) {
		e.classes = append(e.classes, class)
	}
}

// CustomProperty returns a property that is not rendered to HTML.
func (e *Element) CustomProperty(key string) (any, bool) {
	value, ok := e.custom[key]
	return value, ok
}

// ChildCount returns the number of direct children.
func (e *Element) ChildCount() int { return len(e.children) }

// Child returns the child at index or nil.
func (e *Element) Child(index int) Node {
	if index < 0 || index >= len(e.children) {
		return nil
	}
	return e.children[index]
}

// Children returns a copy of the child slice.
func (e *Element) Children() []Node { return slices.Clone(e.children) }

// Index returns the position of the element among its siblings, -1 when detached.
func (e *Element) Index() int { return indexOf(e) }

// TextContent concatenates every descendant text.
func (e *Element) TextContent() string {
	var b strings.Builder
	var walk func(*Element)
	walk = func(el *Element) {
		for _, child := range el.children {
			switch typed := child.(type) {
			case *Text:
				b.WriteString(typed.data)
			case *Element:
				walk(typed)
			}
		}
	}
	walk(e)
	return b.String()
}

func (e *Element) insertAt(index int, node Node) {
	if index < 0 || index > len(e.children) {
		index = len(e.children)
	}
	node.setParent(e)
	e.children = slices.Insert(e.children, index, node)
}

// Text is a view text node.
type Text struct {
	data   string
	parent *Element
}

// Data returns the text content.
func (t *Text) Data() string { return t.data }

// Parent returns the containing element.
func (t *Text) Parent() *Element { return t.parent }

// Index returns the position of the text among its siblings.
func (t *Text) Index() int { return indexOf(t) }

func (t *Text) setParent(parent *Element) { t.parent = parent }

func indexOf(node Node) int {
	parent := node.Parent()
	if parent == nil {
		return -1
	}
	for i, child := range parent.children {
		if child == node {
			return i
		}
	}
	return -1
}
