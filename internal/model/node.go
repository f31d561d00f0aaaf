// Package model implements the in-memory document tree edited by the
// richtext engine. Offsets follow the editor-runtime convention: every rune of
// text occupies one offset and every element occupies exactly one offset in its
// parent, regardless of its own content.
package model

import (
	"maps"
	"unicode/utf8"
)

// Node is a member of the document tree: either an *Element or a *Text.
type Node interface {
	Parent() *Element
	// OffsetSize is the number of offsets the node occupies in its parent.
	OffsetSize() int
	Attribute(key string) (any, bool)
	Attributes() map[string]any
	HasAttribute(key string) bool

	setParent(parent *Element)
	attributeMap() map[string]any
	clone() Node
}

// Element is a named tree node carrying attributes and ordered children.
type Element struct {
	name     string
	attrs    map[string]any
	children []Node
	parent   *Element
}

// NewElement constructs a detached element. Writers should prefer
// Writer.CreateElement inside a change scope.
func NewElement(name string, attrs map[string]any, children ...Node) *Element {
	el := &Element{name: name, attrs: copyAttrs(attrs)}
	for _, child := range children {
		if child == nil {
			continue
		}
		if current := child.Parent(); current != nil {
			current.removeChild(child)
		}
		child.setParent(el)
		el.children = append(el.children, child)
	}
	return el
}

// Name returns the element name (also its schema item name).
func (e *Element) Name() string { return e.name }

// Parent returns the parent element or nil for roots and detached nodes.
func (e *Element) Parent() *Element { return e.parent }

// OffsetSize is always one for elements.
func (e *Element) OffsetSize() int { return 1 }

// Attribute returns a single attribute value.
func (e *Element) Attribute(key string) (any, bool) {
	value, ok := e.attrs[key]
	return value, ok
}

// StringAttribute returns the attribute formatted as a string; missing keys yield "".
func (e *Element) StringAttribute(key string) string {
	return stringValue(e.attrs[key])
}

// Attributes returns a copy of the element attributes.
func (e *Element) Attributes() map[string]any { return copyAttrs(e.attrs) }

// HasAttribute reports whether the attribute is set.
func (e *Element) HasAttribute(key string) bool {
	_, ok := e.attrs[key]
	return ok
}

// ChildCount returns the number of direct children.
func (e *Element) ChildCount() int { return len(e.children) }

// Child returns the child at index or nil when out of bounds.
func (e *Element) Child(index int) Node {
	if index < 0 || index >= len(e.children) {
		return nil
	}
	return e.children[index]
}

// Children returns a copy of the child slice.
func (e *Element) Children() []Node {
	out := make([]Node, len(e.children))
	copy(out, e.children)
	return out
}

// MaxOffset is the sum of the offset sizes of all children.
func (e *Element) MaxOffset() int {
	total := 0
	for _, child := range e.children {
		total += child.OffsetSize()
	}
	return total
}

// IsEmpty reports whether the element has no children.
func (e *Element) IsEmpty() bool { return len(e.children) == 0 }

// Root walks up to the topmost ancestor.
func (e *Element) Root() *Element {
	current := e
	for current.parent != nil {
		current = current.parent
	}
	return current
}

// Walk visits descendants depth-first in document order. Returning false from
// fn skips the children of the visited element.
func (e *Element) Walk(fn func(Node) bool) {
	for _, child := range e.children {
		descend := fn(child)
		if el, ok := child.(*Element); ok && descend {
			el.Walk(fn)
		}
	}
}

// FindAll returns every descendant element with the given name.
func (e *Element) FindAll(name string) []*Element {
	var out []*Element
	e.Walk(func(n Node) bool {
		if el, ok := n.(*Element); ok && el.name == name {
			out = append(out, el)
		}
		return true
	})
	return out
}

func (e *Element) setParent(parent *Element)     { e.parent = parent }
func (e *Element) attributeMap() map[string]any { return e.attrs }

func (e *Element) clone() Node {
	out := &Element{name: e.name, attrs: copyAttrs(e.attrs)}
	out.children = make([]Node, 0, len(e.children))
	for _, child := range e.children {
		c := child.clone()
		c.setParent(out)
		out.children = append(out.children, c)
	}
	return out
}

func (e *Element) indexOf(node Node) int {
	for i, child := range e.children {
		if child == node {
			return i
		}
	}
	return -1
}

// offsetOfIndex returns the offset at which the child at index starts.
func (e *Element) offsetOfIndex(index int) int {
	offset := 0
	for i := 0; i < index && i < len(e.children); i++ {
		offset += e.children[i].OffsetSize()
	}
	return offset
}

// indexAtOffset resolves an offset to the index of the child that contains it
// and the offset inside that child. inner is non-zero only inside text.
func (e *Element) indexAtOffset(offset int) (index int, inner int) {
	current := 0
	for i, child := range e.children {
		size := child.OffsetSize()
		if offset < current+size {
			return i, offset - current
		}
		current += size
	}
	return len(e.children), 0
}

// splitAt guarantees a child boundary at offset and returns the index of the
// child starting there.
func (e *Element) splitAt(offset int) int {
	index, inner := e.indexAtOffset(offset)
	if inner == 0 {
		return index
	}
	text, ok := e.children[index].(*Text)
	if !ok {
		return index
	}
	runes := []rune(text.data)
	head := &Text{data: string(runes[:inner]), attrs: copyAttrs(text.attrs), parent: e}
	tail := &Text{data: string(runes[inner:]), attrs: copyAttrs(text.attrs), parent: e}
	text.parent = nil
	e.children = append(e.children[:index], append([]Node{head, tail}, e.children[index+1:]...)...)
	return index + 1
}

func (e *Element) insertAt(index int, nodes ...Node) {
	for _, node := range nodes {
		node.setParent(e)
	}
	tail := append([]Node{}, e.children[index:]...)
	e.children = append(append(e.children[:index], nodes...), tail...)
}

func (e *Element) removeChild(node Node) bool {
	index := e.indexOf(node)
	if index < 0 {
		return false
	}
	e.children = append(e.children[:index], e.children[index+1:]...)
	node.setParent(nil)
	return true
}

// Text is a run of characters sharing the same attributes.
type Text struct {
	data   string
	attrs  map[string]any
	parent *Element
}

// NewText constructs a detached text node.
func NewText(data string, attrs map[string]any) *Text {
	return &Text{data: data, attrs: copyAttrs(attrs)}
}

// Data returns the text content.
func (t *Text) Data() string { return t.data }

// Parent returns the containing element.
func (t *Text) Parent() *Element { return t.parent }

// OffsetSize is the rune count of the text.
func (t *Text) OffsetSize() int { return utf8.RuneCountInString(t.data) }

// Attribute returns a single attribute value.
func (t *Text) Attribute(key string) (any, bool) {
	value, ok := t.attrs[key]
	return value, ok
}

// Attributes returns a copy of the text attributes.
func (t *Text) Attributes() map[string]any { return copyAttrs(t.attrs) }

// HasAttribute reports whether the attribute is set.
func (t *Text) HasAttribute(key string) bool {
	_, ok := t.attrs[key]
	return ok
}

func (t *Text) setParent(parent *Element)     { t.parent = parent }
func (t *Text) attributeMap() map[string]any { return t.attrs }

func (t *Text) clone() Node {
	return &Text{data: t.data, attrs: copyAttrs(t.attrs)}
}

// NodeName returns the schema item name of a node; text nodes map to "$text".
func NodeName(node Node) string {
	switch typed := node.(type) {
	case *Element:
		return typed.name
	case *Text:
		return TextItem
	default:
		return ""
	}
}

// TextItem is the schema item name used for text nodes.
const TextItem = "$text"

func startOffset(node Node) int {
	parent := node.Parent()
	if parent == nil {
		return 0
	}
	return parent.offsetOfIndex(parent.indexOf(node))
}

func copyAttrs(attrs map[string]any) map[string]any {
	if len(attrs) == 0 {
		return map[string]any{}
	}
	out := make(map[string]any, len(attrs))
	maps.Copy(out, attrs)
	return out
}

func stringValue(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case interface{ String() string }:
		return v.String()
	default:
		return ""
	}
}
