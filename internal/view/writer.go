package view

import (
	"errors"
	"fmt"
)

// ErrInvalidPosition reports a view position outside its parent.
var ErrInvalidPosition = errors.New("view: invalid position")

// Writer builds view trees during downcast conversion.
type Writer struct{}

// NewWriter returns a downcast writer.
func NewWriter() *Writer { return &Writer{} }

// CreateContainerElement builds a structural element. A "class" attribute is
// split into the class list.
func (w *Writer) CreateContainerElement(name string, attrs map[string]string) *Element {
	return newElement(name, KindContainer, attrs)
}

// CreateAttributeElement builds a formatting wrapper.
func (w *Writer) CreateAttributeElement(name string, attrs map[string]string) *Element {
	return newElement(name, KindAttribute, attrs)
}

// CreateText builds a text node.
func (w *Writer) CreateText(data string) *Text {
	return &Text{data: data}
}

// CreatePositionAt returns the position at offset inside parent.
func (w *Writer) CreatePositionAt(parent *Element, offset int) Position {
	return Position{Parent: parent, Offset: offset}
}

// Insert places node at pos. Positions must point into an element.
func (w *Writer) Insert(pos Position, node Node) error {
	parent, ok := pos.Parent.(*Element)
	if !ok || parent == nil {
		return fmt.Errorf("%w: parent must be an element", ErrInvalidPosition)
	}
	if pos.Offset < 0 || pos.Offset > len(parent.children) {
		return fmt.Errorf("%w: offset %d", ErrInvalidPosition, pos.Offset)
	}
	if current := node.Parent(); current != nil {
		w.Remove(node)
	}
	parent.insertAt(pos.Offset, node)
	return nil
}

// Append inserts node as the last child of parent.
func (w *Writer) Append(parent *Element, node Node) {
	_ = w.Insert(Position{Parent: parent, Offset: parent.ChildCount()}, node)
}

// Remove detaches node from its parent.
func (w *Writer) Remove(node Node) {
	parent := node.Parent()
	if parent == nil {
		return
	}
	index := indexOf(node)
	parent.children = append(parent.children[:index], parent.children[index+1:]...)
	node.setParent(nil)
}

// AddClass adds class to el.
func (w *Writer) AddClass(class string, el *Element) { el.addClass(class) }

// SetAttribute sets a rendered attribute on el.
func (w *Writer) SetAttribute(key, value string, el *Element) {
	if key == "class" {
		el.classes = nil
		for _, class := range splitClasses(value) {
			el.addClass(class)
		}
		return
	}
	el.attrs[key] = value
}

// SetCustomProperty attaches a property that is never rendered.
func (w *Writer) SetCustomProperty(key string, value any, el *Element) {
	if el.custom == nil {
		el.custom = map[string]any{}
	}
	el.custom[key] = value
}
