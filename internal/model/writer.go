package model

import "fmt"

// Writer performs tree mutations. It is handed out by Model.Change and stops
// working once the scope that created it returns.
type Writer struct {
	model  *Model
	active bool
}

func (w *Writer) check() error {
	if w == nil || !w.active {
		return ErrOutsideChange
	}
	return nil
}

// CreateElement builds a detached element with a copy of attrs.
func (w *Writer) CreateElement(name string, attrs map[string]any) *Element {
	return &Element{name: name, attrs: copyAttrs(attrs)}
}

// CreateText builds a detached text node.
func (w *Writer) CreateText(data string, attrs map[string]any) *Text {
	return &Text{data: data, attrs: copyAttrs(attrs)}
}

// Insert places a detached node at pos, splitting text when pos falls inside it.
func (w *Writer) Insert(node Node, pos Position) error {
	if err := w.check(); err != nil {
		return err
	}
	if node == nil {
		return fmt.Errorf("%w: nil node", ErrInvalidPosition)
	}
	if node.Parent() != nil {
		return ErrAttachedNode
	}
	if !pos.IsValid() {
		return fmt.Errorf("%w: %v", ErrInvalidPosition, pos.Path())
	}
	index := pos.Parent.splitAt(pos.Offset)
	pos.Parent.insertAt(index, node)
	return nil
}

// Append inserts a detached node at the end of parent.
func (w *Writer) Append(node Node, parent *Element) error {
	if parent == nil {
		return fmt.Errorf("%w: nil parent", ErrInvalidPosition)
	}
	return w.Insert(node, PositionAtEnd(parent))
}

// Remove detaches node from its parent.
func (w *Writer) Remove(node Node) error {
	if err := w.check(); err != nil {
		return err
	}
	parent := node.Parent()
	if parent == nil {
		return nil
	}
	parent.removeChild(node)
	return nil
}

// DeleteContent removes everything covered by r. Elements are removed only
// when they are fully inside the range; partially covered elements keep
// their structure and lose the covered text.
func (w *Writer) DeleteContent(r Range) error {
	if err := w.check(); err != nil {
		return err
	}
	if r.IsCollapsed() {
		return nil
	}
	type removal struct {
		parent   *Element
		from, to int
	}
	var removals []removal
	contained := map[*Element]bool{}
	for _, item := range r.Items() {
		switch typed := item.(type) {
		case TextProxy:
			if hasContainedAncestor(typed.Text.parent, contained) {
				continue
			}
			start := typed.Text.StartOffset() + typed.Offset
			removals = append(removals, removal{parent: typed.Text.parent, from: start, to: start + len([]rune(typed.Data))})
		case *Element:
			if hasContainedAncestor(typed.parent, contained) {
				contained[typed] = true
				continue
			}
			if PositionAfter(typed).Compare(r.End) <= 0 {
				contained[typed] = true
				start := typed.StartOffset()
				removals = append(removals, removal{parent: typed.parent, from: start, to: start + 1})
			}
		}
	}
	for i := len(removals) - 1; i >= 0; i-- {
		rm := removals[i]
		first := rm.parent.splitAt(rm.from)
		last := rm.parent.splitAt(rm.to)
		for _, child := range rm.parent.children[first:last] {
			child.setParent(nil)
		}
		rm.parent.children = append(rm.parent.children[:first], rm.parent.children[last:]...)
	}
	return nil
}

func hasContainedAncestor(el *Element, contained map[*Element]bool) bool {
	for current := el; current != nil; current = current.parent {
		if contained[current] {
			return true
		}
	}
	return false
}

// SetAttribute sets an attribute on node.
func (w *Writer) SetAttribute(key string, value any, node Node) error {
	if err := w.check(); err != nil {
		return err
	}
	node.attributeMap()[key] = value
	return nil
}

// RemoveAttribute deletes an attribute from node.
func (w *Writer) RemoveAttribute(key string, node Node) error {
	if err := w.check(); err != nil {
		return err
	}
	delete(node.attributeMap(), key)
	return nil
}

// SetSelection moves the document selection relative to node.
func (w *Writer) SetSelection(node Node, mode SelectionMode) error {
	if err := w.check(); err != nil {
		return err
	}
	if node == nil || node.Parent() == nil && mode != SelectIn {
		return fmt.Errorf("%w: selection target is detached", ErrInvalidPosition)
	}
	sel := w.model.doc.selection
	switch mode {
	case SelectOn:
		r := RangeOn(node)
		sel.set(r.Start, r.End)
	case SelectIn:
		el, ok := node.(*Element)
		if !ok {
			return fmt.Errorf("%w: selection mode %q needs an element", ErrInvalidPosition, mode)
		}
		r := RangeIn(el)
		sel.set(r.Start, r.End)
	case SelectBefore:
		pos := PositionBefore(node)
		sel.set(pos, pos)
	case SelectAfter:
		pos := PositionAfter(node)
		sel.set(pos, pos)
	default:
		return fmt.Errorf("%w: unknown selection mode %q", ErrInvalidPosition, mode)
	}
	return nil
}

// SetSelectionRange selects r; backward keeps the focus at r.Start.
func (w *Writer) SetSelectionRange(r Range, backward bool) error {
	if err := w.check(); err != nil {
		return err
	}
	if !r.Start.IsValid() || !r.End.IsValid() {
		return fmt.Errorf("%w: selection range", ErrInvalidPosition)
	}
	if backward {
		w.model.doc.selection.set(r.End, r.Start)
		return nil
	}
	w.model.doc.selection.set(r.Start, r.End)
	return nil
}

// SetSelectionPosition collapses the selection at pos.
func (w *Writer) SetSelectionPosition(pos Position) error {
	return w.SetSelectionRange(Range{Start: pos, End: pos}, false)
}

// SetSelectionAttribute overrides the attributes inherited at the caret until
// the selection moves again.
func (w *Writer) SetSelectionAttribute(key string, value any) error {
	if err := w.check(); err != nil {
		return err
	}
	sel := w.model.doc.selection
	if sel.overrides == nil {
		sel.overrides = surroundingAttributes(sel.FirstRange().Start)
	}
	sel.overrides[key] = value
	return nil
}
