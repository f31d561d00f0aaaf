package model

import "fmt"

// Position addresses a gap between offsets inside Parent.
type Position struct {
	Parent *Element
	Offset int
}

// PositionAt returns the position at offset inside parent.
func PositionAt(parent *Element, offset int) Position {
	return Position{Parent: parent, Offset: offset}
}

// PositionAtEnd returns the position after the last child of parent.
func PositionAtEnd(parent *Element) Position {
	return Position{Parent: parent, Offset: parent.MaxOffset()}
}

// PositionBefore returns the position right before node in its parent.
func PositionBefore(node Node) Position {
	return Position{Parent: node.Parent(), Offset: startOffset(node)}
}

// PositionAfter returns the position right after node in its parent.
func PositionAfter(node Node) Position {
	return Position{Parent: node.Parent(), Offset: startOffset(node) + node.OffsetSize()}
}

// StartOffset returns the offset at which the element starts in its parent.
func (e *Element) StartOffset() int { return startOffset(e) }

// StartOffset returns the offset at which the text starts in its parent.
func (t *Text) StartOffset() int { return startOffset(t) }

// IsValid reports whether the position points inside a live parent.
func (p Position) IsValid() bool {
	return p.Parent != nil && p.Offset >= 0 && p.Offset <= p.Parent.MaxOffset()
}

// IsAtStart reports whether the position is at offset zero.
func (p Position) IsAtStart() bool { return p.Offset == 0 }

// IsAtEnd reports whether the position is after the last child.
func (p Position) IsAtEnd() bool { return p.Parent != nil && p.Offset == p.Parent.MaxOffset() }

// TextNode returns the text node the position splits, or nil when the
// position sits on a child boundary.
func (p Position) TextNode() *Text {
	if p.Parent == nil {
		return nil
	}
	index, inner := p.Parent.indexAtOffset(p.Offset)
	if inner == 0 {
		return nil
	}
	text, _ := p.Parent.children[index].(*Text)
	return text
}

// NodeAfter returns the child starting at the position, or nil.
func (p Position) NodeAfter() Node {
	if p.Parent == nil || p.TextNode() != nil {
		return nil
	}
	index, _ := p.Parent.indexAtOffset(p.Offset)
	return p.Parent.Child(index)
}

// NodeBefore returns the child ending at the position, or nil.
func (p Position) NodeBefore() Node {
	if p.Parent == nil || p.TextNode() != nil || p.Offset == 0 {
		return nil
	}
	index, _ := p.Parent.indexAtOffset(p.Offset - 1)
	return p.Parent.Child(index)
}

// IsEqual compares parent identity and offset.
func (p Position) IsEqual(other Position) bool {
	return p.Parent == other.Parent && p.Offset == other.Offset
}

// Path returns the offsets leading from the root to the position.
func (p Position) Path() []int {
	if p.Parent == nil {
		return nil
	}
	var reversed []int
	for el := p.Parent; el.parent != nil; el = el.parent {
		reversed = append(reversed, el.StartOffset())
	}
	path := make([]int, 0, len(reversed)+1)
	for i := len(reversed) - 1; i >= 0; i-- {
		path = append(path, reversed[i])
	}
	return append(path, p.Offset)
}

// Compare orders two positions of the same tree: -1 before, 0 equal, 1 after.
func (p Position) Compare(other Position) int {
	a, b := p.Path(), other.Path()
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] < b[i] {
			return -1
		}
		if a[i] > b[i] {
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	default:
		return 0
	}
}

// IsBefore reports whether p precedes other.
func (p Position) IsBefore(other Position) bool { return p.Compare(other) < 0 }

// String renders the position path for diagnostics.
func (p Position) String() string { return fmt.Sprint(p.Path()) }

// PositionFromPath resolves an offset path against root.
func PositionFromPath(root *Element, path []int) (Position, error) {
	if root == nil || len(path) == 0 {
		return Position{}, fmt.Errorf("%w: empty path", ErrInvalidPosition)
	}
	parent := root
	for _, offset := range path[:len(path)-1] {
		index, inner := parent.indexAtOffset(offset)
		if inner != 0 {
			return Position{}, fmt.Errorf("%w: path %v enters text", ErrInvalidPosition, path)
		}
		child, ok := parent.Child(index).(*Element)
		if !ok {
			return Position{}, fmt.Errorf("%w: path %v has no element at %d", ErrInvalidPosition, path, offset)
		}
		parent = child
	}
	pos := Position{Parent: parent, Offset: path[len(path)-1]}
	if !pos.IsValid() {
		return Position{}, fmt.Errorf("%w: offset %d out of bounds", ErrInvalidPosition, pos.Offset)
	}
	return pos, nil
}
