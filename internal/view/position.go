package view

// Position is a location in a view tree. Parent is an *Element (Offset
// counts children) or a *Text (Offset counts runes).
type Position struct {
	Parent Node
	Offset int
}

// PositionBefore returns the position directly before node.
func PositionBefore(node Node) Position {
	return Position{Parent: node.Parent(), Offset: indexOf(node)}
}

// PositionAfter returns the position directly after node.
func PositionAfter(node Node) Position {
	return Position{Parent: node.Parent(), Offset: indexOf(node) + 1}
}

// IsAtStart reports whether the position is at offset zero of its parent.
func (p Position) IsAtStart() bool { return p.Offset == 0 }

// IsAtEnd reports whether the position is after the last child or rune.
func (p Position) IsAtEnd() bool {
	switch parent := p.Parent.(type) {
	case *Element:
		return p.Offset == len(parent.children)
	case *Text:
		return p.Offset == len([]rune(parent.data))
	}
	return false
}

// Element returns the nearest element containing the position.
func (p Position) Element() *Element {
	switch parent := p.Parent.(type) {
	case *Element:
		return parent
	case *Text:
		return parent.parent
	}
	return nil
}

// Ancestors returns the containing elements from nearest to the root.
func (p Position) Ancestors() []*Element {
	var out []*Element
	for el := p.Element(); el != nil; el = el.parent {
		out = append(out, el)
	}
	return out
}
