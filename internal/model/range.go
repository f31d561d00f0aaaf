package model

// Range spans the document between two positions, Start never after End.
type Range struct {
	Start Position
	End   Position
}

// NewRange orders the two positions into a range.
func NewRange(a, b Position) Range {
	if b.IsBefore(a) {
		a, b = b, a
	}
	return Range{Start: a, End: b}
}

// RangeOn returns the range covering exactly node.
func RangeOn(node Node) Range {
	return Range{Start: PositionBefore(node), End: PositionAfter(node)}
}

// RangeIn returns the range covering all content of el.
func RangeIn(el *Element) Range {
	return Range{Start: PositionAt(el, 0), End: PositionAtEnd(el)}
}

// IsCollapsed reports whether both ends are equal.
func (r Range) IsCollapsed() bool { return r.Start.IsEqual(r.End) }

// IsFlat reports whether both ends share a parent.
func (r Range) IsFlat() bool { return r.Start.Parent == r.End.Parent }

// Item is a range member: an *Element or a TextProxy.
type Item interface {
	Attributes() map[string]any
}

// TextProxy is the part of a text node that falls inside a range.
type TextProxy struct {
	Text   *Text
	Offset int
	Data   string
}

// Attributes returns the attributes of the underlying text.
func (p TextProxy) Attributes() map[string]any { return p.Text.Attributes() }

// Items returns the elements whose start falls inside the range and every
// text fragment covered by it, in document order.
func (r Range) Items() []Item {
	if r.Start.Parent == nil || r.End.Parent == nil || r.IsCollapsed() {
		return nil
	}
	var items []Item
	var walk func(el *Element)
	walk = func(el *Element) {
		offset := 0
		for _, child := range el.children {
			size := child.OffsetSize()
			from, to := offset, offset+size
			offset = to
			switch typed := child.(type) {
			case *Text:
				lo, ok := r.lowerBound(el, from)
				if !ok {
					continue
				}
				hi, ok := r.upperBound(el, to)
				if !ok || lo >= hi {
					continue
				}
				runes := []rune(typed.data)
				items = append(items, TextProxy{
					Text:   typed,
					Offset: lo - from,
					Data:   string(runes[lo-from : hi-from]),
				})
			case *Element:
				before := Position{Parent: el, Offset: from}
				if before.Compare(r.Start) >= 0 && before.IsBefore(r.End) {
					items = append(items, typed)
				}
				walk(typed)
			}
		}
	}
	walk(r.Start.Parent.Root())
	return items
}

func (r Range) lowerBound(el *Element, from int) (int, bool) {
	if r.Start.Parent == el {
		return max(from, r.Start.Offset), true
	}
	if r.Start.Compare(Position{Parent: el, Offset: from}) <= 0 {
		return from, true
	}
	return 0, false
}

func (r Range) upperBound(el *Element, to int) (int, bool) {
	if r.End.Parent == el {
		return min(to, r.End.Offset), true
	}
	if r.End.Compare(Position{Parent: el, Offset: to}) >= 0 {
		return to, true
	}
	return 0, false
}
