package model

// SelectionMode controls how SetSelection places the selection relative to a node.
type SelectionMode string

const (
	// SelectOn selects the node itself as a unit.
	SelectOn SelectionMode = "on"
	// SelectIn selects the whole content of an element.
	SelectIn SelectionMode = "in"
	// SelectBefore collapses the selection before the node.
	SelectBefore SelectionMode = "before"
	// SelectAfter collapses the selection after the node.
	SelectAfter SelectionMode = "after"
)

// Selection is the document selection: an anchor, a focus and optional
// attribute overrides set while the caret is collapsed.
type Selection struct {
	anchor    Position
	focus     Position
	overrides map[string]any
}

// Anchor returns where the selection started.
func (s *Selection) Anchor() Position { return s.anchor }

// Focus returns where the selection ends; the caret for collapsed selections.
func (s *Selection) Focus() Position { return s.focus }

// IsCollapsed reports whether anchor and focus coincide.
func (s *Selection) IsCollapsed() bool { return s.anchor.IsEqual(s.focus) }

// IsBackward reports whether the focus precedes the anchor.
func (s *Selection) IsBackward() bool { return s.focus.IsBefore(s.anchor) }

// FirstRange returns the selection as an ordered range.
func (s *Selection) FirstRange() Range { return NewRange(s.anchor, s.focus) }

// SelectedElement returns the element selected as a unit, or nil.
func (s *Selection) SelectedElement() *Element {
	r := s.FirstRange()
	if !r.IsFlat() {
		return nil
	}
	el, ok := r.Start.NodeAfter().(*Element)
	if !ok || el == nil {
		return nil
	}
	if !PositionAfter(el).IsEqual(r.End) {
		return nil
	}
	return el
}

// Attributes returns the text attributes a new inline node inherits from the
// selection. Explicit overrides win. For a non-collapsed selection the first
// text fragment of the range is used; for a caret the text before it, or the
// text after it when nothing precedes the caret.
func (s *Selection) Attributes() map[string]any {
	if s.overrides != nil {
		return copyAttrs(s.overrides)
	}
	if !s.IsCollapsed() {
		for _, item := range s.FirstRange().Items() {
			if proxy, ok := item.(TextProxy); ok {
				return proxy.Attributes()
			}
		}
	}
	return surroundingAttributes(s.FirstRange().Start)
}

func surroundingAttributes(pos Position) map[string]any {
	if pos.Parent == nil {
		return map[string]any{}
	}
	if text := pos.TextNode(); text != nil {
		return text.Attributes()
	}
	if text, ok := pos.NodeBefore().(*Text); ok {
		return text.Attributes()
	}
	if text, ok := pos.NodeAfter().(*Text); ok {
		return text.Attributes()
	}
	return map[string]any{}
}

func (s *Selection) set(anchor, focus Position) {
	s.anchor = anchor
	s.focus = focus
	s.overrides = nil
}
