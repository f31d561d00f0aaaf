package model

// RootName is the schema item name of the document root.
const RootName = "$root"

// Document owns the root element and the document selection.
type Document struct {
	root      *Element
	selection *Selection
	version   int
}

// NewDocument returns an empty document with the caret at the root start.
func NewDocument() *Document {
	root := &Element{name: RootName, attrs: map[string]any{}}
	return &Document{
		root:      root,
		selection: &Selection{anchor: PositionAt(root, 0), focus: PositionAt(root, 0)},
	}
}

// Root returns the root element.
func (d *Document) Root() *Element { return d.root }

// Selection returns the live document selection.
func (d *Document) Selection() *Selection { return d.selection }

// Version increments on every committed change.
func (d *Document) Version() int { return d.version }

type snapshot struct {
	children []Node
	anchor   []int
	focus    []int
	override map[string]any
}

func (d *Document) snapshot() snapshot {
	snap := snapshot{
		anchor: d.selection.anchor.Path(),
		focus:  d.selection.focus.Path(),
	}
	if d.selection.overrides != nil {
		snap.override = copyAttrs(d.selection.overrides)
	}
	for _, child := range d.root.children {
		snap.children = append(snap.children, child.clone())
	}
	return snap
}

func (d *Document) restore(snap snapshot) {
	for _, child := range d.root.children {
		child.setParent(nil)
	}
	d.root.children = nil
	d.root.insertAt(0, snap.children...)
	anchor, err := PositionFromPath(d.root, snap.anchor)
	if err != nil {
		anchor = PositionAt(d.root, 0)
	}
	focus, err := PositionFromPath(d.root, snap.focus)
	if err != nil {
		focus = anchor
	}
	d.selection.set(anchor, focus)
	d.selection.overrides = snap.override
}

// normalizeSelection keeps the selection inside the live tree after a change.
func (d *Document) normalizeSelection() {
	sel := d.selection
	anchor := d.clamp(sel.anchor)
	focus := d.clamp(sel.focus)
	if !anchor.IsEqual(sel.anchor) || !focus.IsEqual(sel.focus) {
		overrides := sel.overrides
		sel.set(anchor, focus)
		sel.overrides = overrides
	}
}

func (d *Document) clamp(pos Position) Position {
	if pos.Parent == nil || pos.Parent.Root() != d.root {
		return PositionAt(d.root, 0)
	}
	if pos.Offset > pos.Parent.MaxOffset() {
		return PositionAtEnd(pos.Parent)
	}
	if pos.Offset < 0 {
		return PositionAt(pos.Parent, 0)
	}
	return pos
}
