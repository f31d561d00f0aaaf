package model

import "fmt"

// ParagraphName is the block element used when inline content has to be
// wrapped before it can live in a limit element such as the root.
const ParagraphName = "paragraph"

// Schema is the subset of the schema registry the model consults during
// generic insertions.
type Schema interface {
	CheckChild(parent *Element, child string) bool
	CheckChildOf(parentName, child string) bool
}

// ChangeListener observes committed changes.
type ChangeListener func(doc *Document)

// Model ties a document to its schema and owns the atomic change scope.
type Model struct {
	doc       *Document
	schema    Schema
	writer    *Writer
	listeners []ChangeListener
}

// New returns a model over an empty document.
func New(schema Schema) *Model {
	return &Model{doc: NewDocument(), schema: schema}
}

// Document returns the edited document.
func (m *Model) Document() *Document { return m.doc }

// Schema returns the schema used by generic insertions.
func (m *Model) Schema() Schema { return m.schema }

// OnChange registers a listener run once per committed outermost change.
func (m *Model) OnChange(listener ChangeListener) {
	if listener != nil {
		m.listeners = append(m.listeners, listener)
	}
}

// InChange reports whether a change scope is open.
func (m *Model) InChange() bool { return m.writer != nil }

// Change runs fn inside the atomic mutation scope. Nested calls join the
// enclosing scope. When the outermost fn returns an error every mutation made
// inside the scope is discarded.
func (m *Model) Change(fn func(w *Writer) error) error {
	if fn == nil {
		return nil
	}
	if m.writer != nil {
		return fn(m.writer)
	}

	snap := m.doc.snapshot()
	w := &Writer{model: m, active: true}
	m.writer = w

	err := fn(w)

	w.active = false
	m.writer = nil

	if err != nil {
		m.doc.restore(snap)
		return err
	}

	m.doc.normalizeSelection()
	m.doc.version++
	for _, listener := range m.listeners {
		listener(m.doc)
	}
	return nil
}

// InsertContent inserts node at the document selection, replacing a
// non-collapsed selection. When the caret parent cannot hold the node but can
// hold a paragraph that can, the node is wrapped in one. The selection ends
// up right after the inserted node.
func (m *Model) InsertContent(w *Writer, node Node) error {
	if err := w.check(); err != nil {
		return err
	}
	sel := m.doc.selection
	r := sel.FirstRange()
	if !r.IsCollapsed() {
		if err := w.DeleteContent(r); err != nil {
			return err
		}
	}
	pos := r.Start
	name := NodeName(node)

	if m.schema == nil || m.schema.CheckChild(pos.Parent, name) {
		if err := w.Insert(node, pos); err != nil {
			return err
		}
		return w.SetSelection(node, SelectAfter)
	}

	if m.schema.CheckChild(pos.Parent, ParagraphName) && m.schema.CheckChildOf(ParagraphName, name) {
		paragraph := w.CreateElement(ParagraphName, nil)
		paragraph.insertAt(0, node)
		if err := w.Insert(paragraph, pos); err != nil {
			return err
		}
		return w.SetSelection(node, SelectAfter)
	}

	return fmt.Errorf("%w: %s in %s", ErrInsertNotAllowed, name, pos.Parent.Name())
}
