package editor

import (
	"github.com/goliatone/go-richtext/internal/conversion"
	"github.com/goliatone/go-richtext/internal/model"
	"github.com/goliatone/go-richtext/internal/view"
)

// SetData replaces the document with the upcast of html in a single change
// and puts the caret at the document start. An empty result gets one empty
// paragraph.
func (e *Editor) SetData(html string) error {
	if e.sanitizer != nil {
		html = e.sanitizer.Sanitize(html)
	}
	fragment, err := view.ParseHTML(html)
	if err != nil {
		return err
	}
	err = e.model.Change(func(w *model.Writer) error {
		root := e.model.Document().Root()
		for root.ChildCount() > 0 {
			if err := w.Remove(root.Child(0)); err != nil {
				return err
			}
		}
		if err := e.conv.Upcast(fragment, w, root); err != nil {
			return err
		}
		if root.IsEmpty() && e.schema.CheckChild(root, model.ParagraphName) {
			if err := w.Append(w.CreateElement(model.ParagraphName, nil), root); err != nil {
				return err
			}
		}
		for _, validate := range e.validators {
			if err := validate(root); err != nil {
				return err
			}
		}
		return w.SetSelectionPosition(edgePosition(root, false))
	})
	if err != nil {
		e.logger.Warn("editor.data.rejected", "error", err)
		return err
	}
	e.logger.Debug("editor.data.loaded", "version", e.model.Document().Version())
	return nil
}

// GetData serialises the document through the data pipeline.
func (e *Editor) GetData() (string, error) {
	fragment, err := e.conv.Downcast(conversion.DataDowncast, e.model.Document().Root())
	if err != nil {
		return "", err
	}
	return view.RenderHTML(fragment)
}

// EditingView returns the editing tree built after the last committed change.
func (e *Editor) EditingView() *view.Element { return e.editing }

// EditingHTML renders the editing tree, widget marking included.
func (e *Editor) EditingHTML() (string, error) {
	return view.RenderHTML(e.editing)
}

// ViewToModelPosition maps a position in the editing tree into the model.
func (e *Editor) ViewToModelPosition(pos view.Position) (model.Position, error) {
	return e.conv.Mapper().ToModelPosition(pos)
}
