package editor

import "github.com/goliatone/go-richtext/internal/model"

// SetSelection selects from the anchor path to the focus path. Paths are
// offset paths from the root as returned by model.Position.Path.
func (e *Editor) SetSelection(anchorPath, focusPath []int) error {
	root := e.model.Document().Root()
	anchor, err := model.PositionFromPath(root, anchorPath)
	if err != nil {
		return err
	}
	focus, err := model.PositionFromPath(root, focusPath)
	if err != nil {
		return err
	}
	return e.model.Change(func(w *model.Writer) error {
		return w.SetSelectionRange(model.NewRange(anchor, focus), focus.IsBefore(anchor))
	})
}

// SelectAll selects the content of every block.
func (e *Editor) SelectAll() error {
	root := e.model.Document().Root()
	return e.model.Change(func(w *model.Writer) error {
		return w.SetSelectionRange(model.NewRange(edgePosition(root, false), edgePosition(root, true)), false)
	})
}

// CollapseToStart places the caret at the start of the first block.
func (e *Editor) CollapseToStart() error { return e.collapse(false) }

// CollapseToEnd places the caret at the end of the last block.
func (e *Editor) CollapseToEnd() error { return e.collapse(true) }

func (e *Editor) collapse(end bool) error {
	root := e.model.Document().Root()
	return e.model.Change(func(w *model.Writer) error {
		return w.SetSelectionPosition(edgePosition(root, end))
	})
}

// edgePosition returns the first or last caret position inside the first or
// last block, falling back to the root itself when it has no element child.
func edgePosition(root *model.Element, end bool) model.Position {
	if root.IsEmpty() {
		return model.PositionAt(root, 0)
	}
	index := 0
	if end {
		index = root.ChildCount() - 1
	}
	block, ok := root.Child(index).(*model.Element)
	if !ok {
		if end {
			return model.PositionAtEnd(root)
		}
		return model.PositionAt(root, 0)
	}
	if end {
		return model.PositionAtEnd(block)
	}
	return model.PositionAt(block, 0)
}
