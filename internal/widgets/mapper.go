package widgets

import (
	"github.com/goliatone/go-richtext/internal/conversion"
	"github.com/goliatone/go-richtext/internal/model"
	"github.com/goliatone/go-richtext/internal/view"
)

// OutsideWidgetPosition returns a mapper hook that keeps view positions out
// of widgets. When the nearest mapped view ancestor satisfies match, the
// position resolves before the widget if it sits at the start of its parent
// and after it otherwise.
func OutsideWidgetPosition(match func(*view.Element) bool) conversion.PositionHook {
	return func(data *conversion.PositionData) {
		ancestor := data.Mapper.FindMappedViewAncestor(data.ViewPosition)
		if ancestor == nil || !match(ancestor) {
			return
		}
		el := data.Mapper.ToModelElement(ancestor)
		if el == nil || el.Parent() == nil {
			return
		}
		var pos model.Position
		if data.ViewPosition.IsAtStart() {
			pos = model.PositionBefore(el)
		} else {
			pos = model.PositionAfter(el)
		}
		data.ModelPosition = &pos
	}
}

// HasClass matches view elements carrying class.
func HasClass(class string) func(*view.Element) bool {
	return func(el *view.Element) bool { return el.HasClass(class) }
}
