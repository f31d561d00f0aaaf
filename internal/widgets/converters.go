package widgets

import (
	"github.com/goliatone/go-richtext/internal/conversion"
	"github.com/goliatone/go-richtext/internal/model"
	"github.com/goliatone/go-richtext/internal/view"
)

// RegisterConverters installs the three converters of desc:
//
//   - upcast: a ViewName element with ClassName whose first child is text
//     becomes a widget element with the decoded attributes. With AllowEmpty
//     an element without children decodes "". Anything else is not a match
//     and is left to the other converters.
//   - dataDowncast: ViewName with class, the fixed view attributes and one
//     encoded text child.
//   - editingDowncast: the data structure marked as a widget.
func RegisterConverters(conv *conversion.Conversion, desc Descriptor) {
	conv.ForUpcast().ElementToElement(conversion.UpcastElement{
		View: view.Pattern{Name: desc.ViewName, Classes: []string{desc.ClassName}},
		Model: func(el *view.Element, api *conversion.UpcastAPI) *model.Element {
			if el.ChildCount() == 0 && desc.AllowEmpty {
				return api.Writer.CreateElement(string(desc.Kind), desc.Codec.Decode(""))
			}
			text, ok := el.Child(0).(*view.Text)
			if !ok {
				return nil
			}
			return api.Writer.CreateElement(string(desc.Kind), desc.Codec.Decode(text.Data()))
		},
		Priority: 1,
	})

	conv.ForDowncast(conversion.DataDowncast).ElementToElement(conversion.DowncastElement{
		Model: string(desc.Kind),
		View: func(el *model.Element, api *conversion.DowncastAPI) *view.Element {
			return createView(desc, el, api.Writer)
		},
	})

	conv.ForDowncast(conversion.EditingDowncast).ElementToElement(conversion.DowncastElement{
		Model: string(desc.Kind),
		View: func(el *model.Element, api *conversion.DowncastAPI) *view.Element {
			return view.ToWidget(api.Writer, createView(desc, el, api.Writer))
		},
	})
}

func createView(desc Descriptor, el *model.Element, w *view.Writer) *view.Element {
	span := w.CreateContainerElement(desc.ViewName, desc.viewAttributes())
	text := w.CreateText(desc.Codec.Encode(el.Attributes()))
	_ = w.Insert(w.CreatePositionAt(span, 0), text)
	return span
}
