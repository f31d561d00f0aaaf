package editor

import (
	"github.com/goliatone/go-richtext/internal/conversion"
	"github.com/goliatone/go-richtext/internal/model"
	"github.com/goliatone/go-richtext/internal/schema"
	"github.com/goliatone/go-richtext/internal/view"
)

// Text attributes installed by Essentials.
const (
	AttributeBold          = "bold"
	AttributeItalic        = "italic"
	AttributeUnderline     = "underline"
	AttributeStrikethrough = "strikethrough"
	AttributeSubscript     = "subscript"
	AttributeSuperscript   = "superscript"
	AttributeLinkHref      = "linkHref"
)

var formatting = []conversion.AttributeToElement{
	{Model: AttributeLinkHref, View: "a", ValueAttribute: "href"},
	{Model: AttributeBold, View: "strong", ViewAlternatives: []string{"b"}},
	{Model: AttributeItalic, View: "i", ViewAlternatives: []string{"em"}},
	{Model: AttributeUnderline, View: "u"},
	{Model: AttributeStrikethrough, View: "s", ViewAlternatives: []string{"del", "strike"}},
	{Model: AttributeSubscript, View: "sub"},
	{Model: AttributeSuperscript, View: "sup"},
}

// Essentials installs paragraphs, the configured heading blocks and the
// basic text formatting attributes.
type Essentials struct{}

// PluginName implements Plugin.
func (Essentials) PluginName() string { return "Essentials" }

// Init implements Plugin.
func (Essentials) Init(ed *Editor) error {
	s := ed.Schema()
	conv := ed.Conversion()

	if err := s.Register(model.ParagraphName, schema.Definition{InheritAllFrom: schema.Block}); err != nil {
		return err
	}
	registerBlock(conv, model.ParagraphName, "p")

	for _, option := range ed.Config().Heading.Options {
		if option.Model == model.ParagraphName || option.View == "" {
			continue
		}
		if err := s.Register(option.Model, schema.Definition{InheritAllFrom: schema.Block}); err != nil {
			return err
		}
		registerBlock(conv, option.Model, option.View)
	}

	attrs := make([]string, 0, len(formatting))
	for _, def := range formatting {
		attrs = append(attrs, def.Model)
		conv.AttributeToElement(def)
	}
	return s.Extend(schema.Text, schema.Definition{AllowAttributes: attrs})
}

func registerBlock(conv *conversion.Conversion, modelName, viewName string) {
	conv.ForUpcast().ElementToElement(conversion.UpcastElement{
		View: view.Pattern{Name: viewName},
		Model: func(_ *view.Element, api *conversion.UpcastAPI) *model.Element {
			return api.Writer.CreateElement(modelName, nil)
		},
	})
	builder := func(_ *model.Element, api *conversion.DowncastAPI) *view.Element {
		return api.Writer.CreateContainerElement(viewName, nil)
	}
	conv.ForDowncast(conversion.EditingDowncast).ElementToElement(conversion.DowncastElement{Model: modelName, View: builder})
	conv.ForDowncast(conversion.DataDowncast).ElementToElement(conversion.DowncastElement{Model: modelName, View: builder})
}
