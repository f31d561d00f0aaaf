package widgets

import (
	"maps"
	"slices"

	"github.com/goliatone/go-richtext/internal/model"
	"github.com/goliatone/go-richtext/internal/schema"
)

// Descriptor is the single source of truth for one widget kind.
type Descriptor struct {
	Kind  Kind
	Label string

	// ViewName and ClassName identify the serialised element.
	ViewName  string
	ClassName string
	// ViewAttributes are fixed attributes written on every rendering.
	ViewAttributes map[string]string
	// AllowEmpty lets an element without a text child upcast as Decode("").
	// Set it when Encode can return an empty string.
	AllowEmpty bool

	// Attributes are the widget's own model attributes.
	Attributes []string
	Codec      Codec

	// Build returns the widget's own attributes for an insertion with value
	// under the current selection.
	Build func(value string, sel *model.Selection) map[string]any
}

// SchemaDefinition returns the schema rules every widget shares: allowed
// wherever text is, inline, an object, carrying text formatting.
func (d Descriptor) SchemaDefinition() schema.Definition {
	return schema.Definition{
		AllowWhere:        schema.Text,
		IsInline:          true,
		IsObject:          true,
		AllowAttributesOf: schema.Text,
		AllowAttributes:   slices.Clone(d.Attributes),
	}
}

// AttributeSchema returns the JSON Schema of the widget's own attributes.
// Inherited formatting is allowed alongside them.
func (d Descriptor) AttributeSchema() map[string]any {
	properties := map[string]any{}
	required := []any{}
	for _, attr := range d.Attributes {
		properties[attr] = map[string]any{"type": "string"}
		required = append(required, attr)
	}
	return map[string]any{
		"$schema":    "https://json-schema.org/draft/2020-12/schema",
		"title":      string(d.Kind),
		"type":       "object",
		"properties": properties,
		"required":   required,
	}
}

func (d Descriptor) viewAttributes() map[string]string {
	attrs := maps.Clone(d.ViewAttributes)
	if attrs == nil {
		attrs = map[string]string{}
	}
	attrs["class"] = d.ClassName
	return attrs
}

func (d Descriptor) validate() error {
	switch {
	case d.Kind == "", d.ViewName == "", d.ClassName == "":
		return ErrInvalidDescriptor
	case d.Codec == nil, d.Build == nil:
		return ErrInvalidDescriptor
	}
	return nil
}

// PlaceholderDescriptor describes the named placeholder token rendered as
// <span class="placeholder">{name}</span>.
func PlaceholderDescriptor() Descriptor {
	return Descriptor{
		Kind:       KindPlaceholder,
		Label:      "Placeholder",
		ViewName:   "span",
		ClassName:  "placeholder",
		Attributes: []string{AttributeName},
		Codec:      PlaceholderCodec{},
		Build: func(value string, _ *model.Selection) map[string]any {
			return map[string]any{AttributeName: value}
		},
	}
}

// DirectionOverrideDescriptor describes the forced left-to-right wrapper
// rendered as <span class="ignoreDirection" dir="ltr">textVal</span>. The
// wrapped text is the data of the last text item in the selection's first
// range; an empty value falls back to label for the name. A collapsed caret
// wraps no text and serialises as an empty span. When the selection mixes
// formats only the last text run is kept, so "He<strong>llo</strong>"
// becomes textVal "llo" and the leading "He" is removed with the selection.
func DirectionOverrideDescriptor(label string) Descriptor {
	if label == "" {
		label = DefaultDirectionLabel
	}
	return Descriptor{
		Kind:           KindDirectionOverride,
		Label:          label,
		ViewName:       "span",
		ClassName:      "ignoreDirection",
		ViewAttributes: map[string]string{"dir": "ltr"},
		AllowEmpty:     true,
		Attributes:     []string{AttributeName, AttributeTextVal},
		Codec:          DirectionOverrideCodec{Label: label},
		Build: func(value string, sel *model.Selection) map[string]any {
			if value == "" {
				value = label
			}
			return map[string]any{AttributeName: value, AttributeTextVal: lastSelectedText(sel)}
		},
	}
}

func lastSelectedText(sel *model.Selection) string {
	if sel == nil {
		return ""
	}
	text := ""
	for _, item := range sel.FirstRange().Items() {
		if proxy, ok := item.(model.TextProxy); ok {
			text = proxy.Data
		}
	}
	return text
}
