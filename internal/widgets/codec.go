package widgets

import "unicode/utf8"

// Codec converts between widget attributes and the single text child of the
// serialised form.
type Codec interface {
	Encode(attrs map[string]any) string
	Decode(text string) map[string]any
}

// PlaceholderCodec wraps the name in braces: name "date" is "{date}".
type PlaceholderCodec struct{}

// Encode implements Codec.
func (PlaceholderCodec) Encode(attrs map[string]any) string {
	return "{" + stringAttr(attrs, AttributeName) + "}"
}

// Decode implements Codec. It strips the first and last rune whatever they
// are; text shorter than two runes decodes to the empty name.
func (PlaceholderCodec) Decode(text string) map[string]any {
	if utf8.RuneCountInString(text) < 2 {
		return map[string]any{AttributeName: ""}
	}
	_, first := utf8.DecodeRuneInString(text)
	_, last := utf8.DecodeLastRuneInString(text)
	return map[string]any{AttributeName: text[first : len(text)-last]}
}

// DirectionOverrideCodec stores the text verbatim. The name is not part of
// the serialised form, so decoding always yields Label.
type DirectionOverrideCodec struct {
	Label string
}

// Encode implements Codec.
func (DirectionOverrideCodec) Encode(attrs map[string]any) string {
	return stringAttr(attrs, AttributeTextVal)
}

// Decode implements Codec.
func (c DirectionOverrideCodec) Decode(text string) map[string]any {
	label := c.Label
	if label == "" {
		label = DefaultDirectionLabel
	}
	return map[string]any{AttributeName: label, AttributeTextVal: text}
}

func stringAttr(attrs map[string]any, key string) string {
	if value, ok := attrs[key].(string); ok {
		return value
	}
	return ""
}
