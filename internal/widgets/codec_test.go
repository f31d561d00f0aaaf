package widgets

import "testing"

func TestPlaceholderCodec(t *testing.T) {
	codec := PlaceholderCodec{}
	cases := []struct {
		text string
		name string
	}{
		{text: "{date}", name: "date"},
		{text: "{first name}", name: "first name"},
		{text: "{}", name: ""},
		{text: "[x]", name: "x"},
		{text: "{é}", name: "é"},
		{text: "«名»", name: "名"},
		{text: "{", name: ""},
		{text: "", name: ""},
	}
	for _, tc := range cases {
		t.Run(tc.text, func(t *testing.T) {
			got := codec.Decode(tc.text)[AttributeName]
			if got != tc.name {
				t.Fatalf("decode %q: expected %q, got %q", tc.text, tc.name, got)
			}
		})
	}
	if got := codec.Encode(map[string]any{AttributeName: "surname"}); got != "{surname}" {
		t.Fatalf("unexpected encoding %q", got)
	}
	if got := codec.Encode(nil); got != "{}" {
		t.Fatalf("expected missing name to encode as {}, got %q", got)
	}
}

func TestDirectionOverrideCodec(t *testing.T) {
	codec := DirectionOverrideCodec{Label: "LTR"}
	attrs := codec.Decode("Hello")
	if attrs[AttributeTextVal] != "Hello" || attrs[AttributeName] != "LTR" {
		t.Fatalf("unexpected decode %v", attrs)
	}
	if got := codec.Encode(map[string]any{AttributeName: "ignored", AttributeTextVal: "abc"}); got != "abc" {
		t.Fatalf("expected verbatim text, got %q", got)
	}
	if got := (DirectionOverrideCodec{}).Decode("x")[AttributeName]; got != DefaultDirectionLabel {
		t.Fatalf("expected default label, got %v", got)
	}
}
