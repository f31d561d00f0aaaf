package view

import (
	"errors"
	"testing"
)

func TestRenderHTMLWritesClassFirstThenSortedAttributes(t *testing.T) {
	w := NewWriter()
	root := NewFragment()
	p := w.CreateContainerElement("p", nil)
	span := w.CreateContainerElement("span", map[string]string{"dir": "ltr", "class": "ignoreDirection"})
	w.Append(span, w.CreateText("abc"))
	w.Append(p, span)
	w.Append(root, p)

	got, err := RenderHTML(root)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	want := `<p><span class="ignoreDirection" dir="ltr">abc</span></p>`
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestParseHTMLBuildsContainerTree(t *testing.T) {
	root, err := ParseHTML(`<p>Hello <span class="placeholder extra">{date}</span><!-- note --></p>`)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if root.ChildCount() != 1 {
		t.Fatalf("expected one top-level node, got %d", root.ChildCount())
	}
	p, ok := root.Child(0).(*Element)
	if !ok || p.Name() != "p" {
		t.Fatalf("expected paragraph, got %#v", root.Child(0))
	}
	if p.ChildCount() != 2 {
		t.Fatalf("expected comment to be dropped, got %d children", p.ChildCount())
	}
	span := p.Child(1).(*Element)
	if !span.HasClass("placeholder") || !span.HasClass("extra") {
		t.Fatalf("expected both classes, got %v", span.Classes())
	}
	if span.TextContent() != "{date}" {
		t.Fatalf("unexpected span text %q", span.TextContent())
	}
}

func TestPatternMatch(t *testing.T) {
	w := NewWriter()
	span := w.CreateContainerElement("span", map[string]string{"class": "placeholder ck-widget", "dir": "ltr"})

	cases := []struct {
		name    string
		pattern Pattern
		want    bool
	}{
		{name: "name and class", pattern: Pattern{Name: "span", Classes: []string{"placeholder"}}, want: true},
		{name: "wrong name", pattern: Pattern{Name: "div", Classes: []string{"placeholder"}}, want: false},
		{name: "missing class", pattern: Pattern{Name: "span", Classes: []string{"ignoreDirection"}}, want: false},
		{name: "attribute value", pattern: Pattern{Attributes: map[string]string{"dir": "ltr"}}, want: true},
		{name: "attribute mismatch", pattern: Pattern{Attributes: map[string]string{"dir": "rtl"}}, want: false},
		{name: "attribute presence", pattern: Pattern{Attributes: map[string]string{"dir": ""}}, want: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.pattern.Match(span); got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
	if (Pattern{}).Match(NewFragment()) {
		t.Fatalf("expected fragments never to match")
	}
}

func TestToWidgetMarksElement(t *testing.T) {
	w := NewWriter()
	span := w.CreateContainerElement("span", map[string]string{"class": "placeholder"})
	if IsWidget(span) {
		t.Fatalf("expected plain element not to be a widget")
	}
	ToWidget(w, span)
	if !IsWidget(span) {
		t.Fatalf("expected widget marker")
	}
	if value, _ := span.Attribute("contenteditable"); value != "false" {
		t.Fatalf("expected contenteditable=false, got %q", value)
	}
	if value, _ := span.Attribute("class"); value != "placeholder ck-widget" {
		t.Fatalf("unexpected class list %q", value)
	}
}

func TestWriterInsertRejectsTextParent(t *testing.T) {
	w := NewWriter()
	text := w.CreateText("abc")
	err := w.Insert(Position{Parent: text, Offset: 1}, w.CreateText("x"))
	if !errors.Is(err, ErrInvalidPosition) {
		t.Fatalf("expected ErrInvalidPosition, got %v", err)
	}
}

func TestPositionAncestors(t *testing.T) {
	w := NewWriter()
	root := NewFragment()
	p := w.CreateContainerElement("p", nil)
	text := w.CreateText("abc")
	w.Append(p, text)
	w.Append(root, p)

	pos := Position{Parent: text, Offset: 0}
	ancestors := pos.Ancestors()
	if len(ancestors) != 2 || ancestors[0] != p || ancestors[1] != root {
		t.Fatalf("unexpected ancestors %v", ancestors)
	}
	if !pos.IsAtStart() || pos.IsAtEnd() {
		t.Fatalf("expected start position")
	}
	if after := PositionAfter(p); after.Parent != root || after.Offset != 1 {
		t.Fatalf("unexpected position after paragraph %+v", after)
	}
}
