package schema

import (
	"errors"
	"reflect"
	"testing"

	"github.com/goliatone/go-richtext/internal/model"
)

func newEditorSchema(t *testing.T) *Schema {
	t.Helper()
	s := New()
	if err := s.Register("paragraph", Definition{InheritAllFrom: Block}); err != nil {
		t.Fatalf("register paragraph: %v", err)
	}
	if err := s.Extend(Text, Definition{AllowAttributes: []string{"bold", "italic"}}); err != nil {
		t.Fatalf("extend text: %v", err)
	}
	return s
}

func TestInheritAllFromBlockAllowsTextInParagraph(t *testing.T) {
	s := newEditorSchema(t)

	if !s.CheckChildOf(Root, "paragraph") {
		t.Fatalf("expected paragraph to be allowed in root")
	}
	if !s.CheckChildOf("paragraph", Text) {
		t.Fatalf("expected text to be allowed in paragraph")
	}
	if s.CheckChildOf(Root, Text) {
		t.Fatalf("expected text to be rejected directly in root")
	}
	if !s.IsBlock("paragraph") {
		t.Fatalf("expected paragraph to inherit the block flag")
	}
}

func TestInlineObjectDefinitionResolvesLazily(t *testing.T) {
	s := New()
	// Registered before paragraph and before text attributes exist.
	if err := s.Register("token", Definition{
		AllowWhere:        Text,
		AllowAttributesOf: Text,
		AllowAttributes:   []string{"name"},
		IsInline:          true,
		IsObject:          true,
	}); err != nil {
		t.Fatalf("register token: %v", err)
	}
	if err := s.Register("paragraph", Definition{InheritAllFrom: Block}); err != nil {
		t.Fatalf("register paragraph: %v", err)
	}
	if err := s.Extend(Text, Definition{AllowAttributes: []string{"bold"}}); err != nil {
		t.Fatalf("extend text: %v", err)
	}

	if !s.CheckChildOf("paragraph", "token") {
		t.Fatalf("expected token wherever text is allowed")
	}
	if s.CheckChildOf("token", "token") || s.CheckChildOf("token", Text) {
		t.Fatalf("expected token to accept no children")
	}
	if got := s.AllowedAttributes("token"); !reflect.DeepEqual(got, []string{"bold", "name"}) {
		t.Fatalf("unexpected token attributes %v", got)
	}
	if !s.IsInline("token") || !s.IsObject("token") || !s.IsLimit("token") {
		t.Fatalf("expected token to be an inline object")
	}
}

func TestCheckChildWithElementParent(t *testing.T) {
	s := newEditorSchema(t)
	paragraph := model.NewElement("paragraph", nil)

	if !s.CheckChild(paragraph, Text) {
		t.Fatalf("expected text in paragraph element")
	}
	if !s.CheckChild(nil, "paragraph") {
		t.Fatalf("expected nil parent to behave as root")
	}
	if s.CheckChild(model.NewElement("unregistered", nil), Text) {
		t.Fatalf("expected unknown parents to reject children")
	}
	if s.CheckChildOf("paragraph", "unregistered") {
		t.Fatalf("expected unknown children to be rejected")
	}
}

func TestRegisterErrors(t *testing.T) {
	s := New()
	if err := s.Register(Text, Definition{}); !errors.Is(err, ErrDuplicateItem) {
		t.Fatalf("expected ErrDuplicateItem, got %v", err)
	}
	if err := s.Register("  ", Definition{}); !errors.Is(err, ErrInvalidItem) {
		t.Fatalf("expected ErrInvalidItem, got %v", err)
	}
	if err := s.Extend("missing", Definition{}); !errors.Is(err, ErrUnknownItem) {
		t.Fatalf("expected ErrUnknownItem, got %v", err)
	}
}

func TestCheckAttribute(t *testing.T) {
	s := newEditorSchema(t)
	if !s.CheckAttribute(Text, "bold") {
		t.Fatalf("expected bold on text")
	}
	if s.CheckAttribute("paragraph", "bold") {
		t.Fatalf("expected paragraph not to inherit text attributes")
	}
}
