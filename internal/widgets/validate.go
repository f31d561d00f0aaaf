package widgets

import (
	"errors"
	"fmt"
	"slices"

	"github.com/goliatone/go-richtext/internal/model"
	"github.com/goliatone/go-richtext/internal/schema"
	"github.com/goliatone/go-richtext/internal/validation"
)

// DocumentValidator checks that every widget in a document is a legal inline
// leaf and that its own attributes match the descriptor's attribute schema.
type DocumentValidator struct {
	schema    *schema.Schema
	registry  *Registry
	validator *validation.Validator
}

// NewDocumentValidator compiles the attribute schema of every descriptor.
func NewDocumentValidator(s *schema.Schema, reg *Registry) (*DocumentValidator, error) {
	v := validation.NewValidator()
	for _, desc := range reg.List() {
		if err := v.Register(string(desc.Kind), desc.AttributeSchema()); err != nil {
			return nil, err
		}
	}
	return &DocumentValidator{schema: s, registry: reg, validator: v}, nil
}

// ValidateDocument is a one-shot NewDocumentValidator + Validate.
func ValidateDocument(s *schema.Schema, reg *Registry, root *model.Element) error {
	v, err := NewDocumentValidator(s, reg)
	if err != nil {
		return err
	}
	return v.Validate(root)
}

// Validate walks root and joins every violation found.
func (v *DocumentValidator) Validate(root *model.Element) error {
	var problems []error
	root.Walk(func(node model.Node) bool {
		el, ok := node.(*model.Element)
		if !ok {
			return true
		}
		desc, ok := v.registry.Get(Kind(el.Name()))
		if !ok {
			return true
		}
		problems = append(problems, v.check(desc, el)...)
		return false
	})
	if len(problems) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidDocument, errors.Join(problems...))
}

func (v *DocumentValidator) check(desc Descriptor, el *model.Element) []error {
	kind := string(desc.Kind)
	var problems []error
	if !el.IsEmpty() {
		problems = append(problems, fmt.Errorf("%s at %v has children", kind, model.PositionBefore(el).Path()))
	}
	if !v.schema.IsInline(kind) || !v.schema.IsObject(kind) {
		problems = append(problems, fmt.Errorf("%s is not registered as an inline object", kind))
	}
	if !v.schema.CheckChild(el.Parent(), kind) {
		problems = append(problems, fmt.Errorf("%s is not allowed in %s", kind, el.Parent().Name()))
	}

	own := map[string]any{}
	for key, value := range el.Attributes() {
		if slices.Contains(desc.Attributes, key) {
			own[key] = value
			continue
		}
		if !v.schema.CheckAttribute(kind, key) {
			problems = append(problems, fmt.Errorf("%s carries disallowed attribute %q", kind, key))
		}
	}
	if err := v.validator.Validate(kind, own); err != nil {
		problems = append(problems, err)
	}
	return problems
}
