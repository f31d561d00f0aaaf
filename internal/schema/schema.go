// Package schema declares which model items may appear where and which
// attributes they may carry. Definitions reference each other by name
// (AllowWhere, AllowContentOf, AllowAttributesOf, InheritAllFrom) and are
// resolved lazily on the first query after a registration.
package schema

import (
	"errors"
	"fmt"
	"slices"
	"sort"
	"strings"
	"sync"

	"github.com/goliatone/go-richtext/internal/model"
)

const (
	// Root is the generic item for document roots.
	Root = model.RootName
	// Block is the generic item block elements inherit from.
	Block = "$block"
	// Text is the generic item for text nodes.
	Text = model.TextItem
)

var (
	// ErrDuplicateItem indicates an attempt to register an item twice.
	ErrDuplicateItem = errors.New("schema: duplicate item")
	// ErrUnknownItem indicates an operation on an unregistered item.
	ErrUnknownItem = errors.New("schema: unknown item")
	// ErrInvalidItem indicates an empty item name.
	ErrInvalidItem = errors.New("schema: invalid item name")
)

// Checker is the part of the schema consumed by commands.
type Checker interface {
	CheckChild(parent *model.Element, child string) bool
}

// Definition is the declarative rule set for one item.
type Definition struct {
	AllowIn           []string
	AllowWhere        string
	AllowContentOf    string
	AllowAttributes   []string
	AllowAttributesOf string
	InheritAllFrom    string

	IsBlock  bool
	IsInline bool
	IsObject bool
	IsLimit  bool
}

type compiled struct {
	allowIn    map[string]struct{}
	attributes map[string]struct{}
	isBlock    bool
	isInline   bool
	isObject   bool
	isLimit    bool
}

// Schema is the registry of item definitions.
type Schema struct {
	mu          sync.RWMutex
	definitions map[string][]Definition
	order       []string
	compiled    map[string]*compiled
}

// New returns a schema with the generic $root, $block and $text items.
func New() *Schema {
	s := &Schema{definitions: make(map[string][]Definition)}
	_ = s.Register(Root, Definition{IsLimit: true})
	_ = s.Register(Block, Definition{AllowIn: []string{Root}, IsBlock: true})
	_ = s.Register(Text, Definition{AllowIn: []string{Block}, IsInline: true})
	return s
}

// Register adds a new item definition.
func (s *Schema) Register(name string, def Definition) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrInvalidItem
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.definitions[name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateItem, name)
	}
	s.definitions[name] = []Definition{def}
	s.order = append(s.order, name)
	s.compiled = nil
	return nil
}

// Extend merges an additional definition into a registered item.
func (s *Schema) Extend(name string, def Definition) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.definitions[name]; !exists {
		return fmt.Errorf("%w: %s", ErrUnknownItem, name)
	}
	s.definitions[name] = append(s.definitions[name], def)
	s.compiled = nil
	return nil
}

// IsRegistered reports whether name has a definition.
func (s *Schema) IsRegistered(name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.definitions[name]
	return ok
}

// Items lists registered item names in registration order.
func (s *Schema) Items() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.order)
}

// CheckChild reports whether an item named child may be a direct child of
// parent. A nil parent is treated as the document root.
func (s *Schema) CheckChild(parent *model.Element, child string) bool {
	name := Root
	if parent != nil {
		name = parent.Name()
	}
	return s.CheckChildOf(name, child)
}

// CheckChildOf is CheckChild keyed by the parent item name.
func (s *Schema) CheckChildOf(parentName, child string) bool {
	items := s.resolve()
	if _, ok := items[parentName]; !ok {
		return false
	}
	item, ok := items[child]
	if !ok {
		return false
	}
	_, allowed := item.allowIn[parentName]
	return allowed
}

// CheckAttribute reports whether item may carry attr.
func (s *Schema) CheckAttribute(item, attr string) bool {
	c, ok := s.resolve()[item]
	if !ok {
		return false
	}
	_, allowed := c.attributes[attr]
	return allowed
}

// AllowedAttributes lists the attributes item may carry, sorted by name.
func (s *Schema) AllowedAttributes(item string) []string {
	c, ok := s.resolve()[item]
	if !ok {
		return nil
	}
	out := make([]string, 0, len(c.attributes))
	for attr := range c.attributes {
		out = append(out, attr)
	}
	sort.Strings(out)
	return out
}

// IsInline reports whether item flows inside text.
func (s *Schema) IsInline(item string) bool {
	c, ok := s.resolve()[item]
	return ok && c.isInline
}

// IsObject reports whether item is a self-contained unit the caret cannot enter.
func (s *Schema) IsObject(item string) bool {
	c, ok := s.resolve()[item]
	return ok && c.isObject
}

// IsBlock reports whether item is a block.
func (s *Schema) IsBlock(item string) bool {
	c, ok := s.resolve()[item]
	return ok && c.isBlock
}

// IsLimit reports whether item bounds selection and insertion operations.
// Objects are limits too.
func (s *Schema) IsLimit(item string) bool {
	c, ok := s.resolve()[item]
	return ok && (c.isLimit || c.isObject)
}

var (
	_ model.Schema = (*Schema)(nil)
	_ Checker      = (*Schema)(nil)
)
