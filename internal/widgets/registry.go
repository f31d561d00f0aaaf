package widgets

import (
	"fmt"
	"sync"
)

// Registry is the lookup table of widget descriptors keyed by kind.
type Registry struct {
	mu          sync.RWMutex
	descriptors map[Kind]Descriptor
	order       []Kind
}

// NewRegistry constructs an empty registry.
func NewRegistry() *Registry {
	return &Registry{descriptors: make(map[Kind]Descriptor)}
}

// DefaultRegistry returns a registry holding both built-in widgets, the
// placeholder first.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	_ = r.Register(PlaceholderDescriptor())
	_ = r.Register(DirectionOverrideDescriptor(DefaultDirectionLabel))
	return r
}

// Register adds a descriptor.
func (r *Registry) Register(desc Descriptor) error {
	if err := desc.validate(); err != nil {
		return fmt.Errorf("%w: %q", err, desc.Kind)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.descriptors[desc.Kind]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateKind, desc.Kind)
	}
	r.descriptors[desc.Kind] = desc
	r.order = append(r.order, desc.Kind)
	return nil
}

// Get resolves a descriptor by kind.
func (r *Registry) Get(kind Kind) (Descriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	desc, ok := r.descriptors[kind]
	return desc, ok
}

// Lookup resolves a descriptor or returns ErrUnknownKind.
func (r *Registry) Lookup(kind Kind) (Descriptor, error) {
	desc, ok := r.Get(kind)
	if !ok {
		return Descriptor{}, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}
	return desc, nil
}

// List returns descriptors in registration order.
func (r *Registry) List() []Descriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Descriptor, 0, len(r.order))
	for _, kind := range r.order {
		out = append(out, r.descriptors[kind])
	}
	return out
}
