package widgets

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/goliatone/go-formfields/pkg/field"
)

// Translate resolves a message key in the language of the field being
// rendered.
type Translate func(key string) (string, error)

// Builder contributes kind-specific values to the template view. The base view
// (id, name, described_by, errors, label, attrs...) is already populated.
type Builder func(w Widget, state field.State, tr Translate) (map[string]any, error)

// Descriptor binds a widget kind to its template and view builder.
type Descriptor struct {
	Kind     Kind
	Template string
	Build    Builder
	// Bare descriptors are rendered without the field wrapper and errors
	// block.
	Bare bool
}

// Registry tracks widget descriptors keyed by kind. Callers can register new
// kinds or override the defaults.
type Registry struct {
	mu    sync.RWMutex
	kinds map[Kind]Descriptor
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{kinds: make(map[Kind]Descriptor)}
}

// Clone returns a copy of the registry to allow isolated mutations.
func (r *Registry) Clone() *Registry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cloned := NewRegistry()
	for kind, descriptor := range r.kinds {
		cloned.kinds[kind] = descriptor
	}
	return cloned
}

// Register associates a descriptor with its kind. Existing entries are
// replaced. An empty Template defaults to templates/<kind>.tmpl.
func (r *Registry) Register(descriptor Descriptor) error {
	kind := normalizeKind(descriptor.Kind)
	if kind == "" {
		return fmt.Errorf("widgets: widget kind is required")
	}
	descriptor.Kind = kind
	if strings.TrimSpace(descriptor.Template) == "" {
		descriptor.Template = templateName(kind)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.kinds[kind] = descriptor
	return nil
}

// MustRegister mirrors Register but panics on error, simplifying default
// registry setup.
func (r *Registry) MustRegister(descriptor Descriptor) {
	if err := r.Register(descriptor); err != nil {
		panic(err)
	}
}

// Descriptor fetches a descriptor by kind.
func (r *Registry) Descriptor(kind Kind) (Descriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	descriptor, ok := r.kinds[normalizeKind(kind)]
	return descriptor, ok
}

// Kinds returns the registered kinds in sorted order.
func (r *Registry) Kinds() []Kind {
	r.mu.RLock()
	defer r.mu.RUnlock()
	kinds := make([]Kind, 0, len(r.kinds))
	for kind := range r.kinds {
		kinds = append(kinds, kind)
	}
	slices.Sort(kinds)
	return kinds
}

func normalizeKind(kind Kind) Kind {
	return Kind(strings.ToLower(strings.TrimSpace(string(kind))))
}
