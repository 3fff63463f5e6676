package field

import (
	"fmt"

	"github.com/goliatone/go-formfields/pkg/i18n"
)

// Field is a configured form field with its canonical name and id resolved.
// Fields are immutable; per-render outputs come from State.
type Field struct {
	cfg  Config
	name string
	id   string
}

// State holds the computed outputs consumed by rendering.
type State struct {
	ID          string
	Name        string
	DescribedBy string
	HasErrors   bool
	Errors      []string
	Language    string
}

// New builds a field for component, applying options over DefaultConfig.
func New(component string, options ...Option) (*Field, error) {
	cfg := DefaultConfig(component)
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	return FromConfig(cfg)
}

// FromConfig validates cfg and resolves the field identity.
func FromConfig(cfg Config) (*Field, error) {
	if cfg.Mode == "" {
		cfg.Mode = NameRequired
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	name, err := ResolveName(cfg.Mode, cfg.Component, cfg.Name, cfg.Binding)
	if err != nil {
		return nil, err
	}

	return &Field{
		cfg:  cfg,
		name: name,
		id:   ResolveID(cfg.ID, name),
	}, nil
}

// Component returns the widget kind the field was built for.
func (f *Field) Component() string { return f.cfg.Component }

// Name returns the canonical field name.
func (f *Field) Name() string { return f.name }

// ID returns the computed element id.
func (f *Field) ID() string { return f.id }

// Lang returns the field-level language override.
func (f *Field) Lang() string { return f.cfg.Lang }

// DisplayErrors reports whether errors are shown for this field.
func (f *Field) DisplayErrors() bool { return f.cfg.DisplayErrors }

// Config returns a copy of the field configuration.
func (f *Field) Config() Config { return f.cfg }

// LookupKey returns the key used against the form errors map.
func (f *Field) LookupKey() string {
	return LookupKey(f.cfg.ValidationName, f.name)
}

// HasErrors reports whether the field has errors given its ancestor.
func (f *Field) HasErrors(ancestor Ancestor) (bool, error) {
	has, err := HasErrors(f.cfg.Errors, f.LookupKey(), ancestor)
	if err != nil {
		return false, fmt.Errorf("%s %q: %w", f.cfg.Component, f.name, err)
	}
	return has, nil
}

// DescribedBy returns the aria-describedby value given the ancestor.
func (f *Field) DescribedBy(ancestor Ancestor) (string, error) {
	has, err := f.HasErrors(ancestor)
	if err != nil {
		return "", err
	}
	return DescribedBy(f.cfg.DescribedBy, f.cfg.DisplayErrors, has, f.id), nil
}

// State computes every rendering output in one pass.
func (f *Field) State(ancestor Ancestor) (State, error) {
	messages, err := Messages(f.cfg.Errors, f.LookupKey(), ancestor)
	if err != nil {
		return State{}, fmt.Errorf("%s %q: %w", f.cfg.Component, f.name, err)
	}

	has := len(messages) > 0
	state := State{
		ID:          f.id,
		Name:        f.name,
		DescribedBy: DescribedBy(f.cfg.DescribedBy, f.cfg.DisplayErrors, has, f.id),
		HasErrors:   has,
		Errors:      messages,
		Language:    i18n.ResolveLanguage(f.cfg.Lang, ancestorLanguage(ancestor)),
	}
	return state, nil
}

// Translate resolves key in table using the field, form, default cascade.
func (f *Field) Translate(key string, ancestor Ancestor, table i18n.Table) (string, error) {
	return i18n.Translate(key, f.cfg.Lang, ancestorLanguage(ancestor), table)
}

func ancestorLanguage(ancestor Ancestor) string {
	if isNilAncestor(ancestor) {
		return ""
	}
	return ancestor.Language()
}
