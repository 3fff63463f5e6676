package definition

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/goliatone/go-formfields/pkg/field"
	"github.com/goliatone/go-formfields/pkg/form"
	"github.com/goliatone/go-formfields/pkg/widgets"
)

// FieldError reports a field that could not be constructed.
type FieldError struct {
	Index int
	Kind  string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("definition: fields[%d] (%s): %v", e.Index, e.Kind, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }

// BuildOption customizes Build.
type BuildOption func(*buildConfig)

type buildConfig struct {
	registry *widgets.Registry
	logger   zerolog.Logger
}

// WithRegistry checks kinds against registry instead of the default one.
func WithRegistry(registry *widgets.Registry) BuildOption {
	return func(cfg *buildConfig) {
		if registry != nil {
			cfg.registry = registry
		}
	}
}

// WithLogger sets the logger handed to the form context.
func WithLogger(logger zerolog.Logger) BuildOption {
	return func(cfg *buildConfig) {
		cfg.logger = logger
	}
}

// Build constructs every field eagerly and returns the form together with a
// context seeded with the definition's language and errors. All field errors
// are reported, joined, as *FieldError values.
func Build(def *Definition, options ...BuildOption) (widgets.Form, *form.Context, error) {
	if def == nil {
		return widgets.Form{}, nil, fmt.Errorf("%w: nil definition", ErrInvalidDefinition)
	}
	cfg := buildConfig{
		registry: widgets.DefaultRegistry(),
		logger:   zerolog.Nop(),
	}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}

	out := widgets.Form{
		Action: def.Action,
		Method: def.Method,
		Attrs:  def.Attrs,
		Hidden: widgets.MergeHiddenFields(def.Hidden),
	}
	if def.Submit != nil {
		out.Button = &widgets.Button{
			Label: def.Submit.Label,
			Type:  def.Submit.Type,
			Name:  def.Submit.Name,
			Value: def.Submit.Value,
			Attrs: def.Submit.Attrs,
		}
	}

	var errs []error
	for idx, fd := range def.Fields {
		w, err := buildWidget(fd, def.Mode, cfg.registry)
		if err != nil {
			errs = append(errs, &FieldError{Index: idx, Kind: fd.Kind, Err: err})
			continue
		}
		out.Widgets = append(out.Widgets, w)
	}
	if len(errs) > 0 {
		return widgets.Form{}, nil, errors.Join(errs...)
	}

	fc := form.NewContext(form.WithLogger(cfg.logger), form.WithLanguage(def.Lang))
	if len(def.Errors) > 0 || len(def.FormErrors) > 0 {
		fc.PublishMapping(form.ErrorMapping{Fields: def.Errors, Form: def.FormErrors})
	}
	return out, fc, nil
}

func buildWidget(fd Field, defaultMode string, registry *widgets.Registry) (widgets.Widget, error) {
	kind := widgets.Kind(strings.ToLower(strings.TrimSpace(fd.Kind)))
	if kind == "" {
		return widgets.Widget{}, errors.New("kind is required")
	}
	if _, ok := registry.Descriptor(kind); !ok {
		return widgets.Widget{}, fmt.Errorf("%w: %q", widgets.ErrUnknownWidget, kind)
	}
	if kind == widgets.KindFormButton || kind == widgets.KindBaseForm {
		return widgets.Widget{}, fmt.Errorf("%w: %q", widgets.ErrNotFieldWidget, kind)
	}

	f, err := field.New(string(kind), fieldOptions(fd, defaultMode)...)
	if err != nil {
		return widgets.Widget{}, err
	}

	choices := make([]widgets.Choice, 0, len(fd.Choices))
	for _, c := range fd.Choices {
		choices = append(choices, widgets.Choice{Value: c.Value, Label: c.Label})
	}

	return widgets.Widget{
		Kind:        kind,
		Field:       f,
		Label:       fd.Label,
		Type:        fd.Type,
		Placeholder: fd.Placeholder,
		Value:       fd.Value,
		Choices:     choices,
		Multiple:    fd.Multiple,
		Accept:      fd.Accept,
		Rows:        fd.Rows,
		Required:    fd.Required,
		Disabled:    fd.Disabled,
		Help:        fd.Help,
		Attrs:       fd.Attrs,
	}, nil
}

func fieldOptions(fd Field, defaultMode string) []field.Option {
	mode := strings.TrimSpace(fd.Mode)
	if mode == "" {
		mode = strings.TrimSpace(defaultMode)
	}

	opts := []field.Option{
		field.WithName(fd.Name),
		field.WithBinding(fd.Binding),
		field.WithID(fd.ID),
		field.WithValidationName(fd.ValidationName),
		field.WithLang(fd.Lang),
		field.WithDescribedBy(fd.DescribedBy),
	}
	if mode != "" {
		opts = append(opts, field.WithMode(field.NameMode(mode)))
	}
	if fd.DisplayErrors != nil {
		opts = append(opts, field.WithDisplayErrors(*fd.DisplayErrors))
	}
	if fd.Errors != nil {
		opts = append(opts, field.WithErrors(*fd.Errors...))
	}
	return opts
}
