package field

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// Config enumerates every per-field option. DefaultConfig documents the
// defaults; Options mutate a copy of it before New validates the result.
type Config struct {
	// Component names the widget kind, used in configuration errors.
	Component string `validate:"required"`
	// Mode selects explicit-name or binding-inferred naming. Default NameRequired.
	Mode NameMode `validate:"oneof=required inferred"`
	// ID overrides the kebab-cased name as the element id.
	ID string `validate:"omitempty,html_id"`
	// Name is the explicit field name.
	Name string
	// Binding is the expression the value is bound to, e.g. "fields.email".
	Binding string
	// ValidationName overrides the key used against the form errors map.
	ValidationName string
	// Lang overrides the form language for this field.
	Lang string `validate:"omitempty,bcp47_language_tag"`
	// DescribedBy is the consumer-supplied aria-describedby value.
	DescribedBy string
	// DisplayErrors toggles error display and the aria reference. Default true.
	DisplayErrors bool
	// Errors, when supplied, replaces the form errors map lookup.
	Errors LocalErrors
}

// DefaultConfig returns the configuration a field starts from.
func DefaultConfig(component string) Config {
	return Config{
		Component:     component,
		Mode:          NameRequired,
		DisplayErrors: true,
	}
}

// Option mutates a Config before validation.
type Option func(*Config)

// WithMode selects the naming mode.
func WithMode(mode NameMode) Option {
	return func(cfg *Config) {
		cfg.Mode = mode
	}
}

// WithName sets the explicit field name.
func WithName(name string) Option {
	return func(cfg *Config) {
		cfg.Name = name
	}
}

// WithBinding records the binding expression used for name inference.
func WithBinding(expr string) Option {
	return func(cfg *Config) {
		cfg.Binding = expr
	}
}

// WithID overrides the computed element id.
func WithID(id string) Option {
	return func(cfg *Config) {
		cfg.ID = strings.TrimSpace(id)
	}
}

// WithValidationName sets the errors map key used instead of the name.
func WithValidationName(name string) Option {
	return func(cfg *Config) {
		cfg.ValidationName = strings.TrimSpace(name)
	}
}

// WithLang overrides the form language for this field.
func WithLang(lang string) Option {
	return func(cfg *Config) {
		cfg.Lang = strings.TrimSpace(lang)
	}
}

// WithDescribedBy keeps a consumer aria-describedby value.
func WithDescribedBy(value string) Option {
	return func(cfg *Config) {
		cfg.DescribedBy = value
	}
}

// WithDisplayErrors toggles error display.
func WithDisplayErrors(display bool) Option {
	return func(cfg *Config) {
		cfg.DisplayErrors = display
	}
}

// WithErrors supplies the field's own error list. Calling it with no messages
// still counts as supplied and means "no errors".
func WithErrors(messages ...string) Option {
	return func(cfg *Config) {
		cfg.Errors = Supplied(messages...)
	}
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func configValidator() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		_ = v.RegisterValidation("html_id", func(fl validator.FieldLevel) bool {
			return validHTMLID(fl.Field().String())
		})
		validate = v
	})
	return validate
}

// Validate checks the configuration eagerly.
func (c Config) Validate() error {
	if err := configValidator().Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			parts := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				parts = append(parts, fmt.Sprintf("%s failed %q", fe.Field(), fe.Tag()))
			}
			return fmt.Errorf("%w: %s: %s", ErrInvalidConfig, c.Component, strings.Join(parts, ", "))
		}
		return fmt.Errorf("%w: %s: %v", ErrInvalidConfig, c.Component, err)
	}
	return nil
}

func validHTMLID(id string) bool {
	if id == "" {
		return false
	}
	for _, r := range id {
		if unicode.IsSpace(r) {
			return false
		}
	}
	return true
}
