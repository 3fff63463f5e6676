package formfields

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/goliatone/go-formfields/pkg/definition"
	"github.com/goliatone/go-formfields/pkg/field"
	"github.com/goliatone/go-formfields/pkg/form"
	"github.com/goliatone/go-formfields/pkg/widgets"
)

// Field is a configured form field; alias exported via the root package for
// convenience.
type Field = field.Field

// Widget pairs a field with its presentation.
type Widget = widgets.Widget

// Form is a base form wrapping widgets.
type Form = widgets.Form

// Context is the form-level errors and language shared by fields.
type Context = form.Context

// ErrorMapping splits a server payload into field and form errors.
type ErrorMapping = form.ErrorMapping

// NewField builds a field for kind.
func NewField(kind widgets.Kind, options ...field.Option) (*Field, error) {
	return field.New(string(kind), options...)
}

// NewContext builds a form context.
func NewContext(options ...form.Option) *Context {
	return form.NewContext(options...)
}

// NewRenderer exposes the widget renderer constructor from the top-level
// module.
func NewRenderer(options ...widgets.Option) (*widgets.Renderer, error) {
	return widgets.New(options...)
}

// GenerateHTML loads a YAML form definition, builds every field and renders
// the form. It is the simplest entry point for callers that just want HTML
// output. Errors, when non-nil, are published onto the form context before
// rendering.
func GenerateHTML(ctx context.Context, r io.Reader, errs *ErrorMapping, options ...widgets.Option) ([]byte, error) {
	def, err := definition.Load(r)
	if err != nil {
		return nil, err
	}
	f, fc, err := definition.Build(def)
	if err != nil {
		return nil, err
	}
	if errs != nil {
		fc.PublishMapping(*errs)
	}

	renderer, err := widgets.New(options...)
	if err != nil {
		return nil, err
	}
	html, err := renderer.RenderForm(ctx, f, fc)
	if err != nil {
		return nil, err
	}
	return []byte(html), nil
}

// GenerateHTMLFromFile mirrors GenerateHTML for a definition on disk.
func GenerateHTMLFromFile(ctx context.Context, path string, errs *ErrorMapping, options ...widgets.Option) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("formfields: open %s: %w", path, err)
	}
	defer file.Close()
	return GenerateHTML(ctx, file, errs, options...)
}
