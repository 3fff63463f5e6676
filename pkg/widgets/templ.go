package widgets

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/goliatone/go-formfields/pkg/field"
	"github.com/goliatone/go-formfields/pkg/form"
)

// Component adapts a field widget to templ, so it can be embedded in templ
// layouts. Rendering errors surface from Render.
func (r *Renderer) Component(w Widget, ancestor field.Ancestor) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		html, err := r.RenderField(ctx, w, ancestor)
		if err != nil {
			return err
		}
		_, err = io.WriteString(out, html)
		return err
	})
}

// FormComponent adapts a base form to templ.
func (r *Renderer) FormComponent(f Form, fc *form.Context) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		html, err := r.RenderForm(ctx, f, fc)
		if err != nil {
			return err
		}
		_, err = io.WriteString(out, html)
		return err
	})
}
