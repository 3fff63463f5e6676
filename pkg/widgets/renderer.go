package widgets

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/rs/zerolog"

	"github.com/goliatone/go-formfields/pkg/field"
	"github.com/goliatone/go-formfields/pkg/form"
	"github.com/goliatone/go-formfields/pkg/i18n"
	rendertemplate "github.com/goliatone/go-formfields/pkg/render/template"
	"github.com/goliatone/go-formfields/pkg/render/template/gotemplate"
)

//go:embed templates/*.tmpl
var embeddedTemplates embed.FS

var (
	// ErrUnknownWidget is returned when no descriptor is registered for a kind.
	ErrUnknownWidget = errors.New("widgets: unknown widget kind")
	// ErrNotFieldWidget is returned when RenderField receives a form-level kind.
	ErrNotFieldWidget = errors.New("widgets: not a field widget")
	// ErrMissingField is returned when a field widget carries no field.
	ErrMissingField = errors.New("widgets: widget has no field")
)

// TemplatesFS exposes the built-in widget templates.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}

// Option configures a Renderer.
type Option func(*Renderer) error

// WithTemplateRenderer replaces the default pongo2 engine.
func WithTemplateRenderer(templates rendertemplate.TemplateRenderer) Option {
	return func(r *Renderer) error {
		if templates == nil {
			return errors.New("widgets: template renderer is nil")
		}
		r.templates = templates
		return nil
	}
}

// WithTemplateDir loads templates from dir before falling back to the
// built-in set, so single templates can be overridden on disk.
func WithTemplateDir(dir string) Option {
	return func(r *Renderer) error {
		r.templateDir = strings.TrimSpace(dir)
		return nil
	}
}

// WithTranslator replaces the default catalog built from i18n.DefaultTable.
func WithTranslator(translator i18n.Translator) Option {
	return func(r *Renderer) error {
		if translator == nil {
			return errors.New("widgets: translator is nil")
		}
		r.translator = translator
		return nil
	}
}

// WithRegistry replaces the default widget registry.
func WithRegistry(registry *Registry) Option {
	return func(r *Renderer) error {
		if registry == nil {
			return errors.New("widgets: registry is nil")
		}
		r.registry = registry
		return nil
	}
}

// WithHelpPolicy overrides the sanitizer applied to help text.
func WithHelpPolicy(policy *bluemonday.Policy) Option {
	return func(r *Renderer) error {
		if policy == nil {
			return errors.New("widgets: help policy is nil")
		}
		r.helpPolicy = policy
		return nil
	}
}

// Renderer renders widgets to HTML.
type Renderer struct {
	templates   rendertemplate.TemplateRenderer
	templateDir string
	translator  i18n.Translator
	registry    *Registry
	helpPolicy  *bluemonday.Policy
}

// New constructs a renderer with the built-in templates, registry and
// translations unless overridden.
func New(options ...Option) (*Renderer, error) {
	r := &Renderer{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		if err := opt(r); err != nil {
			return nil, err
		}
	}

	if r.translator == nil {
		table, err := i18n.DefaultTable()
		if err != nil {
			return nil, fmt.Errorf("widgets: load default translations: %w", err)
		}
		catalog, err := i18n.NewCatalog(table)
		if err != nil {
			return nil, fmt.Errorf("widgets: build catalog: %w", err)
		}
		r.translator = catalog
	}
	if r.registry == nil {
		r.registry = DefaultRegistry()
	}
	if r.helpPolicy == nil {
		r.helpPolicy = bluemonday.UGCPolicy()
	}
	if r.templates == nil {
		engineOpts := []gotemplate.Option{
			gotemplate.WithFS(embeddedTemplates),
			gotemplate.WithTemplateFunc(i18n.TemplateFuncs(r.translator, i18n.TemplateConfig{})),
		}
		if r.templateDir != "" {
			engineOpts = append(engineOpts, gotemplate.WithBaseDir(r.templateDir))
		}
		engine, err := gotemplate.New(engineOpts...)
		if err != nil {
			return nil, fmt.Errorf("widgets: template engine: %w", err)
		}
		r.templates = engine
	}
	return r, nil
}

// Registry returns the registry used by the renderer.
func (r *Renderer) Registry() *Registry {
	return r.registry
}

// RenderField renders a field widget wired with its computed identity and,
// when errors are displayed, its field-errors block.
func (r *Renderer) RenderField(ctx context.Context, w Widget, ancestor field.Ancestor) (string, error) {
	descriptor, ok := r.registry.Descriptor(w.Kind)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownWidget, w.Kind)
	}
	kind := descriptor.Kind
	if kind == KindFormButton || kind == KindBaseForm {
		return "", fmt.Errorf("%w: %q", ErrNotFieldWidget, kind)
	}
	if w.Field == nil {
		return "", fmt.Errorf("widgets: %s: %w", kind, ErrMissingField)
	}

	state, err := w.Field.State(ancestor)
	if err != nil {
		return "", fmt.Errorf("widgets: %s %q: %w", kind, w.Field.Name(), err)
	}

	view := r.baseView(kind, w, state)
	if descriptor.Build != nil {
		extra, err := descriptor.Build(w, state, r.translateFor(state.Language))
		if err != nil {
			return "", fmt.Errorf("widgets: %s %q: %w", kind, state.Name, err)
		}
		for key, value := range extra {
			view[key] = value
		}
	}

	zerolog.Ctx(ctx).Debug().
		Str("widget", string(kind)).
		Str("id", state.ID).
		Bool("has_errors", state.HasErrors).
		Str("language", state.Language).
		Msg("render widget")

	if descriptor.Bare {
		return r.render(descriptor.Template, view)
	}

	control, err := r.render(descriptor.Template, view)
	if err != nil {
		return "", err
	}
	errorsBlock, err := r.render(templateName(KindFieldErrors), view)
	if err != nil {
		return "", err
	}
	view["control"] = control
	view["errors_block"] = errorsBlock
	return r.render(templatePrefix+"field.tmpl", view)
}

// RenderButton renders the submit control. An empty label is translated from
// form.submit in lang.
func (r *Renderer) RenderButton(ctx context.Context, b Button, lang string) (string, error) {
	descriptor, ok := r.registry.Descriptor(KindFormButton)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownWidget, KindFormButton)
	}
	label := b.Label
	if label == "" {
		translated, err := r.translateFor(i18n.ResolveLanguage("", lang))(MsgFormSubmit)
		if err != nil {
			return "", fmt.Errorf("widgets: %s: %w", KindFormButton, err)
		}
		label = translated
	}
	buttonType := strings.TrimSpace(b.Type)
	if buttonType == "" {
		buttonType = "submit"
	}
	zerolog.Ctx(ctx).Debug().Str("widget", string(KindFormButton)).Msg("render widget")
	return r.render(descriptor.Template, map[string]any{
		"label": label,
		"type":  buttonType,
		"name":  b.Name,
		"value": b.Value,
		"attrs": sortedAttrs(b.Attrs),
	})
}

// RenderForm renders a base form: form-level errors, every field resolved
// against fc, and the submit button.
func (r *Renderer) RenderForm(ctx context.Context, f Form, fc *form.Context) (string, error) {
	if fc == nil {
		return "", fmt.Errorf("widgets: %s: %w", KindBaseForm, field.ErrMissingAncestorContext)
	}
	descriptor, ok := r.registry.Descriptor(KindBaseForm)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownWidget, KindBaseForm)
	}

	lang := fc.Language()
	fields := make([]string, 0, len(f.Widgets))
	for _, w := range f.Widgets {
		html, err := r.RenderField(ctx, w, fc)
		if err != nil {
			return "", err
		}
		fields = append(fields, html)
	}

	button := Button{}
	if f.Button != nil {
		button = *f.Button
	}
	buttonHTML, err := r.RenderButton(ctx, button, lang)
	if err != nil {
		return "", err
	}

	view := map[string]any{
		"action": f.Action,
		"lang":   lang,
		"attrs":  sortedAttrs(f.Attrs),
		"fields": fields,
		"button": buttonHTML,
		"hidden": SortedHiddenFields(f.Hidden),
	}
	method, override := formMethod(f.Method)
	view["method"] = method
	view["method_override"] = override

	if formErrors := fc.FormErrors(); len(formErrors) > 0 {
		heading, err := r.translateFor(i18n.ResolveLanguage("", lang))(MsgFormErrorHeading)
		if err != nil {
			return "", fmt.Errorf("widgets: %s: %w", KindBaseForm, err)
		}
		view["form_errors"] = formErrors
		view["errors_heading"] = heading
	}

	zerolog.Ctx(ctx).Debug().
		Str("widget", string(KindBaseForm)).
		Int("fields", len(fields)).
		Bool("has_errors", fc.HasAnyErrors()).
		Msg("render form")

	return r.render(descriptor.Template, view)
}

func (r *Renderer) baseView(kind Kind, w Widget, state field.State) map[string]any {
	showErrors := w.Field.DisplayErrors() && state.HasErrors
	value := valueString(w.Value)
	help := ""
	if strings.TrimSpace(w.Help) != "" {
		help = r.helpPolicy.Sanitize(w.Help)
	}
	return map[string]any{
		"kind":           string(kind),
		"id":             state.ID,
		"name":           state.Name,
		"errors_id":      field.ErrorsID(state.ID),
		"described_by":   state.DescribedBy,
		"has_errors":     state.HasErrors,
		"display_errors": w.Field.DisplayErrors(),
		"show_errors":    showErrors,
		"invalid":        showErrors,
		"errors":         state.Errors,
		"language":       state.Language,
		"label":          w.Label,
		"placeholder":    w.Placeholder,
		"required":       w.Required,
		"disabled":       w.Disabled,
		"help":           help,
		"attrs":          sortedAttrs(w.Attrs),
		"value":          value,
		"has_value":      value != "",
	}
}

func (r *Renderer) translateFor(lang string) Translate {
	return func(key string) (string, error) {
		msg, err := r.translator.Translate(lang, key)
		if err != nil {
			return "", fmt.Errorf("widgets: translate %q: %w", key, err)
		}
		return msg, nil
	}
}

func (r *Renderer) render(name string, view map[string]any) (string, error) {
	out, err := r.templates.RenderTemplate(name, view)
	if err != nil {
		return "", fmt.Errorf("widgets: render %s: %w", name, err)
	}
	return out, nil
}

// formMethod maps an HTTP method onto what an HTML form can submit, returning
// the override for the _method convention when needed.
func formMethod(method string) (string, string) {
	method = strings.ToUpper(strings.TrimSpace(method))
	switch method {
	case "", "POST":
		return "post", ""
	case "GET":
		return "get", ""
	default:
		return "post", method
	}
}
