// Package widgets renders form-input widgets to HTML.
//
// Each widget wraps a field.Field: the field resolves the name, id,
// aria-describedby and error state, and the widget supplies presentation
// (label, choices, value). Renderer.RenderField resolves the field against an
// ancestor (usually a *form.Context), renders the kind's template and appends
// a <div id="{id}-errors"> block when errors are displayed. RenderForm renders
// a complete base form including form-level errors and the submit button.
//
// Templates are pongo2 files embedded under templates/; WithTemplateDir
// overrides single templates from disk. Widget strings (browse, placeholder,
// switch states) come from the i18n catalog in the field's resolved language.
package widgets
