package template

import (
	"io"
)

// TemplateRenderer is the seam widget renderers depend on. The pongo2-backed
// gotemplate.Engine is the default; tests and callers may supply their own.
type TemplateRenderer interface {
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
}
