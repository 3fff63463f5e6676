package formfields

import (
	"io/fs"

	"github.com/goliatone/go-formfields/pkg/i18n"
	"github.com/goliatone/go-formfields/pkg/widgets"
)

// EmbeddedTemplates exposes the built-in widget templates so callers can reuse
// or extend them without importing the widgets package directly.
func EmbeddedTemplates() fs.FS {
	return widgets.TemplatesFS()
}

// EmbeddedLocales exposes the built-in <lang>.yaml translation files.
func EmbeddedLocales() fs.FS {
	return i18n.LocalesFS()
}
