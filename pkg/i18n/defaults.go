package i18n

import (
	"embed"
	"io/fs"
	"sync"
)

//go:embed locales/*.yaml
var embeddedLocales embed.FS

var (
	defaultOnce  sync.Once
	defaultTable Table
	defaultErr   error
)

// LocalesFS exposes the built-in locale files.
func LocalesFS() fs.FS {
	sub, err := fs.Sub(embeddedLocales, "locales")
	if err != nil {
		return embeddedLocales
	}
	return sub
}

// DefaultTable returns a copy of the built-in widget strings.
func DefaultTable() (Table, error) {
	defaultOnce.Do(func() {
		defaultTable, defaultErr = LoadTable(LocalesFS(), "*.yaml")
	})
	if defaultErr != nil {
		return nil, defaultErr
	}
	return Merge(defaultTable), nil
}
