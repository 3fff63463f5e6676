package i18n

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// Translator resolves a message for a locale. Catalog satisfies it; callers
// may plug in their own message bundles.
type Translator interface {
	Translate(locale, key string, args ...any) (string, error)
}

// MissingTranslationHandler decides the string rendered in place of a missing
// translation. Returning the error aborts rendering.
type MissingTranslationHandler func(locale, key string, err error) (string, error)

// FailOnMissing is the default handler: misses are configuration errors.
func FailOnMissing(_ string, _ string, err error) (string, error) {
	return "", err
}

// KeyOnMissing renders the key itself, useful while translations are drafted.
func KeyOnMissing(_ string, key string, _ error) (string, error) {
	return key, nil
}

// CatalogOption configures a Catalog.
type CatalogOption func(*Catalog) error

// WithRegisterer counts missing translations per language on reg.
func WithRegisterer(reg prometheus.Registerer) CatalogOption {
	return func(c *Catalog) error {
		if reg == nil {
			return nil
		}
		counter := prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "formfields",
			Subsystem: "i18n",
			Name:      "missing_translations_total",
			Help:      "Translation lookups that found no message.",
		}, []string{"language"})

		if err := reg.Register(counter); err != nil {
			var already prometheus.AlreadyRegisteredError
			if !errors.As(err, &already) {
				return fmt.Errorf("i18n: register metrics: %w", err)
			}
			existing, ok := already.ExistingCollector.(*prometheus.CounterVec)
			if !ok {
				return fmt.Errorf("i18n: register metrics: conflicting collector %T", already.ExistingCollector)
			}
			counter = existing
		}
		c.misses = counter
		return nil
	}
}

// WithOnMissing replaces FailOnMissing.
func WithOnMissing(handler MissingTranslationHandler) CatalogOption {
	return func(c *Catalog) error {
		if handler != nil {
			c.onMissing = handler
		}
		return nil
	}
}

// Catalog wraps a Table with miss handling and metrics.
type Catalog struct {
	table     Table
	onMissing MissingTranslationHandler
	misses    *prometheus.CounterVec
}

var _ Translator = (*Catalog)(nil)

// NewCatalog builds a catalog over table. The table is copied.
func NewCatalog(table Table, options ...CatalogOption) (*Catalog, error) {
	c := &Catalog{
		table:     Merge(table),
		onMissing: FailOnMissing,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Table returns a copy of the catalog's messages.
func (c *Catalog) Table() Table {
	return Merge(c.table)
}

// Translate implements Translator. Args, when present, are applied with
// fmt.Sprintf.
func (c *Catalog) Translate(locale, key string, args ...any) (string, error) {
	msg, ok := c.table.Lookup(locale, key)
	if !ok {
		return c.missing(locale, key, &MissingTranslationError{Language: locale, Key: key})
	}
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	return msg, nil
}

// Resolve translates key with the field, form, default language cascade.
func (c *Catalog) Resolve(key, fieldLang, ancestorLang string) (string, error) {
	return c.Translate(ResolveLanguage(fieldLang, ancestorLang), key)
}

func (c *Catalog) missing(locale, key string, err error) (string, error) {
	if c.misses != nil {
		c.misses.WithLabelValues(locale).Inc()
	}
	return c.onMissing(locale, key, err)
}
