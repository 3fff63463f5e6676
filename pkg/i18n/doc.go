// Package i18n resolves display strings for form widgets.
//
// The effective language cascades from the field, to the enclosing form, to
// DefaultLanguage ("en"). Lookups are exact: a language or key missing from
// the Table is reported as ErrMissingTranslation instead of silently falling
// back. Catalog adds a configurable miss handler and Prometheus counting on
// top of a Table; LoadTable reads YAML locale files named after their BCP 47
// tag.
package i18n
