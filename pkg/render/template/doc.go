// Package template defines the renderer-agnostic template interface used by
// the widget renderer. The gotemplate subpackage provides the default engine.
package template
