// Package field resolves the identity and validation state of a form field.
//
// A field derives its canonical name (explicitly, or from the binding
// expression in NameInferred mode), an element id (explicit or kebab-cased
// name), whether it currently has validation errors (its own list, or the
// enclosing form's errors map keyed by the name without a trailing "[]"), and
// the aria-describedby value that points assistive tech at the error block.
//
//	f, err := field.New("text-field", field.WithName("firstName"))
//	state, err := f.State(formContext)
//	// state.ID == "first-name"
//
// Configuration mistakes surface from New (ErrMissingFieldName,
// ErrInvalidConfig) or from State when no error source exists
// (ErrMissingAncestorContext).
package field
