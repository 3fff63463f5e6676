package field

import (
	"reflect"
	"strings"
)

// multiValueSuffix marks fields submitting several values, e.g. "images[]".
const multiValueSuffix = "[]"

// Ancestor is the read-only view a field has of its enclosing form. The form
// owns the errors map and publishes replacements; fields only read.
type Ancestor interface {
	// FieldErrors returns the messages stored under key, or nil.
	FieldErrors(key string) []string
	// Language returns the form-level language, or "" when unset.
	Language() string
}

// LocalErrors is an error list handed directly to a field. The zero value
// means "not supplied"; a supplied list, even an empty one, overrides the
// ancestor errors map.
type LocalErrors struct {
	messages []string
	set      bool
}

// Supplied builds a LocalErrors that overrides the ancestor lookup.
func Supplied(messages ...string) LocalErrors {
	out := make([]string, len(messages))
	copy(out, messages)
	return LocalErrors{messages: out, set: true}
}

// IsSet reports whether the list was supplied.
func (l LocalErrors) IsSet() bool {
	return l.set
}

// Messages returns a copy of the supplied messages.
func (l LocalErrors) Messages() []string {
	if !l.set {
		return nil
	}
	out := make([]string, len(l.messages))
	copy(out, l.messages)
	return out
}

// LookupKey returns the key used against the ancestor errors map: the
// validation name when set, otherwise the canonical name with a single
// trailing "[]" removed.
func LookupKey(validationName, canonicalName string) string {
	if validationName != "" {
		return validationName
	}
	return strings.TrimSuffix(canonicalName, multiValueSuffix)
}

// HasErrors reports whether a field currently has validation errors.
func HasErrors(local LocalErrors, lookupKey string, ancestor Ancestor) (bool, error) {
	messages, err := Messages(local, lookupKey, ancestor)
	if err != nil {
		return false, err
	}
	return len(messages) > 0, nil
}

// Messages resolves the error messages for a field with the same precedence
// as HasErrors. The ancestor's slice is copied, never returned directly.
func Messages(local LocalErrors, lookupKey string, ancestor Ancestor) ([]string, error) {
	if local.IsSet() {
		return local.Messages(), nil
	}
	if isNilAncestor(ancestor) {
		return nil, ErrMissingAncestorContext
	}

	found := ancestor.FieldErrors(lookupKey)
	if len(found) == 0 {
		return nil, nil
	}
	out := make([]string, len(found))
	copy(out, found)
	return out, nil
}

func isNilAncestor(ancestor Ancestor) bool {
	if ancestor == nil {
		return true
	}
	value := reflect.ValueOf(ancestor)
	switch value.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Interface, reflect.Func, reflect.Slice:
		return value.IsNil()
	default:
		return false
	}
}
