package field

import "strings"

// NameMode selects how a field obtains its canonical name.
type NameMode string

const (
	// NameRequired demands an explicit name on every field.
	NameRequired NameMode = "required"
	// NameInferred falls back to the binding expression when no name is set.
	NameInferred NameMode = "inferred"
)

// bindingPrefix is the namespace forms bind their values under.
const bindingPrefix = "fields."

// ResolveName returns the canonical field name. An explicit name always wins.
// In NameInferred mode the binding expression (for example "fields.email")
// supplies the name with one leading "fields." removed.
func ResolveName(mode NameMode, component, explicitName, binding string) (string, error) {
	if name := strings.TrimSpace(explicitName); name != "" {
		return explicitName, nil
	}

	if mode == NameInferred {
		if inferred := inferName(binding); inferred != "" {
			return inferred, nil
		}
	}

	return "", &MissingFieldNameError{Component: component, Mode: mode}
}

func inferName(binding string) string {
	expr := strings.TrimSpace(binding)
	if expr == "" {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(expr, bindingPrefix))
}

// ResolveID returns the explicit id verbatim, otherwise the kebab-cased
// canonical name.
func ResolveID(explicitID, canonicalName string) string {
	if explicitID != "" {
		return explicitID
	}
	return KebabCase(canonicalName)
}
