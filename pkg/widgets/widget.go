package widgets

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/goliatone/go-formfields/pkg/field"
)

// Choice is one option of a radio or select widget.
type Choice struct {
	Value string
	Label string
}

// Widget describes one rendered field. Field carries the identity and error
// configuration; the remaining values are presentation only.
type Widget struct {
	Kind        Kind
	Field       *field.Field
	Label       string
	Type        string
	Placeholder string
	Value       any
	Choices     []Choice
	Multiple    bool
	Accept      string
	Rows        int
	Required    bool
	Disabled    bool
	// Help is HTML; it is sanitized before rendering.
	Help  string
	Attrs map[string]string
}

// Button is the form submit control.
type Button struct {
	Label string
	Type  string
	Name  string
	Value string
	Attrs map[string]string
}

// Form is a base form wrapping widgets.
type Form struct {
	Action  string
	Method  string
	Widgets []Widget
	Button  *Button
	Attrs   map[string]string
	// Hidden inputs, e.g. CSRF tokens, keyed by name.
	Hidden map[string]string
}

// FieldNames lists the keys the form's fields read errors under: the
// validation name when set, otherwise the canonical name without a trailing
// "[]". Pass it to form.MapErrorPayload so server keys reach their fields.
func (f Form) FieldNames() []string {
	names := make([]string, 0, len(f.Widgets))
	for _, w := range f.Widgets {
		if w.Field == nil {
			continue
		}
		names = append(names, w.Field.LookupKey())
	}
	return names
}

type attr struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// reservedAttrs are owned by the renderer and cannot be overridden.
var reservedAttrs = map[string]struct{}{
	"id":               {},
	"name":             {},
	"aria-describedby": {},
	"aria-invalid":     {},
	"type":             {},
}

func sortedAttrs(attrs map[string]string) []attr {
	if len(attrs) == 0 {
		return nil
	}
	out := make([]attr, 0, len(attrs))
	for name, value := range attrs {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" || !validAttrName(name) {
			continue
		}
		if _, reserved := reservedAttrs[name]; reserved {
			continue
		}
		out = append(out, attr{Name: name, Value: value})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func validAttrName(name string) bool {
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_', r == ':', r == '.':
		default:
			return false
		}
	}
	return true
}

// valueString renders a bound value as an attribute string.
func valueString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case time.Time:
		if v.IsZero() {
			return ""
		}
		return v.Format(time.DateOnly)
	case *time.Time:
		if v == nil {
			return ""
		}
		return valueString(*v)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

// valueSet collects the selected values of single or multi-value bindings.
func valueSet(value any) map[string]struct{} {
	set := make(map[string]struct{})
	switch v := value.(type) {
	case nil:
	case []string:
		for _, item := range v {
			set[item] = struct{}{}
		}
	case []any:
		for _, item := range v {
			set[valueString(item)] = struct{}{}
		}
	default:
		if s := valueString(v); s != "" {
			set[s] = struct{}{}
		}
	}
	return set
}

// truthy reports whether a checkbox-like binding is on.
func truthy(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "", "0", "false", "off", "no":
			return false
		}
		return true
	case int:
		return v != 0
	default:
		return valueString(v) != ""
	}
}
