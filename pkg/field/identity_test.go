package field_test

import (
	"errors"
	"testing"

	"github.com/goliatone/go-formfields/pkg/field"
)

func TestResolveName(t *testing.T) {
	tests := []struct {
		name     string
		mode     field.NameMode
		explicit string
		binding  string
		want     string
	}{
		{"explicit wins in required mode", field.NameRequired, "email", "", "email"},
		{"explicit wins over binding", field.NameInferred, "contact", "fields.email", "contact"},
		{"inferred strips fields prefix", field.NameInferred, "", "fields.email", "email"},
		{"inferred keeps other paths", field.NameInferred, "", "user.email", "user.email"},
		{"inferred strips prefix once", field.NameInferred, "", "fields.fields.email", "fields.email"},
		{"inferred keeps multi value suffix", field.NameInferred, "", "fields.images[]", "images[]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := field.ResolveName(tt.mode, "text-field", tt.explicit, tt.binding)
			if err != nil {
				t.Fatalf("resolve name: %v", err)
			}
			if got != tt.want {
				t.Fatalf("ResolveName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResolveName_Missing(t *testing.T) {
	tests := []struct {
		name    string
		mode    field.NameMode
		binding string
	}{
		{"required ignores binding", field.NameRequired, "fields.email"},
		{"inferred without binding", field.NameInferred, ""},
		{"inferred with bare prefix", field.NameInferred, "fields."},
		{"blank explicit name", field.NameRequired, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := field.ResolveName(tt.mode, "select-field", "   ", tt.binding)
			if !errors.Is(err, field.ErrMissingFieldName) {
				t.Fatalf("expected ErrMissingFieldName, got %v", err)
			}
			var missing *field.MissingFieldNameError
			if !errors.As(err, &missing) {
				t.Fatalf("expected *MissingFieldNameError, got %T", err)
			}
			if missing.Component != "select-field" {
				t.Fatalf("expected component select-field, got %q", missing.Component)
			}
		})
	}
}

func TestResolveID(t *testing.T) {
	if got := field.ResolveID("custom_id", "firstName"); got != "custom_id" {
		t.Fatalf("explicit id should be verbatim, got %q", got)
	}
	if got := field.ResolveID("", "firstName"); got != "first-name" {
		t.Fatalf("expected first-name, got %q", got)
	}
	if got := field.ResolveID("", "First Name"); got != "first-name" {
		t.Fatalf("expected first-name, got %q", got)
	}
}

func TestKebabCase(t *testing.T) {
	tests := map[string]string{
		"":                "",
		"email":           "email",
		"firstName":       "first-name",
		"First Name":      "first-name",
		"first_name":      "first-name",
		"images[]":        "images",
		"user[email]":     "user-email",
		"fields.lastName": "fields-last-name",
		"XMLHttpRequest":  "xml-http-request",
		"address1":        "address-1",
		"ID":              "id",
		"  spaced  out ":  "spaced-out",
		"Größe":           "grosse",
		"Prénom":          "prenom",
		"don't":           "dont",
		"l’été":           "lete",
		"Ærø":             "aero",
	}

	for in, want := range tests {
		if got := field.KebabCase(in); got != want {
			t.Errorf("KebabCase(%q) = %q, want %q", in, got, want)
		}
	}
}
