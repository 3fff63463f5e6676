package i18n

import (
	"errors"
	"fmt"
)

// DefaultLanguage is used when neither a field nor its form picks a language.
const DefaultLanguage = "en"

// ErrMissingTranslation is returned when a language or key is absent.
var ErrMissingTranslation = errors.New("i18n: translation missing")

// MissingTranslationError names the language/key pair that failed.
type MissingTranslationError struct {
	Language string
	Key      string
}

func (e *MissingTranslationError) Error() string {
	return fmt.Sprintf("i18n: translation missing for %q in %q", e.Key, e.Language)
}

// Is lets errors.Is match ErrMissingTranslation.
func (e *MissingTranslationError) Is(target error) bool {
	return target == ErrMissingTranslation
}

// Table maps a language tag to its message keys.
type Table map[string]map[string]string

// Lookup returns the message for key in lang without any fallback.
func (t Table) Lookup(lang, key string) (string, bool) {
	messages, ok := t[lang]
	if !ok {
		return "", false
	}
	msg, ok := messages[key]
	return msg, ok
}

// Languages lists the languages present in the table.
func (t Table) Languages() []string {
	out := make([]string, 0, len(t))
	for lang := range t {
		out = append(out, lang)
	}
	return out
}

// ResolveLanguage picks the field language, then the form language, then
// DefaultLanguage.
func ResolveLanguage(fieldLang, ancestorLang string) string {
	if fieldLang != "" {
		return fieldLang
	}
	if ancestorLang != "" {
		return ancestorLang
	}
	return DefaultLanguage
}

// Translate looks key up in table using the resolved language. There is no
// fallback across languages or keys.
func Translate(key, fieldLang, ancestorLang string, table Table) (string, error) {
	lang := ResolveLanguage(fieldLang, ancestorLang)
	msg, ok := table.Lookup(lang, key)
	if !ok {
		return "", &MissingTranslationError{Language: lang, Key: key}
	}
	return msg, nil
}
