package i18n

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

// TemplateConfig configures template-level translation helpers.
type TemplateConfig struct {
	// LanguageKey selects the field/key used to read the language from template
	// data when callers pass a struct or map instead of a raw string.
	LanguageKey string
	// FuncName customizes the translator helper name (defaults to "translate").
	FuncName string
}

// TemplateFuncs returns helpers for the template engine:
//
//	translate(langSrc, key, ...args) (string, error)
//	current_language(langSrc) string
//
// langSrc is a language tag or a map/struct holding one under
// cfg.LanguageKey. An empty language resolves to DefaultLanguage. Translator
// errors fail the template execution; a Catalog built with KeyOnMissing
// renders the key instead.
func TemplateFuncs(t Translator, cfg TemplateConfig) map[string]any {
	langKey := strings.TrimSpace(cfg.LanguageKey)
	if langKey == "" {
		langKey = "language"
	}

	name := strings.TrimSpace(cfg.FuncName)
	if name == "" {
		name = "translate"
	}

	return map[string]any{
		name: func(langSrc any, key string, params ...any) (string, error) {
			key = strings.TrimSpace(key)
			if key == "" {
				return "", nil
			}
			if t == nil {
				return "", errors.New("i18n: no translator configured")
			}
			lang := ResolveLanguage(resolveLanguage(langSrc, langKey), "")
			return t.Translate(lang, key, params...)
		},
		"current_language": func(langSrc any) string {
			return ResolveLanguage(resolveLanguage(langSrc, langKey), "")
		},
	}
}

func resolveLanguage(src any, key string) string {
	if src == nil {
		return ""
	}

	if str, ok := src.(string); ok {
		return str
	}

	switch data := src.(type) {
	case map[string]any:
		if v, ok := data[key]; ok {
			if str, ok := v.(string); ok {
				return str
			}
			if v != nil {
				return strings.TrimSpace(fmt.Sprint(v))
			}
		}
		return ""
	case map[string]string:
		return data[key]
	}

	value := reflect.ValueOf(src)
	for value.IsValid() && value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return ""
		}
		value = value.Elem()
	}

	if value.Kind() == reflect.Struct {
		f := value.FieldByNameFunc(func(name string) bool {
			return strings.EqualFold(name, key)
		})
		if f.IsValid() && f.Kind() == reflect.String {
			return f.String()
		}
	}
	return ""
}
