package i18n

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// LoadTable reads every "<lang>.yaml" (or ".yml") file matched by patterns
// in fsys. The file name is parsed as a BCP 47 tag and stored in its
// canonical form; nested YAML maps flatten into dotted keys.
func LoadTable(fsys fs.FS, patterns ...string) (Table, error) {
	if fsys == nil {
		return nil, fmt.Errorf("i18n: load table: nil filesystem")
	}
	if len(patterns) == 0 {
		patterns = []string{"*.yaml", "*.yml"}
	}

	var files []string
	for _, pattern := range patterns {
		matches, err := fs.Glob(fsys, pattern)
		if err != nil {
			return nil, fmt.Errorf("i18n: glob %q: %w", pattern, err)
		}
		files = append(files, matches...)
	}
	sort.Strings(files)

	table := make(Table, len(files))
	for _, file := range files {
		lang, err := languageFromFile(file)
		if err != nil {
			return nil, err
		}

		data, err := fs.ReadFile(fsys, file)
		if err != nil {
			return nil, fmt.Errorf("i18n: read %q: %w", file, err)
		}

		messages, err := parseMessages(data)
		if err != nil {
			return nil, fmt.Errorf("i18n: parse %q: %w", file, err)
		}

		if table[lang] == nil {
			table[lang] = make(map[string]string, len(messages))
		}
		for key, msg := range messages {
			table[lang][key] = msg
		}
	}
	return table, nil
}

// CanonicalLanguage normalizes a tag such as "en_us" to "en-US".
func CanonicalLanguage(tag string) (string, error) {
	parsed, err := language.Parse(strings.TrimSpace(tag))
	if err != nil {
		return "", fmt.Errorf("i18n: invalid language tag %q: %w", tag, err)
	}
	return parsed.String(), nil
}

// Merge returns a new table holding base overlaid with overrides.
func Merge(base Table, overrides ...Table) Table {
	out := make(Table, len(base))
	apply := func(src Table) {
		for lang, messages := range src {
			if out[lang] == nil {
				out[lang] = make(map[string]string, len(messages))
			}
			for key, msg := range messages {
				out[lang][key] = msg
			}
		}
	}
	apply(base)
	for _, override := range overrides {
		apply(override)
	}
	return out
}

func languageFromFile(file string) (string, error) {
	base := path.Base(file)
	name := strings.TrimSuffix(base, path.Ext(base))
	return CanonicalLanguage(name)
}

func parseMessages(data []byte) (map[string]string, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	out := make(map[string]string, len(raw))
	if err := flatten("", raw, out); err != nil {
		return nil, err
	}
	return out, nil
}

func flatten(prefix string, in map[string]any, out map[string]string) error {
	for key, value := range in {
		full := key
		if prefix != "" {
			full = prefix + "." + key
		}
		switch v := value.(type) {
		case map[string]any:
			if err := flatten(full, v, out); err != nil {
				return err
			}
		case string:
			out[full] = v
		case nil:
			out[full] = ""
		case bool, int, int64, float64:
			out[full] = fmt.Sprint(v)
		default:
			return fmt.Errorf("key %q: unsupported value type %T", full, value)
		}
	}
	return nil
}
