package gotemplate_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-formfields/pkg/i18n"
	"github.com/goliatone/go-formfields/pkg/render/template/gotemplate"
)

func newEngine(t *testing.T, options ...gotemplate.Option) *gotemplate.Engine {
	t.Helper()
	fsys := fstest.MapFS{
		"templates/hello.tmpl":      {Data: []byte(`Hello {{ name }}!`)},
		"templates/translate.tmpl":  {Data: []byte(`<button>{{ translate(lang, key) }}</button>`)},
		"templates/escape.tmpl":     {Data: []byte(`<b>{{ value }}</b>`)},
		"templates/shout.tmpl":      {Data: []byte(`{{ shout(name) }}`)},
		"templates/items.tmpl":      {Data: []byte(`{% for item in items %}[{{ item.label }}]{% endfor %}`)},
	}
	opts := append([]gotemplate.Option{gotemplate.WithFS(fsys)}, options...)
	engine, err := gotemplate.New(opts...)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return engine
}

func TestEngine_RenderTemplate(t *testing.T) {
	engine := newEngine(t)

	var buf bytes.Buffer
	result, err := engine.RenderTemplate("templates/hello", map[string]any{"name": "Ada"}, &buf)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if result != "Hello Ada!" {
		t.Fatalf("unexpected result %q", result)
	}
	if buf.String() != result {
		t.Fatalf("writer mismatch: %q", buf.String())
	}
}

func TestEngine_AutoEscapes(t *testing.T) {
	engine := newEngine(t)
	result, err := engine.RenderTemplate("templates/escape", map[string]any{"value": `<script>"x"</script>`})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(result, "<script>") {
		t.Fatalf("expected escaped output, got %q", result)
	}
}

func TestEngine_TemplateFuncs(t *testing.T) {
	engine := newEngine(t, gotemplate.WithTemplateFunc(map[string]any{
		"shout": func(s string) string { return strings.ToUpper(s) + "!" },
	}))
	result, err := engine.RenderTemplate("templates/shout", map[string]any{"name": "ada"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if result != "ADA!" {
		t.Fatalf("unexpected result %q", result)
	}
}

func TestEngine_ConvertsStructs(t *testing.T) {
	type item struct {
		Label string `json:"label"`
	}
	engine := newEngine(t)
	result, err := engine.RenderTemplate("templates/items", map[string]any{
		"items": []item{{Label: "a"}, {Label: "b"}},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if result != "[a][b]" {
		t.Fatalf("unexpected result %q", result)
	}
}

func TestEngine_HelperErrorFailsRender(t *testing.T) {
	catalog, err := i18n.NewCatalog(i18n.Table{"en": {"form.submit": "Submit"}})
	if err != nil {
		t.Fatalf("new catalog: %v", err)
	}
	engine := newEngine(t, gotemplate.WithTemplateFunc(i18n.TemplateFuncs(catalog, i18n.TemplateConfig{})))

	result, err := engine.RenderTemplate("templates/translate", map[string]any{"lang": "en", "key": "form.submit"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if result != "<button>Submit</button>" {
		t.Fatalf("unexpected result %q", result)
	}

	_, err = engine.RenderTemplate("templates/translate", map[string]any{"lang": "en", "key": "form.cancel"})
	if err == nil {
		t.Fatalf("expected missing translation to fail the render")
	}
	if !strings.Contains(err.Error(), "translation missing") {
		t.Fatalf("expected translation error, got %v", err)
	}
}

func TestEngine_HelperErrorPropagates(t *testing.T) {
	engine := newEngine(t, gotemplate.WithTemplateFunc(map[string]any{
		"shout": func(s string) (string, error) { return "", errors.New("no shouting") },
	}))
	if _, err := engine.RenderTemplate("templates/shout", map[string]any{"name": "ada"}); err == nil ||
		!strings.Contains(err.Error(), "no shouting") {
		t.Fatalf("expected helper error, got %v", err)
	}
}

func TestNew_RequiresSource(t *testing.T) {
	if _, err := gotemplate.New(); err == nil {
		t.Fatalf("expected error without templates")
	}
}
