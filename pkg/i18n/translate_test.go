package i18n_test

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/goliatone/go-formfields/pkg/i18n"
)

func TestResolveLanguage(t *testing.T) {
	tests := []struct {
		field, ancestor, want string
	}{
		{"nl", "de", "nl"},
		{"", "de", "de"},
		{"", "", "en"},
	}
	for _, tt := range tests {
		if got := i18n.ResolveLanguage(tt.field, tt.ancestor); got != tt.want {
			t.Errorf("ResolveLanguage(%q, %q) = %q, want %q", tt.field, tt.ancestor, got, tt.want)
		}
	}
}

func TestTranslate(t *testing.T) {
	table := i18n.Table{"en": {"required": "Required"}}

	got, err := i18n.Translate("required", "", "", table)
	if err != nil {
		t.Fatalf("translate: %v", err)
	}
	if got != "Required" {
		t.Fatalf("expected Required, got %q", got)
	}

	_, err = i18n.Translate("required", "nl", "", table)
	var missing *i18n.MissingTranslationError
	if !errors.As(err, &missing) || !errors.Is(err, i18n.ErrMissingTranslation) {
		t.Fatalf("expected missing translation error, got %v", err)
	}
	if missing.Language != "nl" || missing.Key != "required" {
		t.Fatalf("unexpected missing pair %+v", missing)
	}

	if _, err := i18n.Translate("unknown", "", "", table); !errors.Is(err, i18n.ErrMissingTranslation) {
		t.Fatalf("missing key should not fall back, got %v", err)
	}
	if _, err := i18n.Translate("required", "", "", nil); !errors.Is(err, i18n.ErrMissingTranslation) {
		t.Fatalf("nil table should report a miss, got %v", err)
	}
}

func TestLoadTable(t *testing.T) {
	fsys := fstest.MapFS{
		"locales/en.yaml":    {Data: []byte("form:\n  submit: Submit\ngreeting: Hello\n")},
		"locales/pt-br.yaml": {Data: []byte("form:\n  submit: Enviar\n")},
	}

	table, err := i18n.LoadTable(fsys, "locales/*.yaml")
	if err != nil {
		t.Fatalf("load table: %v", err)
	}

	want := i18n.Table{
		"en":    {"form.submit": "Submit", "greeting": "Hello"},
		"pt-BR": {"form.submit": "Enviar"},
	}
	if diff := cmp.Diff(want, table); diff != "" {
		t.Fatalf("table mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadTable_InvalidLanguage(t *testing.T) {
	fsys := fstest.MapFS{"not a language.yaml": {Data: []byte("a: b\n")}}
	if _, err := i18n.LoadTable(fsys); err == nil {
		t.Fatalf("expected invalid language file name to fail")
	}
}

func TestDefaultTable(t *testing.T) {
	table, err := i18n.DefaultTable()
	if err != nil {
		t.Fatalf("default table: %v", err)
	}
	for _, lang := range []string{"en", "nl", "de", "fr"} {
		if _, ok := table.Lookup(lang, "form.submit"); !ok {
			t.Errorf("expected form.submit in %q", lang)
		}
	}
	if got, _ := table.Lookup("en", "switch.on"); got != "On" {
		t.Fatalf("expected quoted yaml key to load, got %q", got)
	}

	table["en"]["form.submit"] = "changed"
	again, _ := i18n.DefaultTable()
	if got, _ := again.Lookup("en", "form.submit"); got != "Submit" {
		t.Fatalf("default table should be copied, got %q", got)
	}
}

func TestCatalog_CountsMisses(t *testing.T) {
	reg := prometheus.NewRegistry()
	catalog, err := i18n.NewCatalog(i18n.Table{"en": {"ok": "OK"}}, i18n.WithRegisterer(reg))
	if err != nil {
		t.Fatalf("new catalog: %v", err)
	}

	if got, err := catalog.Resolve("ok", "", ""); err != nil || got != "OK" {
		t.Fatalf("resolve: %q, %v", got, err)
	}
	if _, err := catalog.Resolve("ok", "fr", ""); !errors.Is(err, i18n.ErrMissingTranslation) {
		t.Fatalf("expected miss, got %v", err)
	}

	counter, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	if len(counter) != 1 {
		t.Fatalf("expected one metric family, got %d", len(counter))
	}

	second, err := i18n.NewCatalog(nil, i18n.WithRegisterer(reg))
	if err != nil {
		t.Fatalf("re-registering should reuse the collector: %v", err)
	}
	_, _ = second.Translate("fr", "ok")
	got, err := testutil.GatherAndCount(reg, "formfields_i18n_missing_translations_total")
	if err != nil {
		t.Fatalf("gather and count: %v", err)
	}
	if got != 1 {
		t.Fatalf("expected one series, got %d", got)
	}
}

func TestCatalog_OnMissingAndArgs(t *testing.T) {
	catalog, err := i18n.NewCatalog(
		i18n.Table{"en": {"count": "%d files"}},
		i18n.WithOnMissing(i18n.KeyOnMissing),
	)
	if err != nil {
		t.Fatalf("new catalog: %v", err)
	}
	if got, _ := catalog.Translate("en", "count", 3); got != "3 files" {
		t.Fatalf("expected formatted message, got %q", got)
	}
	if got, err := catalog.Translate("en", "missing.key"); err != nil || got != "missing.key" {
		t.Fatalf("expected key fallback, got %q, %v", got, err)
	}
}

func TestTemplateFuncs(t *testing.T) {
	catalog, err := i18n.NewCatalog(i18n.Table{
		"en": {"form.submit": "Submit"},
		"nl": {"form.submit": "Versturen"},
	})
	if err != nil {
		t.Fatalf("new catalog: %v", err)
	}
	funcs := i18n.TemplateFuncs(catalog, i18n.TemplateConfig{})

	translate := funcs["translate"].(func(any, string, ...any) (string, error))
	for _, tt := range []struct {
		src  any
		want string
	}{
		{"nl", "Versturen"},
		{map[string]any{"language": ""}, "Submit"},
		{struct{ Language string }{"nl"}, "Versturen"},
	} {
		got, err := translate(tt.src, "form.submit")
		if err != nil {
			t.Fatalf("translate(%v): %v", tt.src, err)
		}
		if got != tt.want {
			t.Fatalf("translate(%v) = %q, want %q", tt.src, got, tt.want)
		}
	}

	_, err = translate("nl", "missing")
	if !errors.Is(err, i18n.ErrMissingTranslation) {
		t.Fatalf("expected missing translation error, got %v", err)
	}

	fallback, err := i18n.NewCatalog(i18n.Table{"en": {}}, i18n.WithOnMissing(i18n.KeyOnMissing))
	if err != nil {
		t.Fatalf("new catalog: %v", err)
	}
	lenient := i18n.TemplateFuncs(fallback, i18n.TemplateConfig{})["translate"].(func(any, string, ...any) (string, error))
	if got, err := lenient("en", "missing"); err != nil || got != "missing" {
		t.Fatalf("expected key fallback, got %q, %v", got, err)
	}

	current := funcs["current_language"].(func(any) string)
	if got := current(nil); got != "en" {
		t.Fatalf("expected en, got %q", got)
	}
}
