package widgets

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formfields/pkg/field"
)

func TestRegistryRegisterDefaultsTemplate(t *testing.T) {
	reg := NewRegistry()
	if err := reg.Register(Descriptor{Kind: " Rating "}); err != nil {
		t.Fatalf("register: %v", err)
	}

	desc, ok := reg.Descriptor("rating")
	if !ok {
		t.Fatalf("descriptor not found")
	}
	if desc.Kind != "rating" || desc.Template != "templates/rating.tmpl" {
		t.Fatalf("unexpected descriptor: %#v", desc)
	}

	if err := reg.Register(Descriptor{}); err == nil {
		t.Fatalf("expected error for empty kind")
	}
}

func TestRegistryCloneIsolated(t *testing.T) {
	reg := NewRegistry()
	reg.MustRegister(Descriptor{Kind: KindTextField})

	cloned := reg.Clone()
	cloned.MustRegister(Descriptor{Kind: KindTextField, Template: "custom/input.tmpl"})
	cloned.MustRegister(Descriptor{Kind: KindDate})

	original, _ := reg.Descriptor(KindTextField)
	if original.Template != "templates/text-field.tmpl" {
		t.Fatalf("registry descriptor mutated: %#v", original)
	}
	if _, ok := reg.Descriptor(KindDate); ok {
		t.Fatalf("clone registration leaked into original")
	}
}

func TestDefaultRegistryKinds(t *testing.T) {
	want := []Kind{
		KindBaseForm,
		KindCheckbox,
		KindDate,
		KindFieldErrors,
		KindFile,
		KindFormButton,
		KindFormControl,
		KindRadio,
		KindSelect,
		KindSwitch,
		KindTextArea,
		KindTextField,
	}
	if diff := cmp.Diff(want, DefaultRegistry().Kinds()); diff != "" {
		t.Fatalf("kinds mismatch (-want +got):\n%s", diff)
	}
}

func TestDefaultTemplatesPresent(t *testing.T) {
	reg := DefaultRegistry()
	for _, kind := range reg.Kinds() {
		desc, _ := reg.Descriptor(kind)
		if _, err := embeddedTemplates.ReadFile(desc.Template); err != nil {
			t.Fatalf("template for %s: %v", kind, err)
		}
	}
	if _, err := embeddedTemplates.ReadFile(templatePrefix + "field.tmpl"); err != nil {
		t.Fatalf("field wrapper template: %v", err)
	}
}

func TestChoiceViews(t *testing.T) {
	w := Widget{
		Choices: []Choice{{Value: "a"}, {Value: "!!", Label: "Bang"}},
		Value:   []any{"!!"},
	}
	got := choiceViews(w, "pick")
	want := []choiceView{
		{ID: "pick-a", Value: "a", Label: "a"},
		{ID: "pick-1", Value: "!!", Label: "Bang", Selected: true},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("choices mismatch (-want +got):\n%s", diff)
	}
}

func TestTruthyAndFormMethod(t *testing.T) {
	for value, want := range map[any]bool{
		nil: false, true: true, "on": true, "off": false, "0": false, 1: true, 0: false,
	} {
		if got := truthy(value); got != want {
			t.Fatalf("truthy(%v) = %v, want %v", value, got, want)
		}
	}

	cases := []struct{ in, method, override string }{
		{"", "post", ""},
		{"get", "get", ""},
		{"Post", "post", ""},
		{"delete", "post", "DELETE"},
	}
	for _, tc := range cases {
		method, override := formMethod(tc.in)
		if method != tc.method || override != tc.override {
			t.Fatalf("formMethod(%q) = %q, %q", tc.in, method, override)
		}
	}
}

func TestSwitchBuilderPropagatesTranslationErrors(t *testing.T) {
	_, err := switchBuilder(Widget{}, field.State{}, func(key string) (string, error) {
		return "", errTest
	})
	if err != errTest {
		t.Fatalf("expected translation error, got %v", err)
	}
}

var errTest = testError("translate failed")

type testError string

func (e testError) Error() string { return string(e) }
