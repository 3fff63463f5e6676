package testsupport

import (
	"io"
	"os"
	"path/filepath"
	"testing"
)

func TestBuildForm(t *testing.T) {
	f, fc := BuildForm(t, "testdata/contact.yaml")
	if got := f.FieldNames(); len(got) != 2 || got[1] != "message" {
		t.Fatalf("unexpected field names: %v", got)
	}
	if fc.Language() != "fr" {
		t.Fatalf("expected fr, got %q", fc.Language())
	}
}

func TestLoadErrorPayload(t *testing.T) {
	resp, err := LoadErrorPayload("testdata/response.json")
	if err != nil {
		t.Fatalf("load payload: %v", err)
	}
	mapping := resp.Mapping([]string{"email", "message"})
	want := map[string][]string{
		"email":   {"The email field is required."},
		"message": {"Too short."},
	}
	if diff := CompareGolden(want, mapping.Fields); diff != "" {
		t.Fatalf("mapping mismatch (-want +got):\n%s", diff)
	}

	if _, err := LoadErrorPayload(""); err == nil {
		t.Fatalf("expected error for empty path")
	}
}

func TestNormalizeHTML(t *testing.T) {
	got := NormalizeHTML("\n<div>\n  <p>a b</p>\n</div>\n")
	if got != "<div><p>a b</p></div>" {
		t.Fatalf("unexpected normalized html: %q", got)
	}
}

func TestWriteMaybeGolden(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "out.golden")

	t.Setenv("UPDATE_GOLDENS", "")
	if WriteMaybeGolden(t, path, []byte("x")) {
		t.Fatalf("golden written without UPDATE_GOLDENS")
	}

	t.Setenv("UPDATE_GOLDENS", "1")
	if !WriteMaybeGolden(t, path, []byte("x")) {
		t.Fatalf("expected golden write")
	}
	if got := MustReadGoldenString(t, path); got != "x" {
		t.Fatalf("unexpected golden content %q", got)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("stat golden: %v", err)
	}
}

func TestCaptureTemplateOutput(t *testing.T) {
	out, written := CaptureTemplateOutput(t, func(w io.Writer) (string, error) {
		_, err := io.WriteString(w, "hi")
		return "hi", err
	})
	if out != written {
		t.Fatalf("expected matching output, got %q and %q", out, written)
	}
	if Context(t).Value(struct{}{}) != nil {
		t.Fatalf("unexpected context value")
	}
}
