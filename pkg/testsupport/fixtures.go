package testsupport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"

	"github.com/goliatone/go-formfields/pkg/definition"
	"github.com/goliatone/go-formfields/pkg/form"
	"github.com/goliatone/go-formfields/pkg/widgets"
)

// LoadDefinition reads a YAML form definition fixture. Testing helpers fail the
// test on error to keep contract tests concise.
func LoadDefinition(t *testing.T, path string) *definition.Definition {
	t.Helper()

	def, err := definition.LoadFile(path)
	if err != nil {
		t.Fatalf("load definition: %v", err)
	}
	return def
}

// BuildForm loads and builds a definition fixture.
func BuildForm(t *testing.T, path string) (widgets.Form, *form.Context) {
	t.Helper()

	f, fc, err := definition.Build(LoadDefinition(t, path))
	if err != nil {
		t.Fatalf("build definition: %v", err)
	}
	return f, fc
}

// LoadErrorPayload reads a JSON validation response fixture without requiring
// testing.T, so callers can wire fixtures in setup functions.
func LoadErrorPayload(path string) (form.ValidationResponse, error) {
	if path == "" {
		return form.ValidationResponse{}, errors.New("testsupport: payload path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return form.ValidationResponse{}, fmt.Errorf("testsupport: read payload: %w", err)
	}
	resp, err := form.ParseValidationResponse(data)
	if err != nil {
		return form.ValidationResponse{}, fmt.Errorf("testsupport: parse payload: %w", err)
	}
	return resp, nil
}

// WriteGolden writes arbitrary data as JSON to a golden file when
// UPDATE_GOLDENS is set.
func WriteGolden(t *testing.T, path string, value any) {
	t.Helper()

	if os.Getenv("UPDATE_GOLDENS") == "" {
		return
	}
	payload, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		t.Fatalf("marshal golden: %v", err)
	}
	WriteMaybeGolden(t, path, payload)
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// MustReadGoldenString reads a golden file and returns its string content.
func MustReadGoldenString(t *testing.T, path string) string {
	t.Helper()
	return string(MustReadGolden(t, path))
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

var interTagSpace = regexp.MustCompile(`>\s+<`)

// NormalizeHTML collapses whitespace between tags and trims the result so
// markup comparisons ignore template formatting.
func NormalizeHTML(html string) string {
	return strings.TrimSpace(interTagSpace.ReplaceAllString(html, "><"))
}

// Context returns a background context carrying a logger that writes to the
// test log.
func Context(t *testing.T) context.Context {
	t.Helper()
	logger := zerolog.New(zerolog.NewTestWriter(t)).Level(zerolog.DebugLevel)
	return logger.WithContext(context.Background())
}

// CaptureTemplateOutput executes a render function that writes to an io.Writer,
// returning both the string result and the writer contents.
func CaptureTemplateOutput(t *testing.T, render func(io.Writer) (string, error)) (string, string) {
	t.Helper()

	var buf bytes.Buffer
	out, err := render(&buf)
	if err != nil {
		t.Fatalf("render template: %v", err)
	}

	return out, buf.String()
}
