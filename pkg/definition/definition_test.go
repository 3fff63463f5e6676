package definition_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-formfields/pkg/definition"
	"github.com/goliatone/go-formfields/pkg/field"
	"github.com/goliatone/go-formfields/pkg/form"
	"github.com/goliatone/go-formfields/pkg/widgets"
)

func TestLoadFile(t *testing.T) {
	def, err := definition.LoadFile("testdata/signup.yaml")
	require.NoError(t, err)

	require.Equal(t, "/signup", def.Action)
	require.Equal(t, "nl", def.Lang)
	require.Len(t, def.Fields, 4)
	require.Equal(t, []definition.Choice{
		{Value: "nl", Label: "Nederland"},
		{Value: "be", Label: "be"},
	}, def.Fields[1].Choices)
	require.NotNil(t, def.Fields[2].Errors)
	require.Empty(t, *def.Fields[2].Errors)
	require.Nil(t, def.Fields[0].Errors)
	require.NotNil(t, def.Fields[3].DisplayErrors)
	require.False(t, *def.Fields[3].DisplayErrors)
}

func TestLoad_RejectsUnknownKeys(t *testing.T) {
	_, err := definition.Load(strings.NewReader("action: /x\nfieldz: []\n"))
	require.ErrorIs(t, err, definition.ErrInvalidDefinition)

	_, err = definition.Load(strings.NewReader(""))
	require.ErrorIs(t, err, definition.ErrInvalidDefinition)

	_, err = definition.LoadFile("testdata/missing.yaml")
	require.Error(t, err)
}

func TestBuild(t *testing.T) {
	def, err := definition.LoadFile("testdata/signup.yaml")
	require.NoError(t, err)

	f, fc, err := definition.Build(def)
	require.NoError(t, err)
	require.Equal(t, []string{"email", "country", "documents", "newsletter"}, f.FieldNames())
	require.Equal(t, "Aanmelden", f.Button.Label)
	require.Equal(t, map[string]string{"_csrf": "token-123"}, f.Hidden)

	require.Equal(t, "nl", fc.Language())
	require.Equal(t, []string{"is al in gebruik"}, fc.FieldErrors("email"))
	require.Equal(t, []string{"Probeer het later opnieuw."}, fc.FormErrors())

	newsletter := f.Widgets[3].Field
	require.Equal(t, "newsletter", newsletter.ID())
	require.Equal(t, "de", newsletter.Lang())
	require.False(t, newsletter.DisplayErrors())

	state, err := f.Widgets[2].Field.State(fc)
	require.NoError(t, err)
	require.False(t, state.HasErrors)
	require.Equal(t, "documents", state.ID)
}

func TestBuild_RendersThroughWidgets(t *testing.T) {
	def, err := definition.LoadFile("testdata/signup.yaml")
	require.NoError(t, err)
	f, fc, err := definition.Build(def)
	require.NoError(t, err)

	r, err := widgets.New()
	require.NoError(t, err)
	html, err := r.RenderForm(context.Background(), f, fc)
	require.NoError(t, err)

	require.Contains(t, html, `aria-describedby="email-errors "`)
	require.Contains(t, html, `<option value="nl" selected>Nederland</option>`)
	require.Contains(t, html, ">Aanmelden</button>")
	require.Contains(t, html, ">Aus</span>")
	require.Contains(t, html, `<input type="hidden" name="_csrf" value="token-123">`)
}

func TestBuild_ReportsEveryFieldError(t *testing.T) {
	def := &definition.Definition{Fields: []definition.Field{
		{Kind: "text-field", Name: "ok"},
		{Kind: "text-field", Binding: "fields.email"},
		{Kind: "rating", Name: "stars"},
		{Kind: "date-field", Name: "when", Lang: "not a tag!"},
		{Kind: "form-button", Name: "submit"},
		{Name: "nokind"},
	}}

	_, fc, err := definition.Build(def)
	require.Error(t, err)
	require.Nil(t, fc)

	require.ErrorIs(t, err, field.ErrMissingFieldName)
	require.ErrorIs(t, err, widgets.ErrUnknownWidget)
	require.ErrorIs(t, err, field.ErrInvalidConfig)
	require.ErrorIs(t, err, widgets.ErrNotFieldWidget)

	var fieldErr *definition.FieldError
	require.True(t, errors.As(err, &fieldErr))
	require.Equal(t, 1, fieldErr.Index)
	require.Contains(t, err.Error(), "fields[5]")
}

func TestBuild_DefinitionModeApplies(t *testing.T) {
	def := &definition.Definition{
		Mode:   string(field.NameInferred),
		Fields: []definition.Field{{Kind: "text-field", Binding: "fields.firstName"}},
	}
	f, _, err := definition.Build(def)
	require.NoError(t, err)
	require.Equal(t, "firstName", f.Widgets[0].Field.Name())
	require.Equal(t, "first-name", f.Widgets[0].Field.ID())

	_, _, err = definition.Build(nil)
	require.ErrorIs(t, err, definition.ErrInvalidDefinition)
}

func TestBuild_ValidationNameReceivesServerErrors(t *testing.T) {
	def, err := definition.Load(strings.NewReader(`
action: /profile
fields:
  - kind: file-field
    name: upload
    validation_name: photo
`))
	require.NoError(t, err)
	f, fc, err := definition.Build(def)
	require.NoError(t, err)
	require.Equal(t, []string{"photo"}, f.FieldNames())

	resp, err := form.ParseValidationResponse([]byte(`{"errors":{"photo":["too large"]}}`))
	require.NoError(t, err)
	mapping := resp.Mapping(f.FieldNames())
	require.Equal(t, map[string][]string{"photo": {"too large"}}, mapping.Fields)
	require.Empty(t, mapping.Form)

	fc.PublishMapping(mapping)
	state, err := f.Widgets[0].Field.State(fc)
	require.NoError(t, err)
	require.True(t, state.HasErrors)
	require.Equal(t, "upload", state.Name)
	require.Equal(t, []string{"too large"}, state.Errors)
}
