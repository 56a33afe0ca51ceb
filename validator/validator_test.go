package validator

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/oaspostman/internal/testutil"
	"github.com/erraggy/oaspostman/oaserrors"
	"github.com/erraggy/oaspostman/parser"
)

const validOAS3 = `{
  "openapi": "3.0.3",
  "info": {"title": "Pets", "version": "1.0"},
  "paths": {
    "/pets": {
      "get": {
        "tags": ["Pets"],
        "operationId": "listPets",
        "responses": {"200": {"description": "ok"}}
      }
    }
  }
}`

const validSwagger2 = `{
  "swagger": "2.0",
  "info": {"title": "Pets", "version": "1.0"},
  "paths": {
    "/pets": {
      "get": {
        "tags": ["Pets"],
        "summary": "List pets",
        "responses": {"200": {"description": "ok"}}
      }
    }
  }
}`

func parse(t *testing.T, src string) *parser.Document {
	t.Helper()
	doc, err := parser.ParseWithOptions(parser.WithBytes([]byte(src)))
	require.NoError(t, err)
	return doc
}

func TestValidateParsed_Valid(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"oas3 json", validOAS3},
		{"swagger2 json", validSwagger2},
		{"swagger2 yaml", testutil.ToYAML(t, validSwagger2)},
		{"oas3 yaml", testutil.ToYAML(t, validOAS3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := New().ValidateParsed(context.Background(), parse(t, tt.src))
			require.NoError(t, err)
			assert.True(t, result.Valid, "errors: %v", result.Errors)
			assert.Zero(t, result.ErrorCount)
			assert.Zero(t, result.WarningCount)
			assert.Equal(t, 1, result.Stats.OperationCount)
		})
	}
}

func TestValidateParsed_MissingResponses(t *testing.T) {
	result, err := New().ValidateParsed(context.Background(), parse(t, testutil.AuthItemsSwagger))
	require.NoError(t, err)
	assert.False(t, result.Valid)
	require.NotEmpty(t, result.Errors)
	assert.Equal(t, "document", result.Errors[0].Path)
	assert.Equal(t, SeverityError, result.Errors[0].Severity)
}

func TestValidateParsed_VersionErrors(t *testing.T) {
	result, err := New().ValidateParsed(context.Background(), parse(t, `{"paths": {}}`))
	require.NoError(t, err)
	assert.False(t, result.Valid)
	assert.Contains(t, result.Errors[0].Message, "missing swagger or openapi version")

	result, err = New().ValidateParsed(context.Background(), parse(t, `{"swagger": "1.2", "paths": {}}`))
	require.NoError(t, err)
	assert.False(t, result.Valid)
	assert.Contains(t, result.Errors[0].Message, "unsupported version")
}

func TestValidateParsed_OAS31Warning(t *testing.T) {
	result, err := New().ValidateParsed(context.Background(), parse(t, `{"openapi": "3.1.0", "paths": {}}`))
	require.NoError(t, err)
	assert.True(t, result.Valid)
	require.Len(t, result.Warnings, 1)
	assert.Equal(t, "openapi", result.Warnings[0].Path)
}

func TestValidateParsed_ConversionWarnings(t *testing.T) {
	src := `{
  "openapi": "3.1.0",
  "paths": {
    "/a": {"get": {"operationId": "dup"}, "post": {}},
    "/b": {"get": {"tags": ["B"], "operationId": "dup"}}
  }
}`
	result, err := New().ValidateParsed(context.Background(), parse(t, src))
	require.NoError(t, err)

	var messages []string
	for _, w := range result.Warnings {
		messages = append(messages, w.Path+": "+w.Message)
	}
	assert.Contains(t, messages, `paths./a.get: operation has no tags and will be placed in the "Other" folder`)
	assert.Contains(t, messages, "paths./a.post: operation has neither summary nor operationId")
	assert.Contains(t, messages, `paths./b.get: duplicate operationId "dup"`)
	assert.Equal(t, len(result.Warnings), result.WarningCount)

	quiet := New()
	quiet.IncludeWarnings = false
	result, err = quiet.ValidateParsed(context.Background(), parse(t, src))
	require.NoError(t, err)
	assert.Nil(t, result.Warnings)
	assert.Zero(t, result.WarningCount)
}

func TestValidateParsed_Nil(t *testing.T) {
	_, err := New().ValidateParsed(context.Background(), nil)
	assert.Error(t, err)
}

func TestValidateWithOptions(t *testing.T) {
	path := testutil.WriteTempJSON(t, validOAS3)

	result, err := ValidateWithOptions(WithFilePath(path), WithContext(context.Background()))
	require.NoError(t, err)
	assert.True(t, result.Valid)
	assert.Equal(t, path, result.SourcePath)
	assert.Equal(t, parser.SourceFormatJSON, result.SourceFormat)

	result, err = ValidateWithOptions(WithParsed(parse(t, validSwagger2)), WithStrictMode(true))
	require.NoError(t, err)
	assert.True(t, result.Valid)
	assert.Equal(t, "2.0", result.Version)
}

func TestValidateWithOptions_Errors(t *testing.T) {
	_, err := ValidateWithOptions()
	require.Error(t, err)
	assert.True(t, errors.Is(err, oaserrors.ErrConfig))

	_, err = ValidateWithOptions(WithFilePath("a.json"), WithParsed(&parser.Document{}))
	assert.Contains(t, err.Error(), "exactly one input source")

	_, err = ValidateWithOptions(WithFilePath("does-not-exist.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse specification")
}

func TestJSONCompatible(t *testing.T) {
	in := map[string]any{
		"responses": map[any]any{200: map[string]any{"description": "ok"}},
		"list":      []any{map[any]any{true: "yes"}},
	}
	out := jsonCompatible(in).(map[string]any)
	assert.Equal(t, map[string]any{"200": map[string]any{"description": "ok"}}, out["responses"])
	assert.Equal(t, []any{map[string]any{"true": "yes"}}, out["list"])
}
