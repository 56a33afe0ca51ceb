package parser

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/oaspostman/internal/testutil"
	"github.com/erraggy/oaspostman/oaserrors"
)

func operationKeys(doc *Document) []string {
	var keys []string
	for _, item := range doc.Paths {
		for _, op := range item.Operations {
			keys = append(keys, op.Method+" "+item.Path)
		}
	}
	return keys
}

func TestParse_JSONAndYAMLAgree(t *testing.T) {
	jsonPath := testutil.WriteTempJSON(t, testutil.MixedSwagger)
	yamlPath := testutil.WriteTempYAML(t, testutil.MixedSwagger)

	fromJSON, err := New().Parse(jsonPath)
	require.NoError(t, err)
	fromYAML, err := New().Parse(yamlPath)
	require.NoError(t, err)

	assert.Equal(t, SourceFormatJSON, fromJSON.SourceFormat)
	assert.Equal(t, SourceFormatYAML, fromYAML.SourceFormat)
	assert.Equal(t, operationKeys(fromJSON), operationKeys(fromYAML))
	assert.Equal(t, "2.0", fromJSON.Version)
	assert.Equal(t, "2.0", fromYAML.Version)
	assert.True(t, fromJSON.IsSwagger2())
	assert.Equal(t, "Mixed API", fromYAML.Title)
}

func TestParse_PreservesOrder(t *testing.T) {
	doc, err := ParseWithOptions(WithBytes([]byte(testutil.MixedSwagger)))
	require.NoError(t, err)

	// head is not a supported verb and is skipped
	assert.Equal(t, []string{
		"put /api/v{version}/Users/{userId}",
		"get /api/v{version}/Users/{userId}",
		"get /health",
		"post /api/Auth/register",
	}, operationKeys(doc))

	put := doc.Paths[0].Operations[0]
	require.NotNil(t, put.RequestSchema)
	var names []string
	for _, p := range put.RequestSchema.Properties {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"name", "age", "active", "score", "roles", "meta", "nickname"}, names)
}

func TestParse_OperationFields(t *testing.T) {
	doc, err := ParseWithOptions(WithBytes([]byte(testutil.MixedSwagger)))
	require.NoError(t, err)

	put := doc.Paths[0].Operations[0]
	assert.Equal(t, []string{"Users"}, put.Tags)
	assert.Equal(t, "Update user", put.Summary)
	assert.Equal(t, "Updates a user profile", put.Description)
	assert.Equal(t, []SecurityRequirement{{"ApiKey"}}, put.Security)

	name := put.RequestSchema.Properties[0].Schema
	assert.True(t, name.HasType)
	assert.Equal(t, "string", name.Type)
	assert.True(t, name.HasExample)
	assert.JSONEq(t, `"Ada"`, string(name.Example))

	nickname := put.RequestSchema.Properties[6].Schema
	assert.False(t, nickname.HasType)
	assert.False(t, nickname.HasExample)

	get := doc.Paths[0].Operations[1]
	assert.Equal(t, "getUser", get.OperationID)
	assert.Nil(t, get.RequestSchema)
	assert.Nil(t, get.Security)

	health := doc.Paths[1].Operations[0]
	assert.Empty(t, health.Tags)
	assert.Empty(t, health.Summary)

	register := doc.Paths[2].Operations[0]
	assert.NotNil(t, register.Security)
	assert.Empty(t, register.Security)
	require.NotNil(t, register.RequestSchema)
	assert.True(t, register.RequestSchema.HasRef)
	assert.Equal(t, "#/definitions/Register", register.RequestSchema.Ref)
	assert.Empty(t, register.RequestSchema.Properties)
}

func TestParse_RequestBody(t *testing.T) {
	tests := []struct {
		name    string
		op      string
		hasBody bool
	}{
		{"json schema", `{"requestBody": {"content": {"application/json": {"schema": {"type": "object"}}}}}`, true},
		{"empty schema", `{"requestBody": {"content": {"application/json": {"schema": {}}}}}`, false},
		{"other media type", `{"requestBody": {"content": {"text/plain": {"schema": {"type": "string"}}}}}`, false},
		{"no content", `{"requestBody": {"description": "x"}}`, false},
		{"empty request body falls back to body param", `{"requestBody": {}, "parameters": [{"in": "body", "schema": {"type": "object"}}]}`, true},
		{"request body wins over body param", `{"requestBody": {"required": true}, "parameters": [{"in": "body", "schema": {"type": "object"}}]}`, false},
		{"query param only", `{"parameters": [{"in": "query", "name": "q"}]}`, false},
		{"none", `{}`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := `{"paths": {"/x": {"post": ` + tt.op + `}}}`
			doc, err := ParseWithOptions(WithBytes([]byte(src)))
			require.NoError(t, err)
			op := doc.Paths[0].Operations[0]
			assert.Equal(t, tt.hasBody, op.RequestSchema != nil)
		})
	}
}

func TestParse_NonStringTags(t *testing.T) {
	doc, err := ParseWithOptions(WithBytes([]byte(`{"paths": {"/x": {"get": {"tags": [42, "b"]}}}}`)))
	require.NoError(t, err)
	assert.Equal(t, []string{"42", "b"}, doc.Paths[0].Operations[0].Tags)
}

func TestParse_DuplicateKeys(t *testing.T) {
	src := `{"paths": {"/a": {"get": {"summary": "first"}}, "/b": {}, "/a": {"get": {"summary": "second"}}}}`
	doc, err := ParseWithOptions(WithBytes([]byte(src)))
	require.NoError(t, err)
	require.Len(t, doc.Paths, 2)
	assert.Equal(t, "/a", doc.Paths[0].Path)
	assert.Equal(t, "second", doc.Paths[0].Operations[0].Summary)
}

func TestParse_MissingPaths(t *testing.T) {
	doc, err := ParseWithOptions(WithBytes([]byte(`{"openapi": "3.0.0"}`)))
	require.NoError(t, err)
	assert.Empty(t, doc.Paths)
	assert.Equal(t, DocumentStats{}, doc.Stats())
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		location string
	}{
		{"invalid json", `{"paths": `, ""},
		{"invalid yaml", "paths:\n  - a\n b: [", ""},
		{"array root", `[1, 2]`, ""},
		{"scalar paths", `{"paths": 3}`, "paths"},
		{"scalar path item", `{"paths": {"/x": "nope"}}`, "paths./x"},
		{"scalar operation", `{"paths": {"/x": {"get": true}}}`, "paths./x.get"},
		{"scalar properties", `{"paths": {"/x": {"post": {"requestBody": {"content": {"application/json": {"schema": {"properties": 1}}}}}}}}`,
			"paths./x.post.requestBody.content.application/json.schema.properties"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseWithOptions(WithBytes([]byte(tt.input)))
			require.Error(t, err)
			assert.True(t, errors.Is(err, oaserrors.ErrParse), "expected ErrParse, got %v", err)

			var perr *oaserrors.ParseError
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, tt.location, perr.Location)
		})
	}
}

func TestParse_NonVerbKeysIgnored(t *testing.T) {
	src := `{"paths": {"/x": {"parameters": "whatever", "x-ext": 1, "GET": {"summary": "upper"}}}}`
	doc, err := ParseWithOptions(WithBytes([]byte(src)))
	require.NoError(t, err)
	require.Len(t, doc.Paths[0].Operations, 1)
	assert.Equal(t, "get", doc.Paths[0].Operations[0].Method)
}

func TestParse_YAMLErrorLine(t *testing.T) {
	src := "paths:\n  /x:\n    get: 7\n"
	_, err := ParseWithOptions(WithBytes([]byte(src)))
	var perr *oaserrors.ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, 3, perr.Line)
}

func TestParse_YAMLAnchors(t *testing.T) {
	src := `
paths:
  /a:
    get: &op
      summary: shared
  /b:
    get: *op
`
	doc, err := ParseWithOptions(WithBytes([]byte(src)))
	require.NoError(t, err)
	require.Len(t, doc.Paths, 2)
	assert.Equal(t, "shared", doc.Paths[1].Operations[0].Summary)
}

func TestParse_BOM(t *testing.T) {
	data := append([]byte{0xEF, 0xBB, 0xBF}, []byte(`{"paths": {"/x": {"get": {}}}}`)...)
	doc, err := ParseWithOptions(WithBytes(data))
	require.NoError(t, err)
	assert.Equal(t, SourceFormatJSON, doc.SourceFormat)
	assert.Len(t, doc.Paths, 1)
}

func TestParse_EmptyInput(t *testing.T) {
	_, err := ParseWithOptions(WithBytes([]byte("  \n")))
	require.Error(t, err)
	assert.True(t, errors.Is(err, oaserrors.ErrParse))
}

func TestParse_MissingFile(t *testing.T) {
	_, err := New().Parse(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestParse_MaxFileSize(t *testing.T) {
	path := testutil.WriteTempJSON(t, testutil.AuthItemsSwagger)

	p := &Parser{MaxFileSize: 16}
	_, err := p.Parse(path)
	assert.True(t, errors.Is(err, oaserrors.ErrResourceLimit))

	_, err = p.ParseBytes([]byte(testutil.AuthItemsSwagger))
	assert.True(t, errors.Is(err, oaserrors.ErrResourceLimit))

	_, err = p.ParseReader(strings.NewReader(testutil.AuthItemsSwagger))
	assert.True(t, errors.Is(err, oaserrors.ErrResourceLimit))
}

func TestParse_URL(t *testing.T) {
	var gotUA string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write([]byte(testutil.ToYAML(t, testutil.AuthItemsSwagger)))
	}))
	defer server.Close()

	doc, err := New().Parse(server.URL + "/spec")
	require.NoError(t, err)
	assert.Equal(t, SourceFormatYAML, doc.SourceFormat)
	assert.Equal(t, server.URL+"/spec", doc.SourcePath)
	assert.Len(t, doc.Paths, 2)
	assert.True(t, strings.HasPrefix(gotUA, "oaspostman/"))
}

func TestParse_URLStatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	_, err := New().Parse(server.URL + "/swagger.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 404")
}

func TestDocument_Raw(t *testing.T) {
	doc, err := ParseWithOptions(WithBytes([]byte(testutil.AuthItemsSwagger)))
	require.NoError(t, err)
	assert.Equal(t, testutil.AuthItemsSwagger, string(doc.Raw()))
	assert.Equal(t, int64(len(testutil.AuthItemsSwagger)), doc.SourceSize)
	assert.Equal(t, DocumentStats{PathCount: 2, OperationCount: 2}, doc.Stats())
	assert.False(t, doc.IsSwagger2())
}

func TestSecurityRequirement_Has(t *testing.T) {
	req := SecurityRequirement{"Bearer", "ApiKey"}
	assert.True(t, req.Has("Bearer"))
	assert.False(t, req.Has("bearer"))
	assert.False(t, SecurityRequirement(nil).Has("Bearer"))
}
