// Package testutil provides test utilities and fixtures for unit tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"go.yaml.in/yaml/v4"
)

// AuthItemsSwagger is the two-path document used for end-to-end conversion
// checks: a public login endpoint and a bearer-protected item lookup.
const AuthItemsSwagger = `{
  "openapi": "3.0.1",
  "info": {"title": "ZiraAI", "version": "v1"},
  "paths": {
    "/api/v{version}/Auth/login": {
      "post": {
        "tags": ["Auth"],
        "summary": "User Login",
        "requestBody": {
          "content": {
            "application/json": {
              "schema": {
                "type": "object",
                "properties": {
                  "email": {"type": "string"},
                  "password": {"type": "string"}
                }
              }
            }
          }
        }
      }
    },
    "/api/v{version}/Items/{id}": {
      "get": {
        "tags": ["Items"],
        "operationId": "getItem",
        "security": [{"Bearer": []}]
      }
    }
  }
}`

// MixedSwagger exercises tag grouping, name fallbacks, auth rules, example
// synthesis, and unsupported verbs in a single document.
const MixedSwagger = `{
  "swagger": "2.0",
  "info": {"title": "Mixed API", "version": "1"},
  "paths": {
    "/api/v{version}/Users/{userId}": {
      "parameters": [{"name": "userId", "in": "path"}],
      "put": {
        "tags": ["Users"],
        "summary": "Update user",
        "description": "Updates a user profile",
        "security": [{"ApiKey": []}],
        "parameters": [
          {"name": "userId", "in": "path", "required": true, "type": "string"},
          {
            "name": "body",
            "in": "body",
            "schema": {
              "type": "object",
              "properties": {
                "name": {"type": "string", "example": "Ada"},
                "age": {"type": "integer"},
                "active": {"type": "boolean", "example": true},
                "score": {"type": "number"},
                "roles": {"type": "array"},
                "meta": {"type": "object"},
                "nickname": {}
              }
            }
          }
        ]
      },
      "get": {
        "tags": ["Users"],
        "operationId": "getUser"
      },
      "head": {
        "tags": ["Users"],
        "summary": "Probe user"
      }
    },
    "/health": {
      "get": {}
    },
    "/api/Auth/register": {
      "post": {
        "tags": ["Auth"],
        "summary": "Register",
        "security": [],
        "parameters": [
          {"name": "body", "in": "body", "schema": {"$ref": "#/definitions/Register"}}
        ]
      }
    }
  }
}`

// WriteTempFile writes content to name inside a per-test temporary directory.
// Returns the path to the file.
// The file is automatically cleaned up when the test completes (via t.TempDir).
func WriteTempFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("Failed to write temporary file: %v", err)
	}
	return path
}

// WriteTempJSON writes a JSON document to a temporary "swagger.json".
func WriteTempJSON(t *testing.T, doc string) string {
	t.Helper()
	return WriteTempFile(t, "swagger.json", doc)
}

// WriteTempYAML converts a JSON document to block-style YAML, keeping key
// order, and writes it to a temporary "swagger.yaml".
func WriteTempYAML(t *testing.T, doc string) string {
	t.Helper()
	return WriteTempFile(t, "swagger.yaml", ToYAML(t, doc))
}

// ToYAML re-encodes a JSON document as block-style YAML with the same key order.
func ToYAML(t *testing.T, doc string) string {
	t.Helper()

	var root yaml.Node
	if err := yaml.Unmarshal([]byte(doc), &root); err != nil {
		t.Fatalf("Failed to decode document: %v", err)
	}
	clearStyle(&root)

	data, err := yaml.Marshal(&root)
	if err != nil {
		t.Fatalf("Failed to marshal document to YAML: %v", err)
	}
	return string(data)
}

// clearStyle drops the flow and quoting styles picked up from JSON input,
// leaving quotes only where a plain scalar would change meaning.
func clearStyle(n *yaml.Node) {
	if n.Kind != yaml.ScalarNode || n.Tag != "!!str" {
		n.Style = 0
	} else {
		n.Style = 0
		if needsQuotes(n.Value) {
			n.Style = yaml.DoubleQuotedStyle
		}
	}
	for _, c := range n.Content {
		clearStyle(c)
	}
}

// needsQuotes reports whether a plain scalar would resolve to something
// other than the string s.
func needsQuotes(s string) bool {
	var v any
	if err := yaml.Unmarshal([]byte(s), &v); err != nil {
		return true
	}
	str, ok := v.(string)
	return !ok || str != s
}
