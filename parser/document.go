package parser

import "encoding/json"

// SourceFormat represents the format of the source document.
type SourceFormat string

const (
	// SourceFormatYAML indicates the source was in YAML format
	SourceFormatYAML SourceFormat = "yaml"
	// SourceFormatJSON indicates the source was in JSON format
	SourceFormatJSON SourceFormat = "json"
	// SourceFormatUnknown indicates the format could not be determined
	SourceFormatUnknown SourceFormat = "unknown"
)

// Document is the subset of a Swagger/OpenAPI document the converter needs.
// Paths and operations keep the order in which they appear in the source.
type Document struct {
	// SourcePath is the file path, URL, or "<bytes>"/"<reader>" placeholder
	SourcePath string
	// SourceFormat is the detected input format
	SourceFormat SourceFormat
	// SourceSize is the size of the raw input in bytes
	SourceSize int64
	// Version is the value of the top-level "swagger" or "openapi" field
	Version string
	// Title is info.title, when present
	Title string
	// Paths holds the path items in document order
	Paths []*PathItem

	raw []byte
}

// Raw returns the undecoded source bytes.
func (d *Document) Raw() []byte {
	return d.raw
}

// IsSwagger2 reports whether the document declares swagger: "2.0".
func (d *Document) IsSwagger2() bool {
	return len(d.Version) > 0 && d.Version[0] == '2'
}

// DocumentStats summarises a parsed document.
type DocumentStats struct {
	PathCount      int
	OperationCount int
}

// Stats counts paths and supported operations.
func (d *Document) Stats() DocumentStats {
	stats := DocumentStats{PathCount: len(d.Paths)}
	for _, item := range d.Paths {
		stats.OperationCount += len(item.Operations)
	}
	return stats
}

// PathItem is one entry of the paths map.
type PathItem struct {
	// Path is the path template, e.g. "/api/v{version}/Items/{id}"
	Path string
	// Operations holds the supported-verb operations in document order
	Operations []*Operation
}

// Operation is one HTTP operation under a path item.
type Operation struct {
	// Method is the lowercase path item key, e.g. "get"
	Method string
	// Tags holds the operation tags; non-string tags are kept as their JSON text
	Tags []string
	// OperationID is the operationId, or "" when absent
	OperationID string
	// Summary is the summary, or "" when absent
	Summary string
	// Description is the description, or "" when absent
	Description string
	// RequestSchema is the application/json request body schema, nil when
	// the operation declares none or declares an empty one
	RequestSchema *Schema
	// Security holds the scheme names of each security requirement object.
	// It is nil when the key is absent and empty when the list is empty.
	Security []SecurityRequirement
}

// SecurityRequirement lists the scheme names of one requirement object.
type SecurityRequirement []string

// Has reports whether the requirement references the named scheme.
func (r SecurityRequirement) Has(name string) bool {
	for _, n := range r {
		if n == name {
			return true
		}
	}
	return false
}

// Schema is a shallow view of a JSON Schema object.
// Only the top level and the direct properties are decoded.
type Schema struct {
	// Ref is the $ref value; HasRef is set whenever the key is present
	Ref    string
	HasRef bool
	// Type is the "type" value when it is a string; HasType is set whenever
	// the key is present, so a non-string type yields HasType with Type ""
	Type    string
	HasType bool
	// Example is the raw JSON of the "example" value; HasExample is set
	// whenever the key is present, including an explicit null
	Example    json.RawMessage
	HasExample bool
	// Properties holds the direct properties in declaration order
	Properties []*Property
}

// Property is a named entry of a schema's properties.
type Property struct {
	Name   string
	Schema *Schema
}
