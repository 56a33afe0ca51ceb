package converter

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/erraggy/oaspostman/parser"
)

// ExampleField is one member of an ExampleObject.
type ExampleField struct {
	Key   string
	Value any
}

// ExampleObject is a JSON object that marshals its fields in slice order.
type ExampleObject []ExampleField

// MarshalJSON encodes the fields in order.
func (o ExampleObject) MarshalJSON() ([]byte, error) {
	if len(o) == 0 {
		return []byte("{}"), nil
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range o {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := marshalNoEscape(f.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := marshalNoEscape(f.Value)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", f.Key, err)
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// marshalNoEscape is json.Marshal without HTML escaping.
func marshalNoEscape(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// PlaceholderExample is the body used when no example can be synthesized.
func PlaceholderExample() ExampleObject {
	return ExampleObject{{Key: "placeholder", Value: "Fill with actual data"}}
}

type issueFunc func(path, message string, sev Severity, context string)

// synthesizeExample builds a shallow example for a request schema. It reports
// true when the placeholder was returned.
//
// Each property contributes by its declared type, "string" when absent:
// string, integer, and boolean use the schema example when present and
// "example_<name>", 0, or false otherwise; array and object become [] and {}.
// Other types are skipped.
func synthesizeExample(schema *parser.Schema, location string, addIssue issueFunc) (ExampleObject, bool) {
	if schema.HasRef {
		return PlaceholderExample(), true
	}

	example := ExampleObject{}
	for _, prop := range schema.Properties {
		ps := prop.Schema
		typ := ps.Type
		if !ps.HasType {
			typ = "string"
		}

		var value any
		switch typ {
		case "string":
			value = explicitOr(ps, "example_"+prop.Name)
		case "integer":
			value = explicitOr(ps, 0)
		case "boolean":
			value = explicitOr(ps, false)
		case "array":
			value = []any{}
		case "object":
			value = ExampleObject{}
		default:
			addIssue(location+".requestBody.properties."+prop.Name,
				"property type not supported by example synthesis; omitted", SeverityInfo, describeType(ps))
			continue
		}
		example = append(example, ExampleField{Key: prop.Name, Value: value})
	}

	if len(example) == 0 {
		return PlaceholderExample(), true
	}
	return example, false
}

// explicitOr returns the schema's own example, or fallback when it has none.
// An explicit null example is kept.
func explicitOr(s *parser.Schema, fallback any) any {
	if s.HasExample {
		return s.Example
	}
	return fallback
}

func describeType(s *parser.Schema) string {
	if s.Type != "" {
		return "type " + s.Type
	}
	return "non-string type"
}
