package validator

import (
	"encoding/json"
	"fmt"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/oaspostman/parser"
)

// toJSON returns JSON bytes for a document in either source format.
// openapi2.T only implements JSON decoding.
func toJSON(data []byte, format parser.SourceFormat) ([]byte, error) {
	if format == parser.SourceFormatJSON {
		return data, nil
	}
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return json.Marshal(jsonCompatible(v))
}

// jsonCompatible converts YAML mappings with non-string keys, such as
// unquoted response codes, into string-keyed maps.
func jsonCompatible(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, val := range t {
			t[k] = jsonCompatible(val)
		}
		return t
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[fmt.Sprint(k)] = jsonCompatible(val)
		}
		return out
	case []any:
		for i, val := range t {
			t[i] = jsonCompatible(val)
		}
		return t
	default:
		return v
	}
}
