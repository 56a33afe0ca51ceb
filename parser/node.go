package parser

import "encoding/json"

// nodeKind classifies a decoded value independently of the input format.
type nodeKind int

const (
	kindNull nodeKind = iota
	kindObject
	kindArray
	kindString
	kindScalar // number or boolean
)

func (k nodeKind) String() string {
	switch k {
	case kindObject:
		return "object"
	case kindArray:
		return "array"
	case kindString:
		return "string"
	case kindScalar:
		return "scalar"
	default:
		return "null"
	}
}

// node is an ordered view over a decoded JSON or YAML value.
type node interface {
	kind() nodeKind
	// str returns the string value; only meaningful for kindString.
	str() string
	// fields returns object members in source order, duplicate keys collapsed.
	fields() []field
	elems() []node
	// rawJSON renders the value as JSON.
	rawJSON() (json.RawMessage, error)
	// line is the 1-based source line, or 0 when the decoder does not track it.
	line() int
}

type field struct {
	key   string
	value node
}

// lookup returns the value of key in an object node.
func lookup(n node, key string) (node, bool) {
	if n == nil || n.kind() != kindObject {
		return nil, false
	}
	for _, f := range n.fields() {
		if f.key == key {
			return f.value, true
		}
	}
	return nil, false
}

// dedupeFields keeps each key at the position it first appeared with the
// value it was last given, matching how JSON object decoders treat repeats.
func dedupeFields(in []field) []field {
	index := make(map[string]int, len(in))
	out := make([]field, 0, len(in))
	for _, f := range in {
		if i, ok := index[f.key]; ok {
			out[i].value = f.value
			continue
		}
		index[f.key] = len(out)
		out = append(out, f)
	}
	return out
}
