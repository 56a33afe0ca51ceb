package parser

import (
	"bytes"
	"encoding/json"

	"github.com/valyala/fastjson"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// jsonNode adapts a fastjson value. fastjson keeps object members in source
// order, which encoding/json maps would lose.
type jsonNode struct {
	v *fastjson.Value
}

func decodeJSON(data []byte) (node, error) {
	var p fastjson.Parser
	v, err := p.ParseBytes(bytes.TrimPrefix(data, utf8BOM))
	if err != nil {
		return nil, err
	}
	return jsonNode{v: v}, nil
}

func (j jsonNode) kind() nodeKind {
	switch j.v.Type() {
	case fastjson.TypeObject:
		return kindObject
	case fastjson.TypeArray:
		return kindArray
	case fastjson.TypeString:
		return kindString
	case fastjson.TypeNull:
		return kindNull
	default:
		return kindScalar
	}
}

func (j jsonNode) str() string {
	b, err := j.v.StringBytes()
	if err != nil {
		return ""
	}
	return string(b)
}

func (j jsonNode) fields() []field {
	o, err := j.v.Object()
	if err != nil {
		return nil
	}
	out := make([]field, 0, o.Len())
	o.Visit(func(key []byte, v *fastjson.Value) {
		out = append(out, field{key: string(key), value: jsonNode{v: v}})
	})
	return dedupeFields(out)
}

func (j jsonNode) elems() []node {
	arr, err := j.v.Array()
	if err != nil {
		return nil
	}
	out := make([]node, len(arr))
	for i, v := range arr {
		out[i] = jsonNode{v: v}
	}
	return out
}

func (j jsonNode) rawJSON() (json.RawMessage, error) {
	return json.RawMessage(j.v.MarshalTo(nil)), nil
}

func (jsonNode) line() int { return 0 }
