package parser

import (
	"encoding/json"
	"errors"

	"go.yaml.in/yaml/v4"
)

// yamlNode adapts a yaml.Node tree, which preserves mapping order and lines.
type yamlNode struct {
	n *yaml.Node
}

func decodeYAML(data []byte) (node, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	root := &doc
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			return nil, errors.New("empty document")
		}
		root = root.Content[0]
	}
	if root.Kind == 0 {
		return nil, errors.New("empty document")
	}
	return newYAMLNode(root), nil
}

func newYAMLNode(n *yaml.Node) yamlNode {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return yamlNode{n: n}
}

func (y yamlNode) kind() nodeKind {
	switch y.n.Kind {
	case yaml.MappingNode:
		return kindObject
	case yaml.SequenceNode:
		return kindArray
	case yaml.ScalarNode:
		switch y.n.ShortTag() {
		case "!!str":
			return kindString
		case "!!null":
			return kindNull
		default:
			return kindScalar
		}
	default:
		return kindNull
	}
}

func (y yamlNode) str() string {
	return y.n.Value
}

func (y yamlNode) fields() []field {
	if y.n.Kind != yaml.MappingNode {
		return nil
	}
	out := make([]field, 0, len(y.n.Content)/2)
	for i := 0; i+1 < len(y.n.Content); i += 2 {
		key := newYAMLNode(y.n.Content[i])
		out = append(out, field{key: key.n.Value, value: newYAMLNode(y.n.Content[i+1])})
	}
	return dedupeFields(out)
}

func (y yamlNode) elems() []node {
	if y.n.Kind != yaml.SequenceNode {
		return nil
	}
	out := make([]node, len(y.n.Content))
	for i, c := range y.n.Content {
		out[i] = newYAMLNode(c)
	}
	return out
}

func (y yamlNode) rawJSON() (json.RawMessage, error) {
	var v any
	if err := y.n.Decode(&v); err != nil {
		return nil, err
	}
	return json.Marshal(v)
}

func (y yamlNode) line() int { return y.n.Line }
