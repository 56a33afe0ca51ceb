package parser

import (
	"fmt"
	"strings"

	"github.com/erraggy/oaspostman/internal/httputil"
	"github.com/erraggy/oaspostman/oaserrors"
)

// builder turns a decoded node tree into a Document.
type builder struct {
	source string
	log    Logger
}

func (b *builder) errorf(n node, location, format string, args ...any) error {
	perr := &oaserrors.ParseError{
		Path:     b.source,
		Location: location,
		Message:  fmt.Sprintf(format, args...),
	}
	if n != nil {
		perr.Line = n.line()
	}
	return perr
}

func (b *builder) build(root node) (*Document, error) {
	if root.kind() != kindObject {
		return nil, b.errorf(root, "", "document root must be an object, got %s", root.kind())
	}

	doc := &Document{}
	if v, ok := lookup(root, "swagger"); ok && v.kind() == kindString {
		doc.Version = v.str()
	} else if v, ok := lookup(root, "openapi"); ok && v.kind() == kindString {
		doc.Version = v.str()
	}
	if info, ok := lookup(root, "info"); ok {
		doc.Title = stringField(info, "title")
	}

	paths, ok := lookup(root, "paths")
	if !ok {
		b.log.Debug("document has no paths")
		return doc, nil
	}
	if paths.kind() != kindObject {
		return nil, b.errorf(paths, "paths", "paths must be an object, got %s", paths.kind())
	}

	for _, pf := range paths.fields() {
		item, err := b.buildPathItem(pf.key, pf.value)
		if err != nil {
			return nil, err
		}
		doc.Paths = append(doc.Paths, item)
	}
	return doc, nil
}

func (b *builder) buildPathItem(path string, n node) (*PathItem, error) {
	location := "paths." + path
	if n.kind() != kindObject {
		return nil, b.errorf(n, location, "path item must be an object, got %s", n.kind())
	}

	item := &PathItem{Path: path}
	for _, mf := range n.fields() {
		// parameters, servers, summary and friends share the namespace with verbs
		if !httputil.IsSupportedMethod(mf.key) {
			continue
		}
		op, err := b.buildOperation(strings.ToLower(mf.key), location+"."+mf.key, mf.value)
		if err != nil {
			return nil, err
		}
		item.Operations = append(item.Operations, op)
	}
	return item, nil
}

func (b *builder) buildOperation(method, location string, n node) (*Operation, error) {
	if n.kind() != kindObject {
		return nil, b.errorf(n, location, "operation must be an object, got %s", n.kind())
	}

	op := &Operation{
		Method:      method,
		OperationID: stringField(n, "operationId"),
		Summary:     stringField(n, "summary"),
		Description: stringField(n, "description"),
	}

	if tags, ok := lookup(n, "tags"); ok && tags.kind() == kindArray {
		for _, t := range tags.elems() {
			op.Tags = append(op.Tags, renderString(t))
		}
	}

	if sec, ok := lookup(n, "security"); ok && sec.kind() == kindArray {
		op.Security = make([]SecurityRequirement, 0, len(sec.elems()))
		for _, req := range sec.elems() {
			var names SecurityRequirement
			for _, f := range req.fields() {
				names = append(names, f.key)
			}
			op.Security = append(op.Security, names)
		}
	}

	schemaNode, schemaLoc := requestSchemaNode(n, location)
	if schemaNode != nil {
		schema, err := b.buildSchema(schemaNode, schemaLoc, true)
		if err != nil {
			return nil, err
		}
		op.RequestSchema = schema
	}

	b.log.Debug("decoded operation", "location", location, "tags", len(op.Tags), "hasBody", op.RequestSchema != nil)
	return op, nil
}

// requestSchemaNode finds the JSON request body schema of an operation:
// requestBody.content["application/json"].schema, or the schema of a Swagger
// 2.0 "in: body" parameter. Empty schemas count as absent.
func requestSchemaNode(op node, location string) (node, string) {
	if rb, ok := lookup(op, "requestBody"); ok && len(rb.fields()) > 0 {
		content, _ := lookup(rb, "content")
		media, _ := lookup(content, "application/json")
		if schema, ok := lookup(media, "schema"); ok && schema.kind() == kindObject && len(schema.fields()) > 0 {
			return schema, location + ".requestBody.content.application/json.schema"
		}
		return nil, ""
	}

	params, ok := lookup(op, "parameters")
	if !ok || params.kind() != kindArray {
		return nil, ""
	}
	for i, p := range params.elems() {
		in, ok := lookup(p, "in")
		if !ok || in.kind() != kindString || in.str() != "body" {
			continue
		}
		if schema, ok := lookup(p, "schema"); ok && schema.kind() == kindObject && len(schema.fields()) > 0 {
			return schema, fmt.Sprintf("%s.parameters[%d].schema", location, i)
		}
	}
	return nil, ""
}

// buildSchema decodes a schema object. Properties are only read at the top
// level; nested property schemas are reduced to their type and example.
func (b *builder) buildSchema(n node, location string, withProperties bool) (*Schema, error) {
	s := &Schema{}

	if ref, ok := lookup(n, "$ref"); ok {
		s.HasRef = true
		if ref.kind() == kindString {
			s.Ref = ref.str()
		}
	}
	if typ, ok := lookup(n, "type"); ok {
		s.HasType = true
		if typ.kind() == kindString {
			s.Type = typ.str()
		}
	}
	if ex, ok := lookup(n, "example"); ok {
		raw, err := ex.rawJSON()
		if err != nil {
			return nil, b.errorf(ex, location+".example", "example is not representable as JSON: %v", err)
		}
		s.HasExample = true
		s.Example = raw
	}

	if !withProperties || s.HasRef {
		return s, nil
	}

	props, ok := lookup(n, "properties")
	if !ok {
		return s, nil
	}
	if props.kind() != kindObject {
		return nil, b.errorf(props, location+".properties", "properties must be an object, got %s", props.kind())
	}
	for _, pf := range props.fields() {
		propLoc := location + ".properties." + pf.key
		if pf.value.kind() != kindObject {
			return nil, b.errorf(pf.value, propLoc, "property schema must be an object, got %s", pf.value.kind())
		}
		ps, err := b.buildSchema(pf.value, propLoc, false)
		if err != nil {
			return nil, err
		}
		s.Properties = append(s.Properties, &Property{Name: pf.key, Schema: ps})
	}
	return s, nil
}

// stringField returns n[key] when it is a string, otherwise "".
func stringField(n node, key string) string {
	v, ok := lookup(n, key)
	if !ok || v.kind() != kindString {
		return ""
	}
	return v.str()
}

// renderString returns string values as-is and anything else as JSON text.
func renderString(n node) string {
	if n.kind() == kindString {
		return n.str()
	}
	raw, err := n.rawJSON()
	if err != nil {
		return ""
	}
	return string(raw)
}
