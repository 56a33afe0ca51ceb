// Package parser reads Swagger 2.0 and OpenAPI 3.x documents into the
// shallow, order-preserving Document model used by the converter.
//
// Only the parts of a document that drive Postman generation are decoded:
// the paths map, each supported operation (get, post, put, delete, patch),
// its tags, identifiers, security requirements, and the JSON request body
// schema with its direct properties. Everything else is ignored.
//
// JSON input is decoded with fastjson and YAML input with yaml.Node, so the
// order of paths, methods, and schema properties matches the source file.
// Documents can be loaded from local files or remote URLs (http:// or https://).
//
// # Quick Start
//
//	doc, err := parser.ParseWithOptions(
//		parser.WithFilePath("swagger.json"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, item := range doc.Paths {
//		for _, op := range item.Operations {
//			fmt.Println(strings.ToUpper(op.Method), item.Path)
//		}
//	}
//
// Or create a reusable Parser instance:
//
//	p := parser.New()
//	p.MaxFileSize = 8 << 20
//	doc, _ := p.Parse("https://example.com/swagger.json")
//
// # Errors
//
// Malformed input and structurally invalid paths yield *oaserrors.ParseError,
// which carries the JSON-path-like location and, for YAML, the source line.
// Inputs larger than the size limit yield *oaserrors.ResourceLimitError.
package parser
