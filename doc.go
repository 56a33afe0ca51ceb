// Package oaspostman converts Swagger/OpenAPI documents into Postman
// Collection v2.1 files.
//
// # Overview
//
// The module is organised as a handful of small packages:
//
//   - parser: read a Swagger/OpenAPI document (JSON or YAML) into an ordered model
//   - converter: classify operations into folders and build Postman requests
//   - postman: the Postman v2.1 collection model and its writer
//   - validator: optional structural validation of the source document
//   - patcher: rewrite GetAsync calls that are later tracked by Update/Delete
//   - oaserrors: typed errors shared by all packages
//
// # Quick Start
//
// Convert a document and write the collection:
//
//	result, err := converter.ConvertWithOptions(
//		converter.WithFilePath("swagger.json"),
//		converter.WithBaseURL("https://localhost:5001"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := postman.WriteFile("api.postman_collection.json", result.Collection); err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("Total folders: %d\n", result.FolderCount)
//	fmt.Printf("Total requests: %d\n", result.RequestCount)
//
// # Conversion Rules
//
// Every GET, POST, PUT, DELETE and PATCH operation becomes exactly one request.
// Requests are grouped into folders by their first tag ("Other" when untagged)
// and folders are emitted in lexicographic order. Path placeholders {version},
// {id}, {code}, {userId} and {analysisId} become Postman variables. Requests
// inherit a bearer token unless their name mentions login or register.
//
// Example request bodies are synthesized from the top-level properties of the
// application/json request schema. The synthesis is deliberately shallow: $ref
// schemas and schemas without usable properties produce a placeholder object.
//
// # Command Line
//
// The oaspostman binary wraps these packages:
//
//	oaspostman convert swagger.json -o api.postman_collection.json
//	oaspostman patch --dry-run ./Business/Handlers ./Business/Services
//	oaspostman serve --addr :8080
//	oaspostman mcp
package oaspostman
