// Package converter turns Swagger 2.0 and OpenAPI 3.x documents into Postman
// Collection v2.1 collections.
//
// Every operation whose method is GET, POST, PUT, DELETE, or PATCH becomes one
// request, grouped into a folder named after its first tag ("Other" when it
// has none). Folders are sorted by name; requests keep document order.
//
// For each request the converter:
//   - rewrites {version} and the allow-listed path parameters (id, code,
//     userId, analysisId, plus any added with WithPathVariables) into
//     {{variable}} form and roots the URL at {{base_url}}
//   - always sends "Content-Type: application/json"
//   - attaches a raw JSON body synthesized from the application/json request
//     schema, when there is one
//   - attaches bearer auth unless the operation's security excludes it or
//     its name mentions login or register
//
// # Quick Start
//
//	result, err := converter.ConvertWithOptions(
//		converter.WithFilePath("swagger.json"),
//		converter.WithBaseURL("https://api.example.com"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("%d folders, %d requests\n", result.FolderCount, result.RequestCount)
//	for _, issue := range result.Issues {
//		fmt.Println(issue)
//	}
//
// Example bodies are intentionally shallow: properties are filled from their
// declared type and example, nested schemas are not expanded, and $ref
// schemas become {"placeholder": "Fill with actual data"}.
package converter
