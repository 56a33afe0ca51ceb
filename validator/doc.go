// Package validator checks Swagger 2.0 and OpenAPI 3.0 documents for
// structural errors before they are converted.
//
// Structural validation is delegated to kin-openapi: OpenAPI 3.0 documents are
// loaded with openapi3.Loader and validated with (*openapi3.T).Validate, and
// Swagger 2.0 documents are first upgraded with openapi2conv.ToV3. On top of
// that the validator reports conversion-oriented warnings, such as operations
// without tags (which end up in the "Other" folder) or without any name.
//
// # Quick Start
//
//	result, err := validator.ValidateWithOptions(
//		validator.WithFilePath("swagger.json"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	if !result.Valid {
//		for _, e := range result.Errors {
//			fmt.Println(e)
//		}
//	}
//
// OpenAPI 3.1 documents are not structurally validated; they receive a
// warning and only the conversion checks run.
package validator
