// Package httputil provides HTTP method constants shared by the converter.
package httputil

import "strings"

// HTTP method keys as they appear in an OpenAPI path item.
const (
	MethodGet    = "get"
	MethodPut    = "put"
	MethodPost   = "post"
	MethodDelete = "delete"
	MethodPatch  = "patch"
)

// SupportedMethods lists the path item keys that become Postman requests.
var SupportedMethods = []string{MethodGet, MethodPost, MethodPut, MethodDelete, MethodPatch}

// IsSupportedMethod reports whether key (case-insensitive) is one of SupportedMethods.
func IsSupportedMethod(key string) bool {
	lower := strings.ToLower(key)
	for _, m := range SupportedMethods {
		if lower == m {
			return true
		}
	}
	return false
}
