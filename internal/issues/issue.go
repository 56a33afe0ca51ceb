// Package issues provides the issue type reported alongside conversion and
// patch results.
package issues

import (
	"fmt"

	"github.com/erraggy/oaspostman/internal/severity"
)

// Issue is a single note about how the input was handled.
type Issue struct {
	// Path locates the issue, e.g. "paths./api/v{version}/Items.get.requestBody"
	Path string
	// Message is a human-readable description of the issue
	Message string
	// Severity indicates the severity level of the issue
	Severity severity.Severity
	// Context carries extra detail, e.g. the value that was substituted
	Context string
}

// String formats the issue for console output, prefixed with the severity symbol.
func (i Issue) String() string {
	result := fmt.Sprintf("%s %s: %s", i.Severity.Symbol(), i.Path, i.Message)
	if i.Context != "" {
		result += fmt.Sprintf("\n    Context: %s", i.Context)
	}
	return result
}

// Counts tallies issues per severity.
func Counts(list []Issue) (info, warnings, errs int) {
	for _, issue := range list {
		switch issue.Severity {
		case severity.SeverityInfo:
			info++
		case severity.SeverityWarning:
			warnings++
		case severity.SeverityError:
			errs++
		}
	}
	return info, warnings, errs
}
