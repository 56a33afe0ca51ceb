// Package severity provides the severity levels attached to conversion and
// patch issues.
//
// Levels are ordered from least to most severe: Info < Warning < Error.
package severity

// Severity indicates how much attention an issue needs.
type Severity int

const (
	// SeverityInfo marks a fallback the converter applied on purpose,
	// such as a synthesized request name or a placeholder body.
	SeverityInfo Severity = iota

	// SeverityWarning marks output that probably needs a manual touch,
	// such as a path parameter left unsubstituted.
	SeverityWarning

	// SeverityError marks work that could not be done, such as a file
	// the patcher failed to rewrite.
	SeverityError
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// Symbol returns the single-character marker used in console output.
func (s Severity) Symbol() string {
	switch s {
	case SeverityInfo:
		return "ℹ"
	case SeverityWarning:
		return "⚠"
	case SeverityError:
		return "✗"
	default:
		return "?"
	}
}
