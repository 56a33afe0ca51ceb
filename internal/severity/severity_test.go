package severity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeverityString(t *testing.T) {
	tests := []struct {
		name     string
		severity Severity
		expected string
		symbol   string
	}{
		{"info level", SeverityInfo, "info", "ℹ"},
		{"warning level", SeverityWarning, "warning", "⚠"},
		{"error level", SeverityError, "error", "✗"},

		{"unknown negative", Severity(-1), "unknown", "?"},
		{"unknown large value", Severity(999), "unknown", "?"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.severity.String())
			assert.Equal(t, tt.symbol, tt.severity.Symbol())
		})
	}
}

func TestSeverityOrdering(t *testing.T) {
	assert.True(t, SeverityInfo < SeverityWarning)
	assert.True(t, SeverityWarning < SeverityError)
}
