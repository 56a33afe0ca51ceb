package cliutil

import (
	"bytes"
	"testing"
)

func TestWritef(t *testing.T) {
	var buf bytes.Buffer
	Writef(&buf, "Total folders: %d\n", 3)
	if got := buf.String(); got != "Total folders: 3\n" {
		t.Errorf("Writef() = %q, want %q", got, "Total folders: 3\n")
	}
}

// errorWriter is a writer that always returns an error
type errorWriter struct{}

func (errorWriter) Write(p []byte) (int, error) {
	return 0, bytes.ErrTooLarge
}

func TestWritef_WriteError(t *testing.T) {
	// Must not panic; the failure is reported on stderr.
	Writef(errorWriter{}, "This will fail")
}

func TestPlural(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, "directories"},
		{1, "directory"},
		{2, "directories"},
	}
	for _, tt := range tests {
		if got := Plural(tt.n, "directory", "directories"); got != tt.want {
			t.Errorf("Plural(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}
