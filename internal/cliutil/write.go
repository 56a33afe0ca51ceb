// Package cliutil provides utilities for CLI output.
package cliutil

import (
	"fmt"
	"io"
	"os"
)

// Writef writes formatted output to the writer.
// If the write fails, it logs to stderr.
func Writef(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "write error: %v\n", err)
	}
}

// Plural returns singular when n is exactly one, otherwise plural.
func Plural(n int, singular, plural string) string {
	if n == 1 {
		return singular
	}
	return plural
}
