// Package envutil reads OASPOSTMAN_* configuration from the environment.
// Invalid values log a warning and fall back to the supplied default.
package envutil

import (
	"log/slog"
	"os"
	"strconv"
	"time"
)

// Bool returns the boolean value of key, or fallback when unset or invalid.
func Bool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("invalid bool env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return b
}

// Int returns the positive integer value of key, or fallback.
func Int(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return n
}

// Int64 returns the positive int64 value of key, or fallback.
func Int64(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return n
}

// Duration returns the positive duration value of key, or fallback.
func Duration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		slog.Warn("invalid duration env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return d
}

// String returns the value of key, or fallback when unset.
func String(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
