// Package oaserrors provides the structured error types returned by oaspostman.
//
// Callers distinguish failure categories with errors.Is against the sentinels
// and reach the details with errors.As:
//
//	result, err := converter.ConvertWithOptions(converter.WithFilePath("swagger.json"))
//	if err != nil {
//	    var perr *oaserrors.ParseError
//	    if errors.As(err, &perr) {
//	        fmt.Println("bad input at", perr.Location)
//	    }
//	}
//
// # Error Categories
//
//   - ParseError: JSON/YAML decoding failures and structural problems in the source document
//   - ValidationError: OpenAPI violations reported by the optional validator
//   - ResourceLimitError: inputs exceeding a configured limit (file or body size)
//   - ConversionError: failures while building or serializing the collection
//   - ConfigError: invalid options or missing inputs
//   - PatchError: a source file the patcher could not read or rewrite
package oaserrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrParse indicates the source document could not be parsed.
	ErrParse = errors.New("parse error")

	// ErrValidation indicates the source document failed validation.
	ErrValidation = errors.New("validation error")

	// ErrResourceLimit indicates a resource limit was exceeded.
	ErrResourceLimit = errors.New("resource limit exceeded")

	// ErrConversion indicates the collection could not be built.
	ErrConversion = errors.New("conversion error")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")

	// ErrPatch indicates a file could not be patched.
	ErrPatch = errors.New("patch error")
)

// ParseError represents a failure to read the source document.
type ParseError struct {
	// Path is the file path or source identifier
	Path string
	// Location is the dotted location inside the document (e.g. "paths./pets.get")
	Location string
	// Line is the line number where the error occurred (0 if unknown)
	Line int
	// Message describes the parsing failure
	Message string
	// Cause is the underlying decoder error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ParseError) Error() string {
	msg := "parse error"
	if e.Path != "" {
		msg += " in " + e.Path
	}
	if e.Location != "" {
		msg += " at " + e.Location
	}
	if e.Line > 0 {
		msg += fmt.Sprintf(" (line %d)", e.Line)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// ValidationError represents an OpenAPI violation in the source document.
type ValidationError struct {
	// Path is the file path or source identifier
	Path string
	// Version is the declared swagger/openapi version of the document
	Version string
	// Message describes the validation failure
	Message string
	// Cause is the underlying validator error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ValidationError) Error() string {
	msg := "validation error"
	if e.Path != "" {
		msg += " in " + e.Path
	}
	if e.Version != "" {
		msg += " (" + e.Version + ")"
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ValidationError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// ResourceLimitError represents an input that exceeded a configured limit.
type ResourceLimitError struct {
	// ResourceType identifies the limit, e.g. "file_size" or "body_size"
	ResourceType string
	// Limit is the configured maximum value
	Limit int64
	// Actual is the value that exceeded the limit (0 if unknown)
	Actual int64
	// Message provides additional context
	Message string
}

// Error returns a human-readable error message.
func (e *ResourceLimitError) Error() string {
	msg := "resource limit exceeded"
	if e.ResourceType != "" {
		msg += ": " + e.ResourceType
	}
	if e.Limit > 0 {
		msg += fmt.Sprintf(" (limit: %d", e.Limit)
		if e.Actual > 0 {
			msg += fmt.Sprintf(", actual: %d", e.Actual)
		}
		msg += ")"
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *ResourceLimitError) Is(target error) bool {
	return target == ErrResourceLimit
}

// ConversionError represents a failure while building or serializing a collection.
type ConversionError struct {
	// Location is the operation or component being converted (e.g. "POST /api/Auth/login")
	Location string
	// Message describes the failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConversionError) Error() string {
	msg := "conversion error"
	if e.Location != "" {
		msg += " at " + e.Location
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConversionError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConversionError) Is(target error) bool {
	return target == ErrConversion
}

// ConfigError represents an invalid configuration or input.
type ConfigError struct {
	// Option is the name of the problematic option
	Option string
	// Value is the invalid value that was provided (may be nil)
	Value any
	// Message describes the configuration error
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}

// PatchError represents a source file the patcher could not process.
type PatchError struct {
	// Path is the file being patched
	Path string
	// Op is the failed step, e.g. "walk", "read" or "write"
	Op string
	// Cause is the underlying filesystem error
	Cause error
}

// Error returns a human-readable error message.
func (e *PatchError) Error() string {
	msg := "patch error"
	if e.Op != "" {
		msg += " (" + e.Op + ")"
	}
	if e.Path != "" {
		msg += " " + e.Path
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *PatchError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *PatchError) Is(target error) bool {
	return target == ErrPatch
}
