package validator

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/getkin/kin-openapi/openapi2"
	"github.com/getkin/kin-openapi/openapi2conv"
	"github.com/getkin/kin-openapi/openapi3"

	"github.com/erraggy/oaspostman/internal/issues"
	"github.com/erraggy/oaspostman/internal/severity"
	"github.com/erraggy/oaspostman/parser"
)

// Severity indicates the severity level of a validation issue
type Severity = severity.Severity

const (
	// SeverityError indicates a structural problem that makes the document invalid
	SeverityError = severity.SeverityError
	// SeverityWarning indicates something that converts, but poorly
	SeverityWarning = severity.SeverityWarning
)

// ValidationError represents a single validation issue
type ValidationError = issues.Issue

// ValidationResult contains the results of validating a document
type ValidationResult struct {
	// Valid is true if no errors were found (warnings are allowed)
	Valid bool
	// Version is the declared swagger/openapi version
	Version string
	// Errors contains all validation errors
	Errors []ValidationError
	// Warnings contains all validation warnings
	Warnings []ValidationError
	// ErrorCount is the total number of errors
	ErrorCount int
	// WarningCount is the total number of warnings
	WarningCount int
	// ValidateTime is the time spent in structural validation
	ValidateTime time.Duration
	// SourceSize is the size of the source data in bytes
	SourceSize int64
	// Stats contains statistical information about the document
	Stats parser.DocumentStats
	// SourceFormat is the format of the source file (JSON or YAML)
	SourceFormat parser.SourceFormat
	// SourcePath is the source path of the parsed document
	SourcePath string
}

// Validator validates parsed documents
type Validator struct {
	// IncludeWarnings determines whether to include conversion warnings
	IncludeWarnings bool
	// StrictMode additionally validates schema examples
	StrictMode bool
	// UserAgent is the User-Agent string used when fetching URLs
	UserAgent string
	// Logger receives debug output; nil means no logging
	Logger parser.Logger
}

// New creates a new Validator instance with default settings
func New() *Validator {
	return &Validator{
		IncludeWarnings: true,
	}
}

// ValidateWithOptions validates a document using functional options.
//
// Example:
//
//	result, err := validator.ValidateWithOptions(
//	    validator.WithFilePath("swagger.yaml"),
//	    validator.WithStrictMode(true),
//	)
func ValidateWithOptions(opts ...Option) (*ValidationResult, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("validator: invalid options: %w", err)
	}

	v := &Validator{
		IncludeWarnings: cfg.includeWarnings,
		StrictMode:      cfg.strictMode,
		UserAgent:       cfg.userAgent,
		Logger:          cfg.logger,
	}

	if cfg.parsed != nil {
		return v.ValidateParsed(cfg.ctx, cfg.parsed)
	}
	return v.Validate(cfg.ctx, *cfg.filePath)
}

// Validate parses and validates a file path or URL
func (v *Validator) Validate(ctx context.Context, specPath string) (*ValidationResult, error) {
	doc, err := parser.ParseWithOptions(
		parser.WithFilePath(specPath),
		parser.WithUserAgent(v.UserAgent),
		parser.WithLogger(v.Logger),
	)
	if err != nil {
		return nil, fmt.Errorf("validator: failed to parse specification: %w", err)
	}
	return v.ValidateParsed(ctx, doc)
}

// ValidateParsed validates an already parsed document
func (v *Validator) ValidateParsed(ctx context.Context, doc *parser.Document) (*ValidationResult, error) {
	if doc == nil {
		return nil, fmt.Errorf("validator: document is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	log := parser.LoggerOrNop(v.Logger).With("source", doc.SourcePath)

	result := &ValidationResult{
		Version:      doc.Version,
		Errors:       make([]ValidationError, 0),
		Warnings:     make([]ValidationError, 0),
		SourceSize:   doc.SourceSize,
		Stats:        doc.Stats(),
		SourceFormat: doc.SourceFormat,
		SourcePath:   doc.SourcePath,
	}

	start := time.Now()
	v.validateStructure(ctx, doc, result)
	result.ValidateTime = time.Since(start)
	v.checkOperations(doc, result)

	result.ErrorCount = len(result.Errors)
	result.WarningCount = len(result.Warnings)
	result.Valid = result.ErrorCount == 0

	if !v.IncludeWarnings {
		result.Warnings = nil
		result.WarningCount = 0
	}

	log.Debug("validated document",
		"valid", result.Valid,
		"errors", result.ErrorCount,
		"warnings", result.WarningCount,
		"elapsed", result.ValidateTime,
	)
	return result, nil
}

// validateStructure loads the document with kin-openapi and records load and
// validation failures as errors.
func (v *Validator) validateStructure(ctx context.Context, doc *parser.Document, result *ValidationResult) {
	var (
		t   *openapi3.T
		err error
	)

	switch {
	case doc.IsSwagger2():
		t, err = loadSwagger2(doc)
		if err != nil {
			addError(result, "document", err.Error())
			return
		}
	case strings.HasPrefix(doc.Version, "3.0"):
		loader := openapi3.NewLoader()
		loader.Context = ctx
		t, err = loader.LoadFromData(doc.Raw())
		if err != nil {
			addError(result, "document", fmt.Sprintf("failed to load document: %v", err))
			return
		}
	case strings.HasPrefix(doc.Version, "3."):
		addWarning(result, "openapi", fmt.Sprintf("structural validation is not available for OpenAPI %s", doc.Version))
		return
	case doc.Version == "":
		addError(result, "document", "missing swagger or openapi version field")
		return
	default:
		addError(result, "document", fmt.Sprintf("unsupported version %q", doc.Version))
		return
	}

	var opts []openapi3.ValidationOption
	if !v.StrictMode {
		opts = append(opts, openapi3.DisableExamplesValidation())
	}
	if err := t.Validate(ctx, opts...); err != nil {
		addError(result, "document", err.Error())
	}
}

// loadSwagger2 decodes a Swagger 2.0 document and upgrades it to OpenAPI 3.
func loadSwagger2(doc *parser.Document) (*openapi3.T, error) {
	data, err := toJSON(doc.Raw(), doc.SourceFormat)
	if err != nil {
		return nil, fmt.Errorf("failed to decode document: %w", err)
	}
	var t2 openapi2.T
	if err := json.Unmarshal(data, &t2); err != nil {
		return nil, fmt.Errorf("failed to load swagger 2.0 document: %w", err)
	}
	t3, err := openapi2conv.ToV3(&t2)
	if err != nil {
		return nil, fmt.Errorf("failed to upgrade swagger 2.0 document: %w", err)
	}
	return t3, nil
}

// checkOperations reports operations that convert with fallbacks.
func (v *Validator) checkOperations(doc *parser.Document, result *ValidationResult) {
	seenIDs := make(map[string]string)
	for _, item := range doc.Paths {
		for _, op := range item.Operations {
			path := fmt.Sprintf("paths.%s.%s", item.Path, op.Method)

			if len(op.Tags) == 0 {
				addWarning(result, path, "operation has no tags and will be placed in the \"Other\" folder")
			}
			if op.Summary == "" && op.OperationID == "" {
				addWarning(result, path, "operation has neither summary nor operationId")
			}
			if op.OperationID == "" {
				continue
			}
			if prev, ok := seenIDs[op.OperationID]; ok {
				result.Warnings = append(result.Warnings, ValidationError{
					Path:     path,
					Message:  fmt.Sprintf("duplicate operationId %q", op.OperationID),
					Severity: SeverityWarning,
					Context:  "first declared at " + prev,
				})
				continue
			}
			seenIDs[op.OperationID] = path
		}
	}
}

func addError(result *ValidationResult, path, message string) {
	result.Errors = append(result.Errors, ValidationError{
		Path:     path,
		Message:  message,
		Severity: SeverityError,
	})
}

func addWarning(result *ValidationResult, path, message string) {
	result.Warnings = append(result.Warnings, ValidationError{
		Path:     path,
		Message:  message,
		Severity: SeverityWarning,
	})
}
