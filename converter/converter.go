package converter

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/erraggy/oaspostman/internal/issues"
	"github.com/erraggy/oaspostman/internal/severity"
	"github.com/erraggy/oaspostman/oaserrors"
	"github.com/erraggy/oaspostman/parser"
	"github.com/erraggy/oaspostman/postman"
	"github.com/erraggy/oaspostman/validator"
)

// Severity indicates the severity level of a conversion issue
type Severity = severity.Severity

const (
	// SeverityInfo indicates a fallback applied during conversion
	SeverityInfo = severity.SeverityInfo
	// SeverityWarning indicates output that probably needs manual editing
	SeverityWarning = severity.SeverityWarning
)

// ConversionIssue represents a single conversion note
type ConversionIssue = issues.Issue

// DefaultFolder holds operations without tags.
const DefaultFolder = "Other"

// DefaultPathVariables are the path parameters rewritten to {{name}} form
// in addition to {version}.
var DefaultPathVariables = []string{"id", "code", "userId", "analysisId"}

// DefaultBearerSchemes are the security scheme names treated as bearer auth.
var DefaultBearerSchemes = []string{"Bearer"}

// Result contains the results of a conversion
type Result struct {
	// Collection is the generated Postman collection
	Collection *postman.Collection
	// SourcePath is the path of the converted document
	SourcePath string
	// SourceVersion is the declared swagger/openapi version
	SourceVersion string
	// SourceFormat is the format of the source file (JSON or YAML)
	SourceFormat parser.SourceFormat
	// SourceSize is the size of the source data in bytes
	SourceSize int64
	// FolderCount is the number of folders in the collection
	FolderCount int
	// RequestCount is the number of requests across all folders
	RequestCount int
	// Issues contains all conversion notes
	Issues []ConversionIssue
	// InfoCount is the total number of info messages
	InfoCount int
	// WarningCount is the total number of warnings
	WarningCount int
}

// HasWarnings returns true if there are any warnings
func (r *Result) HasWarnings() bool {
	return r.WarningCount > 0
}

// Converter builds Postman collections from parsed documents
type Converter struct {
	// CollectionID sets _postman_id; a random UUID is used when empty
	CollectionID string
	// CollectionName overrides the collection name
	CollectionName string
	// DeriveName names the collection after info.title or the source file
	// when CollectionName is empty
	DeriveName bool
	// Description overrides the collection description
	Description string
	// BaseURL seeds the base_url variable
	BaseURL string
	// APIVersion seeds the version variable
	APIVersion string
	// PathVariables extends DefaultPathVariables
	PathVariables []string
	// BearerSchemes replaces DefaultBearerSchemes when non-empty
	BearerSchemes []string
	// IncludeInfo determines whether to include informational messages
	IncludeInfo bool
	// Validate runs the validator before converting and fails on errors
	Validate bool
	// UserAgent is the User-Agent string used when fetching URLs
	UserAgent string
	// MaxFileSize caps the input size in bytes; 0 uses the parser default
	MaxFileSize int64
	// Logger receives debug output; nil means no logging
	Logger parser.Logger
}

// New creates a new Converter instance with default settings
func New() *Converter {
	return &Converter{
		BaseURL:     postman.DefaultBaseURL,
		APIVersion:  postman.DefaultAPIVersion,
		IncludeInfo: true,
	}
}

// Convert is a convenience function that converts a file with default
// settings. It's equivalent to creating a Converter with New() and calling
// Convert().
func Convert(specPath string) (*Result, error) {
	return New().Convert(specPath)
}

// ConvertParsed is a convenience function that converts an already parsed
// document with default settings.
func ConvertParsed(doc *parser.Document) (*Result, error) {
	return New().ConvertParsed(doc)
}

// Convert parses and converts a file path or URL
func (c *Converter) Convert(specPath string) (*Result, error) {
	doc, err := parser.ParseWithOptions(
		parser.WithFilePath(specPath),
		parser.WithUserAgent(c.UserAgent),
		parser.WithMaxFileSize(c.MaxFileSize),
		parser.WithLogger(c.Logger),
	)
	if err != nil {
		return nil, fmt.Errorf("converter: failed to parse specification: %w", err)
	}
	return c.ConvertParsed(doc)
}

// ConvertParsed converts an already parsed document
func (c *Converter) ConvertParsed(doc *parser.Document) (*Result, error) {
	if doc == nil {
		return nil, &oaserrors.ConversionError{Message: "document is nil"}
	}
	if strings.TrimSpace(c.BaseURL) == "" {
		return nil, &oaserrors.ConfigError{Option: "base_url", Message: "must not be empty"}
	}
	log := parser.LoggerOrNop(c.Logger).With("source", doc.SourcePath)

	if c.Validate {
		if err := c.validate(doc); err != nil {
			return nil, err
		}
	}

	result := &Result{
		SourcePath:    doc.SourcePath,
		SourceVersion: doc.Version,
		SourceFormat:  doc.SourceFormat,
		SourceSize:    doc.SourceSize,
		Issues:        make([]ConversionIssue, 0),
	}

	b := &requestBuilder{
		pathVariables: c.pathVariables(),
		bearerSchemes: c.bearerSchemes(),
		result:        result,
	}

	folders := make(map[string]*postman.ItemGroup)
	for _, item := range doc.Paths {
		for _, op := range item.Operations {
			tag := folderTag(op)
			folder, ok := folders[tag]
			if !ok {
				folder = &postman.ItemGroup{
					Name:        tag,
					Item:        []*postman.Item{},
					Description: tag + " endpoints",
				}
				folders[tag] = folder
			}

			req, err := b.build(item.Path, op)
			if err != nil {
				return nil, err
			}
			folder.Item = append(folder.Item, req)
		}
	}

	collection := postman.NewCollection(postman.Settings{
		ID:          c.CollectionID,
		Name:        c.collectionName(doc),
		Description: c.Description,
		BaseURL:     c.BaseURL,
		APIVersion:  c.APIVersion,
	})

	names := make([]string, 0, len(folders))
	for name := range folders {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		collection.Item = append(collection.Item, folders[name])
	}

	result.Collection = collection
	result.FolderCount = collection.FolderCount()
	result.RequestCount = collection.RequestCount()
	c.updateCounts(result)

	if !c.IncludeInfo {
		filtered := make([]ConversionIssue, 0, len(result.Issues))
		for _, issue := range result.Issues {
			if issue.Severity != SeverityInfo {
				filtered = append(filtered, issue)
			}
		}
		result.Issues = filtered
		result.InfoCount = 0
	}

	log.Debug("converted document",
		"folders", result.FolderCount,
		"requests", result.RequestCount,
		"warnings", result.WarningCount,
	)
	return result, nil
}

// validate runs structural validation and reports the first error.
func (c *Converter) validate(doc *parser.Document) error {
	v := validator.New()
	v.IncludeWarnings = false
	v.Logger = c.Logger
	vr, err := v.ValidateParsed(context.Background(), doc)
	if err != nil {
		return fmt.Errorf("converter: %w", err)
	}
	if vr.Valid {
		return nil
	}
	first := vr.Errors[0]
	return &oaserrors.ValidationError{
		Path:    doc.SourcePath,
		Version: doc.Version,
		Message: fmt.Sprintf("%s: %s (%d error(s))", first.Path, first.Message, vr.ErrorCount),
	}
}

// updateCounts updates the issue counts in the result
func (c *Converter) updateCounts(result *Result) {
	result.InfoCount, result.WarningCount, _ = issues.Counts(result.Issues)
}

func (c *Converter) pathVariables() []string {
	vars := append([]string(nil), DefaultPathVariables...)
	for _, v := range c.PathVariables {
		if v != "" && !slices.Contains(vars, v) {
			vars = append(vars, v)
		}
	}
	return vars
}

func (c *Converter) bearerSchemes() []string {
	if len(c.BearerSchemes) > 0 {
		return c.BearerSchemes
	}
	return DefaultBearerSchemes
}
