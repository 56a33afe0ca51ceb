package commands

import (
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/spf13/cobra"

	"github.com/erraggy/oaspostman"
	"github.com/erraggy/oaspostman/converter"
	"github.com/erraggy/oaspostman/internal/cliutil"
	"github.com/erraggy/oaspostman/internal/envutil"
	"github.com/erraggy/oaspostman/parser"
	"github.com/erraggy/oaspostman/postman"
)

// Default input and output paths used when none are given.
const (
	DefaultInputPath  = "swagger.json"
	DefaultOutputPath = "collection.postman_collection.json"
)

// Environment variables supplying defaults for convert flags.
const (
	EnvBaseURL        = "OASPOSTMAN_BASE_URL"
	EnvAPIVersion     = "OASPOSTMAN_API_VERSION"
	EnvCollectionName = "OASPOSTMAN_COLLECTION_NAME"
)

// ConvertFlags contains flags for the convert command
type ConvertFlags struct {
	Output        string
	Name          string
	DeriveName    bool
	Description   string
	BaseURL       string
	APIVersion    string
	ID            string
	PathVariables []string
	BearerSchemes []string
	Validate      bool
	NoInfo        bool
	Quiet         bool
	Format        string
}

func bindConvertFlags(cmd *cobra.Command, flags *ConvertFlags) {
	fs := cmd.Flags()
	fs.StringVarP(&flags.Output, "output", "o", DefaultOutputPath, "output file path ('-' for stdout)")
	fs.StringVarP(&flags.Name, "name", "n", "", "collection name (env "+EnvCollectionName+")")
	fs.BoolVar(&flags.DeriveName, "derive-name", false, "derive the collection name from info.title or the input file name")
	fs.StringVar(&flags.Description, "description", "", "collection description")
	fs.StringVar(&flags.BaseURL, "base-url", "", "value of the base_url variable (env "+EnvBaseURL+", default "+postman.DefaultBaseURL+")")
	fs.StringVar(&flags.APIVersion, "api-version", "", "value of the version variable (env "+EnvAPIVersion+", default "+postman.DefaultAPIVersion+")")
	fs.StringVar(&flags.ID, "id", "", "collection _postman_id (default: random UUID)")
	fs.StringSliceVar(&flags.PathVariables, "path-var", nil, "additional path parameter names to turn into Postman variables")
	fs.StringSliceVar(&flags.BearerSchemes, "bearer-scheme", nil, "security scheme names treated as bearer auth (default Bearer)")
	fs.BoolVar(&flags.Validate, "validate", false, "validate the document before converting and fail on errors")
	fs.BoolVar(&flags.NoInfo, "no-info", false, "suppress info messages")
	fs.BoolVarP(&flags.Quiet, "quiet", "q", false, "quiet mode: no summary or issue output")
	fs.StringVarP(&flags.Format, "format", "f", FormatText, "summary format: text, json, or yaml")
}

func newConvertCommand(a *app) *cobra.Command {
	flags := &ConvertFlags{}
	cmd := &cobra.Command{
		Use:   "convert [file|url|-]",
		Short: "Convert a Swagger/OpenAPI document into a Postman collection",
		Long: `Convert a Swagger 2.0 or OpenAPI 3.x document (JSON or YAML) into a Postman
Collection v2.1.

Operations are grouped into folders by their first tag ("Other" when untagged),
folders are sorted by name, and {version}, {id}, {code}, {userId} and
{analysisId} path parameters become Postman variables.`,
		Example: `  oaspostman convert
  oaspostman convert swagger.yaml -o plants.postman_collection.json
  oaspostman convert https://example.com/swagger.json --base-url https://api.example.com
  cat swagger.json | oaspostman convert - -o - > collection.json
  oaspostman convert --format yaml --path-var plantId swagger.json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, a, flags, args)
		},
	}
	bindConvertFlags(cmd, flags)
	return cmd
}

// convertSummary is the structured form of the convert summary.
type convertSummary struct {
	Specification string         `json:"specification" yaml:"specification"`
	Version       string         `json:"version" yaml:"version"`
	Output        string         `json:"output" yaml:"output"`
	Collection    string         `json:"collection" yaml:"collection"`
	Folders       int            `json:"folders" yaml:"folders"`
	Requests      int            `json:"requests" yaml:"requests"`
	Issues        []summaryIssue `json:"issues,omitempty" yaml:"issues,omitempty"`
}

type summaryIssue struct {
	Severity string `json:"severity" yaml:"severity"`
	Path     string `json:"path" yaml:"path"`
	Message  string `json:"message" yaml:"message"`
}

func runConvert(cmd *cobra.Command, a *app, flags *ConvertFlags, args []string) error {
	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	specPath := DefaultInputPath
	if len(args) == 1 {
		specPath = args[0]
	}

	opts := []converter.Option{
		converter.WithBaseURL(envutil.String(EnvBaseURL, postman.DefaultBaseURL)),
		converter.WithAPIVersion(envutil.String(EnvAPIVersion, postman.DefaultAPIVersion)),
		converter.WithDerivedName(flags.DeriveName),
		converter.WithIncludeInfo(!flags.NoInfo),
		converter.WithValidate(flags.Validate),
		converter.WithUserAgent(oaspostman.UserAgent()),
		converter.WithLogger(a.log()),
	}
	if flags.BaseURL != "" {
		opts = append(opts, converter.WithBaseURL(flags.BaseURL))
	}
	if flags.APIVersion != "" {
		opts = append(opts, converter.WithAPIVersion(flags.APIVersion))
	}
	name := flags.Name
	if name == "" {
		name = envutil.String(EnvCollectionName, "")
	}
	if name != "" {
		opts = append(opts, converter.WithCollectionName(name))
	}
	if flags.Description != "" {
		opts = append(opts, converter.WithDescription(flags.Description))
	}
	if flags.ID != "" {
		opts = append(opts, converter.WithCollectionID(flags.ID))
	}
	if len(flags.PathVariables) > 0 {
		opts = append(opts, converter.WithPathVariables(slices.Concat(converter.DefaultPathVariables, flags.PathVariables)...))
	}
	if len(flags.BearerSchemes) > 0 {
		opts = append(opts, converter.WithBearerSchemes(flags.BearerSchemes...))
	}
	if specPath == StdinFilePath {
		opts = append(opts, converter.WithReader(cmd.InOrStdin()), converter.WithSourceName("<stdin>"))
	} else {
		opts = append(opts, converter.WithFilePath(specPath))
	}

	toStdout := flags.Output == StdinFilePath
	if !toStdout {
		if err := ValidateOutputPath(flags.Output, specPath); err != nil {
			return err
		}
		if err := RejectSymlinkOutput(flags.Output); err != nil {
			return err
		}
	}

	start := time.Now()
	result, err := converter.ConvertWithOptions(opts...)
	if err != nil {
		return fmt.Errorf("converting %s: %w", FormatSpecPath(specPath), err)
	}
	a.log().Debug("converted document", "source", result.SourcePath, "duration", time.Since(start))

	// the summary goes to stderr when stdout carries the collection
	summaryOut := cmd.OutOrStdout()
	if toStdout {
		if err := postman.Write(cmd.OutOrStdout(), result.Collection); err != nil {
			return fmt.Errorf("writing collection to stdout: %w", err)
		}
		summaryOut = cmd.ErrOrStderr()
	} else if err := postman.WriteFile(flags.Output, result.Collection); err != nil {
		return fmt.Errorf("writing output file: %w", err)
	}

	if flags.Quiet {
		return nil
	}
	if flags.Format != FormatText {
		return OutputStructured(summaryOut, newConvertSummary(specPath, flags.Output, result), flags.Format)
	}
	printConvertSummary(summaryOut, flags.Output, result)
	return nil
}

func newConvertSummary(specPath, output string, result *converter.Result) convertSummary {
	s := convertSummary{
		Specification: FormatSpecPath(specPath),
		Version:       result.SourceVersion,
		Output:        output,
		Collection:    result.Collection.Info.Name,
		Folders:       result.FolderCount,
		Requests:      result.RequestCount,
	}
	for _, issue := range result.Issues {
		s.Issues = append(s.Issues, summaryIssue{
			Severity: issue.Severity.String(),
			Path:     issue.Path,
			Message:  issue.Message,
		})
	}
	return s
}

func printConvertSummary(w io.Writer, output string, result *converter.Result) {
	if len(result.Issues) > 0 {
		cliutil.Writef(w, "Conversion Issues (%d):\n", len(result.Issues))
		for _, issue := range result.Issues {
			cliutil.Writef(w, "  %s\n", issue.String())
		}
		cliutil.Writef(w, "\n")
	}
	if output == StdinFilePath {
		output = "<stdout>"
	}
	cliutil.Writef(w, "[OK] Postman collection created: %s\n", output)
	cliutil.Writef(w, "Total folders: %d\n", result.FolderCount)
	cliutil.Writef(w, "Total requests: %d\n", result.RequestCount)
	if result.SourceSize > 0 {
		cliutil.Writef(w, "Source size: %s\n", parser.FormatBytes(result.SourceSize))
	}
}
