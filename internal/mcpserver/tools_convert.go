package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/oaspostman/converter"
	"github.com/erraggy/oaspostman/postman"
)

type convertInput struct {
	Spec       specInput `json:"spec"                  jsonschema:"The Swagger/OpenAPI document to convert"`
	Output     string    `json:"output,omitempty"      jsonschema:"File path to write the collection. If omitted the collection is returned inline."`
	Name       string    `json:"name,omitempty"        jsonschema:"Collection name"`
	DeriveName bool      `json:"derive_name,omitempty" jsonschema:"Derive the collection name from info.title or the file name when name is not set"`
	BaseURL    string    `json:"base_url,omitempty"    jsonschema:"Value of the base_url collection variable"`
	Version    string    `json:"version,omitempty"     jsonschema:"Value of the version collection variable"`
	Validate   bool      `json:"validate,omitempty"    jsonschema:"Validate the document before converting and fail on errors"`
}

type convertIssue struct {
	Severity string `json:"severity"`
	Path     string `json:"path"`
	Message  string `json:"message"`
}

type convertOutput struct {
	SourceVersion string         `json:"source_version"`
	FolderCount   int            `json:"folder_count"`
	RequestCount  int            `json:"request_count"`
	IssueCount    int            `json:"issue_count"`
	Issues        []convertIssue `json:"issues,omitempty"`
	WrittenTo     string         `json:"written_to,omitempty"`
	Collection    string         `json:"collection,omitempty"`
}

func handleConvert(_ context.Context, _ *mcp.CallToolRequest, input convertInput) (*mcp.CallToolResult, convertOutput, error) {
	doc, err := input.Spec.resolve()
	if err != nil {
		return errResult(err), convertOutput{}, nil
	}

	opts := []converter.Option{
		converter.WithParsed(doc),
		converter.WithBaseURL(firstNonEmpty(input.BaseURL, cfg.BaseURL)),
		converter.WithAPIVersion(firstNonEmpty(input.Version, cfg.APIVersion)),
		converter.WithDerivedName(input.DeriveName),
		converter.WithValidate(input.Validate),
	}
	if input.Name != "" {
		opts = append(opts, converter.WithCollectionName(input.Name))
	}

	result, err := converter.ConvertWithOptions(opts...)
	if err != nil {
		return errResult(err), convertOutput{}, nil
	}

	output := convertOutput{
		SourceVersion: result.SourceVersion,
		FolderCount:   result.FolderCount,
		RequestCount:  result.RequestCount,
		IssueCount:    len(result.Issues),
	}
	output.Issues = makeSlice[convertIssue](len(result.Issues))
	for _, issue := range result.Issues {
		output.Issues = append(output.Issues, convertIssue{
			Severity: issue.Severity.String(),
			Path:     issue.Path,
			Message:  issue.Message,
		})
	}

	if input.Output != "" {
		if err := postman.WriteFile(input.Output, result.Collection); err != nil {
			return errResult(fmt.Errorf("failed to write output file: %w", err)), convertOutput{}, nil
		}
		output.WrittenTo = input.Output
		return nil, output, nil
	}

	data, err := postman.Marshal(result.Collection)
	if err != nil {
		return errResult(err), convertOutput{}, nil
	}
	output.Collection = string(data)
	return nil, output, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
