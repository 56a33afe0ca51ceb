package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/oaspostman/internal/cliutil"
)

// Output format constants
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// StdinFilePath is the special file path used to indicate reading from stdin
// or writing to stdout.
const StdinFilePath = "-"

// ValidateOutputFormat validates an output format and returns an error if invalid.
func ValidateOutputFormat(format string) error {
	if format != FormatText && format != FormatJSON && format != FormatYAML {
		return fmt.Errorf("invalid format '%s'. Valid formats: %s, %s, %s", format, FormatText, FormatJSON, FormatYAML)
	}
	return nil
}

// OutputStructured writes data to w in the specified format (json or yaml).
func OutputStructured(w io.Writer, data any, format string) error {
	var out []byte
	var err error

	switch format {
	case FormatJSON:
		out, err = json.MarshalIndent(data, "", "  ")
	case FormatYAML:
		out, err = yaml.Marshal(data)
	default:
		return fmt.Errorf("invalid format for structured output: %s", format)
	}
	if err != nil {
		return fmt.Errorf("marshaling to %s: %w", format, err)
	}

	cliutil.Writef(w, "%s\n", out)
	return nil
}

// ValidateOutputPath checks that outputPath does not overwrite the input.
func ValidateOutputPath(outputPath, inputPath string) error {
	absOutput, err := filepath.Abs(outputPath)
	if err != nil {
		return fmt.Errorf("invalid output path: %w", err)
	}
	if inputPath == StdinFilePath {
		return nil
	}
	absInput, err := filepath.Abs(inputPath)
	if err != nil {
		return fmt.Errorf("invalid input path %s: %w", inputPath, err)
	}
	if absOutput == absInput {
		return fmt.Errorf("output file %s would overwrite input file %s", outputPath, inputPath)
	}
	return nil
}

// RejectSymlinkOutput checks if the output path is a symlink and returns an error if so.
func RejectSymlinkOutput(path string) error {
	info, err := os.Lstat(filepath.Clean(path))
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("commands: checking output path: %w", err)
	}
	if info.Mode()&os.ModeSymlink != 0 {
		return fmt.Errorf("commands: refusing to write to symlink: %s", path)
	}
	return nil
}

// FormatSpecPath returns a display-friendly path for the specification.
// Returns "<stdin>" if the path is StdinFilePath, otherwise returns the path as-is.
func FormatSpecPath(specPath string) string {
	if specPath == StdinFilePath {
		return "<stdin>"
	}
	return specPath
}
