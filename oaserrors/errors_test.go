package oaserrors

import (
	"errors"
	"fmt"
	"testing"
)

func TestParseError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		err := &ParseError{
			Path:     "swagger.json",
			Location: "paths./pets.get",
			Line:     42,
			Message:  "operation must be an object",
			Cause:    errors.New("underlying error"),
		}

		want := "parse error in swagger.json at paths./pets.get (line 42): operation must be an object: underlying error"
		if msg := err.Error(); msg != want {
			t.Errorf("unexpected error message: %s", msg)
		}
	})

	t.Run("Error message with minimal fields", func(t *testing.T) {
		err := &ParseError{}
		if err.Error() != "parse error" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Unwrap returns cause", func(t *testing.T) {
		cause := errors.New("underlying")
		err := &ParseError{Cause: cause}
		//nolint:errorlint // testing pointer identity
		if unwrapped := err.Unwrap(); unwrapped != cause {
			t.Error("Unwrap should return cause")
		}
	})

	t.Run("Is matches only ErrParse", func(t *testing.T) {
		err := &ParseError{}
		if !errors.Is(err, ErrParse) {
			t.Error("should match ErrParse")
		}
		if errors.Is(err, ErrConfig) {
			t.Error("should not match ErrConfig")
		}
	})

	t.Run("As extracts ParseError through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("parser: %w", &ParseError{Path: "api.yaml", Line: 5})
		var parseErr *ParseError
		if !errors.As(wrapped, &parseErr) {
			t.Fatal("errors.As should succeed")
		}
		if parseErr.Path != "api.yaml" || parseErr.Line != 5 {
			t.Errorf("unexpected fields: %+v", parseErr)
		}
	})
}

func TestValidationError(t *testing.T) {
	err := &ValidationError{
		Path:    "openapi.yaml",
		Version: "3.0.3",
		Message: "invalid paths",
		Cause:   errors.New("path must begin with /"),
	}

	want := "validation error in openapi.yaml (3.0.3): invalid paths: path must begin with /"
	if err.Error() != want {
		t.Errorf("unexpected error message: %s", err.Error())
	}
	if !errors.Is(err, ErrValidation) {
		t.Error("should match ErrValidation")
	}
	if errors.Is(err, ErrParse) {
		t.Error("should not match ErrParse")
	}
}

func TestResourceLimitError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		err := &ResourceLimitError{
			ResourceType: "file_size",
			Limit:        1024,
			Actual:       2048,
			Message:      "input too large",
		}
		want := "resource limit exceeded: file_size (limit: 1024, actual: 2048): input too large"
		if err.Error() != want {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Error message without actual", func(t *testing.T) {
		err := &ResourceLimitError{ResourceType: "body_size", Limit: 10}
		if err.Error() != "resource limit exceeded: body_size (limit: 10)" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Is matches ErrResourceLimit", func(t *testing.T) {
		if !errors.Is(&ResourceLimitError{}, ErrResourceLimit) {
			t.Error("should match ErrResourceLimit")
		}
	})
}

func TestConversionError(t *testing.T) {
	cause := errors.New("unsupported value")
	err := &ConversionError{Location: "POST /pets", Message: "marshaling example", Cause: cause}

	if err.Error() != "conversion error at POST /pets: marshaling example: unsupported value" {
		t.Errorf("unexpected error message: %s", err.Error())
	}
	//nolint:errorlint // testing pointer identity
	if err.Unwrap() != cause {
		t.Error("Unwrap should return cause")
	}
	if !errors.Is(err, ErrConversion) {
		t.Error("should match ErrConversion")
	}
}

func TestConfigError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		err := &ConfigError{
			Option:  "base_url",
			Value:   "ftp://x",
			Message: "must be http or https",
		}
		want := "configuration error for base_url (value: ftp://x): must be http or https"
		if err.Error() != want {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Error message with nil value excluded", func(t *testing.T) {
		err := &ConfigError{Option: "input", Message: "no input source"}
		if err.Error() != "configuration error for input: no input source" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Is matches ErrConfig", func(t *testing.T) {
		if !errors.Is(&ConfigError{}, ErrConfig) {
			t.Error("should match ErrConfig")
		}
	})
}

func TestPatchError(t *testing.T) {
	cause := errors.New("permission denied")
	err := &PatchError{Path: "Handlers/Foo.cs", Op: "write", Cause: cause}

	if err.Error() != "patch error (write) Handlers/Foo.cs: permission denied" {
		t.Errorf("unexpected error message: %s", err.Error())
	}
	if !errors.Is(err, ErrPatch) {
		t.Error("should match ErrPatch")
	}
	if !errors.Is(err, cause) {
		t.Error("should match wrapped cause")
	}
}

func TestSentinelErrors(t *testing.T) {
	sentinels := []error{ErrParse, ErrValidation, ErrResourceLimit, ErrConversion, ErrConfig, ErrPatch}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j && errors.Is(a, b) {
				t.Errorf("sentinel %v should not match %v", a, b)
			}
		}
	}
}
