package postman

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/erraggy/oaspostman/internal/fileutil"
)

// marshalIndent encodes v with 2-space indentation, leaving <, >, and & as-is.
// The trailing newline added by json.Encoder is removed.
func marshalIndent(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// Marshal returns the collection as 2-space indented JSON without a
// trailing newline.
func Marshal(c *Collection) ([]byte, error) {
	data, err := marshalIndent(c)
	if err != nil {
		return nil, fmt.Errorf("postman: failed to encode collection: %w", err)
	}
	return data, nil
}

// Write encodes the collection to w.
func Write(w io.Writer, c *Collection) error {
	data, err := Marshal(c)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("postman: failed to write collection: %w", err)
	}
	return nil
}

// WriteFile atomically replaces path with the encoded collection.
func WriteFile(path string, c *Collection) error {
	data, err := Marshal(c)
	if err != nil {
		return err
	}
	if err := fileutil.WriteFileAtomic(path, data, fileutil.OwnerReadWrite); err != nil {
		return fmt.Errorf("postman: failed to write %s: %w", path, err)
	}
	return nil
}

// Unmarshal decodes a collection previously produced by Marshal.
func Unmarshal(data []byte) (*Collection, error) {
	var c Collection
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("postman: failed to decode collection: %w", err)
	}
	return &c, nil
}
