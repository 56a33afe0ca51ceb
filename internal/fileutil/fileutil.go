// Package fileutil holds file permission constants and small file helpers.
package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
)

// OwnerReadWrite is the file permission mode for generated collections,
// which may embed tokens once edited (owner read/write only).
const OwnerReadWrite os.FileMode = 0o600

// ReadableByAll is the file permission mode used when a patched source
// file's original mode cannot be determined.
const ReadableByAll os.FileMode = 0o644

// WriteFileAtomic writes data to a temporary file next to path and renames it
// into place, so readers never observe a half-written file.
func WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("fileutil: creating temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("fileutil: writing temp file: %w", err)
	}
	if err := tmp.Chmod(perm); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("fileutil: setting permissions: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("fileutil: closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("fileutil: renaming into place: %w", err)
	}
	return nil
}
