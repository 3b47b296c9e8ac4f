// Package fileutil provides file and path utility functions.
package fileutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Sentinel errors for file utility operations.
var (
	ErrFileNameEmpty         = errors.New("file name cannot be empty")
	ErrFileNamePathTraversal = errors.New("file name contains path separator or null byte")
)

// ValidateFileName checks that name is a single path element safe to join
// to an output directory.
func ValidateFileName(name string) error {
	if name == "" {
		return ErrFileNameEmpty
	}
	if strings.ContainsAny(name, "/\\\x00") || name == "." || name == ".." {
		return fmt.Errorf("%w: %q", ErrFileNamePathTraversal, name)
	}
	return nil
}

// WriteFileAtomic writes data to dir/name through a temporary file in the
// same directory renamed into place, so readers never observe a partial file.
func WriteFileAtomic(dir, name string, data []byte) error {
	if err := ValidateFileName(name); err != nil {
		return err
	}

	tmpFile, err := os.CreateTemp(dir, ".apidoc-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}

	tmpPath := tmpFile.Name()
	cleanup := func() { _ = os.Remove(tmpPath) }

	if _, writeErr := tmpFile.Write(data); writeErr != nil {
		_ = tmpFile.Close()
		cleanup()
		return fmt.Errorf("writing temp file: %w", writeErr)
	}

	if closeErr := tmpFile.Close(); closeErr != nil {
		cleanup()
		return fmt.Errorf("closing temp file: %w", closeErr)
	}

	if err := os.Chmod(tmpPath, 0644); err != nil { // #nosec G302 -- generated site is world-readable
		cleanup()
		return fmt.Errorf("setting file mode: %w", err)
	}

	if err := os.Rename(tmpPath, filepath.Join(dir, name)); err != nil {
		cleanup()
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather than a name.
// A string containing path separators (/, \) is treated as a path.
//
// Examples:
//   - "apidoc" -> false (name)
//   - "./apidoc.yaml" -> true (relative path)
//   - "/etc/apidoc.yaml" -> true (absolute)
//   - "C:\apidoc.yaml" -> true (Windows)
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}
