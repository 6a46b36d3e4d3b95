package errors

import (
	"strings"
	"unicode"
)

// ValidateFileName validates an output file name for safety.
// It ensures the name is a simple basename without path components, so every
// artifact lands inside the output directory.
func ValidateFileName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidPath, "file name cannot be empty")
	}

	if len(name) > 255 {
		return New(ErrCodeInvalidPath, "file name too long (max 255 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "file name contains invalid control characters")
		}
	}

	// Must be a simple filename, not a path
	if strings.ContainsAny(name, "/\\") {
		return New(ErrCodeInvalidPath, "file name cannot contain path separators: %q", name)
	}

	if name == "." || name == ".." || strings.HasPrefix(name, ".") {
		return New(ErrCodeInvalidPath, "file name cannot be a hidden file: %q", name)
	}

	return nil
}

// ValidateDirName validates the output directory name.
//
// Validation rules:
//   - Name cannot be empty
//   - No absolute paths (must be relative)
//   - No path traversal sequences (..)
//   - No backslashes (Windows-style paths)
func ValidateDirName(dir string) error {
	if dir == "" {
		return New(ErrCodeInvalidPath, "output directory cannot be empty")
	}

	for _, r := range dir {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "output directory contains invalid characters")
		}
	}

	if strings.HasPrefix(dir, "/") {
		return New(ErrCodeInvalidPath, "output directory must be relative (cannot start with /)")
	}

	if strings.Contains(dir, "..") {
		return New(ErrCodeInvalidPath, "output directory cannot contain path traversal sequences (..)")
	}

	if strings.Contains(dir, "\\") {
		return New(ErrCodeInvalidPath, "output directory cannot contain backslashes")
	}

	return nil
}

// ValidateSize checks that a pixel dimension is positive.
func ValidateSize(what string, w, h int) error {
	if w <= 0 || h <= 0 {
		return New(ErrCodeInvalidDimensions, "%s must have positive dimensions, got %dx%d", what, w, h)
	}
	return nil
}
