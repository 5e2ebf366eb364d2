package errors

import (
	"strings"
	"unicode"
)

// ValidateDumpName validates the file name of a dump target.
// Dump files are written next to the descriptor they render, so the name must
// be a plain base name.
//
// Validation rules:
//   - Name cannot be empty
//   - No control characters or null bytes
//   - No path separators
//   - Not "." or ".."
//   - Not a companion name (those are owned by the translation cache)
func ValidateDumpName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidPath, "dump name cannot be empty")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "dump name contains invalid control characters")
		}
	}

	if strings.ContainsAny(name, "/\\") {
		return New(ErrCodeInvalidPath, "dump name cannot contain path separators")
	}

	if name == "." || name == ".." {
		return New(ErrCodeInvalidPath, "dump name cannot be %q", name)
	}

	if strings.HasPrefix(name, ".polyglot.") {
		return New(ErrCodeInvalidPath, "dump name cannot use the companion prefix")
	}

	return nil
}
