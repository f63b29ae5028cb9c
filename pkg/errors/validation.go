package errors

import (
	"path/filepath"
	"strings"
	"unicode"
)

// maxNameLength bounds sprite and atlas file names.
const maxNameLength = 255

// ValidateSpriteName validates a sprite name for use as an output file name.
// Sprite names come from the metadata file, which may have been edited by
// hand, so they are checked before anything is written to disk.
//
// The validation rules are intentionally conservative:
//   - No empty names
//   - No control characters or null bytes
//   - No path separators or traversal sequences
//   - Maximum length of 255 characters
func ValidateSpriteName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidPath, "sprite name cannot be empty")
	}

	if len(name) > maxNameLength {
		return New(ErrCodeInvalidPath, "sprite name too long (max %d characters)", maxNameLength)
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "sprite name contains invalid control characters")
		}
	}

	if name == "." || name == ".." {
		return New(ErrCodeInvalidPath, "sprite name cannot be %q", name)
	}

	if strings.ContainsAny(name, "/\\") {
		return New(ErrCodeInvalidPath, "sprite name cannot contain path separators: %q", name)
	}

	return nil
}

// ValidateAtlasName validates the file name of an atlas image.
// Atlases are always written as PNG, so the name must carry a .png extension
// and must be a plain file name.
func ValidateAtlasName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidInput, "atlas name cannot be empty")
	}

	if filepath.Base(name) != name {
		return New(ErrCodeInvalidInput, "atlas name must be a file name, not a path: %q", name)
	}

	if !strings.EqualFold(filepath.Ext(name), ".png") || len(name) == len(".png") {
		return New(ErrCodeInvalidInput, "atlas name must end with .png: %q", name)
	}

	return nil
}
