// Package errors provides structured error types for spritestitch.
//
// Every failure the stitcher reports carries a machine-readable [Code].
// Codes are grouped into a small taxonomy ([Category]) that decides how the
// caller reacts:
//
//   - InputError: bad or missing sprites. The operation aborts, nothing is written.
//   - PackingError: a sprite can never fit the atlas width. Aborts before any canvas exists.
//   - MetadataError: the atlas metadata is missing or unusable. Unstitch aborts
//     before the canvas image is opened.
//   - ImageError: the atlas image referenced by the metadata cannot be located.
//   - ExtractionError: one sprite could not be cropped or written. Logged and
//     skipped; the remaining sprites are still extracted.
//   - DestructiveError: deleting the original atlas failed. Reported, non-fatal.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeNameCollision, "duplicate sprite name %q", name)
//	if errors.Is(err, errors.ErrCodeNameCollision) {
//	    // Handle collision
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeUnreadableSource, origErr, "decode %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input errors
	ErrCodeInvalidInput     Code = "INVALID_INPUT"
	ErrCodeEmptyInput       Code = "EMPTY_INPUT"
	ErrCodeNameCollision    Code = "NAME_COLLISION"
	ErrCodeInvalidSprite    Code = "INVALID_SPRITE"
	ErrCodeUnreadableSource Code = "UNREADABLE_SOURCE"
	ErrCodeInvalidPath      Code = "INVALID_PATH"

	// Packing errors
	ErrCodeSpriteTooWide Code = "SPRITE_TOO_WIDE"

	// Metadata errors
	ErrCodeMetadataMissing Code = "METADATA_MISSING"
	ErrCodeMetadataCorrupt Code = "METADATA_CORRUPT"

	// Image errors
	ErrCodeImageMissing Code = "IMAGE_MISSING"
	ErrCodeImageCorrupt Code = "IMAGE_CORRUPT"

	// Per-sprite extraction errors
	ErrCodeCropFailed Code = "CROP_FAILED"

	// Destructive action errors
	ErrCodeDeleteFailed Code = "DELETE_FAILED"

	// Internal errors
	ErrCodeWriteFailed Code = "WRITE_FAILED"
	ErrCodeInternal    Code = "INTERNAL_ERROR"
)

// Category groups error codes by how the caller is expected to react.
type Category string

// Error categories.
const (
	CategoryInput       Category = "input"
	CategoryPacking     Category = "packing"
	CategoryMetadata    Category = "metadata"
	CategoryImage       Category = "image"
	CategoryExtraction  Category = "extraction"
	CategoryDestructive Category = "destructive"
	CategoryInternal    Category = "internal"
)

var categories = map[Code]Category{
	ErrCodeInvalidInput:     CategoryInput,
	ErrCodeEmptyInput:       CategoryInput,
	ErrCodeNameCollision:    CategoryInput,
	ErrCodeInvalidSprite:    CategoryInput,
	ErrCodeUnreadableSource: CategoryInput,
	ErrCodeInvalidPath:      CategoryInput,
	ErrCodeSpriteTooWide:    CategoryPacking,
	ErrCodeMetadataMissing:  CategoryMetadata,
	ErrCodeMetadataCorrupt:  CategoryMetadata,
	ErrCodeImageMissing:     CategoryImage,
	ErrCodeImageCorrupt:     CategoryImage,
	ErrCodeCropFailed:       CategoryExtraction,
	ErrCodeDeleteFailed:     CategoryDestructive,
	ErrCodeWriteFailed:      CategoryInternal,
	ErrCodeInternal:         CategoryInternal,
}

// Category returns the category of the code. Unknown codes are internal.
func (c Code) Category() Category {
	if cat, ok := categories[c]; ok {
		return cat
	}
	return CategoryInternal
}

// Fatal reports whether errors with this code abort the whole operation.
// Extraction and destructive failures are reported but do not.
func (c Code) Fatal() bool {
	switch c.Category() {
	case CategoryExtraction, CategoryDestructive:
		return false
	}
	return true
}

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// GetCategory returns the category of err, or CategoryInternal for
// errors that carry no code.
func GetCategory(err error) Category {
	return GetCode(err).Category()
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
