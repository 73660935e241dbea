// Package errors provides standardized error types and helpers for the BibleRef codebase.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common cases
var (
	// ErrInvalidReferenceFormat indicates input that matches no citation shape
	ErrInvalidReferenceFormat = errors.New("invalid reference format")
	// ErrOutOfRange indicates a parsed reference that fails validation
	ErrOutOfRange = errors.New("reference out of range")
	// ErrInvalidRangeFormat indicates a malformed hyphenated range expression
	ErrInvalidRangeFormat = errors.New("invalid range format")
	// ErrTranslationMismatch indicates passage endpoints in different translations
	ErrTranslationMismatch = errors.New("translation mismatch")
	// ErrNotFound indicates a resource was not found
	ErrNotFound = errors.New("not found")
	// ErrInvalidInput indicates invalid input or validation failure
	ErrInvalidInput = errors.New("invalid input")
)

// ReferenceFormatError is returned when raw input cannot be parsed into a citation.
type ReferenceFormatError struct {
	Input   string // Raw input as supplied by the caller
	Message string // What could not be found
}

func (e *ReferenceFormatError) Error() string {
	if e.Input != "" {
		return fmt.Sprintf("invalid reference %q: %s", e.Input, e.Message)
	}
	return fmt.Sprintf("invalid reference: %s", e.Message)
}

func (e *ReferenceFormatError) Unwrap() error {
	return ErrInvalidReferenceFormat
}

// RangeError is returned when a parsed reference names a book, chapter or
// verse that does not exist in the applicable translation.
type RangeError struct {
	Input   string // Raw input or canonical form of the rejected reference
	Message string // Human-readable reason
}

func (e *RangeError) Error() string {
	if e.Input != "" {
		return fmt.Sprintf("%s: %s", e.Message, e.Input)
	}
	return e.Message
}

func (e *RangeError) Unwrap() error {
	return ErrOutOfRange
}

// RangeFormatError is returned for hyphenated range expressions that do not
// match any accepted shape.
type RangeFormatError struct {
	Expression string
	Message    string
}

func (e *RangeFormatError) Error() string {
	return fmt.Sprintf("invalid range expression %q: %s", e.Expression, e.Message)
}

func (e *RangeFormatError) Unwrap() error {
	return ErrInvalidRangeFormat
}

// TranslationMismatchError is returned when passage endpoints declare
// different translation codes.
type TranslationMismatchError struct {
	Start string
	End   string
}

func (e *TranslationMismatchError) Error() string {
	return fmt.Sprintf("verses must be in the same translation to form a passage: %s != %s",
		displayTranslation(e.Start), displayTranslation(e.End))
}

func (e *TranslationMismatchError) Unwrap() error {
	return ErrTranslationMismatch
}

func displayTranslation(t string) string {
	if t == "" {
		return "(none)"
	}
	return t
}

// IOError represents an I/O operation error with context
type IOError struct {
	Operation string // Operation being performed (e.g., "read", "write", "open")
	Path      string // File/resource path involved
	Err       error  // Underlying error
}

func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("failed to %s %s: %v", e.Operation, e.Path, e.Err)
	}
	return fmt.Sprintf("failed to %s: %v", e.Operation, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// ParseError represents a parsing or deserialization error
type ParseError struct {
	Format  string // Format being parsed (e.g., "JSON", "dataset")
	Path    string // File path, if applicable
	Message string // Error details
	Err     error  // Underlying error, if any
}

func (e *ParseError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("failed to parse %s at %s: %s", e.Format, e.Path, e.Message)
	}
	return fmt.Sprintf("failed to parse %s: %s", e.Format, e.Message)
}

func (e *ParseError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrInvalidInput
}

// Helper functions for creating common errors

// NewReferenceFormat creates a ReferenceFormatError
func NewReferenceFormat(input, message string) *ReferenceFormatError {
	return &ReferenceFormatError{
		Input:   input,
		Message: message,
	}
}

// NewRange creates a RangeError
func NewRange(input, message string) *RangeError {
	return &RangeError{
		Input:   input,
		Message: message,
	}
}

// NewRangeFormat creates a RangeFormatError
func NewRangeFormat(expression, message string) *RangeFormatError {
	return &RangeFormatError{
		Expression: expression,
		Message:    message,
	}
}

// NewTranslationMismatch creates a TranslationMismatchError
func NewTranslationMismatch(start, end string) *TranslationMismatchError {
	return &TranslationMismatchError{
		Start: start,
		End:   end,
	}
}

// NewIO creates an IOError
func NewIO(operation, path string, err error) *IOError {
	return &IOError{
		Operation: operation,
		Path:      path,
		Err:       err,
	}
}

// NewParse creates a ParseError
func NewParse(format, path, message string) *ParseError {
	return &ParseError{
		Format:  format,
		Path:    path,
		Message: message,
	}
}

// Wrap adds context to an error. If err is nil, returns nil.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf adds formatted context to an error. If err is nil, returns nil.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// Is wraps errors.Is for convenience
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As wraps errors.As for convenience
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
