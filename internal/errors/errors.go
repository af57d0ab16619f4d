// Package errors provides sentinel errors for the solwire CLI.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for known conditions.
var (
	// ErrValidation indicates invalid input: flags, config values, or a
	// malformed project manifest.
	ErrValidation = errors.New("validation error")

	// ErrDetect indicates the project framework could not be determined.
	ErrDetect = errors.New("framework detection failed")

	// ErrInstall indicates the package manager invocation failed.
	ErrInstall = errors.New("dependency install failed")

	// ErrNotFound indicates a project directory, manifest, or template was not found.
	ErrNotFound = errors.New("not found")

	// ErrCanceled indicates the user aborted an interactive prompt.
	ErrCanceled = errors.New("canceled")
)

// DetailError captures structured error information for terminal rendering.
type DetailError struct {
	// Type is the error category (required).
	Type string

	// Message is the specific description (required).
	Message string

	// Location is the file path the error refers to (optional).
	Location string

	// Field is the flag or config field name (optional).
	Field string

	// Context contains additional key-value context (optional).
	Context map[string]string

	// Hint provides actionable guidance (optional).
	Hint string

	// Cause is the underlying error (optional).
	Cause error
}

// Error implements the error interface.
func (e *DetailError) Error() string {
	var b strings.Builder

	b.WriteString("Error: ")
	b.WriteString(e.Type)
	b.WriteString("\n")

	if e.Location != "" {
		b.WriteString("  Location: ")
		b.WriteString(e.Location)
		b.WriteString("\n")
	}
	if e.Field != "" {
		b.WriteString("  Field: ")
		b.WriteString(e.Field)
		b.WriteString("\n")
	}
	for k, v := range e.Context {
		b.WriteString("  ")
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(v)
		b.WriteString("\n")
	}

	b.WriteString("\n  ")
	b.WriteString(e.Message)
	b.WriteString("\n")

	if e.Hint != "" {
		b.WriteString("\nHint: ")
		b.WriteString(e.Hint)
		b.WriteString("\n")
	}

	return b.String()
}

// Unwrap returns the underlying error.
func (e *DetailError) Unwrap() error {
	return e.Cause
}

// NewValidationError creates a validation error with details.
func NewValidationError(message, location, field, hint string) error {
	return &DetailError{
		Type:     "validation failed",
		Message:  message,
		Location: location,
		Field:    field,
		Hint:     hint,
		Cause:    ErrValidation,
	}
}

// NewDetectError creates a framework-detection error with details.
func NewDetectError(message, location, hint string) error {
	return &DetailError{
		Type:     "framework detection failed",
		Message:  message,
		Location: location,
		Hint:     hint,
		Cause:    ErrDetect,
	}
}

// NewInstallError creates a dependency-install error with details.
func NewInstallError(message string, context map[string]string, hint string) error {
	return &DetailError{
		Type:    "dependency install failed",
		Message: message,
		Context: context,
		Hint:    hint,
		Cause:   ErrInstall,
	}
}

// NewNotFoundError creates a not found error with details.
func NewNotFoundError(message, location, hint string) error {
	return &DetailError{
		Type:     "not found",
		Message:  message,
		Location: location,
		Hint:     hint,
		Cause:    ErrNotFound,
	}
}

// Wrap wraps an error with a sentinel error type.
func Wrap(sentinel error, message string) error {
	return fmt.Errorf("%s: %w", message, sentinel)
}

// WrapValidation wraps an error with ErrValidation.
func WrapValidation(err error, msg string) error {
	return fmt.Errorf("%s: %w: %w", msg, ErrValidation, err)
}

// WrapDetect wraps an error with ErrDetect.
func WrapDetect(err error, msg string) error {
	return fmt.Errorf("%s: %w: %w", msg, ErrDetect, err)
}

// WrapInstall wraps an error with ErrInstall.
func WrapInstall(err error, msg string) error {
	return fmt.Errorf("%s: %w: %w", msg, ErrInstall, err)
}

// WrapNotFound wraps an error with ErrNotFound.
func WrapNotFound(err error, msg string) error {
	return fmt.Errorf("%s: %w: %w", msg, ErrNotFound, err)
}
