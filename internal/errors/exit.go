package errors

import (
	"context"
	"errors"
)

// Exit codes returned by the CLI process.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError = 1

	// ExitValidationError indicates invalid flags, config, or manifest content.
	ExitValidationError = 2

	// ExitDetectError indicates the project framework could not be determined.
	ExitDetectError = 3

	// ExitInstallError indicates the package manager invocation failed.
	ExitInstallError = 4

	// ExitNotFound indicates a project directory, manifest, or template was missing.
	ExitNotFound = 5

	// ExitCanceled indicates the user aborted, via prompt or signal.
	// 128 + SIGINT, matching what a shell reports for an interrupted process.
	ExitCanceled = 130
)

// ExitCodeName returns the name of the exit code.
func ExitCodeName(code int) string {
	switch code {
	case ExitSuccess:
		return "Success"
	case ExitGeneralError:
		return "General Error"
	case ExitValidationError:
		return "Validation Error"
	case ExitDetectError:
		return "Detection Error"
	case ExitInstallError:
		return "Install Error"
	case ExitNotFound:
		return "Not Found"
	case ExitCanceled:
		return "Canceled"
	default:
		return "Unknown"
	}
}

// ExitError wraps an error with an exit code for the top-level handler.
type ExitError struct {
	Err  error
	Code int

	// Printed marks the error as already rendered by the command layer,
	// so main does not print it a second time.
	Printed bool
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the wrapped error.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given error and exit code.
func NewExitError(err error, code int) *ExitError {
	return &ExitError{Err: err, Code: code}
}

// ExitCodeFromError determines the appropriate exit code for an error.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	switch {
	case errors.Is(err, ErrCanceled), errors.Is(err, context.Canceled):
		return ExitCanceled
	case errors.Is(err, ErrValidation):
		return ExitValidationError
	case errors.Is(err, ErrDetect):
		return ExitDetectError
	case errors.Is(err, ErrInstall):
		return ExitInstallError
	case errors.Is(err, ErrNotFound):
		return ExitNotFound
	default:
		return ExitGeneralError
	}
}
