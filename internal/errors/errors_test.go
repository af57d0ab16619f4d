//nolint:revive // Package name matches the package it tests
package errors

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentinelErrors(t *testing.T) {
	// Verify sentinel errors are distinct
	assert.NotEqual(t, ErrValidation, ErrDetect)
	assert.NotEqual(t, ErrValidation, ErrInstall)
	assert.NotEqual(t, ErrValidation, ErrNotFound)
	assert.NotEqual(t, ErrDetect, ErrNotFound)
}

func TestDetailErrorError(t *testing.T) {
	detail := &DetailError{
		Type:     "validation failed",
		Message:  "invalid network value",
		Location: "/path/to/solwire.json",
		Field:    "network",
		Context:  map[string]string{"framework": "nextjs"},
		Hint:     "Use one of: mainnet-beta, devnet, testnet, localnet",
	}

	output := detail.Error()

	assert.Contains(t, output, "Error: validation failed")
	assert.Contains(t, output, "Location: /path/to/solwire.json")
	assert.Contains(t, output, "Field: network")
	assert.Contains(t, output, "framework: nextjs")
	assert.Contains(t, output, "invalid network value")
	assert.Contains(t, output, "Hint: Use one of: mainnet-beta, devnet, testnet, localnet")
}

func TestDetailErrorUnwrap(t *testing.T) {
	detail := &DetailError{
		Type:    "test",
		Message: "test message",
		Cause:   ErrValidation,
	}

	assert.True(t, errors.Is(detail, ErrValidation))
	assert.Equal(t, ErrValidation, detail.Unwrap())
}

func TestNewDetectError(t *testing.T) {
	err := NewDetectError(
		"no supported framework found in dependencies",
		"/path/to/package.json",
		"Pass --framework to override detection",
	)

	require.NotNil(t, err)
	assert.True(t, errors.Is(err, ErrDetect))

	var detail *DetailError
	require.True(t, errors.As(err, &detail))
	assert.Equal(t, "framework detection failed", detail.Type)
	assert.Equal(t, "/path/to/package.json", detail.Location)
	assert.Equal(t, "Pass --framework to override detection", detail.Hint)
}

func TestWrap(t *testing.T) {
	wrapped := Wrap(ErrValidation, "manifest check failed")

	assert.True(t, errors.Is(wrapped, ErrValidation))
	assert.Contains(t, wrapped.Error(), "manifest check failed")
}

func TestExitCodeFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil error", err: nil, want: ExitSuccess},
		{name: "validation sentinel", err: Wrap(ErrValidation, "bad flag"), want: ExitValidationError},
		{name: "detect sentinel", err: Wrap(ErrDetect, "unknown framework"), want: ExitDetectError},
		{name: "install sentinel", err: Wrap(ErrInstall, "npm exited 1"), want: ExitInstallError},
		{name: "not found sentinel", err: Wrap(ErrNotFound, "no package.json"), want: ExitNotFound},
		{name: "plain error", err: errors.New("boom"), want: ExitGeneralError},
		{name: "exit error wins", err: NewExitError(Wrap(ErrValidation, "x"), ExitInstallError), want: ExitInstallError},
		{name: "canceled prompt", err: Wrap(ErrCanceled, "aborted"), want: ExitCanceled},
		{name: "canceled context", err: context.Canceled, want: ExitCanceled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCodeFromError(tt.err))
		})
	}
}

func TestExitErrorUnwrap(t *testing.T) {
	inner := Wrap(ErrNotFound, "missing template")
	exitErr := NewExitError(inner, ExitNotFound)

	assert.True(t, errors.Is(exitErr, ErrNotFound))
	assert.Equal(t, inner.Error(), exitErr.Error())
}

func TestExitCodeName(t *testing.T) {
	assert.Equal(t, "Success", ExitCodeName(ExitSuccess))
	assert.Equal(t, "Detection Error", ExitCodeName(ExitDetectError))
	assert.Equal(t, "Unknown", ExitCodeName(99))
}
