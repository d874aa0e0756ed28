// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and utility functions

package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/arthur-debert/turboterm/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "not_found_error",
			code:    errors.ErrNotFound,
			message: "topic not found",
			wantStr: "[NOT_FOUND] topic not found",
		},
		{
			name:    "missing_argument_error",
			code:    errors.ErrMissingArgument,
			message: "missing required argument: name",
			wantStr: "[MISSING_ARGUMENT] missing required argument: name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.message, err.Message)
			assert.NotNil(t, err.Details)
			assert.Equal(t, tt.wantStr, err.Error())
		})
	}
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrInvalidType, "invalid value %q for %s: expected %s", "abc", "count", "int")
	assert.Equal(t, `invalid value "abc" for count: expected int`, err.Message)
}

func TestWrap(t *testing.T) {
	base := stderrors.New("disk full")

	t.Run("wraps_error", func(t *testing.T) {
		err := errors.Wrap(base, errors.ErrFileAccess, "cannot read rows")
		require.NotNil(t, err)
		assert.Equal(t, "[FILE_ACCESS] cannot read rows: disk full", err.Error())
		assert.True(t, stderrors.Is(err, base))
	})

	t.Run("wrapf_formats", func(t *testing.T) {
		err := errors.Wrapf(base, errors.ErrConfigLoad, "loading %s", "config.toml")
		assert.Equal(t, "loading config.toml", err.Message)
		assert.Equal(t, base, stderrors.Unwrap(err))
	})

	t.Run("nil_error_returns_nil", func(t *testing.T) {
		assert.Nil(t, errors.Wrap(nil, errors.ErrInternal, "nothing"))
		assert.Nil(t, errors.Wrapf(nil, errors.ErrInternal, "nothing %d", 1))
	})
}

func TestIsAndCodes(t *testing.T) {
	err := errors.New(errors.ErrUnknownCommand, "unknown command: nope").
		WithDetail("command", "nope")
	wrapped := fmt.Errorf("dispatch: %w", err)

	assert.True(t, stderrors.Is(wrapped, errors.New(errors.ErrUnknownCommand, "")))
	assert.False(t, stderrors.Is(wrapped, errors.New(errors.ErrNotFound, "")))
	assert.True(t, errors.IsErrorCode(wrapped, errors.ErrUnknownCommand))
	assert.Equal(t, errors.ErrUnknownCommand, errors.GetErrorCode(wrapped))
	assert.Equal(t, "nope", errors.GetErrorDetails(wrapped)["command"])

	plain := stderrors.New("plain")
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(plain))
	assert.Nil(t, errors.GetErrorDetails(plain))
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, errors.ExitOK},
		{"missing_argument", errors.New(errors.ErrMissingArgument, "x"), errors.ExitUsage},
		{"invalid_type", errors.New(errors.ErrInvalidType, "x"), errors.ExitUsage},
		{"unknown_command", errors.New(errors.ErrUnknownCommand, "x"), errors.ExitUsage},
		{"usage", errors.New(errors.ErrUsage, "x"), errors.ExitUsage},
		{"execution", errors.New(errors.ErrCommandExecution, "x"), errors.ExitError},
		{"plain", stderrors.New("boom"), errors.ExitError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, errors.ExitCode(tt.err))
		})
	}
}
