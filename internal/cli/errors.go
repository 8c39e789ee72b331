package cli

import (
	"errors"

	"github.com/aidanlsb/paramz/internal/param"
)

// Error codes for structured error responses.
// These codes are stable and can be relied upon by scripts.
const (
	ErrConfigInvalid   = "CONFIG_INVALID"
	ErrArgsInvalid     = "ARGS_INVALID"
	ErrValidationError = "VALIDATION_ERROR"

	// File errors
	ErrFileNotFound   = "FILE_NOT_FOUND"
	ErrFileReadError  = "FILE_READ_ERROR"
	ErrFileWriteError = "FILE_WRITE_ERROR"

	// Input errors
	ErrInvalidInput    = "INVALID_INPUT"
	ErrMissingArgument = "MISSING_ARGUMENT"

	// General errors
	ErrInternal = "INTERNAL_ERROR"
)

// errReported marks errors whose message was already written to stderr.
var errReported = errors.New("already reported")

// errorCode maps a parameter pipeline error to its stable code.
func errorCode(err error) string {
	var perr *param.Error
	if errors.As(err, &perr) {
		return perr.Kind.Code()
	}
	return ErrInternal
}
