package param

import (
	"errors"
	"fmt"
)

// Kind classifies errors raised while declaring, tokenizing, or validating
// parameters.
type Kind int

const (
	// KindConfiguration covers malformed declarations and missing
	// application metadata. Never retried.
	KindConfiguration Kind = iota + 1
	// KindTokenize covers raw arguments that do not match the registered options.
	KindTokenize
	// KindResolution covers rule discovery or rule evaluation failures.
	KindResolution
)

func (k Kind) String() string {
	switch k {
	case KindConfiguration:
		return "configuration"
	case KindTokenize:
		return "tokenize"
	case KindResolution:
		return "resolution"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Code returns a stable upper-case identifier for structured output.
func (k Kind) Code() string {
	switch k {
	case KindConfiguration:
		return "CONFIG_INVALID"
	case KindTokenize:
		return "ARGS_INVALID"
	case KindResolution:
		return "VALIDATION_ERROR"
	default:
		return "INTERNAL_ERROR"
	}
}

// Error is the single error type surfaced by the parameter pipeline.
type Error struct {
	Kind  Kind
	Param string // Offending descriptor name, if any
	Msg   string
	Err   error // Underlying cause, if any
}

func (e *Error) Error() string {
	msg := e.Msg
	if e.Param != "" {
		msg = fmt.Sprintf("%s (parameter %q)", msg, e.Param)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, msg)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Errorf builds an *Error of the given kind with no underlying cause.
func Errorf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Wrap builds an *Error of the given kind around err.
func Wrap(kind Kind, err error, msg string) *Error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

// IsKind reports whether err, or any error it wraps, is an *Error of kind k.
func IsKind(err error, k Kind) bool {
	var pe *Error
	if !errors.As(err, &pe) {
		return false
	}
	return pe.Kind == k
}
