// Package domainerrors provides coded errors for the check-in domain.
//
// Services return these (usually wrapping an adapter error) so callers can
// branch on a stable Code instead of matching message text.
package domainerrors

import (
	"errors"
	"fmt"
)

// Code classifies a domain error.
type Code string

const (
	CodeUnknownStatus       Code = "unknown_status"
	CodeMissingStatus       Code = "missing_status"
	CodePermissionDenied    Code = "permission_denied"
	CodePositionUnavailable Code = "position_unavailable"
	CodeCaptureFailed       Code = "capture_failed"
	CodeInvalidInput        Code = "invalid_input"
	CodeConflict            Code = "conflict"
	CodeDismissed           Code = "dismissed"
	CodeInternal            Code = "internal"
)

// Error is a domain error carrying a Code, a user-safe message and an
// optional cause.
type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is a domain error with the same code, so that
// errors.Is(err, domainerrors.New(code, "")) matches on code alone.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Code == e.Code
}

// New creates a domain error without a cause.
func New(code Code, msg string) error {
	return &Error{Code: code, Message: msg}
}

// Wrap attaches a code and message to an underlying error.
// A nil err still yields a domain error so call sites stay uniform.
func Wrap(err error, code Code, msg string) error {
	return &Error{Code: code, Message: msg, Err: err}
}

// CodeOf returns the code of the outermost domain error in err's chain,
// or CodeInternal when err carries no domain error.
func CodeOf(err error) Code {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return CodeInternal
}

// HasCode reports whether any domain error in err's chain has the given code.
func HasCode(err error, code Code) bool {
	for err != nil {
		var de *Error
		if !errors.As(err, &de) {
			return false
		}
		if de.Code == code {
			return true
		}
		err = de.Err
	}
	return false
}

// Is is shorthand for HasCode.
func Is(err error, code Code) bool {
	return HasCode(err, code)
}

// MessageOf returns the message of the outermost domain error, or "" when
// err carries none.
func MessageOf(err error) string {
	var de *Error
	if errors.As(err, &de) {
		return de.Message
	}
	return ""
}
