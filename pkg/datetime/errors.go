package datetime

import (
	"errors"
	"fmt"

	"github.com/pratik-mahalle/calendrical/internal/pkg/safemath"
)

// Error codes
const (
	ErrCodeIllegalArgument = "ILLEGAL_ARGUMENT"
	ErrCodeIllegalTimeZone = "ILLEGAL_TIME_ZONE"
	ErrCodeArithmetic      = "ARITHMETIC_FAILURE"
)

// Error is the error type returned by every fallible operation in this package
type Error struct {
	Code     string
	Message  string
	Internal error
}

// Sentinels for errors.Is
var (
	ErrIllegalArgument = &Error{Code: ErrCodeIllegalArgument, Message: "illegal argument"}
	ErrIllegalTimeZone = &Error{Code: ErrCodeIllegalTimeZone, Message: "illegal time zone"}
	ErrArithmetic      = &Error{Code: ErrCodeArithmetic, Message: "arithmetic failure"}
)

// Error implements the error interface
func (e *Error) Error() string {
	if e.Internal != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Internal)
	}
	return e.Message
}

// Unwrap returns the underlying cause
func (e *Error) Unwrap() error {
	return e.Internal
}

// Is matches errors by code. An illegal time zone is also an illegal argument.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	if e.Code == t.Code {
		return true
	}
	return e.Code == ErrCodeIllegalTimeZone && t.Code == ErrCodeIllegalArgument
}

func illegalArgument(format string, args ...interface{}) error {
	return &Error{Code: ErrCodeIllegalArgument, Message: fmt.Sprintf(format, args...)}
}

func illegalTimeZone(cause error, format string, args ...interface{}) error {
	return &Error{Code: ErrCodeIllegalTimeZone, Message: fmt.Sprintf(format, args...), Internal: detach(cause)}
}

func arithmetic(cause error, format string, args ...interface{}) error {
	return &Error{Code: ErrCodeArithmetic, Message: fmt.Sprintf(format, args...), Internal: detach(cause)}
}

// detach keeps the text of a lower-layer *Error without its code, so a
// rewrapped failure matches only its own kind
func detach(cause error) error {
	var e *Error
	if errors.As(cause, &e) {
		return errors.New(cause.Error())
	}
	return cause
}

// asArithmetic rewraps an illegal-argument or overflow failure from a
// lower layer as an arithmetic failure. Other errors pass through.
func asArithmetic(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrArithmetic) {
		return err
	}
	if errors.Is(err, safemath.ErrOverflow) || errors.Is(err, ErrIllegalArgument) {
		return arithmetic(err, format, args...)
	}
	return err
}
