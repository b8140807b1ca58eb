package ecfft

import "fmt"

// ErrorCode classifies an Error without requiring callers to parse its
// message.
type ErrorCode int

const (
	// ErrUnknown is the zero value; production code should never see it.
	ErrUnknown ErrorCode = iota

	// ErrInvalidConfig signals a Config that failed Validate.
	ErrInvalidConfig

	// ErrInvalidLevel signals a k outside [1, MaxLevel].
	ErrInvalidLevel

	// ErrLengthMismatch signals an input whose length isn't 2^k.
	ErrLengthMismatch

	// ErrInvalidPolynomial signals a polynomial the engine cannot accept.
	ErrInvalidPolynomial

	// ErrConstruction signals a failure while precomputing caches.
	ErrConstruction
)

// Error is the error type every exported ecfft operation returns.
type Error struct {
	Code    ErrorCode
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("ecfft error [%d]: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("ecfft error [%d]: %s", e.Code, e.Message)
}

// Unwrap exposes the underlying cause for errors.Is/errors.As.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is an *Error with the same Code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

func newError(code ErrorCode, message string, cause error) *Error {
	return &Error{Code: code, Message: message, Cause: cause}
}
