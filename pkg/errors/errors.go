package errors

import (
	"errors"
	"fmt"
)

// Common errors
var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrUpstream        = errors.New("upstream error")
	ErrNetwork         = errors.New("network error")
	ErrAuthExpired     = errors.New("authorization expired")
	ErrDatabase        = errors.New("database error")
)

// Error codes
const (
	CodeNotFound        = "not_found"
	CodeInvalidArgument = "invalid_argument"
	CodeUpstream        = "upstream"
	CodeNetwork         = "network"
	CodeAuthExpired     = "auth_expired"
	CodeDatabase        = "database"
)

var codeSentinels = map[string]error{
	CodeNotFound:        ErrNotFound,
	CodeInvalidArgument: ErrInvalidArgument,
	CodeUpstream:        ErrUpstream,
	CodeNetwork:         ErrNetwork,
	CodeAuthExpired:     ErrAuthExpired,
	CodeDatabase:        ErrDatabase,
}

// Error represents a custom error type
type Error struct {
	Code    string
	Message string
	Err     error
}

// Error returns the error message
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches the sentinel that belongs to the error code.
func (e *Error) Is(target error) bool {
	sentinel, ok := codeSentinels[e.Code]
	return ok && sentinel == target
}

// New creates a new error with a message
func New(message string) error {
	return &Error{
		Message: message,
	}
}

// Wrap wraps an error with additional message
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return &Error{
		Message: message,
		Err:     err,
	}
}

// WrapWithCode wraps an error with a code and message
func WrapWithCode(err error, code, message string) error {
	if err == nil {
		return nil
	}
	return &Error{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// InvalidArgument reports caller misuse. It is never retried.
func InvalidArgument(message string) error {
	return &Error{
		Code:    CodeInvalidArgument,
		Message: message,
	}
}

// Database wraps a persistence failure.
func Database(err error, message string) error {
	return WrapWithCode(err, CodeDatabase, message)
}

// Is reports whether any error in err's chain matches target
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// GetCode returns the error code if it exists
func GetCode(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// GetMessage returns the error message
func GetMessage(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// IsNotFound returns true if the error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}

func IsAuthExpired(err error) bool {
	return errors.Is(err, ErrAuthExpired)
}

func IsDatabase(err error) bool {
	return errors.Is(err, ErrDatabase)
}
