package apperrors

import (
	"errors"
	"fmt"
)

// Kind classifies a failure so callers can decide between skipping and aborting
type Kind string

const (
	// KindFormat is a data line with the wrong number of fields
	KindFormat Kind = "FORMAT"
	// KindIO is a file that could not be opened, read or written
	KindIO Kind = "IO"
	// KindConversion is a field that should hold an integer but does not
	KindConversion Kind = "CONVERSION"
	// KindUnknown is anything not produced by this package
	KindUnknown Kind = "UNKNOWN"
)

// Common errors
var (
	ErrInvalidFormat = errors.New("invalid CSV format")
	ErrIO            = errors.New("I/O failure")
	ErrConversion    = errors.New("numeric conversion failure")

	// ErrNoRecord is returned when a file holds a header but no data line
	ErrNoRecord = errors.New("no data record")
)

// CustomError represents roster errors with additional context
type CustomError struct {
	Kind    Kind
	Err     error // sentinel matching Kind
	Cause   error // underlying error, may be nil
	Message string
	Details map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	if msg == "" {
		msg = "unknown error"
	}
	if e.Cause != nil {
		return msg + ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap exposes both the sentinel and the cause to errors.Is / errors.As
func (e *CustomError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	if e.Cause != nil {
		errs = append(errs, e.Cause)
	}
	return errs
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// NewFormatError creates a format error carrying a human-readable message
func NewFormatError(message string) *CustomError {
	return &CustomError{
		Kind:    KindFormat,
		Err:     ErrInvalidFormat,
		Message: message,
	}
}

// NewIOError wraps a filesystem failure for the given path
func NewIOError(path string, cause error) *CustomError {
	return &CustomError{
		Kind:    KindIO,
		Err:     ErrIO,
		Cause:   cause,
		Message: fmt.Sprintf("cannot access %s", path),
		Details: map[string]interface{}{"path": path},
	}
}

// NewConversionError wraps an integer parse failure of the named field
func NewConversionError(field, value string, cause error) *CustomError {
	return &CustomError{
		Kind:    KindConversion,
		Err:     ErrConversion,
		Cause:   cause,
		Message: fmt.Sprintf("invalid %s %q", field, value),
		Details: map[string]interface{}{"field": field, "value": value},
	}
}

// KindOf returns the kind of the first CustomError in err's chain
func KindOf(err error) Kind {
	var ce *CustomError
	if errors.As(err, &ce) {
		return ce.Kind
	}
	return KindUnknown
}
