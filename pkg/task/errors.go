package task

import (
	"errors"
	"fmt"
)

var (
	// ErrNoDescription is returned when add is called without any words.
	ErrNoDescription = errors.New("task description cannot be empty")
	// ErrMultilineDescription is returned when a description contains a line break.
	ErrMultilineDescription = errors.New("task description cannot contain line breaks")
	// ErrInvalidIndex is returned when an index argument is not an unsigned integer.
	ErrInvalidIndex = errors.New("invalid task index")
	// ErrIndexOutOfRange is returned for index 0 or an index past the end of the list.
	ErrIndexOutOfRange = errors.New("task index out of range")
	// ErrMalformedRecord is returned when a stored line carries no status tag.
	ErrMalformedRecord = errors.New("malformed task record")
)

// ParseError reports a stored line that could not be decoded.
type ParseError struct {
	Path string
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d: %v: %q", e.Path, e.Line, e.Err, e.Text)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// IsValidationError reports whether err was caused by bad user input rather
// than by the store.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrNoDescription) ||
		errors.Is(err, ErrMultilineDescription) ||
		errors.Is(err, ErrInvalidIndex) ||
		errors.Is(err, ErrIndexOutOfRange)
}
