package series

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingField is returned when a line has fewer than two ';'-separated fields.
	ErrMissingField = errors.New("expected two ';'-separated fields")

	// ErrMissingSeparator is returned when a field has no " = " between key and value.
	ErrMissingSeparator = errors.New(`field has no " = " separator`)

	// ErrInvalidCount is returned when the first value is not an integer.
	ErrInvalidCount = errors.New("point count is not an integer")

	// ErrInvalidDeviation is returned when the second value is not a number.
	ErrInvalidDeviation = errors.New("deviation is not a number")

	// ErrInvalidEncoding is returned when the input is not valid text in the declared encoding.
	ErrInvalidEncoding = errors.New("invalid text for declared encoding")

	// ErrUnknownEncoding is returned for an encoding name that is not supported.
	ErrUnknownEncoding = errors.New("unknown encoding")
)

// ParseError reports a line that does not match the "key = value; key = value" shape.
type ParseError struct {
	Source string
	Line   int
	Text   string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Source == "" {
		return fmt.Sprintf("line %d %q: %v", e.Line, e.Text, e.Err)
	}
	return fmt.Sprintf("%s:%d %q: %v", e.Source, e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ReadError reports a series file that could not be opened, read, or decoded.
type ReadError struct {
	Source string
	Err    error
}

func (e *ReadError) Error() string {
	if e.Source == "" {
		return fmt.Sprintf("reading series: %v", e.Err)
	}
	return fmt.Sprintf("reading %s: %v", e.Source, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}
