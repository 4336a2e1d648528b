package series

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	fieldSeparator = ";"
	valueSeparator = " = "
)

// ParseLine parses a single "key = N; key = ΔS" line.
//
// Only the first two ';'-separated fields are used; anything after the second
// separator is ignored. Each field must contain " = " with single spaces, and
// the component following the first " = " is the value. Surrounding whitespace
// on the value is ignored. Failures are returned as *ParseError with Line unset.
func ParseLine(line string) (Sample, error) {
	line = strings.TrimRight(line, "\r\n")

	fields := strings.Split(line, fieldSeparator)
	if len(fields) < 2 {
		return Sample{}, &ParseError{Text: line, Err: ErrMissingField}
	}

	countStr, err := fieldValue(fields[0])
	if err != nil {
		return Sample{}, &ParseError{Text: line, Err: err}
	}
	deviationStr, err := fieldValue(fields[1])
	if err != nil {
		return Sample{}, &ParseError{Text: line, Err: err}
	}

	n, err := strconv.Atoi(countStr)
	if err != nil {
		return Sample{}, &ParseError{Text: line, Err: fmt.Errorf("%w: %w", ErrInvalidCount, err)}
	}

	deltaS, err := strconv.ParseFloat(deviationStr, 64)
	if err != nil {
		return Sample{}, &ParseError{Text: line, Err: fmt.Errorf("%w: %w", ErrInvalidDeviation, err)}
	}

	return Sample{N: n, DeltaS: deltaS}, nil
}

// fieldValue returns the value part of a "key = value" field.
func fieldValue(field string) (string, error) {
	parts := strings.Split(field, valueSeparator)
	if len(parts) < 2 {
		return "", fmt.Errorf("%w: %q", ErrMissingSeparator, field)
	}
	return strings.TrimSpace(parts[1]), nil
}

// FormatLine renders a sample in the input file format.
func FormatLine(s Sample) string {
	return fmt.Sprintf("N = %d; S = %s", s.N, strconv.FormatFloat(s.DeltaS, 'g', -1, 64))
}
