package series

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/transform"
)

// Scanner iterates over the samples of a single series stream.
// It is not safe for concurrent use.
type Scanner struct {
	source  string
	scanner *bufio.Scanner
	lineNum int
	err     error
}

// NewScanner decodes r with the given encoding and returns a Scanner over its lines.
// source is only used in error messages and ParsedSample.Source.
func NewScanner(r io.Reader, enc Encoding, source string) (*Scanner, error) {
	te, err := enc.textEncoding()
	if err != nil {
		return nil, err
	}

	sc := bufio.NewScanner(transform.NewReader(r, te.NewDecoder()))
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024) // 1MB max line size

	return &Scanner{
		source:  source,
		scanner: sc,
	}, nil
}

// Next returns the next sample. It returns io.EOF when the stream is exhausted.
// A malformed line stops the scan with a *ParseError; a read or decoding
// failure stops it with a *ReadError. After an error every call returns it again.
func (s *Scanner) Next(ctx context.Context) (*ParsedSample, error) {
	if s.err != nil {
		return nil, s.err
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	if !s.scanner.Scan() {
		if err := s.scanner.Err(); err != nil {
			s.err = &ReadError{Source: s.source, Err: err}
			return nil, s.err
		}
		s.err = io.EOF
		return nil, io.EOF
	}

	s.lineNum++
	line := s.scanner.Text()

	if strings.ContainsRune(line, utf8.RuneError) {
		s.err = &ReadError{Source: s.source, Err: ErrInvalidEncoding}
		return nil, s.err
	}

	sample, err := ParseLine(line)
	if err != nil {
		var pe *ParseError
		if errors.As(err, &pe) {
			pe.Source = s.source
			pe.Line = s.lineNum
		}
		s.err = err
		return nil, err
	}

	return &ParsedSample{
		Sample:  sample,
		Raw:     line,
		Source:  s.source,
		LineNum: s.lineNum,
	}, nil
}
