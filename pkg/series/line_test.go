package series

import (
	"errors"
	"testing"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		want    Sample
		wantErr error
	}{
		{"basic", "N = 100; S = 0.1234", Sample{100, 0.1234}, nil},
		{"negative deviation", "N = 30; S = -0.3", Sample{30, -0.3}, nil},
		{"trailing newline", "N = 10; S = 2.5\n", Sample{10, 2.5}, nil},
		{"crlf", "N = 10; S = 2.5\r\n", Sample{10, 2.5}, nil},
		{"exponent", "N = 10; S = 1e-3", Sample{10, 0.001}, nil},
		{"other keys", "points = 7; delta = 3", Sample{7, 3}, nil},
		{"trailing field ignored", "N = 1; S = 2; junk", Sample{1, 2}, nil},
		{"no semicolon", "N = 5", Sample{}, ErrMissingField},
		{"empty line", "", Sample{}, ErrMissingField},
		{"missing separator in first field", "N 5; S = 1.0", Sample{}, ErrMissingSeparator},
		{"missing separator in second field", "N = 5; S=1.0", Sample{}, ErrMissingSeparator},
		{"non-integer count", "N = five; S = 1.0", Sample{}, ErrInvalidCount},
		{"fractional count", "N = 5.5; S = 1.0", Sample{}, ErrInvalidCount},
		{"non-numeric deviation", "N = 5; S = abc", Sample{}, ErrInvalidDeviation},
		{"comma decimal", "N = 5; S = 1,5", Sample{}, ErrInvalidDeviation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLine(tt.line)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ParseLine(%q) error = %v, want %v", tt.line, err, tt.wantErr)
				}
				var pe *ParseError
				if !errors.As(err, &pe) {
					t.Errorf("ParseLine(%q) error type = %T, want *ParseError", tt.line, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseLine(%q) error = %v", tt.line, err)
			}
			if got != tt.want {
				t.Errorf("ParseLine(%q) = %+v, want %+v", tt.line, got, tt.want)
			}
		})
	}
}

func TestFormatLine(t *testing.T) {
	line := FormatLine(Sample{N: 20, DeltaS: 1.1})
	if line != "N = 20; S = 1.1" {
		t.Errorf("FormatLine() = %q", line)
	}

	got, err := ParseLine(line)
	if err != nil {
		t.Fatalf("ParseLine() error = %v", err)
	}
	if got != (Sample{N: 20, DeltaS: 1.1}) {
		t.Errorf("ParseLine(FormatLine()) = %+v", got)
	}
}
