package output

import (
	"context"
	"fmt"
	"io"

	"github.com/ccollicutt/areaplot/pkg/series"
)

// TextFormatter formats reports as human-readable text.
type TextFormatter struct {
	opts FormatOptions
}

// NewTextFormatter creates a new text formatter with the given options.
func NewTextFormatter(opts FormatOptions) *TextFormatter {
	return &TextFormatter{opts: opts}
}

// Name returns the format name.
func (f *TextFormatter) Name() string {
	return "text"
}

// Format renders the report as text.
func (f *TextFormatter) Format(ctx context.Context, report *Report, w io.Writer) error {
	if f.opts.Quiet {
		return f.formatQuiet(report, w)
	}
	return f.formatFull(report, w)
}

func (f *TextFormatter) formatQuiet(report *Report, w io.Writer) error {
	for _, s := range report.Series {
		fmt.Fprintf(w, "%s: %d samples, last ΔS %.4f\n",
			s.Summary.Source, s.Summary.Samples, s.Summary.LastDeltaS)
	}
	return nil
}

func (f *TextFormatter) formatFull(report *Report, w io.Writer) error {
	fmt.Fprintln(w, "=== areaplot Series Report ===")
	fmt.Fprintln(w)

	for _, s := range report.Series {
		f.formatSeries(s, w)
	}

	fmt.Fprintln(w, "---")
	fmt.Fprintf(w, "Summary: %d series, %d samples\n", len(report.Series), report.TotalSamples())
	fmt.Fprintf(w, "Exact area: %.6f\n", report.Metadata.ExactArea)

	return nil
}

func (f *TextFormatter) formatSeries(s *SeriesReport, w io.Writer) {
	sum := s.Summary
	if sum.Label != "" {
		fmt.Fprintf(w, "[%s] %s\n", sum.Label, sum.Source)
	} else {
		fmt.Fprintln(w, sum.Source)
	}

	if sum.Samples == 0 {
		fmt.Fprintln(w, "  No samples")
		fmt.Fprintln(w)
		return
	}

	fmt.Fprintf(w, "  Samples: %d\n", sum.Samples)
	fmt.Fprintf(w, "  N range: %d .. %d\n", sum.MinN, sum.MaxN)
	fmt.Fprintf(w, "  ΔS: min %.4f, max %.4f, mean %.4f, last %.4f\n",
		sum.MinDeltaS, sum.MaxDeltaS, sum.MeanDeltaS, sum.LastDeltaS)

	if f.opts.Verbose {
		for _, sample := range s.Samples {
			fmt.Fprintf(w, "    %s\n", series.FormatLine(sample))
		}
	}

	fmt.Fprintln(w)
}
