package output

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

const summarySheet = "Summary"

// XLSXFormatter writes reports as an Excel workbook: a summary sheet plus one
// sheet of samples per series.
type XLSXFormatter struct {
	opts FormatOptions
}

// NewXLSXFormatter creates a new workbook formatter with the given options.
// Quiet omits the per-series sample sheets.
func NewXLSXFormatter(opts FormatOptions) *XLSXFormatter {
	return &XLSXFormatter{opts: opts}
}

// Name returns the format name.
func (f *XLSXFormatter) Name() string {
	return "xlsx"
}

// SeriesSheetName returns the sheet holding the samples of the i-th series (0-based).
func SeriesSheetName(i int) string {
	return fmt.Sprintf("Series %d", i+1)
}

// Format renders the report as an .xlsx workbook.
func (f *XLSXFormatter) Format(ctx context.Context, report *Report, w io.Writer) (err error) {
	book := excelize.NewFile()
	defer func() {
		err = errors.Join(err, book.Close())
	}()

	if err := book.SetSheetName("Sheet1", summarySheet); err != nil {
		return fmt.Errorf("creating summary sheet: %w", err)
	}
	if err := writeSummarySheet(book, report); err != nil {
		return err
	}

	if !f.opts.Quiet {
		for i, s := range report.Series {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := writeSeriesSheet(book, SeriesSheetName(i), s); err != nil {
				return err
			}
		}
	}

	if err := book.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

func writeSummarySheet(book *excelize.File, report *Report) error {
	header := []interface{}{"Source", "Label", "Samples", "Min N", "Max N", "Min ΔS", "Max ΔS", "Mean ΔS", "Last ΔS"}
	if err := book.SetSheetRow(summarySheet, "A1", &header); err != nil {
		return fmt.Errorf("writing summary header: %w", err)
	}

	for i, s := range report.Series {
		sum := s.Summary
		row := []interface{}{
			sum.Source, sum.Label, sum.Samples,
			sum.MinN, sum.MaxN,
			sum.MinDeltaS, sum.MaxDeltaS, sum.MeanDeltaS, sum.LastDeltaS,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := book.SetSheetRow(summarySheet, cell, &row); err != nil {
			return fmt.Errorf("writing summary row %d: %w", i+1, err)
		}
	}

	exactRow := len(report.Series) + 3
	cell, err := excelize.CoordinatesToCellName(1, exactRow)
	if err != nil {
		return err
	}
	exact := []interface{}{"Exact area", report.Metadata.ExactArea}
	if err := book.SetSheetRow(summarySheet, cell, &exact); err != nil {
		return fmt.Errorf("writing exact area: %w", err)
	}

	return nil
}

func writeSeriesSheet(book *excelize.File, name string, s *SeriesReport) error {
	if _, err := book.NewSheet(name); err != nil {
		return fmt.Errorf("creating sheet %s: %w", name, err)
	}

	header := []interface{}{"N", "ΔS"}
	if err := book.SetSheetRow(name, "A1", &header); err != nil {
		return fmt.Errorf("writing %s header: %w", name, err)
	}

	for i, sample := range s.Samples {
		row := []interface{}{sample.N, sample.DeltaS}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := book.SetSheetRow(name, cell, &row); err != nil {
			return fmt.Errorf("writing %s row %d: %w", name, i+1, err)
		}
	}

	return nil
}
