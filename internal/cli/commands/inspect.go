package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/areaplot/pkg/area"
	"github.com/ccollicutt/areaplot/pkg/output"
	"github.com/ccollicutt/areaplot/pkg/series"
)

// InspectOptions holds command-line options for the inspect command.
type InspectOptions struct {
	Format   string
	Out      string
	Encoding string
	Verbose  bool
	Quiet    bool
}

// NewInspectCommand creates the inspect command.
func NewInspectCommand() *cobra.Command {
	opts := &InspectOptions{}

	cmd := &cobra.Command{
		Use:   "inspect <series-file>...",
		Short: "Summarize series files",
		Long: `Load one or more series files and print what they contain.

Formats:
  text - human-readable summary (default)
  json - summaries and samples as JSON
  xlsx - Excel workbook with a summary sheet and one sheet per series
         (requires --out)

Example:
  areaplot inspect wide_area.txt narrow_area.txt
  areaplot inspect -f xlsx --out series.xlsx wide_area.txt`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", "text", "Output format (text|json|xlsx)")
	cmd.Flags().StringVar(&opts.Out, "out", "", "Write the report to a file instead of stdout")
	cmd.Flags().StringVar(&opts.Encoding, "encoding", string(series.DefaultEncoding), "Text encoding of the series files (utf-16|utf-16le|utf-16be|utf-8)")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "List every sample")
	cmd.Flags().BoolVarP(&opts.Quiet, "quiet", "q", false, "Summary only, no details")

	return cmd
}

func runInspect(cmd *cobra.Command, args []string, opts *InspectOptions) (err error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	formatter, err := createFormatter(opts)
	if err != nil {
		return err
	}
	if formatter.Name() == "xlsx" && opts.Out == "" {
		return errors.New("xlsx output requires --out")
	}

	enc, err := series.ParseEncoding(opts.Encoding)
	if err != nil {
		return err
	}

	specs := make([]series.Spec, len(args))
	for i, path := range args {
		specs[i] = series.Spec{Path: path, Encoding: enc}
	}

	loaded, err := series.LoadAll(ctx, specs)
	if err != nil {
		return fmt.Errorf("loading series: %w", err)
	}

	report := output.NewReport(loaded, area.Exact())

	var w io.Writer = cmd.OutOrStdout()
	if opts.Out != "" {
		f, createErr := os.Create(opts.Out) // #nosec G304 -- user-provided output path is expected
		if createErr != nil {
			return fmt.Errorf("creating %s: %w", opts.Out, createErr)
		}
		defer func() {
			err = errors.Join(err, f.Close())
		}()
		w = f
	}

	if err := formatter.Format(ctx, report, w); err != nil {
		return fmt.Errorf("formatting output: %w", err)
	}

	return nil
}

func createFormatter(opts *InspectOptions) (output.Formatter, error) {
	formatOpts := output.FormatOptions{
		Verbose: opts.Verbose,
		Quiet:   opts.Quiet,
	}

	switch opts.Format {
	case "text":
		return output.NewTextFormatter(formatOpts), nil
	case "json":
		return output.NewJSONFormatter(formatOpts), nil
	case "xlsx":
		return output.NewXLSXFormatter(formatOpts), nil
	default:
		return nil, fmt.Errorf("unknown output format %q (use text, json, or xlsx)", opts.Format)
	}
}
