package commands

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ccollicutt/areaplot/pkg/area"
	"github.com/ccollicutt/areaplot/pkg/chart"
	"github.com/ccollicutt/areaplot/pkg/config"
	"github.com/ccollicutt/areaplot/pkg/series"
	"github.com/ccollicutt/areaplot/pkg/viewer"
)

// PlotOptions holds command-line options for the plot command.
type PlotOptions struct {
	Output string
	DPI    int
	Show   bool
}

// NewPlotCommand creates the plot command.
func NewPlotCommand() *cobra.Command {
	opts := &PlotOptions{}

	cmd := &cobra.Command{
		Use:   "plot [config-file]",
		Short: "Render the deviation chart",
		Long: `Load every configured series file and render the deviation chart as a PNG.

Without a config file the default chart is rendered: wide_area.txt (blue) and
narrow_area.txt (red), both UTF-16 encoded, written to circles_second.png at
300 DPI.

Any unreadable or malformed series file aborts the run.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return RunPlot(cmd, args, opts)
		},
	}

	AddPlotFlags(cmd, opts)
	return cmd
}

// AddPlotFlags registers the plot flags on cmd.
func AddPlotFlags(cmd *cobra.Command, opts *PlotOptions) {
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "Output image path (overrides config)")
	cmd.Flags().IntVar(&opts.DPI, "dpi", 0, "Image resolution (overrides config)")
	cmd.Flags().BoolVar(&opts.Show, "show", false, "Open the image in the default viewer when done")
}

// RunPlot loads the configuration named by args (or the defaults) and renders the chart.
func RunPlot(cmd *cobra.Command, args []string, opts *PlotOptions) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	var configPath string
	if len(args) > 0 {
		configPath = args[0]
	}

	cfg, err := config.Load(ctx, configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if opts.Output != "" {
		cfg.Output = opts.Output
	}
	if cmd.Flags().Changed("dpi") {
		if opts.DPI <= 0 {
			return fmt.Errorf("invalid dpi %d: must be positive", opts.DPI)
		}
		cfg.Figure.DPI = opts.DPI
	}

	logger := logrus.WithField("tag", "Plot")
	logger.WithField("exact_area", area.Exact()).Debug("reference area")

	loaded, err := series.LoadAll(ctx, cfg.Specs())
	if err != nil {
		return fmt.Errorf("loading series: %w", err)
	}

	c, err := chart.New(cfg.Figure)
	if err != nil {
		return fmt.Errorf("creating chart: %w", err)
	}

	if err := c.AddReferenceLine(cfg.ReferenceLine); err != nil {
		return err
	}
	for _, s := range loaded {
		if err := c.AddSeries(s); err != nil {
			return err
		}
	}

	if err := c.Save(cfg.Output); err != nil {
		return fmt.Errorf("saving chart: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%d series)\n", cfg.Output, len(loaded))

	if opts.Show {
		if err := viewer.Open(ctx, cfg.Output); err != nil {
			logger.WithError(err).Warn("failed to open image viewer")
		}
	}

	return nil
}
