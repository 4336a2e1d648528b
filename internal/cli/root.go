// Package cli provides the command-line interface for areaplot.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/areaplot/internal/cli/commands"
)

// Execute runs the root command and returns the exit code.
func Execute() int {
	rootCmd := NewRootCommand()

	if err := rootCmd.Execute(); err != nil {
		// Print error to stderr (SilenceErrors prevents Cobra from doing this)
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2 // Configuration or runtime error
	}
	return 0
}

// NewRootCommand creates the root cobra command.
// Without a subcommand it renders the default chart, like "areaplot plot".
func NewRootCommand() *cobra.Command {
	logOpts := &LogOptions{}
	plotOpts := &commands.PlotOptions{}

	rootCmd := &cobra.Command{
		Use:   "areaplot",
		Short: "Plot Monte-Carlo area estimation deviations",
		Long: `areaplot charts how far Monte-Carlo estimates of an area deviate from the
exact value as the number of generated points grows.

Each input file holds one result per line:

  N = <points>; S = <deviation in percent>

Run without arguments to plot wide_area.txt and narrow_area.txt from the
current directory into circles_second.png.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return configureLogging(logOpts)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return commands.RunPlot(cmd, args, plotOpts)
		},
	}

	rootCmd.PersistentFlags().StringVar(&logOpts.Level, "log-level", "info", "Log level (debug|info|warn|error)")
	rootCmd.PersistentFlags().StringVar(&logOpts.Format, "log-format", "text", "Log format (text|json)")
	commands.AddPlotFlags(rootCmd, plotOpts)

	// Add subcommands
	rootCmd.AddCommand(commands.NewPlotCommand())
	rootCmd.AddCommand(commands.NewInspectCommand())
	rootCmd.AddCommand(commands.NewValidateCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	return rootCmd
}
