package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/areaplot/pkg/config"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [config-file]",
		Short: "Validate a configuration file",
		Long: `Validate an areaplot configuration file without rendering.

Checks:
  - YAML syntax
  - Figure size, DPI and legend position
  - Series paths and encodings
  - Series file existence (warning only)

Without a config file the built-in defaults are checked.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runValidate,
	}
}

func runValidate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	configPath := ""
	name := "built-in defaults"
	if len(args) > 0 {
		configPath = args[0]
		name = configPath
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Validating %s...\n", name)

	cfg, err := config.Load(ctx, configPath)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	fmt.Fprintf(out, "\nConfiguration valid!\n")
	fmt.Fprintf(out, "  Output: %s (%gx%g in, %d DPI)\n", cfg.Output, cfg.Figure.Width, cfg.Figure.Height, cfg.Figure.DPI)
	fmt.Fprintf(out, "  Series: %d\n", len(cfg.Series))

	fmt.Fprintf(out, "\nSeries:\n")
	for i, spec := range cfg.Specs() {
		fmt.Fprintf(out, "  %d. [%s] %s (%s)\n", i+1, spec.Color, spec.Path, spec.Encoding)
		if spec.Label != "" {
			fmt.Fprintf(out, "     %s\n", spec.Label)
		}
	}

	// Check if series files exist (warnings only)
	var missing []string
	for _, s := range cfg.Series {
		if _, err := os.Stat(s.Path); err != nil {
			missing = append(missing, s.Path)
		}
	}
	if len(missing) > 0 {
		fmt.Fprintf(out, "\nWarning: %d series file(s) not found:\n", len(missing))
		for _, path := range missing {
			fmt.Fprintf(out, "  - %s\n", path)
		}
	}

	return nil
}
