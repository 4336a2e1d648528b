package config

import (
	"context"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ccollicutt/areaplot/pkg/series"
)

// Load reads and validates a configuration file.
// An empty path yields the default configuration.
func Load(_ context.Context, path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path) // #nosec G304 -- user-provided config path is expected
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}

		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.applyEnvironmentOverrides(); err != nil {
		return nil, fmt.Errorf("environment: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Validate checks a configuration for errors and normalizes series encodings.
func Validate(cfg *Config) error {
	if cfg.Output == "" {
		return errors.New("output: path is required")
	}

	if err := validateFigure(&cfg.Figure); err != nil {
		return fmt.Errorf("figure: %w", err)
	}

	if len(cfg.Series) == 0 {
		return errors.New("series: at least one series is required")
	}

	for i := range cfg.Series {
		if err := validateSeries(&cfg.Series[i]); err != nil {
			name := cfg.Series[i].Label
			if name == "" {
				name = cfg.Series[i].Path
			}
			return fmt.Errorf("series[%d] (%s): %w", i, name, err)
		}
	}

	return nil
}

func validateFigure(fig *Figure) error {
	if fig.Width <= 0 || fig.Height <= 0 {
		return fmt.Errorf("width and height must be positive, got %gx%g", fig.Width, fig.Height)
	}

	if fig.DPI <= 0 {
		return fmt.Errorf("dpi must be positive, got %d", fig.DPI)
	}

	switch fig.Legend {
	case LegendLowerRight, LegendLowerLeft, LegendUpperRight, LegendUpperLeft:
		// Valid
	case "":
		fig.Legend = DefaultLegend
	default:
		return fmt.Errorf("invalid legend %q (must be lower_right, lower_left, upper_right, or upper_left)", fig.Legend)
	}

	return nil
}

func validateSeries(s *SeriesConfig) error {
	if s.Path == "" {
		return errors.New("path is required")
	}

	enc, err := series.ParseEncoding(s.Encoding)
	if err != nil {
		return err
	}
	s.encoding = enc

	return nil
}
