package config

import (
	"fmt"
	"os"
	"strconv"
)

// Default values for configuration.
const (
	DefaultOutput = "circles_second.png"
	DefaultTitle  = "Отклонение значения площади от ее точной оценки ΔS (%), " +
		"в зависимости от количества точек N для двух масштабов прямоугольной области"
	DefaultXLabel = "Ось N"
	DefaultYLabel = "Ось ΔS, в процентах"
	DefaultWidth  = 15.0
	DefaultHeight = 10.0
	DefaultDPI    = 300
	DefaultLegend = LegendLowerRight
)

// Environment variable names.
const (
	EnvOutput = "AREAPLOT_OUTPUT"
	EnvDPI    = "AREAPLOT_DPI"
)

// DefaultConfig returns the configuration of the wide/narrow comparison chart.
func DefaultConfig() *Config {
	return &Config{
		Output: DefaultOutput,
		Figure: Figure{
			Title:  DefaultTitle,
			XLabel: DefaultXLabel,
			YLabel: DefaultYLabel,
			Width:  DefaultWidth,
			Height: DefaultHeight,
			DPI:    DefaultDPI,
			Legend: DefaultLegend,
		},
		ReferenceLine: ReferenceLine{
			Y:      0,
			Label:  "y = 0",
			Color:  "black",
			Dashed: true,
		},
		Series: []SeriesConfig{
			{Path: "wide_area.txt", Color: "blue", Label: "Генерация в широкой области"},
			{Path: "narrow_area.txt", Color: "red", Label: "Генерация в узкой области"},
		},
	}
}

// applyEnvironmentOverrides applies environment variable overrides to the config.
func (c *Config) applyEnvironmentOverrides() error {
	if output := os.Getenv(EnvOutput); output != "" {
		c.Output = output
	}

	if dpi := os.Getenv(EnvDPI); dpi != "" {
		v, err := strconv.Atoi(dpi)
		if err != nil {
			return fmt.Errorf("%s: invalid value %q: %w", EnvDPI, dpi, err)
		}
		c.Figure.DPI = v
	}

	return nil
}
