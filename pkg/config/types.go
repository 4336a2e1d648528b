// Package config provides configuration loading and validation for areaplot.
package config

import "github.com/ccollicutt/areaplot/pkg/series"

// Config is the root configuration structure loaded from YAML.
type Config struct {
	// Output is the path of the rendered PNG image.
	Output        string         `yaml:"output"`
	Figure        Figure         `yaml:"figure"`
	ReferenceLine ReferenceLine  `yaml:"reference_line"`
	Series        []SeriesConfig `yaml:"series"`
}

// Figure describes the chart layout.
type Figure struct {
	Title  string `yaml:"title"`
	XLabel string `yaml:"x_label"`
	YLabel string `yaml:"y_label"`

	// Width and Height are in inches.
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`

	// DPI is the resolution of the exported image.
	DPI int `yaml:"dpi"`

	Legend LegendPosition `yaml:"legend"`
}

// LegendPosition places the legend in a corner of the plot area.
type LegendPosition string

const (
	LegendLowerRight LegendPosition = "lower_right"
	LegendLowerLeft  LegendPosition = "lower_left"
	LegendUpperRight LegendPosition = "upper_right"
	LegendUpperLeft  LegendPosition = "upper_left"
)

// Top reports whether the legend is placed at the top of the plot.
func (p LegendPosition) Top() bool {
	return p == LegendUpperRight || p == LegendUpperLeft
}

// Left reports whether the legend is placed on the left of the plot.
func (p LegendPosition) Left() bool {
	return p == LegendLowerLeft || p == LegendUpperLeft
}

// ReferenceLine is a horizontal line drawn across the plot.
type ReferenceLine struct {
	Hidden bool    `yaml:"hidden,omitempty"`
	Y      float64 `yaml:"y"`
	Label  string  `yaml:"label"`
	Color  string  `yaml:"color"`
	Dashed bool    `yaml:"dashed"`
}

// SeriesConfig describes one input file and how it is displayed.
type SeriesConfig struct {
	Path     string `yaml:"path"`
	Color    string `yaml:"color"`
	Label    string `yaml:"label"`
	Encoding string `yaml:"encoding,omitempty"`

	// encoding is the normalized encoding (populated during validation).
	encoding series.Encoding
}

// Spec returns the loader description of this series.
func (s *SeriesConfig) Spec() series.Spec {
	enc := s.encoding
	if enc == "" {
		enc = series.DefaultEncoding
	}
	return series.Spec{
		Path:     s.Path,
		Label:    s.Label,
		Color:    s.Color,
		Encoding: enc,
	}
}

// Specs returns the loader descriptions of all configured series, in order.
func (c *Config) Specs() []series.Spec {
	specs := make([]series.Spec, len(c.Series))
	for i := range c.Series {
		specs[i] = c.Series[i].Spec()
	}
	return specs
}
