// Package chart renders loaded series as a deviation-versus-sample-count line chart.
package chart

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/ccollicutt/areaplot/pkg/config"
	"github.com/ccollicutt/areaplot/pkg/series"
)

const (
	lineWidth    = 1.5 // points
	markerRadius = 1.5 // points
)

// Chart is a figure under construction.
type Chart struct {
	plot   *plot.Plot
	width  vg.Length
	height vg.Length
	dpi    int
	logger logrus.FieldLogger
}

// New creates an empty chart with the title, axis labels, size, and legend
// position of fig.
func New(fig config.Figure) (*Chart, error) {
	if fig.Width <= 0 || fig.Height <= 0 {
		return nil, fmt.Errorf("figure size must be positive, got %gx%g inches", fig.Width, fig.Height)
	}
	if fig.DPI <= 0 {
		return nil, fmt.Errorf("dpi must be positive, got %d", fig.DPI)
	}

	p := plot.New()
	p.Title.Text = fig.Title
	p.X.Label.Text = fig.XLabel
	p.Y.Label.Text = fig.YLabel
	p.Legend.Top = fig.Legend.Top()
	p.Legend.Left = fig.Legend.Left()

	return &Chart{
		plot:   p,
		width:  vg.Length(fig.Width) * vg.Inch,
		height: vg.Length(fig.Height) * vg.Inch,
		dpi:    fig.DPI,
		logger: logrus.WithField("tag", "Chart"),
	}, nil
}

// AddReferenceLine draws a horizontal line across the chart. Hidden lines are skipped.
func (c *Chart) AddReferenceLine(ref config.ReferenceLine) error {
	if ref.Hidden {
		return nil
	}

	col, err := ParseColor(ref.Color)
	if err != nil {
		return fmt.Errorf("reference line: %w", err)
	}

	line := &horizontalLine{
		Y: ref.Y,
		LineStyle: draw.LineStyle{
			Color: col,
			Width: vg.Points(lineWidth),
		},
	}
	if ref.Dashed {
		line.Dashes = []vg.Length{vg.Points(6), vg.Points(3)}
	}

	c.plot.Add(line)
	if ref.Label != "" {
		c.plot.Legend.Add(ref.Label, line)
	}
	return nil
}

// AddSeries plots s as a line with circle markers.
func (c *Chart) AddSeries(s *series.Series) error {
	col, err := ParseColor(s.Color)
	if err != nil {
		return fmt.Errorf("series %s: %w", s.Source, err)
	}

	if s.Len() == 0 {
		c.logger.WithField("source", s.Source).Warn("series has no samples")
		if s.Label != "" {
			line := &horizontalLine{LineStyle: draw.LineStyle{Color: col, Width: vg.Points(lineWidth)}}
			c.plot.Legend.Add(s.Label, line)
		}
		return nil
	}

	line, points, err := plotter.NewLinePoints(s)
	if err != nil {
		return fmt.Errorf("series %s: %w", s.Source, err)
	}
	line.Color = col
	line.Width = vg.Points(lineWidth)
	points.Shape = draw.CircleGlyph{}
	points.Color = col
	points.Radius = vg.Points(markerRadius)

	c.plot.Add(line, points)
	if s.Label != "" {
		c.plot.Legend.Add(s.Label, line, points)
	}
	return nil
}

// WriteTo renders the chart as a PNG image to w.
func (c *Chart) WriteTo(w io.Writer) (int64, error) {
	canvas := vgimg.NewWith(vgimg.UseWH(c.width, c.height), vgimg.UseDPI(c.dpi))
	c.plot.Draw(draw.New(canvas))

	png := vgimg.PngCanvas{Canvas: canvas}
	return png.WriteTo(w)
}

// Save renders the chart as a PNG image to path, creating parent directories.
func (c *Chart) Save(path string) (err error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	f, err := os.Create(path) // #nosec G304 -- user-provided output path is expected
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()

	n, err := c.WriteTo(f)
	if err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	c.logger.WithFields(logrus.Fields{
		"path":  path,
		"bytes": n,
		"dpi":   c.dpi,
	}).Info("chart written")
	return nil
}
