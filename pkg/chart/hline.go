package chart

import (
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg/draw"
)

// horizontalLine spans the full x range of the plot at a fixed y value.
type horizontalLine struct {
	Y float64
	draw.LineStyle
}

// Plot implements plot.Plotter.
func (h *horizontalLine) Plot(c draw.Canvas, p *plot.Plot) {
	trX, trY := p.Transforms(&c)
	y := trY(h.Y)
	c.StrokeLine2(h.LineStyle, trX(p.X.Min), y, trX(p.X.Max), y)
}

// DataRange implements plot.DataRanger. Only the y value takes part in autoscaling.
func (h *horizontalLine) DataRange() (xmin, xmax, ymin, ymax float64) {
	return math.Inf(1), math.Inf(-1), h.Y, h.Y
}

// Thumbnail implements plot.Thumbnailer.
func (h *horizontalLine) Thumbnail(c *draw.Canvas) {
	y := c.Center().Y
	c.StrokeLine2(h.LineStyle, c.Min.X, y, c.Max.X, y)
}
