package chart

import (
	"bytes"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/ccollicutt/areaplot/pkg/config"
	"github.com/ccollicutt/areaplot/pkg/series"
)

func testFigure() config.Figure {
	return config.Figure{
		Title:  "Deviation",
		XLabel: "N",
		YLabel: "ΔS, %",
		Width:  4,
		Height: 3,
		DPI:    50,
		Legend: config.LegendLowerRight,
	}
}

func testSeries() []*series.Series {
	return []*series.Series{
		{
			Source:  "wide_area.txt",
			Label:   "wide",
			Color:   "blue",
			Samples: []series.Sample{{N: 10, DeltaS: 2.5}, {N: 20, DeltaS: 1.1}, {N: 30, DeltaS: -0.3}},
		},
		{
			Source:  "narrow_area.txt",
			Label:   "narrow",
			Color:   "red",
			Samples: []series.Sample{{N: 10, DeltaS: 0.7}, {N: 20, DeltaS: 0.2}},
		},
	}
}

func TestChart_WriteTo(t *testing.T) {
	c, err := New(testFigure())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if err := c.AddReferenceLine(config.ReferenceLine{Label: "y = 0", Color: "black", Dashed: true}); err != nil {
		t.Fatalf("AddReferenceLine() error = %v", err)
	}
	for _, s := range testSeries() {
		if err := c.AddSeries(s); err != nil {
			t.Fatalf("AddSeries() error = %v", err)
		}
	}

	var buf bytes.Buffer
	n, err := c.WriteTo(&buf)
	if err != nil {
		t.Fatalf("WriteTo() error = %v", err)
	}
	if n == 0 || int64(buf.Len()) != n {
		t.Errorf("WriteTo() wrote %d bytes, buffer has %d", n, buf.Len())
	}

	cfg, err := png.DecodeConfig(&buf)
	if err != nil {
		t.Fatalf("output is not a PNG: %v", err)
	}
	// 4x3 inches at 50 DPI
	if cfg.Width != 200 || cfg.Height != 150 {
		t.Errorf("image size = %dx%d, want 200x150", cfg.Width, cfg.Height)
	}
}

func TestChart_Save(t *testing.T) {
	c, err := New(testFigure())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	for _, s := range testSeries() {
		if err := c.AddSeries(s); err != nil {
			t.Fatalf("AddSeries() error = %v", err)
		}
	}

	path := filepath.Join(t.TempDir(), "out", "circles_second.png")
	if err := c.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("output not created: %v", err)
	}
	defer f.Close()
	if _, err := png.DecodeConfig(f); err != nil {
		t.Errorf("output is not a PNG: %v", err)
	}
}

func TestChart_EmptySeries(t *testing.T) {
	c, err := New(testFigure())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if err := c.AddSeries(&series.Series{Source: "empty.txt", Label: "empty", Color: "green", Samples: []series.Sample{}}); err != nil {
		t.Fatalf("AddSeries() error = %v", err)
	}

	var buf bytes.Buffer
	if _, err := c.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo() error = %v", err)
	}
}

func TestChart_InvalidInput(t *testing.T) {
	fig := testFigure()
	fig.DPI = 0
	if _, err := New(fig); err == nil {
		t.Error("New() expected error for zero DPI")
	}

	fig = testFigure()
	fig.Width = 0
	if _, err := New(fig); err == nil {
		t.Error("New() expected error for zero width")
	}

	c, err := New(testFigure())
	if err != nil {
		t.Fatal(err)
	}
	s := testSeries()[0]
	s.Color = "not-a-color"
	if err := c.AddSeries(s); err == nil {
		t.Error("AddSeries() expected error for unknown color")
	}
	if err := c.AddReferenceLine(config.ReferenceLine{Color: "#12"}); err == nil {
		t.Error("AddReferenceLine() expected error for short hex color")
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.RGBA
		wantErr bool
	}{
		{"blue", color.RGBA{0, 0, 255, 255}, false},
		{"Red", color.RGBA{255, 0, 0, 255}, false},
		{"k", color.RGBA{0, 0, 0, 255}, false},
		{"#ff8800", color.RGBA{255, 136, 0, 255}, false},
		{"", color.RGBA{0, 0, 0, 255}, false},
		{"#ff88", color.RGBA{}, true},
		{"#gg0000", color.RGBA{}, true},
		{"ultraviolet", color.RGBA{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseColor(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			r, g, b, a := got.RGBA()
			wr, wg, wb, wa := tt.want.RGBA()
			if r != wr || g != wg || b != wb || a != wa {
				t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
