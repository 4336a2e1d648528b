package chart

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// shortColors are the single-letter color codes accepted alongside CSS names.
var shortColors = map[string]string{
	"b": "blue",
	"g": "green",
	"r": "red",
	"c": "cyan",
	"m": "magenta",
	"y": "yellow",
	"k": "black",
	"w": "white",
}

// ParseColor resolves a CSS color name, a single-letter code, or a #rrggbb value.
func ParseColor(name string) (color.Color, error) {
	s := strings.ToLower(strings.TrimSpace(name))
	if s == "" {
		return color.Black, nil
	}

	if strings.HasPrefix(s, "#") {
		return parseHex(s)
	}

	if full, ok := shortColors[s]; ok {
		s = full
	}

	c, ok := colornames.Map[s]
	if !ok {
		return nil, fmt.Errorf("unknown color %q", name)
	}
	return c, nil
}

func parseHex(s string) (color.Color, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return nil, fmt.Errorf("invalid color %q (want #rrggbb)", s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid color %q: %w", s, err)
	}

	return color.RGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 0xff,
	}, nil
}
