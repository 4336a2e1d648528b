// Package series loads Monte-Carlo area-estimation results from text files.
//
// Each input line has the form "N = <count>; S = <deviation>", where N is the
// number of generated points and S is the percentage deviation of the
// estimated area from the exact one.
package series

// Sample is a single (N, ΔS) data point.
type Sample struct {
	// N is the number of generated points.
	N int `json:"n"`

	// DeltaS is the deviation of the estimated area from the exact value, in percent.
	DeltaS float64 `json:"delta_s"`
}

// Series is the ordered set of samples loaded from one file, together with
// the metadata used to display it.
type Series struct {
	// Source is the file path the samples were read from.
	Source string

	// Label is the legend label.
	Label string

	// Color is the display color (a CSS color name or #rrggbb).
	Color string

	// Samples holds the parsed samples in file order.
	Samples []Sample
}

// Len returns the number of samples in the series.
func (s *Series) Len() int {
	return len(s.Samples)
}

// XY returns the sample at index i as a pair of floats.
func (s *Series) XY(i int) (x, y float64) {
	return float64(s.Samples[i].N), s.Samples[i].DeltaS
}

// ParsedSample is a sample together with where it was read from.
type ParsedSample struct {
	Sample

	// Raw is the line content the sample was parsed from.
	Raw string

	// Source is the file path this line came from.
	Source string

	// LineNum is the 1-based line number in the source file.
	LineNum int
}

// Spec describes a series file to load.
type Spec struct {
	Path     string
	Label    string
	Color    string
	Encoding Encoding
}
