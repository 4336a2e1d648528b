// Package output provides summaries of loaded series and their formatting.
package output

import (
	"time"

	"github.com/ccollicutt/areaplot/pkg/series"
)

// Report describes a set of loaded series.
type Report struct {
	// Series holds one entry per loaded file, in load order.
	Series []*SeriesReport `json:"series"`

	// Metadata provides context about the run.
	Metadata Metadata `json:"metadata"`
}

// SeriesReport is the summary and samples of one series.
type SeriesReport struct {
	Summary Summary         `json:"summary"`
	Samples []series.Sample `json:"samples"`
}

// Summary provides descriptive statistics of one series.
// Statistics are zero for a series without samples.
type Summary struct {
	Source  string `json:"source"`
	Label   string `json:"label,omitempty"`
	Samples int    `json:"samples"`

	MinN int `json:"min_n"`
	MaxN int `json:"max_n"`

	MinDeltaS  float64 `json:"min_delta_s"`
	MaxDeltaS  float64 `json:"max_delta_s"`
	MeanDeltaS float64 `json:"mean_delta_s"`
	LastDeltaS float64 `json:"last_delta_s"`
}

// Metadata provides context about the run.
type Metadata struct {
	// Sources lists the files that were loaded.
	Sources []string `json:"sources"`

	// ExactArea is the reference area the deviations are measured against.
	ExactArea float64 `json:"exact_area"`

	// GeneratedAt is when the report was created.
	GeneratedAt time.Time `json:"generated_at"`
}

// NewReport summarizes the loaded series.
func NewReport(loaded []*series.Series, exactArea float64) *Report {
	report := &Report{
		Series: make([]*SeriesReport, 0, len(loaded)),
		Metadata: Metadata{
			Sources:     make([]string, 0, len(loaded)),
			ExactArea:   exactArea,
			GeneratedAt: time.Now(),
		},
	}

	for _, s := range loaded {
		report.Series = append(report.Series, &SeriesReport{
			Summary: summarize(s),
			Samples: s.Samples,
		})
		report.Metadata.Sources = append(report.Metadata.Sources, s.Source)
	}

	return report
}

func summarize(s *series.Series) Summary {
	sum := Summary{
		Source:  s.Source,
		Label:   s.Label,
		Samples: len(s.Samples),
	}
	if len(s.Samples) == 0 {
		return sum
	}

	first := s.Samples[0]
	sum.MinN, sum.MaxN = first.N, first.N
	sum.MinDeltaS, sum.MaxDeltaS = first.DeltaS, first.DeltaS

	var total float64
	for _, sample := range s.Samples {
		sum.MinN = min(sum.MinN, sample.N)
		sum.MaxN = max(sum.MaxN, sample.N)
		sum.MinDeltaS = min(sum.MinDeltaS, sample.DeltaS)
		sum.MaxDeltaS = max(sum.MaxDeltaS, sample.DeltaS)
		total += sample.DeltaS
	}
	sum.MeanDeltaS = total / float64(len(s.Samples))
	sum.LastDeltaS = s.Samples[len(s.Samples)-1].DeltaS

	return sum
}

// Summaries returns the summary of every series.
func (r *Report) Summaries() []Summary {
	out := make([]Summary, len(r.Series))
	for i, s := range r.Series {
		out[i] = s.Summary
	}
	return out
}

// TotalSamples returns the number of samples across all series.
func (r *Report) TotalSamples() int {
	total := 0
	for _, s := range r.Series {
		total += s.Summary.Samples
	}
	return total
}
