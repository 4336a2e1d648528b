// Package area holds the exact reference area of the Monte-Carlo experiment.
package area

import "math"

// Exact returns the exact area of the region estimated by the experiment:
// 0.25·π + 1.25·arcsin(0.8) − 1.
func Exact() float64 {
	return 0.25*math.Pi + 1.25*math.Asin(0.8) - 1
}
