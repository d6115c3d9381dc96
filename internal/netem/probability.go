package netem

import (
	"math"

	"github.com/ooni/linkemu/internal/model"
)

// ClampProbability returns p clamped into [0, 1]. NaN becomes zero.
func ClampProbability(p float64) float64 {
	switch {
	case math.IsNaN(p), p < 0:
		return 0
	case p > 1:
		return 1
	default:
		return p
	}
}

// triggers draws a number in [0, 1) and returns whether
// it is below the given probability.
func triggers(rng model.RandomSource, probability float64) bool {
	return rng.Float64() < probability
}
