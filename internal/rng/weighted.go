package rng

import (
	"math"

	"github.com/mrasmith/dungeonforge/internal/restrict"
)

// WeightedRange draws an integer from r.Lower..r.Upper (inclusive) biased
// by weight and variance, both in [-100, 100]. It builds a truncated
// normal on [0, 1] with mean (weight+100)/200 and standard deviation
// (variance+100)/200, rejecting draws outside
// [-0.5/delta, (delta+0.5)/delta] (delta = Upper-Lower), then maps the
// accepted draw onto an integer in the range by rounding.
//
// Positive weight biases the draw toward Upper; positive variance widens
// the spread. weight=0, variance=0 is the unbiased, narrow default.
func WeightedRange(src Source, r restrict.IntRange, weight, variance int) int {
	if r.Lower == r.Upper {
		return r.Lower
	}
	delta := float64(r.Width())
	mu := (float64(weight) + 100) / 200
	sigma := (float64(variance) + 100) / 200
	lowBound := -0.5 / delta
	highBound := (delta + 0.5) / delta

	for {
		z := boxMuller(src)
		u := mu + sigma*z
		if u >= lowBound && u <= highBound {
			v := r.Lower + int(math.Round(u*delta))
			return r.Clamp(v)
		}
	}
}

// boxMuller draws one standard-normal sample from two uniform draws.
func boxMuller(src Source) float64 {
	// avoid log(0)
	u1 := 1 - src.Float64()
	u2 := src.Float64()
	return math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
}
