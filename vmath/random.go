package vmath

import "math/rand"

// RandomRange returns a uniform value in [min, max) drawn from r
func RandomRange(r *rand.Rand, min, max float64) float64 {
	return r.Float64()*(max-min) + min
}
