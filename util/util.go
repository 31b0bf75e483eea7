package util

import (
	"math/rand"

	"github.com/matt-g-everett/ledseq/animation"
)

// RandomRange returns a random value in [min, max).
func RandomRange(r *rand.Rand, min float64, max float64) float64 {
	return r.Float64()*(max-min) + min
}

// GenerateLut builds a look-up table that rises through modifier over the
// first half and falls back symmetrically over the second.
func GenerateLut(length int, modifier animation.TimeModifier) []float64 {
	lut := make([]float64, length)
	if length < 2 {
		return lut
	}

	increment := 1.0 / float64(length/2)
	for i, j := 0, length-1; i < length/2; i, j = i+1, j-1 {
		value := float64(i) * increment
		lut[i] = modifier(value)
		lut[j] = modifier(value)
	}
	return lut
}
