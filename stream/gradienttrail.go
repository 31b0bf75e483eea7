package stream

import (
	"math"
)

// A GradientTrail is an Effect that cycles a gradient along an led strip.
type GradientTrail struct {
	gradient    GradientTable
	trailLength int
	saturation  float64
	luminance   float64
	current     float64
}

// NewGradientTrail creates an instance of a GradientTrail object.
func NewGradientTrail(gradient GradientTable, trailLength int) *GradientTrail {
	g := new(GradientTrail)
	g.gradient = gradient
	g.trailLength = trailLength
	g.saturation = 1.0
	g.luminance = 0.05
	g.current = 0

	return g
}

// Apply moves the gradient one whole trail length per unit of value.
func (g *GradientTrail) Apply(value float64) {
	g.current = value * float64(g.trailLength)
}

// Render draws the gradient at its current offset.
func (g *GradientTrail) Render(f *Frame) {
	numPixels := len(f.pixels)
	trail := float64(g.trailLength)
	for i := 0; i < numPixels; i++ {
		t := math.Mod(float64(i+numPixels)-g.current, trail) / trail
		if t < 0 {
			t++
		}
		f.pixels[i] = g.gradient.GetColor(t, g.saturation, g.luminance)
	}
}
