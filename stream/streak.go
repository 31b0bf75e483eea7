package stream

import (
	"math"

	"github.com/fogleman/ease"
	"github.com/lucasb-eyer/go-colorful"
)

// A Streak is an Effect that sweeps a streak along the strip. It fades in
// over the first half of the sweep and out over the second.
type Streak struct {
	colour     colorful.Color
	backColour colorful.Color
	length     float64
	position   float64
	gain       float64
}

// NewStreak creates an instance of a Streak object.
func NewStreak(colour, backColour colorful.Color, length int) *Streak {
	s := new(Streak)
	s.colour = colour
	s.backColour = backColour
	s.length = float64(length)
	s.position = -s.length
	return s
}

// Apply moves the streak from just before the first pixel at 0 to just
// past the last pixel at 1.
func (s *Streak) Apply(value float64) {
	s.position = value*(numPixels+s.length) - s.length

	easeDistance := value * 2
	if easeDistance > 1 {
		easeDistance = 2 - easeDistance
	}
	s.gain = ease.InOutQuad(math.Max(0, math.Min(1, easeDistance)))
}

// Render draws the streak over the background colour.
func (s *Streak) Render(f *Frame) {
	f.Fill(s.backColour)

	start := int(math.Max(0, math.Ceil(s.position)))
	end := int(math.Min(float64(len(f.pixels)-1), math.Ceil(s.position+s.length)-1))
	c := s.backColour.BlendHcl(s.colour, s.gain).Clamped()
	for i := start; i <= end; i++ {
		f.pixels[i] = c
	}
}
