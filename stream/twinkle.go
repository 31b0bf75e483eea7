package stream

import (
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/matt-g-everett/ledseq/animation"
	"github.com/matt-g-everett/ledseq/util"
)

// A Twinkle is an Effect that pulses random particles through a LUT.
// Particles are scattered afresh each time the followed animation starts
// or wraps into a new frame.
type Twinkle struct {
	rand         *rand.Rand
	numParticles int
	foreColour   colorful.Color
	backColour   colorful.Color
	lut          []float64

	anim      *animation.Animation
	frame     int
	particles map[int]float64
	scatters  int
	gain      float64
}

// NewTwinkle creates an instance of a Twinkle object.
func NewTwinkle(r *rand.Rand, numParticles int, foreColour, backColour colorful.Color, lut []float64) *Twinkle {
	t := new(Twinkle)
	t.rand = r
	t.numParticles = numParticles
	t.foreColour = foreColour
	t.backColour = backColour
	t.lut = lut

	return t
}

// Follow rescatters the particles whenever a starts or wraps. The eased
// value alone cannot tell a wrap from a reversed or overshooting easing.
func (t *Twinkle) Follow(a *animation.Animation) {
	t.anim = a
	t.frame = a.CurrentFrame()
	t.particles = nil
	a.AddListener(&animation.ListenerFuncs{Start: func() { t.particles = nil }})
}

func (t *Twinkle) scatter() {
	t.scatters++
	t.particles = make(map[int]float64, t.numParticles)
	for i := 0; i < t.numParticles; i++ {
		t.particles[t.rand.Intn(numPixels)] = util.RandomRange(t.rand, 0.5, 1.0)
	}
}

// Apply sets the particle brightness from the LUT.
func (t *Twinkle) Apply(value float64) {
	frame := t.frame
	if t.anim != nil {
		frame = t.anim.CurrentFrame()
	}
	if t.particles == nil || frame != t.frame {
		t.scatter()
	}
	t.frame = frame

	if len(t.lut) == 0 {
		t.gain = value
		return
	}

	i := int(value * float64(len(t.lut)-1))
	if i < 0 {
		i = 0
	} else if i >= len(t.lut) {
		i = len(t.lut) - 1
	}
	t.gain = t.lut[i]
}

// Render draws the particles over the background colour.
func (t *Twinkle) Render(f *Frame) {
	for i := 0; i < len(f.pixels); i++ {
		scale, found := t.particles[i]
		if found {
			f.pixels[i] = t.backColour.BlendHcl(t.foreColour, t.gain*scale).Clamped()
		} else {
			f.pixels[i] = t.backColour
		}
	}
}
