package stream

import (
	"github.com/lucasb-eyer/go-colorful"
)

// A Fade is an Effect that fills the strip with a blend of two colours.
type Fade struct {
	from    colorful.Color
	to      colorful.Color
	current colorful.Color
}

// NewFade creates an instance of a Fade object.
func NewFade(from, to colorful.Color) *Fade {
	f := new(Fade)
	f.from = from
	f.to = to
	f.current = from
	return f
}

// Apply blends from towards to by value.
func (f *Fade) Apply(value float64) {
	f.current = f.from.BlendHcl(f.to, value).Clamped()
}

// Render fills the frame with the current colour.
func (f *Fade) Render(frame *Frame) {
	frame.Fill(f.current)
}
