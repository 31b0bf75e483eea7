package stream

import (
	"github.com/matt-g-everett/ledseq/animation"
)

// An Effect is an Animator that can draw the value it was last given
// into a Frame.
type Effect interface {
	animation.Animator
	Render(f *Frame)
}
