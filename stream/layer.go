package stream

import (
	"time"

	"github.com/matt-g-everett/ledseq/animation"
	"github.com/pkg/errors"
)

// A Layer binds an Effect to the Animation that drives it.
type Layer struct {
	Name      string
	Effect    Effect
	Animation *animation.Animation
}

// follower is an Effect that tracks the frames of its own Animation.
type follower interface {
	Follow(a *animation.Animation)
}

// NewLayer creates a stopped layer.
func NewLayer(name string, effect Effect, mode animation.RepeatMode, duration time.Duration,
	modifier animation.TimeModifier) (*Layer, error) {

	if effect == nil {
		return nil, errors.Errorf("layer %q: no effect", name)
	}
	a, err := animation.New(effect, duration, mode, modifier)
	if err != nil {
		return nil, errors.Wrapf(err, "layer %q", name)
	}

	if f, ok := effect.(follower); ok {
		f.Follow(a)
	}

	l := new(Layer)
	l.Name = name
	l.Effect = effect
	l.Animation = a
	return l, nil
}
