package stream

import (
	"time"

	"github.com/matt-g-everett/ledseq/animation"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Status is a snapshot of what is being displayed.
type Status struct {
	Layer      string  `json:"layer"`
	Next       string  `json:"next,omitempty"`
	Transition float64 `json:"transition"`
	State      string  `json:"state"`
	Frame      int     `json:"frame"`
	Progress   float64 `json:"progress"`
	Paused     bool    `json:"paused"`
	Published  uint64  `json:"published"`
}

// Controller that manages a playlist of layers and cross-fades between
// them. It is driven from a single goroutine.
type Controller struct {
	layers       []*Layer
	current      int
	next         int
	transition   float64
	fade         *animation.Animation
	paused       bool
	pendingCycle bool
	log          *logrus.Entry
}

// NewController creates an instance of a Controller. The transition
// between layers takes transitionTime, eased by modifier.
func NewController(layers []*Layer, transitionTime time.Duration,
	modifier animation.TimeModifier) (*Controller, error) {

	if len(layers) == 0 {
		return nil, errors.New("controller needs at least one layer")
	}

	c := new(Controller)
	c.layers = layers
	c.current = 0
	c.next = -1
	c.log = logrus.WithField("component", "controller")

	fade, err := animation.Once(animation.AnimatorFunc(c.setTransition), transitionTime, modifier)
	if err != nil {
		return nil, errors.Wrap(err, "transition")
	}
	fade.AddListener(&animation.ListenerFuncs{End: c.finishTransition})
	c.fade = fade

	for i, l := range layers {
		i, l := i, l
		l.Animation.AddListener(&animation.ListenerFuncs{
			Start: func() { c.log.WithField("layer", l.Name).Debug("Layer started") },
			End:   func() { c.layerEnded(i) },
		})
	}

	return c, nil
}

func (c *Controller) setTransition(value float64) {
	c.transition = value
}

func (c *Controller) finishTransition() {
	old := c.current
	c.current = c.next
	c.next = -1
	c.transition = 0
	c.layers[old].Animation.Stop()
	c.log.WithField("layer", c.layers[c.current].Name).Info("Transition complete")

	// A short one-shot layer may have finished while fading in.
	if c.layers[c.current].Animation.State() == animation.Stopped {
		c.pendingCycle = true
	}
}

func (c *Controller) layerEnded(i int) {
	c.log.WithField("layer", c.layers[i].Name).Debug("Layer ended")
	if i == c.current && c.next < 0 {
		c.pendingCycle = true
	}
}

// Current returns the layer being displayed, or faded out of.
func (c *Controller) Current() *Layer {
	return c.layers[c.current]
}

// Next returns the layer being faded in, or nil.
func (c *Controller) Next() *Layer {
	if c.next < 0 {
		return nil
	}
	return c.layers[c.next]
}

// Transitioning reports whether a cross-fade is in progress.
func (c *Controller) Transitioning() bool {
	return c.next >= 0
}

// Start starts the current layer.
func (c *Controller) Start() {
	c.paused = false
	c.layers[c.current].Animation.Start()
}

// Stop stops every animation, finishing any transition first.
func (c *Controller) Stop() {
	c.Resume()
	c.fade.Stop()
	for _, l := range c.layers {
		l.Animation.Stop()
	}
	c.pendingCycle = false
}

// Pause freezes every animation in place.
func (c *Controller) Pause() {
	c.paused = true
	c.fade.Pause()
	for _, l := range c.layers {
		l.Animation.Pause()
	}
}

// Resume continues after Pause.
func (c *Controller) Resume() {
	c.paused = false
	c.fade.Resume()
	for _, l := range c.layers {
		l.Animation.Resume()
	}
}

// Paused reports whether the controller is paused.
func (c *Controller) Paused() bool {
	return c.paused
}

// Cycle cross-fades to the next layer in the playlist. A single layer is
// restarted instead. Ignored while paused or already transitioning.
func (c *Controller) Cycle() {
	if c.paused || c.next >= 0 {
		return
	}

	if len(c.layers) == 1 {
		l := c.layers[c.current]
		l.Animation.Stop().Start()
		c.pendingCycle = false
		c.log.WithField("layer", l.Name).Info("Restarted layer")
		return
	}

	c.next = (c.current + 1) % len(c.layers)
	next := c.layers[c.next]
	next.Animation.Stop().Start()
	c.fade.Start()
	c.log.WithFields(logrus.Fields{
		"from": c.layers[c.current].Name,
		"to":   next.Name,
	}).Info("Cycling animation")
}

// Update advances every running animation by delta.
func (c *Controller) Update(delta time.Duration) {
	c.layers[c.current].Animation.Update(delta)
	if c.next >= 0 {
		c.layers[c.next].Animation.Update(delta)
	}
	c.fade.Update(delta)

	if c.pendingCycle {
		c.pendingCycle = false
		c.Cycle()
	}
}

// CalculateFrame renders the current layer, blended with the next one
// during a transition.
func (c *Controller) CalculateFrame() *Frame {
	f := NewFrame()
	c.layers[c.current].Effect.Render(f)
	if c.next >= 0 {
		f2 := NewFrame()
		c.layers[c.next].Effect.Render(f2)
		f = f.InterpolateFrame(f2, c.transition)
	}

	return f
}

// Status returns a snapshot of the controller.
func (c *Controller) Status() Status {
	cur := c.layers[c.current]
	s := Status{
		Layer:      cur.Name,
		Transition: c.transition,
		State:      cur.Animation.State().String(),
		Frame:      cur.Animation.CurrentFrame(),
		Progress:   cur.Animation.Progress(),
		Paused:     c.paused,
	}
	if next := c.Next(); next != nil {
		s.Next = next.Name
	}
	return s
}
