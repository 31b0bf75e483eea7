// Package animation drives a single value from 0 to 1 over a fixed
// duration and hands the eased result to an Animator on every update.
//
// An Animation is not safe for concurrent use. It is meant to be driven
// from one frame loop calling Update once per frame.
package animation

import (
	"fmt"
	"reflect"
	"time"
)

// State is the lifecycle state of an Animation.
type State int

const (
	// Stopped is the initial state, and the state after Stop.
	Stopped State = iota
	// Paused keeps elapsed time and frame count until Resume.
	Paused
	// Running means Update advances the animation.
	Running
)

func (s State) String() string {
	switch s {
	case Stopped:
		return "stopped"
	case Paused:
		return "paused"
	case Running:
		return "running"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// RepeatMode decides what happens when elapsed time passes the duration.
// The zero value is not a valid mode.
type RepeatMode int

const (
	// RunOnce stops the animation after the first pass.
	RunOnce RepeatMode = iota + 1
	// RepeatInfinite wraps around and keeps running.
	RepeatInfinite
)

func (m RepeatMode) String() string {
	switch m {
	case RunOnce:
		return "once"
	case RepeatInfinite:
		return "infinite"
	default:
		return fmt.Sprintf("RepeatMode(%d)", int(m))
	}
}

func (m RepeatMode) valid() bool {
	return m == RunOnce || m == RepeatInfinite
}

// An Animation traverses frames of a fixed duration.
type Animation struct {
	animator Animator
	duration time.Duration
	mode     RepeatMode
	modifier TimeModifier

	elapsed      time.Duration
	currentFrame int
	state        State

	listeners      []listenerEntry
	nextListenerID int
}

// New creates a stopped animation. The animator and modifier must not be
// nil, including a nil pointer or func held in the interface; the duration must be positive and the mode must be RunOnce or
// RepeatInfinite; otherwise an error wrapping ErrInvalidArgument is
// returned.
func New(animator Animator, duration time.Duration, mode RepeatMode, modifier TimeModifier) (*Animation, error) {
	const op = "animation.New"
	if isNil(animator) {
		return nil, &ArgumentError{Op: op, Arg: "animator", Reason: "must not be nil"}
	}
	if !mode.valid() {
		return nil, &ArgumentError{Op: op, Arg: "mode", Reason: fmt.Sprintf("unknown repeat mode %v", mode)}
	}
	if modifier == nil {
		return nil, &ArgumentError{Op: op, Arg: "modifier", Reason: "must not be nil"}
	}
	if duration <= 0 {
		return nil, &ArgumentError{Op: op, Arg: "duration", Reason: fmt.Sprintf("must be positive, got %v", duration)}
	}

	a := new(Animation)
	a.animator = animator
	a.duration = duration
	a.mode = mode
	a.modifier = modifier
	a.state = Stopped
	return a, nil
}

func isNil(v interface{}) bool {
	if v == nil {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Ptr, reflect.Func, reflect.Map, reflect.Slice, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// Once creates an animation that stops after a single pass.
func Once(animator Animator, duration time.Duration, modifier TimeModifier) (*Animation, error) {
	return New(animator, duration, RunOnce, modifier)
}

// Infinite creates an animation that loops until stopped.
func Infinite(animator Animator, duration time.Duration, modifier TimeModifier) (*Animation, error) {
	return New(animator, duration, RepeatInfinite, modifier)
}

// Update advances a running animation by delta. A delta spanning several
// durations advances several frames in one call. A RunOnce animation that
// wraps is stopped and receives no further update in this call.
func (a *Animation) Update(delta time.Duration) {
	if a.state != Running {
		return
	}

	a.elapsed += delta
	for a.elapsed > a.duration {
		a.elapsed -= a.duration
		a.currentFrame++

		if a.mode == RunOnce {
			a.Stop()
			return
		}
	}

	a.updateAnimator()
}

func (a *Animation) updateAnimator() {
	a.animator.Apply(a.modifier(a.Progress()))
}

// Start runs a stopped animation from the beginning. Listeners are told
// before the animator receives its first value. Has no effect unless
// the animation is stopped.
func (a *Animation) Start() *Animation {
	if a.state == Stopped {
		a.state = Running
		a.elapsed = 0
		for _, l := range a.snapshot() {
			l.OnStart()
		}
		a.updateAnimator()
	}
	return a
}

// Stop ends a running animation. The animator receives one final value
// for the current elapsed time, then listeners are told. Has no effect
// unless the animation is running.
func (a *Animation) Stop() *Animation {
	if a.state == Running {
		a.state = Stopped
		a.updateAnimator()
		for _, l := range a.snapshot() {
			l.OnEnd()
		}
	}
	return a
}

// Pause halts a running animation without notifying anyone. Elapsed time
// and frame count are kept.
func (a *Animation) Pause() *Animation {
	if a.state == Running {
		a.state = Paused
	}
	return a
}

// Resume continues a paused animation. The animator is next updated by
// Update.
func (a *Animation) Resume() *Animation {
	if a.state == Paused {
		a.state = Running
	}
	return a
}

// CurrentFrame returns the number of completed passes, always
// non-negative.
func (a *Animation) CurrentFrame() int {
	return a.currentFrame
}

// IsRunning reports whether the animation is running.
func (a *Animation) IsRunning() bool {
	return a.state == Running
}

// State returns the current lifecycle state.
func (a *Animation) State() State {
	return a.state
}

// Mode returns the repeat mode.
func (a *Animation) Mode() RepeatMode {
	return a.mode
}

// Duration returns the length of one pass.
func (a *Animation) Duration() time.Duration {
	return a.duration
}

// Elapsed returns the time elapsed in the current pass.
func (a *Animation) Elapsed() time.Duration {
	return a.elapsed
}

// Progress returns the raw, unmodified progress of the current pass.
func (a *Animation) Progress() float64 {
	return float64(a.elapsed) / float64(a.duration)
}
