package animation

// An Animator receives the eased interpolation factor of an animation,
// usually a value in [0, 1].
type Animator interface {
	Apply(value float64)
}

// AnimatorFunc adapts an ordinary function to an Animator.
type AnimatorFunc func(value float64)

// Apply calls f(value).
func (f AnimatorFunc) Apply(value float64) {
	f(value)
}

// A TimeModifier maps linear progress in [0, 1] to eased progress. It
// must be pure.
type TimeModifier func(t float64) float64
