package animation

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is matched by every construction error.
var ErrInvalidArgument = errors.New("invalid argument")

// ArgumentError describes a rejected constructor argument.
type ArgumentError struct {
	// Op is the operation that failed (e.g., "animation.New").
	Op string
	// Arg names the offending argument.
	Arg string
	// Reason says what was wrong with it.
	Reason string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("%s: %v: %s %s", e.Op, ErrInvalidArgument, e.Arg, e.Reason)
}

func (e *ArgumentError) Unwrap() error {
	return ErrInvalidArgument
}
