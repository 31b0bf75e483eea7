package stream

import "time"

// Clock provides the time used to measure frame deltas.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }
