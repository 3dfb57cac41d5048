// Package clock provides the monotonic time source polled by the simulation.
package clock

import "time"

// Clock returns elapsed simulation time. Values never decrease.
type Clock interface {
	Now() time.Duration
}

// Manual is a clock advanced explicitly by its owner.
type Manual struct {
	now time.Duration
}

func NewManual(start time.Duration) *Manual {
	return &Manual{now: start}
}

func (m *Manual) Now() time.Duration {
	return m.now
}

// Advance moves the clock forward by d. Negative values are ignored.
func (m *Manual) Advance(d time.Duration) time.Duration {
	if d > 0 {
		m.now += d
	}
	return m.now
}

// Set jumps to t if t is not in the past.
func (m *Manual) Set(t time.Duration) {
	if t > m.now {
		m.now = t
	}
}

// Real measures wall time since it was created.
type Real struct {
	start time.Time
}

func NewReal() *Real {
	return &Real{start: time.Now()}
}

func (r *Real) Now() time.Duration {
	return time.Since(r.start)
}

// Func adapts a function to Clock.
type Func func() time.Duration

func (f Func) Now() time.Duration {
	return f()
}
