// Package clock provides an injectable time source so that expiry and
// quota-window calculations can be tested without real delays.
package clock

import "time"

// Clock supplies the current time. All timestamps are UTC.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now().UTC() }

// System returns a Clock backed by the wall clock.
func System() Clock { return systemClock{} }

// Fixed is a Clock pinned to a settable instant. Intended for tests.
type Fixed struct {
	Time time.Time
}

// NewFixed creates a Fixed clock at the given instant.
func NewFixed(t time.Time) *Fixed { return &Fixed{Time: t} }

func (f *Fixed) Now() time.Time { return f.Time }

// Advance moves the fixed clock forward by d.
func (f *Fixed) Advance(d time.Duration) { f.Time = f.Time.Add(d) }
