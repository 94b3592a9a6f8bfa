// Package clock abstracts the time source a tracker reads, so tests can
// substitute a deterministic clock for the real one.
package clock

import (
	"sync"
	"time"
)

// Clock supplies the current time. Readings are expected to be
// non-decreasing under normal operation; the tracker tolerates occasional
// decreases by clamping the computed delta.
type Clock interface {
	Now() time.Time
}

// systemClock reads the real process clock.
type systemClock struct{}

// System returns the process clock. time.Now carries a monotonic reading,
// so deltas between submissions are immune to wall clock adjustments.
func System() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now()
}

// Manual is a settable Clock for deterministic tests.
type Manual struct {
	mu  sync.Mutex
	now time.Time
}

// NewManual creates a Manual clock starting at t.
func NewManual(t time.Time) *Manual {
	return &Manual{now: t}
}

// Now implements the Clock interface.
func (m *Manual) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// Set moves the clock to t. Moving backwards is allowed so non-monotonic
// behavior can be exercised.
func (m *Manual) Set(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = t
}

// Advance moves the clock forward by d. A negative d moves it backwards.
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = m.now.Add(d)
}
