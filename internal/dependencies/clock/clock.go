// Package clock abstracts wall-clock time so record IDs and timestamps can be
// made deterministic in tests.
package clock

import "time"

// Clock reports the current time
type Clock interface {
	Now() time.Time
}

// RealClock reads the system clock
type RealClock struct{}

// New creates a RealClock
func New() *RealClock {
	return &RealClock{}
}

// Now returns the current system time
func (c *RealClock) Now() time.Time {
	return time.Now()
}
