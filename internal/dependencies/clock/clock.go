// Package clock abstracts time so controllers can be tested against a
// scripted clock.
package clock

import "time"

// Clock yields the current time.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// New returns a Clock backed by the system time.
func New() *SystemClock {
	return &SystemClock{}
}

func (SystemClock) Now() time.Time {
	return time.Now()
}
