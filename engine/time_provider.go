package engine

import "time"

// TimeProvider provides the real system time with monotonic clock readings
// The core itself never reads the clock; hosts use this to stamp frames
type TimeProvider struct{}

// NewTimeProvider creates a new monotonic time provider
func NewTimeProvider() *TimeProvider {
	return &TimeProvider{}
}

// Now returns the current time with monotonic clock reading
func (p *TimeProvider) Now() time.Time {
	return time.Now()
}
