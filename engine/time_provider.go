package engine

import "time"

// TimeSource supplies wall-clock readings to the pausable clock
type TimeSource interface {
	Now() time.Time
}

// TimeProvider reads the system clock (monotonic)
type TimeProvider struct{}

func NewTimeProvider() *TimeProvider {
	return &TimeProvider{}
}

func (p *TimeProvider) Now() time.Time {
	return time.Now()
}
