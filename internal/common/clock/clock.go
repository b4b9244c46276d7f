package clock

import "time"

// Clock tells the time at which matches are created and saved
//
//go:generate mockgen -package=mocks -destination=mocks/mock_clock.go github.com/KirkDiggler/tysiac/internal/common/clock Clock
type Clock interface {
	Now() time.Time
}

// System reads the wall clock, truncated to milliseconds and in UTC
type System struct{}

// New returns the system clock
func New() *System {
	return &System{}
}

// Now returns the current UTC time
func (c *System) Now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}
