package clock

import "time"

//go:generate mockgen -package=mocks -destination=mocks/mock_clock.go github.com/KirkDiggler/flip7/internal/common/clock Clock

// Clock supplies the instants stamped on games and scores
type Clock interface {
	Now() time.Time
}

// DefaultClock implements the Clock interface using the system clock
type DefaultClock struct{}

// New returns the system clock
func New() *DefaultClock {
	return &DefaultClock{}
}

// Now returns the current time, truncated to the millisecond so that
// persisted instants compare equal after a round trip
func (c *DefaultClock) Now() time.Time {
	return time.Now().Truncate(time.Millisecond)
}
