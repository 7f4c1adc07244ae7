package clock

import "time"

// Clock abstracts wall time so expiry checks can be tested deterministically.
type Clock interface {
	Now() time.Time
}

// RealClock reads the system clock.
type RealClock struct{}

func NewRealClock() Clock {
	return RealClock{}
}

func (RealClock) Now() time.Time { return time.Now() }

// MockClock reports a fixed instant until SetTime moves it.
type MockClock struct {
	now time.Time
}

func NewMockClock(start time.Time) *MockClock {
	return &MockClock{now: start}
}

func (c *MockClock) Now() time.Time { return c.now }

// SetTime jumps the clock to t. Tests use it to cross TTL boundaries.
func (c *MockClock) SetTime(t time.Time) { c.now = t }
