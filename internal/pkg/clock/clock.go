package clock

import (
	"sync"
	"time"
)

// Clock is an interface for time operations to enable testability.
type Clock interface {
	Now() time.Time
}

// RealClock is the production implementation using actual system time.
type RealClock struct{}

// NewRealClock creates a new RealClock.
func NewRealClock() Clock {
	return &RealClock{}
}

// Now returns the current system time in UTC.
func (c *RealClock) Now() time.Time {
	return time.Now().UTC()
}

// MockClock is a test clock. It is safe for concurrent use and can be told
// to step forward on every read.
type MockClock struct {
	mu      sync.Mutex
	current time.Time
	step    time.Duration
}

// NewMockClock creates a new MockClock starting at the given time.
func NewMockClock(startTime time.Time) *MockClock {
	return &MockClock{current: startTime}
}

// NewTickingClock creates a MockClock that advances by step after each Now.
func NewTickingClock(startTime time.Time, step time.Duration) *MockClock {
	return &MockClock{current: startTime, step: step}
}

// Now returns the mock current time.
func (m *MockClock) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.current
	m.current = m.current.Add(m.step)
	return now
}

// Set sets the mock current time.
func (m *MockClock) Set(t time.Time) {
	m.mu.Lock()
	m.current = t
	m.mu.Unlock()
}

// Advance advances the mock clock by the given duration.
func (m *MockClock) Advance(d time.Duration) {
	m.mu.Lock()
	m.current = m.current.Add(d)
	m.mu.Unlock()
}

// Millis returns the current time of c as Unix milliseconds.
func Millis(c Clock) int64 {
	return c.Now().UnixMilli()
}
