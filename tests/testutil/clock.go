package testutil

import (
	"time"

	"github.com/light-bringer/catalog-service/internal/pkg/clock"
)

// NewFixedClock returns a clock stopped at t.
func NewFixedClock(t time.Time) *clock.MockClock {
	return clock.NewMockClock(t)
}

// NewMillisClock returns a clock that moves one millisecond per read, so
// collision suffixes differ between attempts.
func NewMillisClock(start time.Time) *clock.MockClock {
	return clock.NewTickingClock(start, time.Millisecond)
}
