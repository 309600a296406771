package harness

import "time"

// Ticks counts clock ticks. Its unit is given by the clock's TicksPerSecond.
type Ticks uint64

// Seconds converts t to seconds at the given rate.
func (t Ticks) Seconds(ticksPerSecond uint64) float64 {
	if ticksPerSecond == 0 {
		return 0
	}
	return float64(t) / float64(ticksPerSecond)
}

// Clock is a tick source. Samples must be non-decreasing.
type Clock interface {
	Now() Ticks
	TicksPerSecond() uint64
}

// MonotonicClock measures wall time in microseconds since its creation. It
// is the fallback on platforms without a process CPU clock.
type MonotonicClock struct {
	start time.Time
}

// NewMonotonicClock returns a MonotonicClock started now.
func NewMonotonicClock() *MonotonicClock {
	return &MonotonicClock{start: time.Now()}
}

// Now implements Clock.
func (c *MonotonicClock) Now() Ticks {
	return Ticks(time.Since(c.start).Microseconds())
}

// TicksPerSecond implements Clock.
func (c *MonotonicClock) TicksPerSecond() uint64 { return 1_000_000 }
