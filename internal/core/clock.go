package core

import "time"

// Clock is a monotonic millisecond counter. Implementations must never go
// backwards.
type Clock interface {
	NowMS() int64
}

// SystemClock reports milliseconds elapsed since it was created.
type SystemClock struct {
	start time.Time
}

// NewSystemClock starts a clock at zero.
func NewSystemClock() *SystemClock {
	return &SystemClock{start: time.Now()}
}

// NowMS returns the elapsed time in milliseconds.
// time.Since uses the monotonic reading, so wall clock changes do not leak in.
func (c *SystemClock) NowMS() int64 {
	return time.Since(c.start).Milliseconds()
}

// ManualClock is a Clock advanced explicitly. Used by tests and replays.
type ManualClock struct {
	now int64
}

// NowMS returns the current manual time.
func (c *ManualClock) NowMS() int64 {
	return c.now
}

// Advance moves the clock forward by ms. Negative values are ignored.
func (c *ManualClock) Advance(ms int64) {
	if ms > 0 {
		c.now += ms
	}
}

// Set jumps to an absolute time, never backwards.
func (c *ManualClock) Set(ms int64) {
	if ms > c.now {
		c.now = ms
	}
}
