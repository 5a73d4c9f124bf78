package dodge

import "time"

// Clock supplies the current time in milliseconds.
// Start reads it to seed the speed ramp; Tick receives its timestamp from the caller.
type Clock interface {
	NowMillis() int64
}

// ClockFunc adapts a function to the Clock interface.
type ClockFunc func() int64

// NowMillis calls f.
func (f ClockFunc) NowMillis() int64 {
	return f()
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// NowMillis returns the Unix time in milliseconds.
func (SystemClock) NowMillis() int64 {
	return time.Now().UnixMilli()
}

// PausableClock is a wall clock that stops while paused, so time spent
// paused never counts toward the speed ramp.
type PausableClock struct {
	now      func() time.Time
	paused   bool
	pausedAt time.Time
	offset   time.Duration // Total time spent paused
}

// NewPausableClock creates a running clock. A nil now reads time.Now.
func NewPausableClock(now func() time.Time) *PausableClock {
	if now == nil {
		now = time.Now
	}
	return &PausableClock{now: now}
}

// NowMillis returns wall milliseconds minus the time spent paused.
func (c *PausableClock) NowMillis() int64 {
	t := c.now()
	if c.paused {
		t = c.pausedAt
	}
	return t.Add(-c.offset).UnixMilli()
}

// Pause freezes the clock. Pausing twice is a no-op.
func (c *PausableClock) Pause() {
	if c.paused {
		return
	}
	c.paused = true
	c.pausedAt = c.now()
}

// Resume restarts the clock, excluding the paused span.
func (c *PausableClock) Resume() {
	if !c.paused {
		return
	}
	c.offset += c.now().Sub(c.pausedAt)
	c.paused = false
}

// Paused reports whether the clock is frozen.
func (c *PausableClock) Paused() bool {
	return c.paused
}
