package sim

import "time"

// FrameClock turns wall-clock readings into frames.
// The first frame has zero dt. Gaps longer than maxDelta (debugger, suspended process)
// are clamped so one frame cannot teleport anything; Now still reports real elapsed time.
type FrameClock struct {
	now      func() time.Time
	maxDelta time.Duration

	start   time.Time
	last    time.Time
	started bool
}

// NewFrameClock creates a clock. now defaults to time.Now.
func NewFrameClock(maxDelta time.Duration, now func() time.Time) *FrameClock {
	if now == nil {
		now = time.Now
	}
	return &FrameClock{now: now, maxDelta: maxDelta}
}

// Tick reads the clock and returns the frame.
func (c *FrameClock) Tick() Frame {
	t := c.now()
	if !c.started {
		c.start, c.last, c.started = t, t, true
		return Frame{}
	}

	d := t.Sub(c.last)
	c.last = t
	if d < 0 {
		d = 0
	}
	if c.maxDelta > 0 && d > c.maxDelta {
		d = c.maxDelta
	}

	return Frame{DT: d.Seconds(), Now: t.Sub(c.start)}
}
