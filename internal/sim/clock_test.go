package sim

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeWallClock struct {
	t time.Time
}

func (f *fakeWallClock) now() time.Time { return f.t }

func (f *fakeWallClock) advance(d time.Duration) { f.t = f.t.Add(d) }

func TestFrameClock(t *testing.T) {
	wall := &fakeWallClock{t: time.Unix(1700000000, 0)}
	c := NewFrameClock(250*time.Millisecond, wall.now)

	assert.Equal(t, Frame{}, c.Tick(), "first frame has zero dt")

	wall.advance(16 * time.Millisecond)
	f := c.Tick()
	assert.InDelta(t, 0.016, f.DT, 1e-12)
	assert.Equal(t, 16*time.Millisecond, f.Now)

	wall.advance(5 * time.Second)
	f = c.Tick()
	assert.InDelta(t, 0.25, f.DT, 1e-12, "long gaps are clamped")
	assert.Equal(t, 5016*time.Millisecond, f.Now)

	wall.advance(-time.Second)
	f = c.Tick()
	assert.Equal(t, 0.0, f.DT, "clock going backwards yields zero dt")
}

func TestFrameClock_NoClamp(t *testing.T) {
	wall := &fakeWallClock{t: time.Unix(0, 0)}
	c := NewFrameClock(0, wall.now)
	c.Tick()

	wall.advance(2 * time.Second)
	assert.InDelta(t, 2.0, c.Tick().DT, 1e-12)
}

func TestFrameClock_DefaultsToWallClock(t *testing.T) {
	c := NewFrameClock(time.Second, nil)
	c.Tick()
	f := c.Tick()
	assert.GreaterOrEqual(t, f.DT, 0.0)
	assert.LessOrEqual(t, f.DT, 1.0)
}
