package sim

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/wanted/internal/hud"
	"github.com/udisondev/wanted/internal/testutil"
)

// stepDriver presses forward on the first frame and stops after limit frames.
type stepDriver struct {
	limit int
	calls int
}

func (d *stepDriver) Drive(_ time.Duration, s *Simulation) bool {
	if d.calls == 0 {
		s.Input().Press("w")
	}
	d.calls++
	return d.calls < d.limit
}

func TestRunner_StopsWhenDriverDone(t *testing.T) {
	s := New(testutil.Config())
	s.AttachAvatar(&testutil.MockAvatar{})

	wall := &fakeWallClock{t: time.Unix(0, 0)}
	clock := NewFrameClock(time.Second, func() time.Time {
		wall.advance(10 * time.Millisecond)
		return wall.now()
	})
	driver := &stepDriver{limit: 5}

	r := NewRunner(s, clock, driver, time.Millisecond)
	var observed []hud.Status
	r.OnFrame(func(_ Frame, st hud.Status) {
		observed = append(observed, st)
	})

	require.NoError(t, r.Run(testutil.Context(t, 5*time.Second)))
	assert.Equal(t, 5, driver.calls)
	assert.Equal(t, uint64(5), s.Frames())
	assert.Len(t, observed, 5)

	// First frame has zero dt; the next four move 10ms each at speed 10.
	assert.InDelta(t, -0.4, s.Player().Position().Z(), 1e-9)
}

func TestRunner_ContextCancel(t *testing.T) {
	s := New(testutil.Config())
	r := NewRunner(s, NewFrameClock(time.Second, nil), nil, time.Millisecond)

	err := r.Run(testutil.Context(t, 30*time.Millisecond))
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Positive(t, s.Frames())
}
