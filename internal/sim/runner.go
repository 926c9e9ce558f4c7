package sim

import (
	"context"
	"log/slog"
	"time"

	"github.com/udisondev/wanted/internal/hud"
)

// Driver feeds input and world events into the simulation before each step.
// Drive returns false once it has nothing more to do; the runner then stops.
type Driver interface {
	Drive(now time.Duration, s *Simulation) bool
}

// FrameObserver is called after every step.
type FrameObserver func(f Frame, status hud.Status)

// Runner calls Step on a fixed wall-clock cadence.
type Runner struct {
	sim      *Simulation
	clock    *FrameClock
	driver   Driver
	interval time.Duration
	observer FrameObserver
}

// NewRunner creates a runner. driver may be nil for an open-ended run.
func NewRunner(s *Simulation, clock *FrameClock, driver Driver, interval time.Duration) *Runner {
	return &Runner{
		sim:      s,
		clock:    clock,
		driver:   driver,
		interval: interval,
	}
}

// OnFrame sets the observer.
func (r *Runner) OnFrame(fn FrameObserver) {
	r.observer = fn
}

// Run steps the simulation until ctx is cancelled or the driver is done.
func (r *Runner) Run(ctx context.Context) error {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	slog.Info("simulation loop started", "interval", r.interval)

	for {
		select {
		case <-ctx.Done():
			slog.Info("simulation loop stopping", "frames", r.sim.Frames())
			return ctx.Err()

		case <-ticker.C:
			if !r.frame() {
				slog.Info("simulation loop finished",
					"frames", r.sim.Frames(),
					"elapsed", r.sim.Now())
				return nil
			}
		}
	}
}

func (r *Runner) frame() bool {
	f := r.clock.Tick()

	more := true
	if r.driver != nil {
		more = r.driver.Drive(f.Now, r.sim)
	}

	r.sim.Step(f)

	if r.observer != nil {
		r.observer(f, r.sim.Status())
	}
	return more
}
