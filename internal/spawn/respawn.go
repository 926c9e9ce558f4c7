package spawn

import (
	"log/slog"
	"time"

	"github.com/udisondev/wanted/internal/model"
)

// RespawnScheduler holds the pending player respawn.
// Nothing runs in the background: the simulation asks Due once per step.
type RespawnScheduler struct {
	due model.Timestamp
}

// NewRespawnScheduler creates a scheduler with nothing pending.
func NewRespawnScheduler() *RespawnScheduler {
	return &RespawnScheduler{}
}

// Schedule sets the respawn time, replacing any earlier one.
func (r *RespawnScheduler) Schedule(at time.Duration) {
	r.due = model.StampAt(at)
	slog.Debug("respawn scheduled", "at", at)
}

// Cancel drops the pending respawn.
func (r *RespawnScheduler) Cancel() {
	if r.due.Valid() {
		slog.Debug("respawn cancelled")
	}
	r.due = model.Timestamp{}
}

// Pending returns the scheduled respawn time.
func (r *RespawnScheduler) Pending() (time.Duration, bool) {
	return r.due.Time()
}

// Due reports whether the respawn time has been reached. It fires once.
func (r *RespawnScheduler) Due(now time.Duration) bool {
	at, ok := r.due.Time()
	if !ok || now < at {
		return false
	}
	r.due = model.Timestamp{}
	return true
}
