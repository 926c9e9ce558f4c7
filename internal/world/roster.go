package world

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/udisondev/wanted/internal/ai"
)

// ErrUnknownPursuer is returned for IDs not present in the roster.
var ErrUnknownPursuer = errors.New("unknown pursuer")

// Roster holds the active pursuers keyed by stable ID.
// Iteration follows insertion order so every frame ticks pursuers in the same sequence.
type Roster struct {
	ids      *IDGenerator
	pursuers map[uint32]*ai.Pursuer
	order    []uint32
}

// NewRoster creates an empty roster.
func NewRoster() *Roster {
	return &Roster{
		ids:      NewIDGenerator(),
		pursuers: make(map[uint32]*ai.Pursuer),
	}
}

// Add creates a pursuer at pos and returns it.
func (r *Roster) Add(pos mgl64.Vec3) *ai.Pursuer {
	p := ai.NewPursuer(r.ids.NextPursuerID(), pos)
	r.pursuers[p.ID] = p
	r.order = append(r.order, p.ID)

	slog.Debug("pursuer added", "pursuer", p.ID, "position", pos, "total", len(r.order))
	return p
}

// Remove deletes the pursuer with the given ID.
func (r *Roster) Remove(id uint32) error {
	if _, ok := r.pursuers[id]; !ok {
		return fmt.Errorf("removing pursuer %d: %w", id, ErrUnknownPursuer)
	}
	delete(r.pursuers, id)
	r.order = slices.DeleteFunc(r.order, func(v uint32) bool { return v == id })

	slog.Debug("pursuer removed", "pursuer", id, "total", len(r.order))
	return nil
}

// Get returns the pursuer with the given ID.
func (r *Roster) Get(id uint32) (*ai.Pursuer, bool) {
	p, ok := r.pursuers[id]
	return p, ok
}

// Len returns the number of pursuers.
func (r *Roster) Len() int {
	return len(r.order)
}

// Each calls fn for every pursuer in insertion order. Stops when fn returns false.
// fn must not add or remove pursuers.
func (r *Roster) Each(fn func(*ai.Pursuer) bool) {
	for _, id := range r.order {
		if !fn(r.pursuers[id]) {
			return
		}
	}
}

// Positions appends every pursuer position to dst and returns it.
func (r *Roster) Positions(dst []mgl64.Vec3) []mgl64.Vec3 {
	for _, id := range r.order {
		dst = append(dst, r.pursuers[id].Position)
	}
	return dst
}

// Reset removes every pursuer. IDs keep increasing.
func (r *Roster) Reset() {
	clear(r.pursuers)
	r.order = r.order[:0]
}
