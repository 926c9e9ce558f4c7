package wanted

import (
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/udisondev/wanted/internal/model"
)

// EvasionPolicy decides when the player has shaken off pursuit.
// Evaluate is called once per step while the level is positive;
// returning true resets the level to zero.
type EvasionPolicy interface {
	Evaluate(now time.Duration, player mgl64.Vec3, pursuers []mgl64.Vec3) bool
	// Reset forgets accumulated progress (level raised, player respawned).
	Reset()
}

// NoEvasion never lowers the wanted level.
type NoEvasion struct{}

// Evaluate always returns false.
func (NoEvasion) Evaluate(time.Duration, mgl64.Vec3, []mgl64.Vec3) bool { return false }

// Reset does nothing.
func (NoEvasion) Reset() {}

// DistanceEvasion clears the level once every pursuer has stayed farther than
// Radius (ground plane) for a continuous After.
type DistanceEvasion struct {
	Radius float64
	After  time.Duration

	clearSince model.Timestamp
}

// NewDistanceEvasion creates the policy. after <= 0 disables it.
func NewDistanceEvasion(radius float64, after time.Duration) *DistanceEvasion {
	return &DistanceEvasion{Radius: radius, After: after}
}

// Evaluate implements EvasionPolicy.
func (d *DistanceEvasion) Evaluate(now time.Duration, player mgl64.Vec3, pursuers []mgl64.Vec3) bool {
	if d.After <= 0 {
		return false
	}

	for _, p := range pursuers {
		if model.PlanarDistance(player, p) <= d.Radius {
			d.clearSince = model.Timestamp{}
			return false
		}
	}

	if !d.clearSince.Valid() {
		d.clearSince = model.StampAt(now)
		return false
	}
	if !d.clearSince.Elapsed(now, d.After) {
		return false
	}

	d.clearSince = model.Timestamp{}
	return true
}

// Reset implements EvasionPolicy.
func (d *DistanceEvasion) Reset() {
	d.clearSince = model.Timestamp{}
}
