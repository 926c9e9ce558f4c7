package ai

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/udisondev/wanted/internal/model"
)

// Pursuer is one adversary chasing the player.
// Position is owned by the pursuit AI; creation and removal belong to the spawn side.
type Pursuer struct {
	ID        uint32
	Position  mgl64.Vec3
	Heading   float64
	LastHit   model.Timestamp
	Intention model.Intention
	Hits      int
}

// NewPursuer creates an idle pursuer that has never attacked.
func NewPursuer(id uint32, pos mgl64.Vec3) *Pursuer {
	return &Pursuer{
		ID:        id,
		Position:  pos,
		Intention: model.IntentionIdle,
	}
}
