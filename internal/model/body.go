package model

import "github.com/go-gl/mathgl/mgl64"

// KinematicBody integrates vertical motion for one actor against a flat ground plane.
// Horizontal displacement is applied directly by the owner; only Velocity.Y is integrated.
type KinematicBody struct {
	Position     mgl64.Vec3
	Velocity     mgl64.Vec3
	OnGround     bool
	GroundHeight float64
}

// NewKinematicBody creates a body resting at pos. Ground contact is resolved on the first Integrate.
func NewKinematicBody(pos mgl64.Vec3, groundHeight float64) KinematicBody {
	return KinematicBody{
		Position:     pos,
		OnGround:     pos.Y() <= groundHeight,
		GroundHeight: groundHeight,
	}
}

// Integrate advances vertical velocity and position by dt seconds under gravity,
// then clamps to the ground. dt is used as given; callers filter out stalled-clock frames.
func (b *KinematicBody) Integrate(dt, gravity float64) {
	b.Velocity[1] += gravity * dt
	b.Position[1] += b.Velocity[1] * dt

	if b.Position[1] <= b.GroundHeight {
		b.Position[1] = b.GroundHeight
		b.Velocity[1] = 0
		b.OnGround = true
		return
	}
	b.OnGround = false
}

// Launch gives the body an upward velocity and leaves the ground.
func (b *KinematicBody) Launch(speed float64) {
	b.Velocity[1] = speed
	b.OnGround = false
}

// Translate moves the body horizontally; the vertical component of delta is ignored.
func (b *KinematicBody) Translate(delta mgl64.Vec3) {
	b.Position[0] += delta[0]
	b.Position[2] += delta[2]
}

// Place teleports the body to pos and stops it.
func (b *KinematicBody) Place(pos mgl64.Vec3) {
	b.Position = pos
	b.Velocity = mgl64.Vec3{}
	b.OnGround = pos.Y() <= b.GroundHeight
}
