package testutil

import (
	"time"

	"github.com/go-gl/mathgl/mgl64"
)

// MockAvatar records transforms pushed by the player controller.
// Stands in for the renderable handle produced by the asset loader.
type MockAvatar struct {
	Position mgl64.Vec3
	Facing   float64
	Syncs    int
}

// SetTransform records the latest transform.
func (a *MockAvatar) SetTransform(position mgl64.Vec3, facing float64) {
	a.Position = position
	a.Facing = facing
	a.Syncs++
}

// MockCamera records follow-camera updates without smoothing.
type MockCamera struct {
	Target  mgl64.Vec3
	Yaw     float64
	Pitch   float64
	Updates int
	Snaps   int
}

// Update records the tracked pose.
func (c *MockCamera) Update(target mgl64.Vec3, yaw, pitch float64) {
	c.Target = target
	c.Yaw = yaw
	c.Pitch = pitch
	c.Updates++
}

// Snap records a hard placement.
func (c *MockCamera) Snap(target mgl64.Vec3, yaw, pitch float64) {
	c.Update(target, yaw, pitch)
	c.Snaps++
}

// Hit is one damage application recorded by MockTarget.
type Hit struct {
	Amount float64
	At     time.Duration
}

// MockTarget is a stationary pursuit target that records the damage it receives.
type MockTarget struct {
	Pos  mgl64.Vec3
	Dead bool
	Hits []Hit
}

// Position returns the target position.
func (m *MockTarget) Position() mgl64.Vec3 { return m.Pos }

// IsDead reports whether the target is dead.
func (m *MockTarget) IsDead() bool { return m.Dead }

// TakeDamage records the hit.
func (m *MockTarget) TakeDamage(amount float64, now time.Duration) {
	m.Hits = append(m.Hits, Hit{Amount: amount, At: now})
}

// Damage returns the sum of recorded hits.
func (m *MockTarget) Damage() float64 {
	var total float64
	for _, h := range m.Hits {
		total += h.Amount
	}
	return total
}
