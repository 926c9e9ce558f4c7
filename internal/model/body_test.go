package model

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKinematicBody_Integrate_FallsAndClamps(t *testing.T) {
	tests := []struct {
		name    string
		dt      float64
		gravity float64
		ground  float64
		startY  float64
	}{
		{name: "60fps standard gravity", dt: 1.0 / 60, gravity: -30, ground: 0, startY: 10},
		{name: "coarse step", dt: 0.5, gravity: -40, ground: 0, startY: 1},
		{name: "raised ground", dt: 1.0 / 30, gravity: -35, ground: 2.5, startY: 20},
		{name: "single huge step", dt: 5, gravity: -30, ground: 0, startY: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewKinematicBody(mgl64.Vec3{0, tt.startY, 0}, tt.ground)

			landed := false
			for range 10_000 {
				b.Integrate(tt.dt, tt.gravity)
				require.GreaterOrEqual(t, b.Position.Y(), tt.ground)
				if b.OnGround {
					landed = true
					break
				}
			}

			require.True(t, landed, "body never reached the ground")
			assert.Equal(t, tt.ground, b.Position.Y())
			assert.Equal(t, 0.0, b.Velocity.Y())
		})
	}
}

func TestKinematicBody_Integrate_ZeroDt(t *testing.T) {
	b := NewKinematicBody(mgl64.Vec3{1, 5, 2}, 0)
	b.Integrate(0, -30)

	assert.Equal(t, mgl64.Vec3{1, 5, 2}, b.Position)
	assert.False(t, b.OnGround)
}

func TestKinematicBody_LaunchLeavesGround(t *testing.T) {
	b := NewKinematicBody(mgl64.Vec3{}, 0)
	require.True(t, b.OnGround)

	b.Launch(12)
	b.Integrate(0.1, -30)

	assert.False(t, b.OnGround)
	assert.InDelta(t, 9.0, b.Velocity.Y(), 1e-9)
	assert.InDelta(t, 0.9, b.Position.Y(), 1e-9)
}

func TestKinematicBody_TranslateIgnoresVertical(t *testing.T) {
	b := NewKinematicBody(mgl64.Vec3{0, 0, 0}, 0)
	b.Translate(mgl64.Vec3{1, 7, -2})

	assert.Equal(t, mgl64.Vec3{1, 0, -2}, b.Position)
}

func TestKinematicBody_Place(t *testing.T) {
	b := NewKinematicBody(mgl64.Vec3{}, 0)
	b.Launch(10)
	b.Place(mgl64.Vec3{4, 1, 4})

	assert.Equal(t, mgl64.Vec3{4, 1, 4}, b.Position)
	assert.Equal(t, mgl64.Vec3{}, b.Velocity)
	assert.False(t, b.OnGround)
}
