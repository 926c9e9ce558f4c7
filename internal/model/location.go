package model

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Up is the world vertical axis. The ground plane is XZ.
var Up = mgl64.Vec3{0, 1, 0}

// RotateY rotates v around the vertical axis by angle radians.
// Positive angles turn -Z (forward) toward -X, matching yaw accumulated from mouse-x.
func RotateY(v mgl64.Vec3, angle float64) mgl64.Vec3 {
	return mgl64.Rotate3DY(angle).Mul3x1(v)
}

// Planar returns v with the vertical component dropped.
func Planar(v mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{v.X(), 0, v.Z()}
}

// PlanarDistance returns the ground-plane distance between a and b.
func PlanarDistance(a, b mgl64.Vec3) float64 {
	return Planar(b.Sub(a)).Len()
}

// GroundPoint projects a world position onto the 2D ground plane (x, z).
func GroundPoint(v mgl64.Vec3) mgl64.Vec2 {
	return mgl64.Vec2{v.X(), v.Z()}
}

// Heading returns the facing angle for a planar direction, atan2(x, z).
func Heading(dir mgl64.Vec3) float64 {
	return math.Atan2(dir.X(), dir.Z())
}

// Finite reports whether every component of v is a real number.
// NaN or Inf in a position poisons every later distance check.
func Finite(v mgl64.Vec3) bool {
	for _, c := range v {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}
