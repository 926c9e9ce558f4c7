package camera

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/udisondev/wanted/internal/config"
	"github.com/udisondev/wanted/internal/model"
)

// Follow is a third-person camera trailing the player.
//
// The position eases toward the desired pose by a fixed factor per frame,
// so smoothing speed depends on frame rate.
type Follow struct {
	cfg      config.Camera
	position mgl64.Vec3
	lookAt   mgl64.Vec3
}

// NewFollow creates a camera at the origin. Call Snap before the first frame.
func NewFollow(cfg config.Camera) *Follow {
	return &Follow{cfg: cfg}
}

// Position returns the camera position.
func (f *Follow) Position() mgl64.Vec3 { return f.position }

// LookAt returns the point the camera is aimed at.
func (f *Follow) LookAt() mgl64.Vec3 { return f.lookAt }

// Forward returns the unit view direction, or zero when the camera sits on its look-at point.
func (f *Follow) Forward() mgl64.Vec3 {
	d := f.lookAt.Sub(f.position)
	if d.Len() == 0 {
		return mgl64.Vec3{}
	}
	return d.Normalize()
}

// Desired returns the unsmoothed camera position for the given player pose.
func (f *Follow) Desired(target mgl64.Vec3, yaw, pitch float64) mgl64.Vec3 {
	offset := f.cfg.Offset
	if f.cfg.UsePitch {
		offset = mgl64.Rotate3DX(pitch).Mul3x1(offset)
	}
	return target.Add(model.RotateY(offset, yaw))
}

// Update eases the camera toward the desired pose and re-aims it.
func (f *Follow) Update(target mgl64.Vec3, yaw, pitch float64) {
	desired := f.Desired(target, yaw, pitch)
	f.position = f.position.Add(desired.Sub(f.position).Mul(f.cfg.Smoothing))
	f.lookAt = f.aim(target)
}

// Snap places the camera on the desired pose without easing.
func (f *Follow) Snap(target mgl64.Vec3, yaw, pitch float64) {
	f.position = f.Desired(target, yaw, pitch)
	f.lookAt = f.aim(target)
}

func (f *Follow) aim(target mgl64.Vec3) mgl64.Vec3 {
	return target.Add(model.Up.Mul(f.cfg.LookHeight))
}
