package player

import (
	"log/slog"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/udisondev/wanted/internal/config"
	"github.com/udisondev/wanted/internal/model"
)

// Movement keys. Input arrives lower-cased.
const (
	KeyForward = "w"
	KeyBack    = "s"
	KeyLeft    = "a"
	KeyRight   = "d"
)

// Avatar is the renderable handle of the player.
// It is nil until the asset loader finishes; the controller stays frozen until then.
type Avatar interface {
	SetTransform(position mgl64.Vec3, facing float64)
}

// CameraRig follows the player.
type CameraRig interface {
	Update(target mgl64.Vec3, yaw, pitch float64)
	Snap(target mgl64.Vec3, yaw, pitch float64)
}

// RespawnScheduler delays the respawn after death.
type RespawnScheduler interface {
	Schedule(at time.Duration)
	Cancel()
}

// HealthListener receives health changes (HUD text and colour).
type HealthListener func(health model.Health, dead bool)

// Controller owns the player's body, orientation, health and the death/respawn lifecycle.
// It is the only writer of player state; pursuers go through TakeDamage.
type Controller struct {
	cfg   config.Player
	spawn mgl64.Vec3

	body   model.KinematicBody
	health model.Health
	yaw    float64
	pitch  float64
	facing float64

	dead   bool
	deaths int

	avatar    Avatar
	camera    CameraRig
	respawns  RespawnScheduler
	listeners []HealthListener
}

// NewController creates a controller standing at cfg.Spawn with full health.
func NewController(cfg config.Player) *Controller {
	return &Controller{
		cfg:    cfg,
		spawn:  cfg.Spawn,
		body:   model.NewKinematicBody(cfg.Spawn, cfg.GroundHeight),
		health: model.NewHealth(cfg.MaxHealth),
	}
}

// AttachAvatar hands over the loaded renderable. Passing nil freezes the controller again.
func (c *Controller) AttachAvatar(a Avatar) {
	c.avatar = a
	if a != nil {
		a.SetTransform(c.body.Position, c.facing)
	}
}

// AttachCamera sets the follow camera and places it behind the player.
func (c *Controller) AttachCamera(rig CameraRig) {
	c.camera = rig
	if rig != nil {
		rig.Snap(c.body.Position, c.yaw, c.pitch)
	}
}

// SetRespawnScheduler sets the scheduler used by the auto respawn policy.
func (c *Controller) SetRespawnScheduler(s RespawnScheduler) {
	c.respawns = s
}

// OnHealthChange registers a listener called after every health change.
func (c *Controller) OnHealthChange(fn HealthListener) {
	c.listeners = append(c.listeners, fn)
}

// Ready reports whether the avatar has been attached.
func (c *Controller) Ready() bool { return c.avatar != nil }

// Position returns the world position of the player's feet.
func (c *Controller) Position() mgl64.Vec3 { return c.body.Position }

// Velocity returns the body velocity.
func (c *Controller) Velocity() mgl64.Vec3 { return c.body.Velocity }

// OnGround reports ground contact.
func (c *Controller) OnGround() bool { return c.body.OnGround }

// Yaw returns the accumulated yaw in radians (unbounded).
func (c *Controller) Yaw() float64 { return c.yaw }

// Pitch returns the pitch in radians, always zero when pitch is disabled.
func (c *Controller) Pitch() float64 { return c.pitch }

// Facing returns the avatar facing angle.
func (c *Controller) Facing() float64 { return c.facing }

// Health returns a copy of the health record.
func (c *Controller) Health() model.Health { return c.health }

// IsDead reports whether the player is dead.
func (c *Controller) IsDead() bool { return c.dead }

// Deaths returns how many times the player has died.
func (c *Controller) Deaths() int { return c.deaths }

// SpawnPoint returns the respawn position.
func (c *Controller) SpawnPoint() mgl64.Vec3 { return c.spawn }

// SetSpawnPoint moves the respawn position. Takes effect on the next respawn.
func (c *Controller) SetSpawnPoint(p mgl64.Vec3) { c.spawn = p }

// Update advances the player by dt seconds.
// No-op while the avatar is not loaded or the player is dead.
func (c *Controller) Update(dt float64, in *model.InputState) {
	if c.avatar == nil || c.dead {
		return
	}

	c.rotate(in.MouseDelta())
	c.move(dt, in)

	if c.cfg.JumpEnabled && c.body.OnGround && in.Pressed(c.cfg.JumpKey) {
		c.body.Launch(c.cfg.JumpForce)
	}
	c.body.Integrate(dt, c.cfg.Gravity)

	c.avatar.SetTransform(c.body.Position, c.facing)
	if c.camera != nil {
		c.camera.Update(c.body.Position, c.yaw, c.pitch)
	}
}

func (c *Controller) rotate(delta mgl64.Vec2) {
	c.yaw -= delta.X() * c.cfg.RotationSensitivity
	if !c.cfg.PitchEnabled {
		return
	}
	c.pitch -= delta.Y() * c.cfg.RotationSensitivity
	c.pitch = mgl64.Clamp(c.pitch, -c.cfg.PitchLimit, c.cfg.PitchLimit)
}

func (c *Controller) move(dt float64, in *model.InputState) {
	var dir mgl64.Vec3
	if in.Pressed(KeyForward) {
		dir[2]--
	}
	if in.Pressed(KeyBack) {
		dir[2]++
	}
	if in.Pressed(KeyLeft) {
		dir[0]--
	}
	if in.Pressed(KeyRight) {
		dir[0]++
	}
	if dir.Len() == 0 {
		return
	}

	dir = model.RotateY(dir.Normalize(), c.yaw)

	speed := c.cfg.Speed
	if c.cfg.SprintKey != "" && in.Pressed(c.cfg.SprintKey) {
		speed *= c.cfg.SprintMultiplier
	}

	c.body.Translate(dir.Mul(speed * dt))
	c.facing = model.Heading(dir)
}

// TakeDamage is the only way other actors change player health.
// Ignored while dead. Health is clamped at zero before the death check.
func (c *Controller) TakeDamage(amount float64, now time.Duration) {
	if c.dead {
		return
	}

	c.health.Damage(amount)
	if c.health.Depleted() {
		c.Die(now)
		return
	}
	c.notify()
}

// Die marks the player dead. With the auto policy a respawn is scheduled
// RespawnDelay after now; with the manual policy the caller must call Respawn.
func (c *Controller) Die(now time.Duration) {
	if c.dead {
		return
	}

	c.dead = true
	c.deaths++
	c.health.Current = 0
	c.notify()

	slog.Info("player died",
		"position", c.body.Position,
		"deaths", c.deaths,
		"policy", c.cfg.RespawnPolicy)

	if c.cfg.RespawnPolicy == config.RespawnAuto && c.respawns != nil {
		c.respawns.Schedule(now + c.cfg.RespawnDelay)
	}
}

// Respawn revives the player at the spawn point with full health.
// Yaw and pitch are kept.
func (c *Controller) Respawn() {
	if c.respawns != nil {
		c.respawns.Cancel()
	}

	c.dead = false
	c.health.Reset()
	c.body.Place(c.spawn)

	if c.avatar != nil {
		c.avatar.SetTransform(c.body.Position, c.facing)
	}
	if c.camera != nil {
		c.camera.Snap(c.body.Position, c.yaw, c.pitch)
	}
	c.notify()

	slog.Info("player respawned", "position", c.body.Position, "health", c.health.Current)
}

func (c *Controller) notify() {
	for _, fn := range c.listeners {
		fn(c.health, c.dead)
	}
}
