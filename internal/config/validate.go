package config

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalid is returned (wrapped) for configuration values the simulation cannot run with.
var ErrInvalid = errors.New("invalid config")

func invalid(field string, v any) error {
	return fmt.Errorf("%w: %s = %v", ErrInvalid, field, v)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Validate checks value ranges. The numeric spreads between game variants
// (speed, gravity, attack range, cooldown, damage) are all accepted.
func (c Simulation) Validate() error {
	if c.Loop.FrameRate <= 0 {
		return invalid("loop.frame_rate", c.Loop.FrameRate)
	}
	if c.Loop.MaxFrameDelta <= 0 {
		return invalid("loop.max_frame_delta", c.Loop.MaxFrameDelta)
	}

	p := c.Player
	if !finite(p.MaxHealth) || p.MaxHealth <= 0 {
		return invalid("player.max_health", p.MaxHealth)
	}
	if !finite(p.Speed) || p.Speed < 0 {
		return invalid("player.speed", p.Speed)
	}
	if !finite(p.SprintMultiplier) || p.SprintMultiplier <= 0 {
		return invalid("player.sprint_multiplier", p.SprintMultiplier)
	}
	if !finite(p.Gravity) || p.Gravity >= 0 {
		return invalid("player.gravity", p.Gravity)
	}
	if p.PitchEnabled && (p.PitchLimit <= 0 || p.PitchLimit > math.Pi/2) {
		return invalid("player.pitch_limit", p.PitchLimit)
	}
	if p.JumpEnabled && p.JumpForce <= 0 {
		return invalid("player.jump_force", p.JumpForce)
	}
	switch p.RespawnPolicy {
	case RespawnAuto:
		if p.RespawnDelay < 0 {
			return invalid("player.respawn_delay", p.RespawnDelay)
		}
	case RespawnManual:
	default:
		return invalid("player.respawn_policy", p.RespawnPolicy)
	}

	if c.Camera.Smoothing <= 0 || c.Camera.Smoothing > 1 {
		return invalid("camera.smoothing", c.Camera.Smoothing)
	}

	if c.Wanted.MaxLevel < 0 {
		return invalid("wanted.max_level", c.Wanted.MaxLevel)
	}
	if c.Wanted.EvadeAfter < 0 {
		return invalid("wanted.evade_after", c.Wanted.EvadeAfter)
	}
	if c.Wanted.EvadeAfter > 0 && c.Wanted.EvadeRadius <= 0 {
		return invalid("wanted.evade_radius", c.Wanted.EvadeRadius)
	}

	q := c.Pursuit
	if !finite(q.Speed) || q.Speed < 0 {
		return invalid("pursuit.speed", q.Speed)
	}
	if !finite(q.AttackRange) || q.AttackRange <= 0 {
		return invalid("pursuit.attack_range", q.AttackRange)
	}
	if !finite(q.Damage) || q.Damage < 0 {
		return invalid("pursuit.damage", q.Damage)
	}
	if q.Cooldown < 0 {
		return invalid("pursuit.cooldown", q.Cooldown)
	}
	if q.MinDistance <= 0 {
		return invalid("pursuit.min_distance", q.MinDistance)
	}

	s := c.Spawner
	if s.Enabled {
		if s.PerLevel <= 0 {
			return invalid("spawner.per_level", s.PerLevel)
		}
		if s.MaxPursuers <= 0 {
			return invalid("spawner.max_pursuers", s.MaxPursuers)
		}
		if s.Radius <= 0 {
			return invalid("spawner.radius", s.Radius)
		}
	}

	if c.HUD.LowHealthFraction < 0 || c.HUD.LowHealthFraction > 1 {
		return invalid("hud.low_health_fraction", c.HUD.LowHealthFraction)
	}
	if c.HUD.MinimapScale <= 0 {
		return invalid("hud.minimap_scale", c.HUD.MinimapScale)
	}

	return nil
}
