package ai

import (
	"log/slog"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/udisondev/wanted/internal/config"
	"github.com/udisondev/wanted/internal/model"
)

// Target is what pursuers chase. TakeDamage is the only write channel into it.
type Target interface {
	Position() mgl64.Vec3
	IsDead() bool
	TakeDamage(amount float64, now time.Duration)
}

// PursuitAI steers pursuers toward the target and applies contact damage.
// State machine: IDLE (wanted level zero or target dead) ↔ PURSUE.
type PursuitAI struct {
	cfg config.Pursuit
}

// NewPursuitAI creates the pursuit AI.
func NewPursuitAI(cfg config.Pursuit) *PursuitAI {
	return &PursuitAI{cfg: cfg}
}

// Config returns the pursuit tuning.
func (ai *PursuitAI) Config() config.Pursuit { return ai.cfg }

// Tick advances one pursuer by dt seconds. It reports whether damage was dealt.
//
// active is the global wanted gate. While inactive, or while the target is dead,
// the pursuer neither moves nor attacks.
func (ai *PursuitAI) Tick(p *Pursuer, target Target, active bool, dt float64, now time.Duration) bool {
	if !active || target.IsDead() {
		ai.setIntention(p, model.IntentionIdle)
		return false
	}
	ai.setIntention(p, model.IntentionPursue)

	goal := target.Position()
	ai.steer(p, goal, dt)

	dist := p.Position.Sub(goal).Len()
	if dist >= ai.cfg.AttackRange || !p.LastHit.Elapsed(now, ai.cfg.Cooldown) {
		return false
	}

	p.LastHit = model.StampAt(now)
	p.Hits++
	target.TakeDamage(ai.cfg.Damage, now)

	if IsDebugEnabled() {
		slog.Debug("pursuer hit player",
			"pursuer", p.ID,
			"damage", ai.cfg.Damage,
			"distance", dist,
			"now", now)
	}
	return true
}

// steer moves the pursuer along the ground toward goal, stopping on it rather than overshooting.
// Within MinDistance the direction is undefined, so the pursuer holds position and heading.
func (ai *PursuitAI) steer(p *Pursuer, goal mgl64.Vec3, dt float64) {
	delta := model.Planar(goal.Sub(p.Position))
	dist := delta.Len()
	if dist < ai.cfg.MinDistance {
		return
	}

	dir := delta.Mul(1 / dist)
	p.Heading = model.Heading(dir)

	step := min(ai.cfg.Speed*dt, dist)
	if step <= 0 {
		return
	}
	next := p.Position.Add(dir.Mul(step))
	if !model.Finite(next) {
		return
	}
	p.Position = next
}

func (ai *PursuitAI) setIntention(p *Pursuer, intention model.Intention) {
	if p.Intention == intention {
		return
	}
	old := p.Intention
	p.Intention = intention

	if IsDebugEnabled() {
		slog.Debug("pursuer intention changed",
			"pursuer", p.ID,
			"from", old,
			"to", intention)
	}
}
