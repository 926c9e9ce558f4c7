package spawn

import (
	"log/slog"
	"math"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/udisondev/wanted/internal/config"
	"github.com/udisondev/wanted/internal/world"
)

// PursuerSpawner keeps the roster sized to the wanted level.
// New pursuers appear on a ring around the player; they are never removed
// on the way up, and only removed on reset when DespawnOnReset is set.
type PursuerSpawner struct {
	cfg    config.Spawner
	ground float64
	roster *world.Roster
	rng    *rand.Rand
}

// NewPursuerSpawner creates a spawner. Pursuers are placed at ground height.
func NewPursuerSpawner(cfg config.Spawner, ground float64, roster *world.Roster) *PursuerSpawner {
	return &PursuerSpawner{
		cfg:    cfg,
		ground: ground,
		roster: roster,
		rng:    rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15)),
	}
}

// Quota returns how many pursuers the given level calls for.
func (s *PursuerSpawner) Quota(level int) int {
	if !s.cfg.Enabled || level <= 0 {
		return 0
	}
	return min(level*s.cfg.PerLevel, s.cfg.MaxPursuers)
}

// Sync tops the roster up to the quota for level around center and returns how many were added.
// Level zero despawns everyone when DespawnOnReset is set.
func (s *PursuerSpawner) Sync(level int, center mgl64.Vec3) int {
	if !s.cfg.Enabled {
		return 0
	}

	if level <= 0 {
		if s.cfg.DespawnOnReset && s.roster.Len() > 0 {
			slog.Info("pursuers despawned", "count", s.roster.Len())
			s.roster.Reset()
		}
		return 0
	}

	n := s.Quota(level) - s.roster.Len()
	if n <= 0 {
		return 0
	}

	base := s.rng.Float64() * 2 * math.Pi
	for i := range n {
		angle := base + 2*math.Pi*float64(i)/float64(n)
		if s.cfg.Jitter > 0 {
			angle += (s.rng.Float64()*2 - 1) * s.cfg.Jitter
		}
		pos := mgl64.Vec3{
			center.X() + math.Sin(angle)*s.cfg.Radius,
			s.ground,
			center.Z() + math.Cos(angle)*s.cfg.Radius,
		}
		s.roster.Add(pos)
	}

	slog.Info("pursuers spawned",
		"count", n,
		"level", level,
		"total", s.roster.Len())
	return n
}
