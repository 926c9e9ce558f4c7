package spawn

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"

	"github.com/udisondev/wanted/internal/ai"
	"github.com/udisondev/wanted/internal/config"
	"github.com/udisondev/wanted/internal/model"
	"github.com/udisondev/wanted/internal/world"
)

func spawnerConfig() config.Spawner {
	cfg := config.DefaultSimulation().Spawner
	cfg.Enabled = true
	return cfg
}

func TestPursuerSpawner_Quota(t *testing.T) {
	cfg := spawnerConfig()
	cfg.PerLevel = 2
	cfg.MaxPursuers = 7
	s := NewPursuerSpawner(cfg, 0, world.NewRoster())

	tests := []struct {
		level int
		want  int
	}{
		{0, 0}, {-1, 0}, {1, 2}, {3, 6}, {4, 7}, {50, 7},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, s.Quota(tt.level), "level %d", tt.level)
	}
}

func TestPursuerSpawner_SyncPlacesOnRing(t *testing.T) {
	cfg := spawnerConfig()
	cfg.Radius = 40
	roster := world.NewRoster()
	s := NewPursuerSpawner(cfg, 0.5, roster)
	center := mgl64.Vec3{10, 3, -10}

	added := s.Sync(1, center)

	assert.Equal(t, cfg.PerLevel, added)
	assert.Equal(t, cfg.PerLevel, roster.Len())
	roster.Each(func(p *ai.Pursuer) bool {
		assert.InDelta(t, 40, model.PlanarDistance(center, p.Position), 1e-9)
		assert.Equal(t, 0.5, p.Position.Y())
		return true
	})
}

func TestPursuerSpawner_SyncTopsUp(t *testing.T) {
	roster := world.NewRoster()
	s := NewPursuerSpawner(spawnerConfig(), 0, roster)

	s.Sync(1, mgl64.Vec3{})
	s.Sync(1, mgl64.Vec3{})
	assert.Equal(t, 2, roster.Len())

	s.Sync(3, mgl64.Vec3{})
	assert.Equal(t, 6, roster.Len())

	// Lower level never removes.
	s.Sync(1, mgl64.Vec3{})
	assert.Equal(t, 6, roster.Len())
}

func TestPursuerSpawner_Despawn(t *testing.T) {
	cfg := spawnerConfig()

	roster := world.NewRoster()
	s := NewPursuerSpawner(cfg, 0, roster)
	s.Sync(2, mgl64.Vec3{})
	s.Sync(0, mgl64.Vec3{})
	assert.Equal(t, 4, roster.Len(), "pursuers kept without despawn_on_reset")

	cfg.DespawnOnReset = true
	roster = world.NewRoster()
	s = NewPursuerSpawner(cfg, 0, roster)
	s.Sync(2, mgl64.Vec3{})
	s.Sync(0, mgl64.Vec3{})
	assert.Equal(t, 0, roster.Len())
}

func TestPursuerSpawner_Disabled(t *testing.T) {
	cfg := spawnerConfig()
	cfg.Enabled = false
	roster := world.NewRoster()
	s := NewPursuerSpawner(cfg, 0, roster)

	assert.Equal(t, 0, s.Sync(5, mgl64.Vec3{}))
	assert.Equal(t, 0, roster.Len())
}

func TestPursuerSpawner_Deterministic(t *testing.T) {
	positions := func() []mgl64.Vec3 {
		roster := world.NewRoster()
		NewPursuerSpawner(spawnerConfig(), 0, roster).Sync(3, mgl64.Vec3{})
		return roster.Positions(nil)
	}
	assert.Equal(t, positions(), positions())
}
