package hud

import (
	"math"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/udisondev/wanted/internal/config"
	"github.com/udisondev/wanted/internal/model"
)

// Health text colours.
const (
	ColorHealthy  = "#2b9e2b"
	ColorCritical = "#ff0000"
)

// Mark is one pursuer as seen by the display.
type Mark struct {
	ID       uint32
	Position mgl64.Vec3
}

// Input is the simulation state the status is built from.
type Input struct {
	Health    model.Health
	Dead      bool
	Level     int
	MaxLevel  int
	Player    mgl64.Vec3
	Pursuers  []Mark
	RespawnIn time.Duration // zero when no respawn is pending
}

// Blip is a pursuer on the minimap, in minimap pixels.
type Blip struct {
	ID      uint32
	Point   mgl64.Vec2
	Clipped bool // pinned to the rim because the pursuer is out of range
}

// Status is everything the HUD collaborator draws. It holds no references into the simulation.
type Status struct {
	Health      int
	MaxHealth   int
	HealthColor string
	Dead        bool
	RespawnIn   time.Duration

	Stars    int
	MaxStars int // zero when unbounded

	Player mgl64.Vec2
	Blips  []Blip
}

// Build derives the display status.
func Build(cfg config.HUD, in Input) Status {
	color := ColorHealthy
	if in.Health.Fraction() < cfg.LowHealthFraction {
		color = ColorCritical
	}

	st := Status{
		Health:      int(math.Ceil(in.Health.Current)),
		MaxHealth:   int(math.Ceil(in.Health.Max)),
		HealthColor: color,
		Dead:        in.Dead,
		RespawnIn:   in.RespawnIn,
		Stars:       in.Level,
		MaxStars:    in.MaxLevel,
		Player:      cfg.MinimapCenter,
	}

	if len(in.Pursuers) > 0 {
		st.Blips = make([]Blip, 0, len(in.Pursuers))
	}
	for _, m := range in.Pursuers {
		point, clipped := Project(cfg, in.Player, m.Position)
		st.Blips = append(st.Blips, Blip{ID: m.ID, Point: point, Clipped: clipped})
	}
	return st
}

// Project maps a world position onto the minimap, relative to the player.
// Points beyond MinimapRadius are pinned to the rim.
func Project(cfg config.HUD, player, pos mgl64.Vec3) (mgl64.Vec2, bool) {
	rel := model.GroundPoint(pos.Sub(player)).Mul(cfg.MinimapScale)

	clipped := false
	if cfg.MinimapRadius > 0 {
		if l := rel.Len(); l > cfg.MinimapRadius {
			rel = rel.Mul(cfg.MinimapRadius / l)
			clipped = true
		}
	}
	return cfg.MinimapCenter.Add(rel), clipped
}
