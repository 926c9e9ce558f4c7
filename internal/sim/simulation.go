package sim

import (
	"log/slog"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/udisondev/wanted/internal/ai"
	"github.com/udisondev/wanted/internal/camera"
	"github.com/udisondev/wanted/internal/config"
	"github.com/udisondev/wanted/internal/hud"
	"github.com/udisondev/wanted/internal/model"
	"github.com/udisondev/wanted/internal/player"
	"github.com/udisondev/wanted/internal/spawn"
	"github.com/udisondev/wanted/internal/wanted"
	"github.com/udisondev/wanted/internal/world"
)

// Frame is one tick of the frame clock.
type Frame struct {
	DT  float64       // seconds since the previous frame
	Now time.Duration // monotonic time since the clock started
}

// Simulation is the whole per-frame game state. There are no globals:
// everything a step touches hangs off this struct.
//
// Not safe for concurrent use; one goroutine owns it and calls Step once per frame.
type Simulation struct {
	cfg config.Simulation

	input    *model.InputState
	player   *player.Controller
	camera   *camera.Follow
	wanted   *wanted.State
	roster   *world.Roster
	pursuit  *ai.PursuitAI
	respawns *spawn.RespawnScheduler
	spawner  *spawn.PursuerSpawner
	evasion  wanted.EvasionPolicy

	frames uint64
	now    time.Duration
	hits   uint64

	scratch []mgl64.Vec3
}

// Option configures a Simulation.
type Option func(*Simulation)

// WithEvasionPolicy replaces the policy built from config.
func WithEvasionPolicy(p wanted.EvasionPolicy) Option {
	return func(s *Simulation) {
		s.evasion = p
	}
}

// New builds a simulation from cfg. The player stays frozen until AttachAvatar.
func New(cfg config.Simulation, opts ...Option) *Simulation {
	s := &Simulation{
		cfg:      cfg,
		input:    model.NewInputState(),
		player:   player.NewController(cfg.Player),
		camera:   camera.NewFollow(cfg.Camera),
		wanted:   wanted.NewState(cfg.Wanted.MaxLevel),
		roster:   world.NewRoster(),
		pursuit:  ai.NewPursuitAI(cfg.Pursuit),
		respawns: spawn.NewRespawnScheduler(),
	}
	s.spawner = spawn.NewPursuerSpawner(cfg.Spawner, cfg.Player.GroundHeight, s.roster)

	if cfg.Wanted.EvadeAfter > 0 {
		s.evasion = wanted.NewDistanceEvasion(cfg.Wanted.EvadeRadius, cfg.Wanted.EvadeAfter)
	} else {
		s.evasion = wanted.NoEvasion{}
	}

	for _, opt := range opts {
		opt(s)
	}

	s.player.SetRespawnScheduler(s.respawns)
	s.player.AttachCamera(s.camera)
	s.wanted.OnChange(s.onWantedChange)

	return s
}

// Config returns the configuration the simulation was built with.
func (s *Simulation) Config() config.Simulation { return s.cfg }

// Input returns the input state the device collaborator writes into.
func (s *Simulation) Input() *model.InputState { return s.input }

// Player returns the player controller.
func (s *Simulation) Player() *player.Controller { return s.player }

// Camera returns the follow camera.
func (s *Simulation) Camera() *camera.Follow { return s.camera }

// Wanted returns the wanted level.
func (s *Simulation) Wanted() *wanted.State { return s.wanted }

// Pursuers returns the pursuer roster.
func (s *Simulation) Pursuers() *world.Roster { return s.roster }

// Frames returns how many steps have run.
func (s *Simulation) Frames() uint64 { return s.frames }

// Now returns the time of the last step.
func (s *Simulation) Now() time.Duration { return s.now }

// Hits returns the total number of pursuer hits on the player.
func (s *Simulation) Hits() uint64 { return s.hits }

// AttachAvatar hands the loaded player renderable to the controller.
func (s *Simulation) AttachAvatar(a player.Avatar) {
	s.player.AttachAvatar(a)
}

// Step runs one frame: pending respawn, player, pursuers (only while wanted),
// evasion check, then the per-frame mouse delta is cleared.
func (s *Simulation) Step(f Frame) {
	s.now = f.Now

	if s.respawns.Due(f.Now) {
		s.Respawn()
	}

	s.player.Update(f.DT, s.input)

	active := s.wanted.Active()
	s.roster.Each(func(p *ai.Pursuer) bool {
		if s.pursuit.Tick(p, s.player, active, f.DT, f.Now) {
			s.hits++
		}
		return true
	})

	if active && !s.player.IsDead() {
		s.scratch = s.roster.Positions(s.scratch[:0])
		if s.evasion.Evaluate(f.Now, s.player.Position(), s.scratch) {
			slog.Info("player evaded pursuit", "level", s.wanted.Level(), "now", f.Now)
			s.wanted.Reset()
		}
	}

	s.input.ClearMouse()
	s.frames++
}

// TriggerWanted reports a crime. Returns the new level.
func (s *Simulation) TriggerWanted() int {
	return s.wanted.Trigger()
}

// AddWantedStar escalates the wanted level by one. Returns the new level.
func (s *Simulation) AddWantedStar() int {
	return s.wanted.AddStar()
}

// ResetWanted drops the wanted level to zero.
func (s *Simulation) ResetWanted() {
	s.wanted.Reset()
}

// Respawn revives the player now, cancelling any scheduled respawn.
func (s *Simulation) Respawn() {
	s.player.Respawn()
	s.evasion.Reset()
	if s.cfg.Wanted.ResetOnRespawn {
		s.wanted.Reset()
	}
}

// AddPursuer places a pursuer and returns its ID.
func (s *Simulation) AddPursuer(pos mgl64.Vec3) uint32 {
	return s.roster.Add(pos).ID
}

// RemovePursuer removes a pursuer.
func (s *Simulation) RemovePursuer(id uint32) error {
	return s.roster.Remove(id)
}

// Status builds the HUD snapshot for the current state.
func (s *Simulation) Status() hud.Status {
	in := hud.Input{
		Health:   s.player.Health(),
		Dead:     s.player.IsDead(),
		Level:    s.wanted.Level(),
		MaxLevel: s.wanted.Max(),
		Player:   s.player.Position(),
	}
	if at, ok := s.respawns.Pending(); ok && at > s.now {
		in.RespawnIn = at - s.now
	}
	if n := s.roster.Len(); n > 0 {
		in.Pursuers = make([]hud.Mark, 0, n)
		s.roster.Each(func(p *ai.Pursuer) bool {
			in.Pursuers = append(in.Pursuers, hud.Mark{ID: p.ID, Position: p.Position})
			return true
		})
	}
	return hud.Build(s.cfg.HUD, in)
}

func (s *Simulation) onWantedChange(from, to int) {
	if to > from {
		s.evasion.Reset()
	}
	s.spawner.Sync(to, s.player.Position())
}
