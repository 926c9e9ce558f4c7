package config

import (
	"fmt"
	"math"
	"os"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"gopkg.in/yaml.v3"
)

// Respawn policies for the player after death.
const (
	RespawnAuto   = "auto"   // respawn after RespawnDelay
	RespawnManual = "manual" // wait for an explicit Respawn call
)

// Simulation holds all configuration for the simulation core and its runner.
type Simulation struct {
	LogLevel string `yaml:"log_level"`

	Loop    Loop    `yaml:"loop"`
	Player  Player  `yaml:"player"`
	Camera  Camera  `yaml:"camera"`
	Wanted  Wanted  `yaml:"wanted"`
	Pursuit Pursuit `yaml:"pursuit"`
	Spawner Spawner `yaml:"spawner"`
	HUD     HUD     `yaml:"hud"`
}

// Loop configures the frame clock.
type Loop struct {
	FrameRate     int           `yaml:"frame_rate"`      // frames per second
	MaxFrameDelta time.Duration `yaml:"max_frame_delta"` // longer gaps (paused clock) are clamped to this
}

// Player configures the player controller.
type Player struct {
	Spawn        mgl64.Vec3 `yaml:"spawn"`
	GroundHeight float64    `yaml:"ground_height"`
	MaxHealth    float64    `yaml:"max_health"`

	Speed               float64 `yaml:"speed"` // units/s
	SprintMultiplier    float64 `yaml:"sprint_multiplier"`
	SprintKey           string  `yaml:"sprint_key"`
	RotationSensitivity float64 `yaml:"rotation_sensitivity"` // radians per mouse unit

	PitchEnabled bool    `yaml:"pitch_enabled"`
	PitchLimit   float64 `yaml:"pitch_limit"` // radians, symmetric

	JumpEnabled bool    `yaml:"jump_enabled"`
	JumpKey     string  `yaml:"jump_key"`
	JumpForce   float64 `yaml:"jump_force"`
	Gravity     float64 `yaml:"gravity"` // units/s², negative

	RespawnPolicy string        `yaml:"respawn_policy"`
	RespawnDelay  time.Duration `yaml:"respawn_delay"`
}

// Camera configures the follow camera.
type Camera struct {
	Offset     mgl64.Vec3 `yaml:"offset"`      // behind-and-above, before yaw rotation
	LookHeight float64    `yaml:"look_height"` // look-at point above the player's feet
	Smoothing  float64    `yaml:"smoothing"`   // lerp factor per frame, (0, 1]
	UsePitch   bool       `yaml:"use_pitch"`
}

// Wanted configures the wanted level and the evasion hook.
type Wanted struct {
	MaxLevel       int  `yaml:"max_level"` // 0 = unbounded
	ResetOnRespawn bool `yaml:"reset_on_respawn"`

	// Evasion is disabled while EvadeAfter is zero.
	EvadeRadius float64       `yaml:"evade_radius"`
	EvadeAfter  time.Duration `yaml:"evade_after"`
}

// Pursuit configures pursuer steering and contact damage.
type Pursuit struct {
	Speed       float64       `yaml:"speed"`        // units/s
	AttackRange float64       `yaml:"attack_range"` // units
	Damage      float64       `yaml:"damage"`
	Cooldown    time.Duration `yaml:"cooldown"`     // per pursuer
	MinDistance float64       `yaml:"min_distance"` // below this the pursuer does not steer
}

// Spawner configures the pursuer spawner reacting to wanted level changes.
type Spawner struct {
	Enabled        bool    `yaml:"enabled"`
	PerLevel       int     `yaml:"per_level"`
	MaxPursuers    int     `yaml:"max_pursuers"`
	Radius         float64 `yaml:"radius"`
	Jitter         float64 `yaml:"jitter"` // radians of random angular offset
	Seed           uint64  `yaml:"seed"`
	DespawnOnReset bool    `yaml:"despawn_on_reset"`
}

// HUD configures the status snapshot exposed to display collaborators.
type HUD struct {
	LowHealthFraction float64    `yaml:"low_health_fraction"`
	MinimapScale      float64    `yaml:"minimap_scale"`  // pixels per world unit
	MinimapRadius     float64    `yaml:"minimap_radius"` // pixels
	MinimapCenter     mgl64.Vec2 `yaml:"minimap_center"`
}

// DefaultSimulation returns Simulation config with sensible defaults.
func DefaultSimulation() Simulation {
	return Simulation{
		LogLevel: "info",
		Loop: Loop{
			FrameRate:     60,
			MaxFrameDelta: 250 * time.Millisecond,
		},
		Player: Player{
			Spawn:               mgl64.Vec3{0, 1, 0},
			GroundHeight:        0,
			MaxHealth:           100,
			Speed:               10,
			SprintMultiplier:    2,
			SprintKey:           "shift",
			RotationSensitivity: 0.002,
			PitchEnabled:        false,
			PitchLimit:          math.Pi / 3,
			JumpEnabled:         true,
			JumpKey:             " ",
			JumpForce:           12,
			Gravity:             -30,
			RespawnPolicy:       RespawnAuto,
			RespawnDelay:        3 * time.Second,
		},
		Camera: Camera{
			Offset:     mgl64.Vec3{0, 3, 6},
			LookHeight: 1.5,
			Smoothing:  0.1,
		},
		Wanted: Wanted{
			MaxLevel:    5,
			EvadeRadius: 60,
		},
		Pursuit: Pursuit{
			Speed:       9,
			AttackRange: 2.5,
			Damage:      20,
			Cooldown:    1000 * time.Millisecond,
			MinDistance: 1e-6,
		},
		Spawner: Spawner{
			Enabled:     true,
			PerLevel:    2,
			MaxPursuers: 10,
			Radius:      40,
			Jitter:      0.3,
			Seed:        1,
		},
		HUD: HUD{
			LowHealthFraction: 0.3,
			MinimapScale:      1.5,
			MinimapRadius:     75,
			MinimapCenter:     mgl64.Vec2{75, 75},
		},
	}
}

// LoadSimulation loads simulation config from a YAML file.
// If the file doesn't exist, returns defaults.
func LoadSimulation(path string) (Simulation, error) {
	cfg := DefaultSimulation()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

// FrameInterval returns the wall-clock interval between frames.
func (l Loop) FrameInterval() time.Duration {
	if l.FrameRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(l.FrameRate)
}
