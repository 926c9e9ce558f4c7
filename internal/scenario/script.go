// Package scenario drives a headless simulation from a YAML script of timed input
// and world events. It stands in for the keyboard, mouse and game logic that would
// otherwise call into the simulation.
package scenario

import (
	"cmp"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"gopkg.in/yaml.v3"

	"github.com/udisondev/wanted/internal/sim"
)

// ErrUnknownAction is returned (wrapped) when a script names an action that does not exist.
var ErrUnknownAction = errors.New("unknown scenario action")

// Actions understood by Script.
const (
	ActionPress       = "press"
	ActionRelease     = "release"
	ActionReleaseAll  = "release_all"
	ActionMouse       = "mouse"
	ActionLock        = "lock"
	ActionUnlock      = "unlock"
	ActionCrime       = "crime"
	ActionStar        = "star"
	ActionResetWanted = "reset_wanted"
	ActionPursuer     = "pursuer"
	ActionRespawn     = "respawn"
)

// Event is one scripted action at a simulation time.
type Event struct {
	At     time.Duration `yaml:"at"`
	Action string        `yaml:"action"`

	Key      string     `yaml:"key,omitempty"`      // press, release
	DX       float64    `yaml:"dx,omitempty"`       // mouse
	DY       float64    `yaml:"dy,omitempty"`       // mouse
	Position mgl64.Vec3 `yaml:"position,omitempty"` // pursuer
}

// Script is a parsed scenario. It implements sim.Driver.
type Script struct {
	Name string `yaml:"name"`

	// Duration ends the run. Zero means the run ends after the last event.
	Duration time.Duration `yaml:"duration"`
	Events   []Event       `yaml:"events"`

	next int
}

var _ sim.Driver = (*Script)(nil)

// Load reads and parses a script file.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario %s: %w", path, err)
	}

	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", path, err)
	}
	return s, nil
}

// Parse decodes a script and orders its events by time.
// Events with the same time keep their file order.
func Parse(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing scenario: %w", err)
	}

	for i, ev := range s.Events {
		if err := ev.validate(); err != nil {
			return nil, fmt.Errorf("event %d: %w", i, err)
		}
	}
	if s.Duration < 0 {
		return nil, fmt.Errorf("negative duration %v", s.Duration)
	}

	slices.SortStableFunc(s.Events, func(a, b Event) int {
		return cmp.Compare(a.At, b.At)
	})
	return &s, nil
}

func (e Event) validate() error {
	if e.At < 0 {
		return fmt.Errorf("negative time %v", e.At)
	}
	switch e.Action {
	case ActionPress, ActionRelease:
		if e.Key == "" {
			return fmt.Errorf("%s: key is required", e.Action)
		}
	case ActionReleaseAll, ActionMouse, ActionLock, ActionUnlock,
		ActionCrime, ActionStar, ActionResetWanted, ActionPursuer, ActionRespawn:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownAction, e.Action)
	}
	return nil
}

// Remaining returns how many events have not been applied yet.
func (s *Script) Remaining() int {
	return len(s.Events) - s.next
}

// Rewind makes the script replay from the first event.
func (s *Script) Rewind() {
	s.next = 0
}

// Drive applies every event due at now and reports whether the run should continue.
func (s *Script) Drive(now time.Duration, target *sim.Simulation) bool {
	for s.next < len(s.Events) && s.Events[s.next].At <= now {
		s.apply(s.Events[s.next], target)
		s.next++
	}

	if s.Duration > 0 {
		return now < s.Duration
	}
	return s.next < len(s.Events)
}

func (s *Script) apply(ev Event, target *sim.Simulation) {
	in := target.Input()

	switch ev.Action {
	case ActionPress:
		in.Press(ev.Key)
	case ActionRelease:
		in.Release(ev.Key)
	case ActionReleaseAll:
		in.ReleaseAll()
	case ActionMouse:
		in.MoveMouse(ev.DX, ev.DY)
	case ActionLock:
		in.SetLocked(true)
	case ActionUnlock:
		in.SetLocked(false)
	case ActionCrime:
		target.TriggerWanted()
	case ActionStar:
		target.AddWantedStar()
	case ActionResetWanted:
		target.ResetWanted()
	case ActionPursuer:
		id := target.AddPursuer(ev.Position)
		slog.Debug("scripted pursuer", "id", id, "position", ev.Position)
	case ActionRespawn:
		target.Respawn()
	}
}
