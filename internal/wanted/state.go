package wanted

import "log/slog"

// Listener is called after the level changes.
type Listener func(from, to int)

// State is the global wanted level. Pursuers are active only while it is positive.
// The level only rises, except through Reset.
type State struct {
	level     int
	max       int
	listeners []Listener
}

// NewState creates a zero wanted level. maxLevel 0 means unbounded.
func NewState(maxLevel int) *State {
	return &State{max: max(maxLevel, 0)}
}

// Level returns the current level.
func (s *State) Level() int { return s.level }

// Max returns the level cap, 0 when unbounded.
func (s *State) Max() int { return s.max }

// Active reports whether pursuers should chase.
func (s *State) Active() bool { return s.level > 0 }

// OnChange registers a listener.
func (s *State) OnChange(fn Listener) {
	s.listeners = append(s.listeners, fn)
}

// Trigger reports a crime: raises the level to at least one.
func (s *State) Trigger() int {
	if s.level == 0 {
		s.set(1)
	}
	return s.level
}

// AddStar raises the level by one, up to the cap.
func (s *State) AddStar() int {
	if s.max > 0 && s.level >= s.max {
		return s.level
	}
	s.set(s.level + 1)
	return s.level
}

// Reset clears the level. This is the only way down.
func (s *State) Reset() {
	s.set(0)
}

func (s *State) set(level int) {
	if level == s.level {
		return
	}
	from := s.level
	s.level = level

	slog.Info("wanted level changed", "from", from, "to", level, "max", s.max)

	for _, fn := range s.listeners {
		fn(from, level)
	}
}
