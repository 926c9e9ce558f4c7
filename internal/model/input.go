package model

import (
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

// InputState is the frame-scoped view of the device: held keys and the mouse
// movement accumulated since the last ClearMouse.
//
// Keys are stored lower-cased. Mouse movement only counts while the pointer is locked.
type InputState struct {
	keys   map[string]bool
	mouse  mgl64.Vec2
	locked bool
}

// NewInputState creates an empty input state.
func NewInputState() *InputState {
	return &InputState{keys: make(map[string]bool)}
}

// Press marks key as held.
func (s *InputState) Press(key string) {
	s.keys[strings.ToLower(key)] = true
}

// Release marks key as not held.
func (s *InputState) Release(key string) {
	delete(s.keys, strings.ToLower(key))
}

// Pressed reports whether key is held. Unknown keys are not held.
func (s *InputState) Pressed(key string) bool {
	return s.keys[strings.ToLower(key)]
}

// ReleaseAll drops every held key (focus loss).
func (s *InputState) ReleaseAll() {
	clear(s.keys)
}

// SetLocked toggles pointer lock. Unlocking discards pending mouse movement.
func (s *InputState) SetLocked(locked bool) {
	s.locked = locked
	if !locked {
		s.mouse = mgl64.Vec2{}
	}
}

// Locked reports whether the pointer is locked.
func (s *InputState) Locked() bool {
	return s.locked
}

// MoveMouse records relative pointer movement. Events within one frame add up.
// Ignored while the pointer is not locked.
func (s *InputState) MoveMouse(dx, dy float64) {
	if !s.locked {
		return
	}
	s.mouse = s.mouse.Add(mgl64.Vec2{dx, dy})
}

// MouseDelta returns the movement since the last ClearMouse.
func (s *InputState) MouseDelta() mgl64.Vec2 {
	return s.mouse
}

// ClearMouse zeroes the per-frame mouse delta. Called once at the end of every step.
func (s *InputState) ClearMouse() {
	s.mouse = mgl64.Vec2{}
}
