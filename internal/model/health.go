package model

import "math"

// Health tracks hit points in [0, Max].
type Health struct {
	Current float64
	Max     float64
}

// NewHealth returns full health.
func NewHealth(max float64) Health {
	return Health{Current: max, Max: max}
}

// Damage subtracts amount, clamping at zero. Negative amounts are ignored.
func (h *Health) Damage(amount float64) {
	if amount <= 0 || math.IsNaN(amount) {
		return
	}
	h.Current = max(h.Current-amount, 0)
}

// Reset restores full health.
func (h *Health) Reset() {
	h.Current = h.Max
}

// Fraction returns Current/Max in [0, 1].
func (h *Health) Fraction() float64 {
	if h.Max <= 0 {
		return 0
	}
	return min(max(h.Current/h.Max, 0), 1)
}

// Depleted reports whether no hit points remain.
func (h *Health) Depleted() bool {
	return h.Current <= 0
}
