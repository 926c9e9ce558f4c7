package testutil

import (
	"time"

	"github.com/udisondev/wanted/internal/config"
)

// Config returns the default simulation config with the spawner disabled,
// so tests control every pursuer explicitly.
func Config() config.Simulation {
	cfg := config.DefaultSimulation()
	cfg.Spawner.Enabled = false
	return cfg
}

// Millis converts milliseconds to a simulation timestamp.
func Millis(ms int64) time.Duration {
	return time.Duration(ms) * time.Millisecond
}

// Seconds converts fractional seconds to a simulation timestamp.
func Seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
