package ai

import "sync/atomic"

// traceEnabled gates per-pursuer, per-frame debug logs.
// A frame can tick dozens of pursuers, so the check has to be cheaper than a slog level lookup.
var traceEnabled atomic.Bool

// EnableDebugLogging turns per-tick pursuit logging on or off.
// Called once from main after the log level is known.
func EnableDebugLogging(enabled bool) {
	traceEnabled.Store(enabled)
}

// IsDebugEnabled reports whether per-tick pursuit logging is on.
func IsDebugEnabled() bool {
	return traceEnabled.Load()
}
