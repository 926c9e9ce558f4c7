package model

import "time"

// Timestamp is an optional point on the simulation clock.
// The zero value means "never".
type Timestamp struct {
	at    time.Duration
	valid bool
}

// StampAt returns a Timestamp set to now.
func StampAt(now time.Duration) Timestamp {
	return Timestamp{at: now, valid: true}
}

// Valid reports whether the timestamp has been set.
func (t Timestamp) Valid() bool {
	return t.valid
}

// Time returns the stored time and whether it is set.
func (t Timestamp) Time() (time.Duration, bool) {
	return t.at, t.valid
}

// Elapsed reports whether at least d has passed between t and now.
// An unset timestamp has always elapsed.
func (t Timestamp) Elapsed(now, d time.Duration) bool {
	if !t.valid {
		return true
	}
	return now-t.at >= d
}
