package model

// Intention represents the AI state of a pursuer.
type Intention int32

const (
	// IntentionIdle - wanted level is zero or the target is dead, no movement and no attacks
	IntentionIdle Intention = iota
	// IntentionPursue - steering toward the player and attacking on contact
	IntentionPursue
)

// String returns human-readable intention name
func (i Intention) String() string {
	switch i {
	case IntentionIdle:
		return "IDLE"
	case IntentionPursue:
		return "PURSUE"
	default:
		return "UNKNOWN"
	}
}
