// Package quota models the server-enforced daily generation quota as seen
// by the client. The client never decrements the quota locally; state is
// replaced wholesale by each fetch.
package quota

import "time"

// DefaultWarnThreshold is the remaining count at or below which the
// banner switches to warning styling.
const DefaultWarnThreshold = 5

// State is the quota snapshot returned by the server.
type State struct {
	Remaining int
	Total     int
	NextReset time.Time
}

// Clamp enforces Remaining ∈ [0, Total] on a decoded state. The total is
// optional in quota payloads; when it is absent or lower than Remaining,
// Total is raised so a missing total never reads as exhausted.
func (s State) Clamp() State {
	if s.Total < 0 {
		s.Total = 0
	}
	if s.Remaining < 0 {
		s.Remaining = 0
	}
	if s.Total < s.Remaining {
		s.Total = s.Remaining
	}
	return s
}

// Exhausted reports whether no generations remain.
func (s State) Exhausted() bool {
	return s.Remaining <= 0
}

// Level classifies banner styling for the quota display.
type Level int

const (
	LevelNeutral Level = iota
	LevelWarning
	LevelExhausted
)

// LevelFor returns the banner level for a remaining count. threshold is the
// warning boundary; values at or below it (but above zero) warn.
func LevelFor(remaining, threshold int) Level {
	switch {
	case remaining <= 0:
		return LevelExhausted
	case remaining <= threshold:
		return LevelWarning
	default:
		return LevelNeutral
	}
}
