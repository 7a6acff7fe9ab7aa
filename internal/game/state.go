// Package game provides the main game loop and state management.
package game

// State represents the current game state.
type State int

const (
	// StateExplore is the default exploration mode where the party moves as one unit.
	StateExplore State = iota
	// StateDead is entered when the party's HP reaches zero.
	StateDead
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateExplore:
		return "explore"
	case StateDead:
		return "dead"
	default:
		return "unknown"
	}
}
