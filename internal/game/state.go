// Package game provides the main game loop and state management.
package game

// State represents the current game state.
type State int

const (
	// StatePlaying accepts movement input until the goal tile is reached.
	StatePlaying State = iota
	// StateWon waits for the player to continue to the next level.
	StateWon
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateWon:
		return "won"
	default:
		return "unknown"
	}
}
