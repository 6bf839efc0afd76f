// Package game provides the main loop, tick scheduling and input handling.
package game

// State represents the current top-level game state. It only ever moves
// forward: Loading until the asset gate opens, then InGame.
type State int

const (
	// StateLoading waits on startup assets before the map may be generated.
	StateLoading State = iota
	// StateInGame runs the simulation and accepts movement input.
	StateInGame
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateInGame:
		return "in_game"
	default:
		return "unknown"
	}
}
