// Package game provides the level scene and the terminal game loop.
package game

// State represents the current game state.
type State int

const (
	// StateExplore is the default mode where the player walks the level.
	StateExplore State = iota
	// StateDescending runs the fade after the stairs were reached; input is ignored.
	StateDescending
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateExplore:
		return "explore"
	case StateDescending:
		return "descending"
	default:
		return "unknown"
	}
}
