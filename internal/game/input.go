package game

import "github.com/tiberiumdvk/inf-game/internal/entity"

// Input is the player intent gathered by a frontend for one frame.
type Input struct {
	Left, Right, Up, Down bool
	ToggleDebug           bool
	Quit                  bool
}

// Keys returns the directional part of the input.
func (in Input) Keys() entity.Keys {
	return entity.Keys{Left: in.Left, Right: in.Right, Up: in.Up, Down: in.Down}
}

// Merge combines two inputs, as when several key events arrive in one frame.
func (in Input) Merge(other Input) Input {
	return Input{
		Left:        in.Left || other.Left,
		Right:       in.Right || other.Right,
		Up:          in.Up || other.Up,
		Down:        in.Down || other.Down,
		ToggleDebug: in.ToggleDebug != other.ToggleDebug,
		Quit:        in.Quit || other.Quit,
	}
}
