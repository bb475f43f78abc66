// Package entity provides game entities like the player.
package entity

// Facing is the direction the player last moved or tried to move.
type Facing int

const (
	FacingDown Facing = iota
	FacingUp
	FacingLeft
	FacingRight
)

// String returns a human-readable facing name.
func (f Facing) String() string {
	switch f {
	case FacingUp:
		return "up"
	case FacingLeft:
		return "left"
	case FacingRight:
		return "right"
	default:
		return "down"
	}
}

// DefaultStepFrames is how many frames a held key waits between steps.
const DefaultStepFrames = 6

// Keys is the directional input for one frame.
type Keys struct {
	Left, Right, Up, Down bool
}

// Any returns true if a direction is held.
func (k Keys) Any() bool {
	return k.Left || k.Right || k.Up || k.Down
}

// Terrain reports whether a tile blocks movement.
type Terrain interface {
	Collides(x, y int) bool
}

// Player is the character walking the dungeon, one tile at a time.
type Player struct {
	X, Y   int  // Current position in tiles
	Symbol rune // Display symbol in the terminal
	Facing Facing

	// StepFrames is the number of Update calls to wait between two steps
	// while a key stays held. Zero moves on every call.
	StepFrames int

	cooldown int
	frozen   bool
}

// NewPlayer creates a new player at the given position.
func NewPlayer(x, y int) *Player {
	return &Player{
		X:          x,
		Y:          y,
		Symbol:     '@',
		Facing:     FacingDown,
		StepFrames: DefaultStepFrames,
	}
}

// Position returns the current x, y coordinates.
func (p *Player) Position() (int, int) {
	return p.X, p.Y
}

// Freeze stops all further movement.
func (p *Player) Freeze() {
	p.frozen = true
}

// Frozen returns true once Freeze has been called.
func (p *Player) Frozen() bool {
	return p.frozen
}

// Update moves the player one tile in the held direction if the terrain allows.
// Left and right win over up and down when picking the facing. A blocked
// diagonal step slides along whichever axis is open.
// Returns true if the position changed.
func (p *Player) Update(keys Keys, terrain Terrain) bool {
	if p.frozen {
		return false
	}
	if !keys.Any() {
		p.cooldown = 0
		return false
	}

	switch {
	case keys.Left:
		p.Facing = FacingLeft
	case keys.Right:
		p.Facing = FacingRight
	case keys.Down:
		p.Facing = FacingDown
	case keys.Up:
		p.Facing = FacingUp
	}

	if p.cooldown > 0 {
		p.cooldown--
		return false
	}

	dx, dy := 0, 0
	if keys.Left {
		dx = -1
	} else if keys.Right {
		dx = 1
	}
	if keys.Up {
		dy = -1
	} else if keys.Down {
		dy = 1
	}

	moved := p.tryMove(dx, dy, terrain)
	if !moved && dx != 0 && dy != 0 {
		moved = p.tryMove(dx, 0, terrain) || p.tryMove(0, dy, terrain)
	}
	if moved {
		p.cooldown = p.StepFrames
	}
	return moved
}

func (p *Player) tryMove(dx, dy int, terrain Terrain) bool {
	// Touching the terrain may freeze the player mid-update.
	if p.frozen || (dx == 0 && dy == 0) {
		return false
	}
	if terrain.Collides(p.X+dx, p.Y+dy) {
		return false
	}
	p.X += dx
	p.Y += dy
	return true
}
