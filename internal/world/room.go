package world

// Door is a connection point on a room's perimeter, relative to the room's origin.
type Door struct {
	X, Y int
}

// Room represents a rectangular room in the dungeon, walls included.
// Rooms are immutable once the dungeon has been generated.
type Room struct {
	X, Y          int // Top-left corner position
	Width, Height int // Dimensions of the room

	Left, Right      int // Column of the left and right walls
	Top, Bottom      int // Row of the top and bottom walls
	CenterX, CenterY int

	doors []Door
}

// NewRoom creates a room at (x, y) with the given dimensions and doors.
func NewRoom(x, y, width, height int, doors ...Door) *Room {
	return &Room{
		X:       x,
		Y:       y,
		Width:   width,
		Height:  height,
		Left:    x,
		Right:   x + width - 1,
		Top:     y,
		Bottom:  y + height - 1,
		CenterX: x + width/2,
		CenterY: y + height/2,
		doors:   doors,
	}
}

// Doors returns the room's door locations.
func (r *Room) Doors() []Door {
	out := make([]Door, len(r.doors))
	copy(out, r.doors)
	return out
}

func (r *Room) addDoor(d Door) {
	r.doors = append(r.doors, d)
}

// Center returns the center coordinates of the room.
func (r *Room) Center() (int, int) {
	return r.CenterX, r.CenterY
}

// Contains returns true if the given point is inside the room, walls included.
func (r *Room) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Intersects returns true if this room overlaps with another room.
func (r *Room) Intersects(other *Room) bool {
	return rectsOverlap(r.X, r.Y, r.Width, r.Height, other.X, other.Y, other.Width, other.Height)
}

// Interior returns the floor rectangle inside the walls.
func (r *Room) Interior() (x, y, width, height int) {
	return r.X + 1, r.Y + 1, r.Width - 2, r.Height - 2
}

func rectsOverlap(ax, ay, aw, ah, bx, by, bw, bh int) bool {
	return ax < bx+bw &&
		ax+aw > bx &&
		ay < by+bh &&
		ay+ah > by
}
