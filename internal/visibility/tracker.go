// Package visibility implements the fog of war: one lit room at a time,
// previously visited rooms dimmed.
package visibility

import (
	"github.com/tiberiumdvk/inf-game/internal/tilemap"
	"github.com/tiberiumdvk/inf-game/internal/world"
)

// Shadow alpha values. Tiles never lit keep the layer default of 1.
const (
	Lit    = 0.0
	Dimmed = 0.5
)

// Shadow is the layer whose tile alpha hides the map. *tilemap.Layer satisfies it.
type Shadow interface {
	ForEachTileIn(x, y, w, h int, fn func(t *tilemap.Tile))
}

// Tracker lights the room the player stands in. The zero active room means
// nothing is lit yet.
type Tracker struct {
	shadow Shadow
	active *world.Room
}

// NewTracker creates a tracker with no active room.
func NewTracker(shadow Shadow) *Tracker {
	return &Tracker{shadow: shadow}
}

// Active returns the lit room, or nil.
func (t *Tracker) Active() *world.Room {
	return t.active
}

// SetActiveRoom lights room and dims the previously lit one. Passing the
// current room again does nothing. A nil room dims the previous room without
// lighting anything. Returns true if the active room changed.
func (t *Tracker) SetActiveRoom(room *world.Room) bool {
	if room == t.active {
		return false
	}
	if room != nil {
		t.setAlpha(room, Lit)
	}
	if t.active != nil {
		t.setAlpha(t.active, Dimmed)
	}
	t.active = room
	return true
}

func (t *Tracker) setAlpha(room *world.Room, alpha float64) {
	t.shadow.ForEachTileIn(room.X, room.Y, room.Width, room.Height, func(tile *tilemap.Tile) {
		tile.Alpha = alpha
	})
}
