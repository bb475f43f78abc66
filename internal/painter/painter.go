// Package painter turns room and door geometry into tile writes.
package painter

import (
	"github.com/tiberiumdvk/inf-game/internal/tilemap"
	"github.com/tiberiumdvk/inf-game/internal/tiles"
	"github.com/tiberiumdvk/inf-game/internal/world"
)

// Grid is the tile surface rooms are painted onto. *tilemap.Layer satisfies it.
type Grid interface {
	PutTileAt(index, x, y int)
	PutTilesAt(pattern [][]int, x, y int)
	WeightedRandomize(x, y, w, h int, weights []tilemap.WeightedIndex, rng tilemap.Source)
}

// Edge is the side of a room a door sits on.
type Edge int

const (
	EdgeNone Edge = iota
	EdgeTop
	EdgeBottom
	EdgeLeft
	EdgeRight
)

func (e Edge) String() string {
	switch e {
	case EdgeTop:
		return "top"
	case EdgeBottom:
		return "bottom"
	case EdgeLeft:
		return "left"
	case EdgeRight:
		return "right"
	default:
		return "none"
	}
}

// ClassifyDoor returns the edge a door lies on. Edges are checked top, bottom,
// left, right and the first match wins.
func ClassifyDoor(room *world.Room, d world.Door) Edge {
	switch {
	case d.Y == 0:
		return EdgeTop
	case d.Y == room.Height-1:
		return EdgeBottom
	case d.X == 0:
		return EdgeLeft
	case d.X == room.Width-1:
		return EdgeRight
	default:
		return EdgeNone
	}
}

// PaintRoom writes the floor, corners, walls and door openings of a room.
// Later steps overwrite earlier ones, so doors always replace wall tiles.
func PaintRoom(g Grid, room *world.Room, p *tiles.Palette, rng tilemap.Source) {
	x, y, w, h := room.X, room.Y, room.Width, room.Height

	g.WeightedRandomize(x+1, y+1, w-2, h-2, p.Weights(tiles.RoleFloor), rng)

	g.PutTileAt(p.Index(tiles.RoleWallTopLeft), room.Left, room.Top)
	g.PutTileAt(p.Index(tiles.RoleWallTopRight), room.Right, room.Top)
	g.PutTileAt(p.Index(tiles.RoleWallBottomRight), room.Right, room.Bottom)
	g.PutTileAt(p.Index(tiles.RoleWallBottomLeft), room.Left, room.Bottom)

	g.WeightedRandomize(room.Left+1, room.Top, w-2, 1, p.Weights(tiles.RoleWallTop), rng)
	g.WeightedRandomize(room.Left+1, room.Bottom, w-2, 1, p.Weights(tiles.RoleWallBottom), rng)
	g.WeightedRandomize(room.Left, room.Top+1, 1, h-2, p.Weights(tiles.RoleWallLeft), rng)
	g.WeightedRandomize(room.Right, room.Top+1, 1, h-2, p.Weights(tiles.RoleWallRight), rng)

	for _, d := range room.Doors() {
		stampDoor(g, room, d, p)
	}
}

func stampDoor(g Grid, room *world.Room, d world.Door, p *tiles.Palette) {
	dx, dy := room.X+d.X, room.Y+d.Y
	switch ClassifyDoor(room, d) {
	case EdgeTop:
		g.PutTilesAt(p.Pattern(tiles.RoleDoorTop), dx-1, dy)
	case EdgeBottom:
		g.PutTilesAt(p.Pattern(tiles.RoleDoorBottom), dx-1, dy)
	case EdgeLeft:
		g.PutTilesAt(p.Pattern(tiles.RoleDoorLeft), dx, dy-1)
	case EdgeRight:
		g.PutTilesAt(p.Pattern(tiles.RoleDoorRight), dx, dy-1)
	}
}
