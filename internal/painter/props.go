package painter

import (
	"github.com/tiberiumdvk/inf-game/internal/tilemap"
	"github.com/tiberiumdvk/inf-game/internal/tiles"
	"github.com/tiberiumdvk/inf-game/internal/world"
)

// Prop is a decoration or interactive object placed inside a room.
type Prop int

const (
	PropStairs Prop = iota
	PropChest
	PropPot
	PropTower
)

func (p Prop) String() string {
	switch p {
	case PropStairs:
		return "stairs"
	case PropChest:
		return "chest"
	case PropPot:
		return "pot"
	case PropTower:
		return "tower"
	default:
		return "unknown"
	}
}

// towerMinHeight is the room height from which four towers fit instead of two.
const towerMinHeight = 9

// PlaceProp writes a prop into room on the stuff grid.
func PlaceProp(g Grid, room *world.Room, prop Prop, p *tiles.Palette, rng tilemap.Source) {
	cx, cy := room.CenterX, room.CenterY

	switch prop {
	case PropStairs:
		g.PutTileAt(p.Index(tiles.RoleStairs), cx, cy)
	case PropChest:
		g.PutTileAt(p.Index(tiles.RoleChest), cx, cy)
	case PropPot:
		x := between(rng, room.Left+2, room.Right-2)
		y := between(rng, room.Top+2, room.Bottom-2)
		g.WeightedRandomize(x, y, 1, 1, p.Weights(tiles.RolePot), rng)
	case PropTower:
		pattern := p.Pattern(tiles.RoleTower)
		if room.Height >= towerMinHeight {
			g.PutTilesAt(pattern, cx-1, cy+1)
			g.PutTilesAt(pattern, cx+1, cy+1)
			g.PutTilesAt(pattern, cx-1, cy-2)
			g.PutTilesAt(pattern, cx+1, cy-2)
		} else {
			g.PutTilesAt(pattern, cx-1, cy-1)
			g.PutTilesAt(pattern, cx+1, cy-1)
		}
	}
}

// between returns a uniform integer in [lo, hi].
func between(rng tilemap.Source, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}
