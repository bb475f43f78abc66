package painter

import (
	"github.com/tiberiumdvk/inf-game/internal/tiles"
	"github.com/tiberiumdvk/inf-game/internal/world"
)

// Rand is the random source used to distribute props. *rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
	Float64() float64
	Shuffle(n int, swap func(i, j int))
}

const (
	// decoratedShare is the fraction of the remaining rooms that receive a prop.
	decoratedShare = 0.9

	chestChance = 0.25
	potChance   = 0.5
)

// Layout records where props ended up after Populate.
type Layout struct {
	Start *world.Room
	End   *world.Room
	Props map[*world.Room]Prop
}

// Populate places the level's props. The first room is the start room and is
// left empty; one random other room gets the stairs. Of the remaining rooms,
// a shuffled 90% get a chest, a pot or towers.
//
// With a single room the stairs go into the start room's top-left floor cell.
func Populate(g Grid, rooms []*world.Room, p *tiles.Palette, rng Rand) Layout {
	layout := Layout{Props: make(map[*world.Room]Prop)}
	if len(rooms) == 0 {
		return layout
	}

	layout.Start = rooms[0]
	rest := append([]*world.Room(nil), rooms[1:]...)

	if len(rest) == 0 {
		layout.End = layout.Start
		g.PutTileAt(p.Index(tiles.RoleStairs), layout.Start.Left+1, layout.Start.Top+1)
		layout.Props[layout.Start] = PropStairs
		return layout
	}

	i := rng.Intn(len(rest))
	layout.End = rest[i]
	rest = append(rest[:i], rest[i+1:]...)
	PlaceProp(g, layout.End, PropStairs, p, rng)
	layout.Props[layout.End] = PropStairs

	rng.Shuffle(len(rest), func(i, j int) { rest[i], rest[j] = rest[j], rest[i] })
	rest = rest[:int(float64(len(rest))*decoratedShare)]

	for _, room := range rest {
		prop := PropTower
		switch roll := rng.Float64(); {
		case roll <= chestChance:
			prop = PropChest
		case roll <= potChance:
			prop = PropPot
		}
		PlaceProp(g, room, prop, p, rng)
		layout.Props[room] = prop
	}

	return layout
}
