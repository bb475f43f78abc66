package painter

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tiberiumdvk/inf-game/internal/tiles"
	"github.com/tiberiumdvk/inf-game/internal/world"
)

// gridOfRooms lays out n separate 9x9 rooms in a row.
func gridOfRooms(n int) []*world.Room {
	rooms := make([]*world.Room, n)
	for i := range rooms {
		rooms[i] = world.NewRoom(i*10, 0, 9, 9)
	}
	return rooms
}

func TestPopulateSingleRoom(t *testing.T) {
	p := tiles.MustLoadPalette()
	rooms := gridOfRooms(1)
	stuff := newLayer(10, 10)

	layout := Populate(stuff, rooms, p, rand.New(rand.NewSource(1)))

	assert.Same(t, rooms[0], layout.Start)
	assert.Same(t, rooms[0], layout.End)
	assert.Equal(t, map[[2]int]int{{1, 1}: p.Index(tiles.RoleStairs)}, written(stuff))
}

func TestPopulateNoRooms(t *testing.T) {
	p := tiles.MustLoadPalette()
	layout := Populate(newLayer(5, 5), nil, p, rand.New(rand.NewSource(1)))
	assert.Nil(t, layout.Start)
	assert.Nil(t, layout.End)
	assert.Empty(t, layout.Props)
}

func TestPopulateDistribution(t *testing.T) {
	p := tiles.MustLoadPalette()
	rooms := gridOfRooms(12)
	stuff := newLayer(120, 10)

	layout := Populate(stuff, rooms, p, rand.New(rand.NewSource(12345)))

	require.Same(t, rooms[0], layout.Start)
	require.NotSame(t, layout.Start, layout.End)
	_, startHasProp := layout.Props[layout.Start]
	assert.False(t, startHasProp)

	stairs := 0
	for room, prop := range layout.Props {
		if prop == PropStairs {
			stairs++
			assert.Same(t, layout.End, room)
			assert.Equal(t, p.Index(tiles.RoleStairs), stuff.IndexAt(room.CenterX, room.CenterY))
		}
	}
	assert.Equal(t, 1, stairs)
	// Ten rooms remain after start and stairs; 90% of them are decorated.
	assert.Len(t, layout.Props, 1+9)

	// Nothing lands in the start room.
	for y := rooms[0].Top; y <= rooms[0].Bottom; y++ {
		for x := rooms[0].Left; x <= rooms[0].Right; x++ {
			assert.Equal(t, -1, stuff.IndexAt(x, y))
		}
	}
}

func TestPopulateDeterministic(t *testing.T) {
	p := tiles.MustLoadPalette()
	rooms := gridOfRooms(8)

	a, b := newLayer(80, 10), newLayer(80, 10)
	la := Populate(a, rooms, p, rand.New(rand.NewSource(7)))
	lb := Populate(b, rooms, p, rand.New(rand.NewSource(7)))

	assert.Equal(t, la.Props, lb.Props)
	assert.Equal(t, written(a), written(b))
}
