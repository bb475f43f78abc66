// Package world provides dungeon generation: rooms, shared walls and doors.
package world

import (
	"context"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/tiberiumdvk/inf-game/internal/telemetry"
)

const (
	// Default dungeon dimensions
	DefaultWidth  = 50
	DefaultHeight = 50

	// placementTries bounds how many attach attempts are made per requested room.
	placementTries = 150
)

// Range is an inclusive size range.
type Range struct {
	Min, Max int
}

// Config controls dungeon generation.
type Config struct {
	Width, Height int
	// DoorPadding is the minimum distance between a door and either corner of a wall,
	// so a corner tile fits on both sides of the door stamp.
	DoorPadding int
	MaxRooms    int
	RoomWidth   Range
	RoomHeight  Range
	// OnlyOdd restricts room sizes to odd values so every room has a center tile.
	OnlyOdd bool
}

// DefaultConfig returns the generation settings of a standard level.
func DefaultConfig() Config {
	return Config{
		Width:       DefaultWidth,
		Height:      DefaultHeight,
		DoorPadding: 2,
		MaxRooms:    50,
		RoomWidth:   Range{Min: 7, Max: 15},
		RoomHeight:  Range{Min: 7, Max: 15},
		OnlyOdd:     true,
	}
}

// side is the wall of an existing room a new room is attached to.
type side int

const (
	sideNorth side = iota
	sideSouth
	sideWest
	sideEast
)

// Dungeon represents the generated room graph.
type Dungeon struct {
	Width  int
	Height int
	Rooms  []*Room
	cfg    Config
	rng    *rand.Rand
}

// NewDungeon creates an empty dungeon. Call Generate to place rooms.
func NewDungeon(cfg Config, rng *rand.Rand) *Dungeon {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Dungeon{
		Width:  cfg.Width,
		Height: cfg.Height,
		Rooms:  make([]*Room, 0),
		cfg:    cfg,
		rng:    rng,
	}
}

// Generate creates the dungeon layout. The first room is centered; every other
// room shares one wall line with an existing room and is joined to it by a door
// recorded on both rooms.
func (d *Dungeon) Generate(ctx context.Context) {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "dungeon.generate")
	defer span.End()

	startTime := time.Now()
	d.Rooms = d.Rooms[:0]

	w := d.randomSize(d.cfg.RoomWidth)
	h := d.randomSize(d.cfg.RoomHeight)
	first := NewRoom(d.Width/2-w/2, d.Height/2-h/2, w, h)
	d.Rooms = append(d.Rooms, first)

	attempts := 0
	for len(d.Rooms) < d.cfg.MaxRooms && attempts < d.cfg.MaxRooms*placementTries {
		d.attachRoom()
		attempts++
	}

	doors := 0
	for _, r := range d.Rooms {
		doors += len(r.doors)
	}

	span.SetAttributes(
		attribute.Int("dungeon.width", d.Width),
		attribute.Int("dungeon.height", d.Height),
		attribute.Int("dungeon.room_count", len(d.Rooms)),
		attribute.Int("dungeon.door_count", doors),
		attribute.Int("dungeon.attempts", attempts),
		attribute.Int64("dungeon.generation_ms", time.Since(startTime).Milliseconds()),
	)
}

// RoomAt returns the first room containing the tile, or nil if the tile is
// outside every room.
func (d *Dungeon) RoomAt(x, y int) *Room {
	if i := d.RoomIndexAt(x, y); i >= 0 {
		return d.Rooms[i]
	}
	return nil
}

// RoomIndexAt returns the index of the room containing the position, or -1 if not in a room.
func (d *Dungeon) RoomIndexAt(x, y int) int {
	for i, room := range d.Rooms {
		if room.Contains(x, y) {
			return i
		}
	}
	return -1
}

// randomSize picks a size within r, odd-only when configured.
func (d *Dungeon) randomSize(r Range) int {
	if !d.cfg.OnlyOdd {
		return r.Min + d.rng.Intn(r.Max-r.Min+1)
	}
	lo, hi := r.Min|1, r.Max
	if hi%2 == 0 {
		hi--
	}
	return lo + 2*d.rng.Intn((hi-lo)/2+1)
}

// attachRoom tries once to place a random room against a random wall of an
// existing room. Returns true if a room was added.
func (d *Dungeon) attachRoom() bool {
	w := d.randomSize(d.cfg.RoomWidth)
	h := d.randomSize(d.cfg.RoomHeight)
	anchor := d.Rooms[d.rng.Intn(len(d.Rooms))]
	pad := d.cfg.DoorPadding

	var x, y int
	dir := side(d.rng.Intn(4))
	switch dir {
	case sideNorth, sideSouth:
		// Offset range keeps at least 2*pad+1 shared cells for the door.
		lo := anchor.Left - w + 1 + 2*pad
		hi := anchor.Right - 2*pad
		x = lo + d.rng.Intn(hi-lo+1)
		if dir == sideNorth {
			y = anchor.Top - h + 1
		} else {
			y = anchor.Bottom
		}
	case sideWest, sideEast:
		lo := anchor.Top - h + 1 + 2*pad
		hi := anchor.Bottom - 2*pad
		y = lo + d.rng.Intn(hi-lo+1)
		if dir == sideWest {
			x = anchor.Left - w + 1
		} else {
			x = anchor.Right
		}
	}

	room := NewRoom(x, y, w, h)
	if !d.fits(room) {
		return false
	}

	switch dir {
	case sideNorth, sideSouth:
		lo := max(room.Left, anchor.Left) + pad
		hi := min(room.Right, anchor.Right) - pad
		doorX := lo + d.rng.Intn(hi-lo+1)
		if dir == sideNorth {
			anchor.addDoor(Door{X: doorX - anchor.X, Y: 0})
			room.addDoor(Door{X: doorX - room.X, Y: room.Height - 1})
		} else {
			anchor.addDoor(Door{X: doorX - anchor.X, Y: anchor.Height - 1})
			room.addDoor(Door{X: doorX - room.X, Y: 0})
		}
	case sideWest, sideEast:
		lo := max(room.Top, anchor.Top) + pad
		hi := min(room.Bottom, anchor.Bottom) - pad
		doorY := lo + d.rng.Intn(hi-lo+1)
		if dir == sideWest {
			anchor.addDoor(Door{X: 0, Y: doorY - anchor.Y})
			room.addDoor(Door{X: room.Width - 1, Y: doorY - room.Y})
		} else {
			anchor.addDoor(Door{X: anchor.Width - 1, Y: doorY - anchor.Y})
			room.addDoor(Door{X: 0, Y: doorY - room.Y})
		}
	}

	d.Rooms = append(d.Rooms, room)
	return true
}

// fits reports whether room lies inside the map and touches existing rooms
// only wall-on-wall.
func (d *Dungeon) fits(room *Room) bool {
	if room.Left < 0 || room.Top < 0 || room.Right >= d.Width || room.Bottom >= d.Height {
		return false
	}
	ix, iy, iw, ih := room.Interior()
	for _, other := range d.Rooms {
		ox, oy, ow, oh := other.Interior()
		if rectsOverlap(ix, iy, iw, ih, other.X, other.Y, other.Width, other.Height) ||
			rectsOverlap(room.X, room.Y, room.Width, room.Height, ox, oy, ow, oh) {
			return false
		}
	}
	return true
}
