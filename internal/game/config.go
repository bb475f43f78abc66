package game

import (
	"github.com/tiberiumdvk/inf-game/internal/config"
	"github.com/tiberiumdvk/inf-game/internal/entity"
	"github.com/tiberiumdvk/inf-game/internal/world"
)

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible dungeon generation.
	// A seed of 0 means a random seed will be generated.
	Seed int64

	Dungeon world.Config

	// TileSize is the tile edge in pixels for the graphical frontend.
	TileSize int
	// StepFrames is the number of frames between steps while a key is held.
	StepFrames int
	// DescendFrames is the length of the fade after reaching the stairs.
	DescendFrames int
}

// DefaultConfig returns the settings of a standard game.
func DefaultConfig() Config {
	return Config{
		Dungeon:       world.DefaultConfig(),
		TileSize:      48,
		StepFrames:    entity.DefaultStepFrames,
		DescendFrames: 15,
	}
}

// FromConfig converts loaded application settings into scene settings.
func FromConfig(c config.Config) Config {
	d := c.Dungeon
	return Config{
		Seed: c.Game.Seed,
		Dungeon: world.Config{
			Width:       d.Width,
			Height:      d.Height,
			DoorPadding: d.DoorPadding,
			MaxRooms:    d.MaxRooms,
			RoomWidth:   world.Range{Min: d.RoomWidth.Min, Max: d.RoomWidth.Max},
			RoomHeight:  world.Range{Min: d.RoomHeight.Min, Max: d.RoomHeight.Max},
			OnlyOdd:     d.OnlyOdd,
		},
		TileSize:      c.Window.TileSize,
		StepFrames:    c.Game.StepFrames,
		DescendFrames: c.Game.DescendFrames,
	}
}
