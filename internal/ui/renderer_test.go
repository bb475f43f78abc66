package ui

import (
	"math/rand"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tiberiumdvk/inf-game/internal/painter"
	"github.com/tiberiumdvk/inf-game/internal/tilemap"
	"github.com/tiberiumdvk/inf-game/internal/tiles"
	"github.com/tiberiumdvk/inf-game/internal/visibility"
	"github.com/tiberiumdvk/inf-game/internal/world"
)

func TestCamera(t *testing.T) {
	tests := []struct {
		name         string
		fx, fy       int
		wantX, wantY int
	}{
		{"centered", 25, 25, 15, 20},
		{"clamped at origin", 2, 3, 0, 0},
		{"clamped at far edge", 49, 49, 30, 40},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := Camera(tt.fx, tt.fy, 50, 50, 20, 10)
			assert.Equal(t, tt.wantX, x)
			assert.Equal(t, tt.wantY, y)
		})
	}

	// A map smaller than the view is pinned to the origin.
	x, y := Camera(3, 3, 9, 7, 80, 24)
	assert.Equal(t, 0, x)
	assert.Equal(t, 0, y)
}

func newSimScreen(t *testing.T, w, h int) (*Screen, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	screen, err := NewScreenFrom(sim)
	require.NoError(t, err)
	sim.SetSize(w, h)
	t.Cleanup(screen.Close)
	return screen, sim
}

func runeAt(s tcell.Screen, x, y int) rune {
	r, _, _, _ := s.GetContent(x, y)
	return r
}

func TestRenderFogOfWar(t *testing.T) {
	p := tiles.MustLoadPalette()
	m := tilemap.New(20, 9, 48, 48)
	ground := m.CreateBlankLayer("ground").Fill(p.Index(tiles.RoleBlank))
	stuff := m.CreateBlankLayer("stuff")
	shadow := m.CreateBlankLayer("shadow").Fill(p.Index(tiles.RoleBlank))

	lit := world.NewRoom(0, 0, 9, 7)
	dark := world.NewRoom(10, 0, 9, 7)
	rng := rand.New(rand.NewSource(1))
	painter.PaintRoom(ground, lit, p, rng)
	painter.PaintRoom(ground, dark, p, rng)
	visibility.NewTracker(shadow).SetActiveRoom(lit)

	screen, sim := newSimScreen(t, 20, 10)
	NewRenderer(screen).Render(Frame{
		Ground: ground, Stuff: stuff, Shadow: shadow, Palette: p,
		PlayerX: 4, PlayerY: 3, PlayerGlyph: '@',
		HUD: []string{"Current level: 1"},
	})

	// HUD occupies the first row, the map starts below it.
	assert.Equal(t, ' ', runeAt(sim, 0, 0))
	assert.Equal(t, 'C', runeAt(sim, 1, 0))
	assert.Equal(t, p.Glyph(tiles.RoleWallTopLeft), runeAt(sim, 0, 1))
	assert.Equal(t, '@', runeAt(sim, 4, 4))
	// The unvisited room stays hidden.
	assert.Equal(t, ' ', runeAt(sim, 10, 1))
}

func TestRenderFadeHidesMap(t *testing.T) {
	p := tiles.MustLoadPalette()
	m := tilemap.New(9, 7, 48, 48)
	ground := m.CreateBlankLayer("ground")
	stuff := m.CreateBlankLayer("stuff")
	shadow := m.CreateBlankLayer("shadow")
	room := world.NewRoom(0, 0, 9, 7)
	painter.PaintRoom(ground, room, p, rand.New(rand.NewSource(1)))
	visibility.NewTracker(shadow).SetActiveRoom(room)

	screen, sim := newSimScreen(t, 9, 7)
	NewRenderer(screen).Render(Frame{
		Ground: ground, Stuff: stuff, Shadow: shadow, Palette: p,
		PlayerX: 4, PlayerY: 3, PlayerGlyph: '@', Fade: 0.8,
	})

	assert.Equal(t, ' ', runeAt(sim, 0, 0))
	assert.Equal(t, ' ', runeAt(sim, 4, 3))
}
