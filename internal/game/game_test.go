package game

import (
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tiberiumdvk/inf-game/internal/hud"
	"github.com/tiberiumdvk/inf-game/internal/tiles"
	"github.com/tiberiumdvk/inf-game/internal/ui"
)

func TestKeyInput(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want Input
	}{
		{"escape quits", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), Input{Quit: true}},
		{"q quits", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), Input{Quit: true}},
		{"arrow up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), Input{Up: true}},
		{"arrow left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), Input{Left: true}},
		{"d toggles debug", tcell.NewEventKey(tcell.KeyRune, 'D', tcell.ModNone), Input{ToggleDebug: true}},
		{"other keys ignored", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), Input{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, keyInput(tt.ev))
		})
	}
}

func TestRunQuitsOnEscape(t *testing.T) {
	sim := tcell.NewSimulationScreen("UTF-8")
	screen, err := ui.NewScreenFrom(sim)
	require.NoError(t, err)
	sim.SetSize(80, 24)

	catalog, err := hud.New("en")
	require.NoError(t, err)

	scene := NewScene(testConfig(), tiles.MustLoadPalette(), nil)
	g := NewWithScreen(screen, scene, catalog, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	sim.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)
	require.NoError(t, g.Run(ctx))
	assert.NoError(t, ctx.Err(), "game should stop on escape before the timeout")
	assert.Equal(t, 1, scene.Level())

	// Closing again is harmless.
	g.Close()
}
