package game

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/tiberiumdvk/inf-game/internal/hud"
	"github.com/tiberiumdvk/inf-game/internal/telemetry"
	"github.com/tiberiumdvk/inf-game/internal/ui"
)

// FrameInterval is the terminal frame period.
const FrameInterval = time.Second / 60

// Game runs a scene in the terminal.
type Game struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	scene    *Scene
	hud      *hud.Catalog
	logger   *zap.Logger
	running  bool
}

// New creates a new terminal game for the scene.
func New(scene *Scene, catalog *hud.Catalog, logger *zap.Logger) (*Game, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewWithScreen(screen, scene, catalog, logger), nil
}

// NewWithScreen creates a game drawing to an initialized screen.
func NewWithScreen(screen *ui.Screen, scene *Scene, catalog *hud.Catalog, logger *zap.Logger) *Game {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Game{
		screen:   screen,
		renderer: ui.NewRenderer(screen),
		scene:    scene,
		hud:      catalog,
		logger:   logger,
		running:  true,
	}
}

// Run executes the main game loop until the player quits or ctx is done.
// Frames tick at a fixed rate; key events are read on a separate goroutine and
// merged into the next frame's input.
func (g *Game) Run(ctx context.Context) error {
	tracer := telemetry.Tracer("game")

	// Initialize game (traced)
	initCtx, initSpan := tracer.Start(ctx, "game.init")
	g.scene.Create(initCtx)
	px, py := g.scene.Player().Position()
	initSpan.SetAttributes(
		attribute.Int("dungeon.rooms", len(g.scene.Dungeon().Rooms)),
		attribute.Int("player.start_x", px),
		attribute.Int("player.start_y", py),
	)
	initSpan.End()

	g.logger.Info("terminal frontend started", zap.String("locale", g.hud.Locale()))

	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	go pollEvents(g.screen, events, done)

	ticker := time.NewTicker(FrameInterval)
	defer ticker.Stop()

	var in Input
	g.render()

	// Main game loop
	for g.running {
		select {
		case <-ctx.Done():
			g.running = false
		case ev := <-events:
			in = in.Merge(g.handleEvent(ev))
			if in.Quit {
				g.running = false
			}
		case <-ticker.C:
			g.scene.Update(ctx, in)
			in = Input{}
			g.render()
		}
	}

	// Cleanup
	close(done)
	g.Close()
	g.logger.Info("terminal frontend stopped", zap.Int("level", g.scene.Level()))
	return nil
}

// pollEvents forwards terminal events until the screen is closed or done is closed.
func pollEvents(screen *ui.Screen, events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

// handleEvent turns a terminal event into input.
func (g *Game) handleEvent(ev tcell.Event) Input {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return keyInput(ev)
	case *tcell.EventResize:
		g.screen.Sync()
	}
	return Input{}
}

// keyInput maps keyboard input to scene input.
func keyInput(ev *tcell.EventKey) Input {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return Input{Quit: true}

	case tcell.KeyUp:
		return Input{Up: true}
	case tcell.KeyDown:
		return Input{Down: true}
	case tcell.KeyLeft:
		return Input{Left: true}
	case tcell.KeyRight:
		return Input{Right: true}

	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return Input{Quit: true}
		case 'd', 'D':
			return Input{ToggleDebug: true}
		}
	}
	return Input{}
}

func (g *Game) render() {
	s := g.scene
	px, py := s.Player().Position()
	g.renderer.Render(ui.Frame{
		Ground:      s.Ground(),
		Stuff:       s.Stuff(),
		Shadow:      s.Shadow(),
		Palette:     s.Palette(),
		PlayerX:     px,
		PlayerY:     py,
		PlayerGlyph: s.Player().Symbol,
		HUD:         g.hud.Lines(s.Status()),
		Debug:       s.Debug(),
		Fade:        s.Fade(),
	})
}

// Close cleans up game resources. It is safe to call more than once.
func (g *Game) Close() {
	if g.screen != nil {
		g.screen.Close()
		g.screen = nil
	}
}
