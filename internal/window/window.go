// Package window is the graphical frontend. It draws the scene's layers as
// colored tiles in an Ebiten window.
package window

import (
	"context"
	"errors"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/tiberiumdvk/inf-game/internal/config"
	"github.com/tiberiumdvk/inf-game/internal/game"
	"github.com/tiberiumdvk/inf-game/internal/hud"
	"github.com/tiberiumdvk/inf-game/internal/telemetry"
	"github.com/tiberiumdvk/inf-game/internal/tilemap"
	"github.com/tiberiumdvk/inf-game/internal/tiles"
	"github.com/tiberiumdvk/inf-game/internal/ui"
)

// hudLineHeight is the row height of ebitenutil's debug font.
const hudLineHeight = 16

var (
	colorBackground = color.RGBA{A: 255}
	colorPlayer     = color.RGBA{R: 255, G: 255, A: 255}
	colorCollision  = color.RGBA{R: 243, G: 134, B: 48, A: 160}
	colorHUD        = color.RGBA{R: 255, G: 255, B: 255, A: 220}
)

// Window runs a scene as an Ebiten game.
type Window struct {
	ctx     context.Context
	scene   *game.Scene
	catalog *hud.Catalog
	cfg     config.WindowConfig
	logger  *zap.Logger
}

// New creates a window frontend for the scene.
func New(ctx context.Context, scene *game.Scene, catalog *hud.Catalog, cfg config.WindowConfig, logger *zap.Logger) *Window {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Window{ctx: ctx, scene: scene, catalog: catalog, cfg: cfg, logger: logger}
}

// Run builds the first level and blocks until the window is closed or the
// player quits.
func (w *Window) Run() error {
	ctx, span := telemetry.Tracer("window").Start(w.ctx, "game.init")
	w.scene.Create(ctx)
	span.SetAttributes(attribute.Int("dungeon.rooms", len(w.scene.Dungeon().Rooms)))
	span.End()

	ebiten.SetWindowSize(w.cfg.Width, w.cfg.Height)
	ebiten.SetWindowTitle(w.cfg.Title)
	w.logger.Info("window frontend started",
		zap.Int("width", w.cfg.Width),
		zap.Int("height", w.cfg.Height),
		zap.String("locale", w.catalog.Locale()),
	)

	err := ebiten.RunGame(w)
	if errors.Is(err, ebiten.Termination) {
		err = nil
	}
	w.logger.Info("window frontend stopped", zap.Int("level", w.scene.Level()))
	return err
}

// Update reads the keyboard and advances the scene (Ebiten interface).
func (w *Window) Update() error {
	if err := w.ctx.Err(); err != nil {
		return ebiten.Termination
	}
	in := readInput()
	if in.Quit {
		return ebiten.Termination
	}
	w.scene.Update(w.ctx, in)
	return nil
}

func readInput() game.Input {
	return game.Input{
		Left:        ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right:       ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Up:          ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Down:        ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		ToggleDebug: inpututil.IsKeyJustPressed(ebiten.KeyD),
		Quit:        inpututil.IsKeyJustPressed(ebiten.KeyEscape),
	}
}

// Draw renders the scene (Ebiten interface).
func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	s := w.scene
	lines := w.catalog.Lines(s.Status())
	top := len(lines) * hudLineHeight
	size := w.cfg.TileSize
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	cols, rows := Viewport(sw, sh-top, size)

	px, py := s.Player().Position()
	ground, stuff, shadow := s.Ground(), s.Stuff(), s.Shadow()
	camX, camY := ui.Camera(px, py, ground.Width(), ground.Height(), cols, rows)

	for ty := 0; ty < rows; ty++ {
		for tx := 0; tx < cols; tx++ {
			mx, my := camX+tx, camY+ty
			if !ground.InBounds(mx, my) {
				continue
			}
			x, y := float32(tx*size), float32(top+ty*size)
			if c, ok := TileColor(s.Palette(), stuff, ground, mx, my); ok {
				vector.DrawFilledRect(screen, x, y, float32(size), float32(size), c, false)
			}
			if s.Debug() && (ground.Collides(mx, my) || stuff.Collides(mx, my)) {
				vector.DrawFilledRect(screen, x, y, float32(size), float32(size), colorCollision, false)
			}
			if shade, ok := shadow.TileAt(mx, my); ok && shade.Alpha > 0 {
				vector.DrawFilledRect(screen, x, y, float32(size), float32(size), ShadowColor(shade.Alpha), false)
			}
		}
	}

	inset := float32(size) / 4
	vector.DrawFilledRect(screen,
		float32((px-camX)*size)+inset, float32(top+(py-camY)*size)+inset,
		float32(size)-2*inset, float32(size)-2*inset, colorPlayer, true)

	if fade := s.Fade(); fade > 0 {
		vector.DrawFilledRect(screen, 0, float32(top), float32(sw), float32(sh-top), ShadowColor(fade), false)
	}

	vector.DrawFilledRect(screen, 0, 0, float32(sw), float32(top), colorHUD, false)
	for i, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, 4, i*hudLineHeight)
	}
}

// Layout keeps the logical screen equal to the window (Ebiten interface).
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

// Viewport returns how many whole tiles fit in a w x h pixel area.
func Viewport(w, h, tileSize int) (int, int) {
	if tileSize <= 0 {
		return 0, 0
	}
	return max(w/tileSize, 0), max(h/tileSize, 0)
}

// TileColor returns the color of map cell (x, y): the stuff layer wins over
// the ground layer. Unknown and empty cells report false.
func TileColor(p *tiles.Palette, stuff, ground *tilemap.Layer, x, y int) (color.RGBA, bool) {
	index := stuff.IndexAt(x, y)
	if index == tilemap.Empty {
		index = ground.IndexAt(x, y)
	}
	role, ok := p.RoleOf(index)
	if !ok || role == tiles.RoleBlank {
		return color.RGBA{}, false
	}
	return tiles.RGBA(p.Color(role)), true
}

// ShadowColor returns a black overlay for a fog alpha in [0, 1].
func ShadowColor(alpha float64) color.RGBA {
	alpha = min(max(alpha, 0), 1)
	return color.RGBA{A: uint8(alpha * 255)}
}
