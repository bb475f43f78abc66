package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/tiberiumdvk/inf-game/internal/tilemap"
	"github.com/tiberiumdvk/inf-game/internal/tiles"
)

// Frame is everything the renderer needs to draw one frame.
type Frame struct {
	Ground, Stuff, Shadow *tilemap.Layer
	Palette               *tiles.Palette

	PlayerX, PlayerY int
	PlayerGlyph      rune

	HUD   []string
	Debug bool
	// Fade is the descend fade progress from 0 (none) to 1 (black).
	Fade float64
}

var (
	collisionColor = tcell.NewRGBColor(243, 134, 48)
	hudStyle       = tcell.StyleDefault.Background(tcell.ColorWhite).Foreground(tcell.ColorBlack)
	playerStyle    = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
)

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Camera returns the map tile drawn at the top-left of a viewW x viewH
// viewport. The view is centered on the focus and clamped to the map.
func Camera(focusX, focusY, mapW, mapH, viewW, viewH int) (int, int) {
	return clampAxis(focusX-viewW/2, mapW-viewW), clampAxis(focusY-viewH/2, mapH-viewH)
}

func clampAxis(v, hi int) int {
	if v > hi {
		v = hi
	}
	if v < 0 {
		v = 0
	}
	return v
}

// Render draws the level, the player and the HUD to the screen.
func (r *Renderer) Render(f Frame) {
	r.screen.Clear()

	sw, sh := r.screen.Size()
	top := len(f.HUD)
	viewH := sh - top

	camX, camY := Camera(f.PlayerX, f.PlayerY, f.Ground.Width(), f.Ground.Height(), sw, viewH)

	// Past the halfway point of the fade the map is gone.
	if f.Fade < 0.5 {
		for sy := 0; sy < viewH; sy++ {
			for sx := 0; sx < sw; sx++ {
				mx, my := camX+sx, camY+sy
				if !f.Ground.InBounds(mx, my) {
					continue
				}
				glyph, style := r.cell(f, mx, my)
				r.screen.SetContent(sx, top+sy, glyph, style)
			}
		}

		// Draw player on top
		px, py := f.PlayerX-camX, f.PlayerY-camY
		if px >= 0 && px < sw && py >= 0 && py < viewH {
			r.screen.SetContent(px, top+py, f.PlayerGlyph, playerStyle)
		}
	}

	for i, line := range f.HUD {
		r.RenderMessage(" "+line+" ", i)
	}

	r.screen.Show()
}

// cell returns the glyph and style of map tile (x, y) after fog of war.
func (r *Renderer) cell(f Frame, x, y int) (rune, tcell.Style) {
	style := tcell.StyleDefault
	if f.Debug && (f.Ground.Collides(x, y) || f.Stuff.Collides(x, y)) {
		style = style.Background(collisionColor)
	}

	shade, _ := f.Shadow.TileAt(x, y)
	if shade.Alpha >= 1 {
		return ' ', style
	}

	index := f.Stuff.IndexAt(x, y)
	if index == tilemap.Empty {
		index = f.Ground.IndexAt(x, y)
	}
	role, ok := f.Palette.RoleOf(index)
	if !ok {
		return ' ', style
	}

	style = style.Foreground(f.Palette.Color(role))
	if shade.Alpha > 0 || f.Fade > 0 {
		style = style.Dim(true)
	}
	return f.Palette.Glyph(role), style
}

// RenderMessage displays a message on the given screen row.
func (r *Renderer) RenderMessage(msg string, y int) {
	r.screen.DrawText(0, y, msg, hudStyle)
}
