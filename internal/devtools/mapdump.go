// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"bufio"
	"fmt"
	"io"

	"github.com/gookit/color"

	"github.com/tiberiumdvk/inf-game/internal/tilemap"
	"github.com/tiberiumdvk/inf-game/internal/tiles"
)

var colorUnknown = color.Style{color.FgRed, color.OpBold}

// cellSymbol returns the glyph and role of the topmost tile at (x, y).
// Stuff wins over ground. ok is false for an empty cell.
func cellSymbol(ground, stuff *tilemap.Layer, p *tiles.Palette, x, y int) (glyph rune, role tiles.Role, ok bool) {
	index := stuff.IndexAt(x, y)
	if index == tilemap.Empty {
		index = ground.IndexAt(x, y)
	}
	if index == tilemap.Empty {
		return ' ', tiles.RoleBlank, false
	}
	role, known := p.RoleOf(index)
	if !known {
		return '?', tiles.RoleBlank, false
	}
	return p.Glyph(role), role, true
}

// DumpMap writes the painted level to w, one text row per tile row. When
// colored is true every glyph carries its palette color as a 24-bit escape.
func DumpMap(w io.Writer, ground, stuff *tilemap.Layer, p *tiles.Palette, colored bool) error {
	bw := bufio.NewWriter(w)
	for y := 0; y < ground.Height(); y++ {
		for x := 0; x < ground.Width(); x++ {
			glyph, role, ok := cellSymbol(ground, stuff, p, x, y)
			switch {
			case !colored:
				bw.WriteRune(glyph)
			case !ok && glyph == '?':
				bw.WriteString(colorUnknown.Sprint(string(glyph)))
			case !ok:
				bw.WriteRune(glyph)
			default:
				bw.WriteString(color.HEX(hexOf(p, role)).Sprint(string(glyph)))
			}
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

func hexOf(p *tiles.Palette, r tiles.Role) string {
	c := tiles.RGBA(p.Color(r))
	return fmt.Sprintf("%02x%02x%02x", c.R, c.G, c.B)
}
