// Package hud provides the translated heads-up display lines.
package hud

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"

	"github.com/leonelquinteros/gotext"
)

//go:embed locales/*.po
var localesFS embed.FS

// DefaultLocale is used when no locale is configured.
const DefaultLocale = "en"

// Status is the level state the HUD describes.
type Status struct {
	Level      int
	Explored   int
	Rooms      int
	Descending bool
	Debug      bool
}

// Catalog renders HUD lines in one language.
type Catalog struct {
	locale string
	po     *gotext.Po
}

// Locales returns the embedded locale names, sorted.
func Locales() []string {
	entries, err := fs.ReadDir(localesFS, "locales")
	if err != nil {
		return nil
	}
	var out []string
	for _, e := range entries {
		out = append(out, strings.TrimSuffix(e.Name(), path.Ext(e.Name())))
	}
	slices.Sort(out)
	return out
}

// New loads the catalog for locale.
func New(locale string) (*Catalog, error) {
	if locale == "" {
		locale = DefaultLocale
	}
	data, err := localesFS.ReadFile("locales/" + locale + ".po")
	if err != nil {
		return nil, fmt.Errorf("unknown locale %q (have %s): %w", locale, strings.Join(Locales(), ", "), err)
	}

	po := gotext.NewPo()
	po.Parse(data)
	return &Catalog{locale: locale, po: po}, nil
}

// Locale returns the catalog language.
func (c *Catalog) Locale() string {
	return c.locale
}

// Level returns the level banner.
func (c *Catalog) Level(n int) string {
	return c.po.Get("Current level: %d", n)
}

// Explored returns the explored-rooms counter.
func (c *Catalog) Explored(seen, total int) string {
	return c.po.Get("Rooms explored: %d/%d", seen, total)
}

// Help returns the key bindings line.
func (c *Catalog) Help() string {
	return c.po.Get("Arrows: move  D: debug  Esc: quit")
}

// Lines returns the HUD text for s, top to bottom.
func (c *Catalog) Lines(s Status) []string {
	lines := []string{
		c.Level(s.Level),
		c.Explored(s.Explored, s.Rooms),
	}
	if s.Descending {
		lines = append(lines, c.po.Get("Descending..."))
	}
	if s.Debug {
		lines = append(lines, c.po.Get("Debug: collision"))
	}
	return append(lines, c.Help())
}
