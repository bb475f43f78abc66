package tiles

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/gdamore/tcell/v2"
	"gopkg.in/yaml.v3"

	"github.com/tiberiumdvk/inf-game/internal/tilemap"
)

// IndexSet is a single tile index or a list of equally valid ones.
type IndexSet []int

// UnmarshalYAML accepts either `index: 6` or `index: [7, 8, 26]`.
func (s *IndexSet) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var i int
		if err := node.Decode(&i); err != nil {
			return err
		}
		*s = IndexSet{i}
	case yaml.SequenceNode:
		var list []int
		if err := node.Decode(&list); err != nil {
			return err
		}
		*s = list
	default:
		return fmt.Errorf("line %d: tile index must be an integer or a list of integers", node.Line)
	}
	return nil
}

// WeightDef is one weighted entry as written in the palette file.
type WeightDef struct {
	Index  IndexSet `yaml:"index"`
	Weight int      `yaml:"weight"`
}

// EntryDef defines one role as written in the palette file.
type EntryDef struct {
	Index    IndexSet    `yaml:"index"`
	Weighted []WeightDef `yaml:"weighted"`
	Pattern  [][]int     `yaml:"pattern"` // Rows of a multi-tile stamp
	Glyph    string      `yaml:"glyph"`   // Terminal rendering (e.g. "#")
	Color    string      `yaml:"color"`   // Hex color code (e.g. "#8A7F6D")
}

// PaletteFile represents the structure of palette.yaml.
type PaletteFile struct {
	Passable []int               `yaml:"passable"`
	Roles    map[string]EntryDef `yaml:"roles"`
}

type entry struct {
	index   int
	weights []tilemap.WeightedIndex
	pattern [][]int
	glyph   rune
	color   tcell.Color
}

// Palette resolves tile roles to tileset indices. It is read-only after construction.
type Palette struct {
	entries  [roleCount]entry
	byIndex  map[int]Role
	passable []int
}

// NewPalette validates a palette file and resolves every role.
func NewPalette(file PaletteFile) (*Palette, error) {
	p := &Palette{
		byIndex:  make(map[int]Role),
		passable: slices.Clone(file.Passable),
	}

	var errs []string
	for name := range file.Roles {
		if _, err := ParseRole(name); err != nil {
			errs = append(errs, err.Error())
		}
	}

	for _, role := range Roles() {
		def, ok := file.Roles[role.String()]
		if !ok {
			errs = append(errs, fmt.Sprintf("role %s is missing", role))
			continue
		}
		e, err := resolveEntry(def)
		if err != nil {
			errs = append(errs, fmt.Sprintf("role %s: %v", role, err))
			continue
		}
		p.entries[role] = e
	}

	if len(errs) > 0 {
		slices.Sort(errs)
		return nil, fmt.Errorf("invalid palette: %s", strings.Join(errs, "; "))
	}

	// First role in declaration order owns an index shared with later roles,
	// so floor wins over the open cell of a door pattern.
	for _, role := range Roles() {
		e := p.entries[role]
		for _, w := range e.weights {
			for _, index := range w.Indices {
				p.claim(index, role)
			}
		}
		for _, row := range e.pattern {
			for _, index := range row {
				p.claim(index, role)
			}
		}
	}

	return p, nil
}

func (p *Palette) claim(index int, role Role) {
	if index == tilemap.Empty {
		return
	}
	if _, taken := p.byIndex[index]; !taken {
		p.byIndex[index] = role
	}
}

func resolveEntry(def EntryDef) (entry, error) {
	var e entry

	switch {
	case len(def.Weighted) > 0:
		for _, w := range def.Weighted {
			if len(w.Index) == 0 {
				return e, errors.New("weighted entry without index")
			}
			if w.Weight <= 0 {
				return e, fmt.Errorf("weight must be positive, got %d", w.Weight)
			}
			e.weights = append(e.weights, tilemap.WeightedIndex{
				Indices: slices.Clone([]int(w.Index)),
				Weight:  w.Weight,
			})
		}
	case len(def.Index) > 0:
		e.weights = []tilemap.WeightedIndex{{Indices: slices.Clone([]int(def.Index)), Weight: 1}}
	}

	switch {
	case len(def.Pattern) > 0:
		for _, row := range def.Pattern {
			if len(row) == 0 {
				return e, errors.New("pattern has an empty row")
			}
			e.pattern = append(e.pattern, slices.Clone(row))
		}
	case len(e.weights) > 0 && len(e.weights[0].Indices) > 0:
		e.pattern = [][]int{{e.weights[0].Indices[0]}}
	}

	switch {
	case len(e.weights) > 0:
		e.index = e.weights[0].Indices[0]
	case len(e.pattern) > 0:
		e.index = e.pattern[0][0]
	default:
		return e, errors.New("no index, weighted list or pattern")
	}

	e.glyph = '?'
	if def.Glyph != "" {
		e.glyph = []rune(def.Glyph)[0]
	}

	e.color = tcell.ColorWhite
	if def.Color != "" {
		c, err := ParseHexColor(def.Color)
		if err != nil {
			return e, err
		}
		e.color = c
	}

	return e, nil
}

// Index returns the primary tile index of a role.
func (p *Palette) Index(r Role) int {
	return p.entries[r].index
}

// Weights returns the weighted index list of a role.
func (p *Palette) Weights(r Role) []tilemap.WeightedIndex {
	return p.entries[r].weights
}

// Pattern returns the multi-tile stamp of a role, one inner slice per row.
func (p *Palette) Pattern(r Role) [][]int {
	return p.entries[r].pattern
}

// Pick draws one index for a role according to its weights.
func (p *Palette) Pick(r Role, rng tilemap.Source) int {
	return tilemap.PickWeighted(p.entries[r].weights, rng)
}

// Indices returns every index a weighted pick for the role can produce.
func (p *Palette) Indices(r Role) []int {
	var out []int
	for _, w := range p.entries[r].weights {
		out = append(out, w.Indices...)
	}
	return out
}

// RoleOf returns the role that owns a tile index.
func (p *Palette) RoleOf(index int) (Role, bool) {
	r, ok := p.byIndex[index]
	return r, ok
}

// Passable returns the indices that never block movement.
func (p *Palette) Passable() []int {
	return slices.Clone(p.passable)
}

// Glyph returns the terminal rune of a role.
func (p *Palette) Glyph(r Role) rune {
	return p.entries[r].glyph
}

// Color returns the display color of a role.
func (p *Palette) Color(r Role) tcell.Color {
	return p.entries[r].color
}
