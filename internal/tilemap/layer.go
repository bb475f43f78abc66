// Package tilemap provides the layered tile grid the level is painted onto.
package tilemap

import "github.com/zyedidia/generic/mapset"

// Empty is the index of a cell with no tile.
const Empty = -1

// Tile is a single cell of a layer.
type Tile struct {
	Index int
	Alpha float64
}

// IsEmpty returns true if no tile has been placed in the cell.
func (t Tile) IsEmpty() bool {
	return t.Index == Empty
}

// Layer is a named 2D grid of tiles addressed by (x, y).
type Layer struct {
	name   string
	width  int
	height int
	tiles  []Tile

	collision bool
	excluded  mapset.Set[int]
	callbacks map[int]func(x, y int)
}

func newLayer(name string, width, height int) *Layer {
	tiles := make([]Tile, width*height)
	for i := range tiles {
		tiles[i] = Tile{Index: Empty, Alpha: 1}
	}
	return &Layer{
		name:      name,
		width:     width,
		height:    height,
		tiles:     tiles,
		excluded:  mapset.New[int](),
		callbacks: make(map[int]func(x, y int)),
	}
}

// Name returns the layer name.
func (l *Layer) Name() string {
	return l.name
}

// Width returns the layer width in tiles.
func (l *Layer) Width() int {
	return l.width
}

// Height returns the layer height in tiles.
func (l *Layer) Height() int {
	return l.height
}

// InBounds returns true if (x, y) addresses a cell of the layer.
func (l *Layer) InBounds(x, y int) bool {
	return x >= 0 && x < l.width && y >= 0 && y < l.height
}

// TileAt returns the tile at (x, y). The second result is false out of bounds.
func (l *Layer) TileAt(x, y int) (Tile, bool) {
	if !l.InBounds(x, y) {
		return Tile{Index: Empty, Alpha: 1}, false
	}
	return l.tiles[y*l.width+x], true
}

// IndexAt returns the tile index at (x, y), or Empty out of bounds.
func (l *Layer) IndexAt(x, y int) int {
	t, _ := l.TileAt(x, y)
	return t.Index
}

// Fill sets every cell of the layer to index. Alpha is left untouched.
func (l *Layer) Fill(index int) *Layer {
	for i := range l.tiles {
		l.tiles[i].Index = index
	}
	return l
}

// PutTileAt places index at (x, y). Writes outside the layer are dropped.
func (l *Layer) PutTileAt(index, x, y int) {
	if !l.InBounds(x, y) {
		return
	}
	l.tiles[y*l.width+x].Index = index
}

// PutTilesAt stamps a pattern with its top-left cell at (x, y).
// Each inner slice is one row of the pattern.
func (l *Layer) PutTilesAt(pattern [][]int, x, y int) {
	for row, indices := range pattern {
		for col, index := range indices {
			l.PutTileAt(index, x+col, y+row)
		}
	}
}

// WeightedRandomize fills the w*h region at (x, y) with indices drawn from weights,
// one independent draw per cell in row-major order.
func (l *Layer) WeightedRandomize(x, y, w, h int, weights []WeightedIndex, rng Source) {
	if len(weights) == 0 {
		return
	}
	for ty := y; ty < y+h; ty++ {
		for tx := x; tx < x+w; tx++ {
			l.PutTileAt(PickWeighted(weights, rng), tx, ty)
		}
	}
}

// ForEachTileIn calls fn for every in-bounds cell of the w*h region at (x, y).
func (l *Layer) ForEachTileIn(x, y, w, h int, fn func(t *Tile)) {
	for ty := max(y, 0); ty < min(y+h, l.height); ty++ {
		for tx := max(x, 0); tx < min(x+w, l.width); tx++ {
			fn(&l.tiles[ty*l.width+tx])
		}
	}
}

// SetCollisionByExclusion marks every index collidable except the given ones.
func (l *Layer) SetCollisionByExclusion(indices ...int) {
	l.collision = true
	l.excluded = mapset.New[int]()
	for _, index := range indices {
		l.excluded.Put(index)
	}
}

// Collides returns true if the cell at (x, y) blocks movement.
// Cells outside the layer always collide.
func (l *Layer) Collides(x, y int) bool {
	if !l.InBounds(x, y) {
		return true
	}
	if !l.collision {
		return false
	}
	return !l.excluded.Has(l.tiles[y*l.width+x].Index)
}

// SetTileIndexCallback registers fn to run when something touches a tile with index.
// A nil fn removes the callback.
func (l *Layer) SetTileIndexCallback(index int, fn func(x, y int)) {
	if fn == nil {
		delete(l.callbacks, index)
		return
	}
	l.callbacks[index] = fn
}

// Touch fires the callback registered for the tile at (x, y), if any.
// Returns true if a callback ran.
func (l *Layer) Touch(x, y int) bool {
	if !l.InBounds(x, y) {
		return false
	}
	fn, ok := l.callbacks[l.tiles[y*l.width+x].Index]
	if !ok {
		return false
	}
	fn(x, y)
	return true
}
