package tilemap

// Map is a fixed-size stack of layers sharing one tile geometry.
type Map struct {
	Width      int // In tiles
	Height     int
	TileWidth  int // In pixels
	TileHeight int

	layers []*Layer
}

// New creates a map with no layers.
func New(width, height, tileWidth, tileHeight int) *Map {
	return &Map{
		Width:      width,
		Height:     height,
		TileWidth:  tileWidth,
		TileHeight: tileHeight,
	}
}

// CreateBlankLayer adds a layer of empty tiles at full alpha and returns it.
// Layers are drawn in creation order.
func (m *Map) CreateBlankLayer(name string) *Layer {
	l := newLayer(name, m.Width, m.Height)
	m.layers = append(m.layers, l)
	return l
}

// Layer returns the layer with the given name, or nil.
func (m *Map) Layer(name string) *Layer {
	for _, l := range m.layers {
		if l.name == name {
			return l
		}
	}
	return nil
}

// Layers returns the layers in draw order.
func (m *Map) Layers() []*Layer {
	return m.layers
}

// WidthInPixels returns the map width in pixels.
func (m *Map) WidthInPixels() int {
	return m.Width * m.TileWidth
}

// HeightInPixels returns the map height in pixels.
func (m *Map) HeightInPixels() int {
	return m.Height * m.TileHeight
}

// TileToWorldX returns the pixel x of the left edge of tile column tx.
func (m *Map) TileToWorldX(tx int) int {
	return tx * m.TileWidth
}

// TileToWorldY returns the pixel y of the top edge of tile row ty.
func (m *Map) TileToWorldY(ty int) int {
	return ty * m.TileHeight
}

// Collides returns true if any layer blocks movement into (x, y).
func (m *Map) Collides(x, y int) bool {
	for _, l := range m.layers {
		if l.Collides(x, y) {
			return true
		}
	}
	return false
}
