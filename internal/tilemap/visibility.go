package tilemap

import (
	"github.com/martin-jw/santas-little-digger/internal/grid"
	"github.com/martin-jw/santas-little-digger/internal/tiledata"
)

// Reveal marks the tile at pos visible. Revealing a Walkable tile spreads to
// every surrounding tile, diagonals included. The spread is one-directional:
// hiding a tile never hides its neighbors.
func (m *Tilemap) Reveal(pos grid.TilePos) {
	e, ok := m.store.Get(pos)
	if !ok {
		return
	}
	e.Visible = true
	m.propagateVisibility(e)
}

// propagateVisibility applies the fog-of-war reveal rule for a single tile:
// a visible Walkable tile makes all eight square neighbors visible.
func (m *Tilemap) propagateVisibility(e *Entity) {
	if !e.Visible {
		return
	}
	switch e.Terrain.(type) {
	case tiledata.Walkable:
	case tiledata.Diggable, tiledata.Impassable:
		return
	}

	for _, n := range grid.Neighbors(e.Pos, m.Size, true) {
		if ne, ok := m.store.Get(n.Pos); ok {
			ne.Visible = true
		}
	}
}
