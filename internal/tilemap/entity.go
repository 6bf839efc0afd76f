// Package tilemap owns the live tile grid: generation, the per-cell entity
// store, auto-tiling, visibility and the digging state machine.
package tilemap

import (
	"github.com/google/uuid"

	"github.com/martin-jw/santas-little-digger/internal/grid"
	"github.com/martin-jw/santas-little-digger/internal/tiledata"
)

// Entity is the live content of one cell. It is the identity the rendering
// and gameplay layers reference. Terrain and texture changes never mutate an
// entity in place; the cell's entity is replaced wholesale so consumers can
// treat a new ID as the "changed" signal.
type Entity struct {
	ID        uuid.UUID
	TilemapID uuid.UUID
	Pos       grid.TilePos
	Type      string           // auto-tiling group; same-type tiles connect
	Terrain   tiledata.Terrain // traversal behaviour
	Texture   tiledata.Texture // texture rule
	Glyph     rune
	Color     string
	Visible   bool
	Display   uint32 // resolved texture index, kept current by auto-tiling
}

// newEntity builds a fresh entity from a definition. The display index
// starts at the texture's base; directional tiles are corrected by the
// auto-tiling pass that follows every placement.
func newEntity(def *tiledata.Definition, pos grid.TilePos, tilemapID uuid.UUID, visible bool) *Entity {
	e := &Entity{
		ID:        uuid.New(),
		TilemapID: tilemapID,
		Pos:       pos,
		Type:      def.Type,
		Terrain:   def.Terrain,
		Texture:   def.Texture,
		Glyph:     def.GlyphRune(),
		Color:     def.Color,
		Visible:   visible,
	}

	switch tex := def.Texture.(type) {
	case tiledata.Single:
		e.Display = tex.Index
	case tiledata.Directional:
		e.Display = tex.Base
	}
	return e
}

// TextureOffset returns the auto-tiling offset currently applied to a
// directional tile, and 0 for single-texture tiles.
func (e *Entity) TextureOffset() uint32 {
	if tex, ok := e.Texture.(tiledata.Directional); ok {
		return e.Display - tex.Base
	}
	return 0
}
