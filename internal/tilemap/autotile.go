package tilemap

import (
	"go.uber.org/zap"

	"github.com/martin-jw/santas-little-digger/internal/grid"
	"github.com/martin-jw/santas-little-digger/internal/tiledata"
)

// maskOffsets translates a 4-bit neighbor-difference mask into a texture
// offset. The ordering is a fixed convention of the texture atlas, not a
// formula; do not reorder.
var maskOffsets = map[uint8]uint32{
	0:  0,
	15: 1,
	1:  2,
	2:  3,
	4:  4,
	8:  5,
	3:  6,
	6:  7,
	12: 8,
	9:  9,
	10: 10,
	5:  11,
	11: 12,
	7:  13,
	14: 14,
	13: 15,
}

// offsetFor resolves a neighbor mask to its atlas offset. A mask outside the
// 4-bit domain cannot occur under correct neighbor enumeration; it degrades
// to the base texture rather than crash rendering.
func (m *Tilemap) offsetFor(mask uint8) uint32 {
	offset, ok := maskOffsets[mask]
	if !ok {
		m.log.Warn("neighbor mask outside 4-bit domain, falling back to base texture",
			zap.Uint8("mask", mask))
		return 0
	}
	return offset
}

// neighborMask computes which of the four orthogonal neighbors differ in
// tile type from the subject. A neighbor beyond the map edge counts as
// different, the same as an absent tile.
func (m *Tilemap) neighborMask(e *Entity) uint8 {
	var mask uint8
	for _, d := range grid.Orthogonal {
		np, ok := grid.NeighborPos(e.Pos, d, m.Size)
		if !ok {
			mask |= d.Bit()
			continue
		}
		if m.mustTile(np).Type != e.Type {
			mask |= d.Bit()
		}
	}
	return mask
}

// recomputeAt resolves the displayed texture index for the tile at pos.
// Single textures are fixed; directional textures add the mask offset to
// their base index.
func (m *Tilemap) recomputeAt(pos grid.TilePos) {
	e := m.mustTile(pos)
	switch tex := e.Texture.(type) {
	case tiledata.Single:
		e.Display = tex.Index
	case tiledata.Directional:
		e.Display = tex.Base + m.offsetFor(m.neighborMask(e))
	}
}

// recomputeAround recomputes the tile at pos and all of its orthogonal
// neighbors. Called after every entity replacement: the neighbors' masks may
// have changed along with the subject's.
func (m *Tilemap) recomputeAround(pos grid.TilePos) {
	m.recomputeAt(pos)
	for _, n := range grid.Neighbors(pos, m.Size, false) {
		m.recomputeAt(n.Pos)
	}
}
