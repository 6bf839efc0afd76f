// Package grid provides tile coordinates, bounds checking and neighbor
// enumeration for a square tilemap.
package grid

import "fmt"

// TilePos identifies a single cell of the tilemap. Comparison is by value,
// so TilePos can be used directly as a map key.
type TilePos struct {
	X, Y uint32
}

// String returns the position as "(x,y)".
func (p TilePos) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Size holds the tilemap dimensions in tiles. Immutable after map generation.
type Size struct {
	Width, Height uint32
}

// Contains returns true if the position lies within [0,width)x[0,height).
func (s Size) Contains(p TilePos) bool {
	return p.X < s.Width && p.Y < s.Height
}

// Count returns the total number of cells in the map.
func (s Size) Count() uint32 {
	return s.Width * s.Height
}

// PosToIndex returns the row-major index of p within a map of the given size.
func PosToIndex(p TilePos, s Size) uint32 {
	return p.Y*s.Width + p.X
}

// FromSigned converts a possibly-negative coordinate pair to a TilePos,
// reporting false when the pair falls outside the map bounds.
func FromSigned(x, y int32, s Size) (TilePos, bool) {
	if x < 0 || y < 0 || uint32(x) >= s.Width || uint32(y) >= s.Height {
		return TilePos{}, false
	}
	return TilePos{X: uint32(x), Y: uint32(y)}, true
}

// Offset returns the position displaced by (dx,dy), reporting false when the
// result leaves the map.
func Offset(p TilePos, dx, dy int32, s Size) (TilePos, bool) {
	return FromSigned(int32(p.X)+dx, int32(p.Y)+dy, s)
}
