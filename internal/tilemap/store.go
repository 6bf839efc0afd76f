package tilemap

import "github.com/martin-jw/santas-little-digger/internal/grid"

// Store maps each tile position to the entity occupying it. At most one
// live entity exists per position; Set replaces the previous occupant as a
// single swap, never a partial field update.
type Store struct {
	size  grid.Size
	tiles map[grid.TilePos]*Entity
}

// NewStore creates an empty store for a map of the given size.
func NewStore(size grid.Size) *Store {
	return &Store{
		size:  size,
		tiles: make(map[grid.TilePos]*Entity, size.Count()),
	}
}

// Get returns the entity at pos, or false when the cell is empty.
func (s *Store) Get(pos grid.TilePos) (*Entity, bool) {
	e, ok := s.tiles[pos]
	return e, ok
}

// Set places an entity at pos, returning the entity it replaced (nil when
// the cell was empty). The replaced entity's identity is dead from this
// point on; callers must not retain it.
func (s *Store) Set(pos grid.TilePos, e *Entity) *Entity {
	prev := s.tiles[pos]
	s.tiles[pos] = e
	return prev
}

// Len returns the number of occupied cells.
func (s *Store) Len() int {
	return len(s.tiles)
}

// Size returns the map extent the store was built for.
func (s *Store) Size() grid.Size {
	return s.size
}
