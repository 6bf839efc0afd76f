package grid

// Direction is one of the eight square-grid neighbor directions. The four
// orthogonal directions carry the bit values used by the auto-tiling mask.
type Direction int

const (
	North Direction = iota
	East
	South
	West
	NorthEast
	SouthEast
	SouthWest
	NorthWest
)

// Orthogonal lists the four cardinal directions in mask-bit order.
var Orthogonal = [4]Direction{North, East, South, West}

// Square lists all eight directions, cardinals first.
var Square = [8]Direction{North, East, South, West, NorthEast, SouthEast, SouthWest, NorthWest}

// Bit returns the auto-tiling mask bit for an orthogonal direction
// (North=1, East=2, South=4, West=8). Diagonals have no mask bit.
func (d Direction) Bit() uint8 {
	switch d {
	case North:
		return 1
	case East:
		return 2
	case South:
		return 4
	case West:
		return 8
	default:
		return 0
	}
}

// Delta returns the coordinate displacement for the direction.
func (d Direction) Delta() (dx, dy int32) {
	switch d {
	case North:
		return 0, 1
	case East:
		return 1, 0
	case South:
		return 0, -1
	case West:
		return -1, 0
	case NorthEast:
		return 1, 1
	case SouthEast:
		return 1, -1
	case SouthWest:
		return -1, -1
	case NorthWest:
		return -1, 1
	default:
		return 0, 0
	}
}

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	case NorthEast:
		return "northeast"
	case SouthEast:
		return "southeast"
	case SouthWest:
		return "southwest"
	case NorthWest:
		return "northwest"
	default:
		return "unknown"
	}
}

// Neighbor holds one in-bounds neighboring position and the direction it
// lies in relative to the subject tile.
type Neighbor struct {
	Dir Direction
	Pos TilePos
}

// NeighborPos returns the position adjacent to p in direction d, reporting
// false when it falls outside the map.
func NeighborPos(p TilePos, d Direction, s Size) (TilePos, bool) {
	dx, dy := d.Delta()
	return Offset(p, dx, dy, s)
}

// Neighbors enumerates the in-bounds neighbors of p. With diagonal false
// only the four orthogonal directions are visited, yielding up to 4 entries;
// with diagonal true all eight square directions are visited, yielding up
// to 8. Positions outside the map are filtered out.
func Neighbors(p TilePos, s Size, diagonal bool) []Neighbor {
	dirs := Square[:4]
	if diagonal {
		dirs = Square[:]
	}

	result := make([]Neighbor, 0, len(dirs))
	for _, d := range dirs {
		if np, ok := NeighborPos(p, d, s); ok {
			result = append(result, Neighbor{Dir: d, Pos: np})
		}
	}
	return result
}
