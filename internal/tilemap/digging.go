package tilemap

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/martin-jw/santas-little-digger/internal/grid"
	"github.com/martin-jw/santas-little-digger/internal/tiledata"
)

// DigTimer tracks one tile's excavation progress. Its presence on a
// position is the Digging state; tiles without one are Intact.
type DigTimer struct {
	Elapsed  float64
	Duration float64
}

// DigDuration returns the excavation time for the given hardness.
func DigDuration(hardness float64) float64 {
	return 0.5 * (1.0 + hardness)
}

// StartDig begins excavating the tile at pos. Only Diggable tiles qualify;
// requests against any other terrain, an already-digging tile or an empty
// cell are contract misuse by the caller and are rejected without state
// change. Once started a dig always runs to completion.
func (m *Tilemap) StartDig(pos grid.TilePos) bool {
	e, ok := m.store.Get(pos)
	if !ok {
		return false
	}
	if _, digging := m.digs[pos]; digging {
		return false
	}

	switch terrain := e.Terrain.(type) {
	case tiledata.Diggable:
		m.digs[pos] = &DigTimer{Duration: DigDuration(terrain.Hardness)}
		m.log.Debug("digging started",
			zap.Stringer("pos", pos),
			zap.Float64("duration", m.digs[pos].Duration),
		)
		return true
	case tiledata.Walkable, tiledata.Impassable:
		return false
	default:
		return false
	}
}

// Digging returns the dig timer attached to pos, if any.
func (m *Tilemap) Digging(pos grid.TilePos) (*DigTimer, bool) {
	t, ok := m.digs[pos]
	return t, ok
}

// Tick advances every active dig timer by dt. A timer that reaches its
// duration atomically swaps the digging tile for visible ground; the
// replacement runs the auto-tiling and visibility rules before Tick moves
// on. A missing ground definition at completion is a fatal configuration
// error.
func (m *Tilemap) Tick(dt float64) error {
	for pos, timer := range m.digs {
		timer.Elapsed += dt
		if timer.Elapsed < timer.Duration {
			continue
		}

		delete(m.digs, pos)
		if _, err := m.Replace(pos, tiledata.GroundTile, true); err != nil {
			return fmt.Errorf("completing dig at %v: %w", pos, err)
		}
		m.log.Debug("digging finished", zap.Stringer("pos", pos))
	}
	return nil
}
