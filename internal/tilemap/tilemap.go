package tilemap

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/martin-jw/santas-little-digger/internal/grid"
	"github.com/martin-jw/santas-little-digger/internal/telemetry"
	"github.com/martin-jw/santas-little-digger/internal/tiledata"
)

// Tilemap is the grid-world simulation core. It owns the entity store
// exclusively; other layers only read the positions and identities it
// exposes. All updates run to completion within a single tick.
type Tilemap struct {
	ID       uuid.UUID
	Size     grid.Size
	TileSize float64 // world units per cell

	registry *tiledata.Registry
	store    *Store
	digs     map[grid.TilePos]*DigTimer
	log      *zap.Logger
}

// New creates an empty tilemap. Call Generate before using it.
func New(registry *tiledata.Registry, size grid.Size, tileSize float64, log *zap.Logger) *Tilemap {
	if log == nil {
		log = zap.NewNop()
	}
	return &Tilemap{
		ID:       uuid.New(),
		Size:     size,
		TileSize: tileSize,
		registry: registry,
		store:    NewStore(size),
		digs:     make(map[grid.TilePos]*DigTimer),
		log:      log,
	}
}

// Generate populates every cell of the map: invisible ice everywhere, with a
// visible 3x3 ground clearing in the center. Afterwards every in-bounds
// position holds exactly one tile; lookups that miss are treated as
// invariant violations from here on.
func (m *Tilemap) Generate(ctx context.Context) error {
	tracer := telemetry.Tracer("tilemap")
	_, span := tracer.Start(ctx, "tilemap.generate")
	defer span.End()

	startTime := time.Now()

	for x := uint32(0); x < m.Size.Width; x++ {
		for y := uint32(0); y < m.Size.Height; y++ {
			pos := grid.TilePos{X: x, Y: y}
			e, err := m.spawn(tiledata.IceTile, pos, false)
			if err != nil {
				return err
			}
			m.store.Set(pos, e)
		}
	}

	cx := int32(m.Size.Width / 2)
	cy := int32(m.Size.Height / 2)
	for dx := int32(-1); dx <= 1; dx++ {
		for dy := int32(-1); dy <= 1; dy++ {
			pos, ok := grid.FromSigned(cx+dx, cy+dy, m.Size)
			if !ok {
				continue
			}
			e, err := m.spawn(tiledata.GroundTile, pos, true)
			if err != nil {
				return err
			}
			m.store.Set(pos, e)
		}
	}

	// Full auto-tile pass now that every cell is populated, then spread
	// the clearing's visibility to its surroundings.
	for pos, e := range m.store.tiles {
		m.recomputeAt(pos)
		m.propagateVisibility(e)
	}

	span.SetAttributes(
		attribute.Int("tilemap.width", int(m.Size.Width)),
		attribute.Int("tilemap.height", int(m.Size.Height)),
		attribute.Int("tilemap.tiles", m.store.Len()),
		attribute.Int64("tilemap.generation_us", time.Since(startTime).Microseconds()),
	)

	m.log.Info("tilemap generated",
		zap.Uint32("width", m.Size.Width),
		zap.Uint32("height", m.Size.Height),
		zap.Int("tiles", m.store.Len()),
	)
	return nil
}

// spawn builds an entity from the named definition. A name missing from the
// registry is a configuration error: the data pack is invalid.
func (m *Tilemap) spawn(name string, pos grid.TilePos, visible bool) (*Entity, error) {
	def, ok := m.registry.Get(name)
	if !ok {
		return nil, fmt.Errorf("tile definition %q not found in registry", name)
	}
	return newEntity(def, pos, m.ID, visible), nil
}

// Replace swaps the entity at pos for a fresh one built from the named
// definition. The swap is atomic from the point of view of the rest of the
// tick: auto-tiling recomputation for the position and its orthogonal
// neighbors, and any visibility spread, happen before Replace returns.
func (m *Tilemap) Replace(pos grid.TilePos, name string, visible bool) (*Entity, error) {
	e, err := m.spawn(name, pos, visible)
	if err != nil {
		return nil, err
	}

	m.store.Set(pos, e)
	m.recomputeAround(pos)
	m.propagateVisibility(e)
	return e, nil
}

// Tile returns the entity at pos, or false when pos is outside the map.
func (m *Tilemap) Tile(pos grid.TilePos) (*Entity, bool) {
	return m.store.Get(pos)
}

// mustTile returns the entity at an in-bounds position. Post-generation the
// grid is fully populated, so a miss means the store has been corrupted.
func (m *Tilemap) mustTile(pos grid.TilePos) *Entity {
	e, ok := m.store.Get(pos)
	if !ok {
		panic(fmt.Sprintf("tilemap: no tile at in-bounds position %v", pos))
	}
	return e
}

// CenterInWorld returns the world-space center of the cell at pos for the
// square-grid projection.
func (m *Tilemap) CenterInWorld(pos grid.TilePos) (x, y float64) {
	return (float64(pos.X) + 0.5) * m.TileSize, (float64(pos.Y) + 0.5) * m.TileSize
}
