// Package actor provides grid-locked entities and the interpolation that
// animates them between adjacent cells.
package actor

import "github.com/martin-jw/santas-little-digger/internal/grid"

// CenterFunc converts a tile position to its world-space center. The tilemap
// supplies this; the actor itself is projection-agnostic.
type CenterFunc func(grid.TilePos) (x, y float64)

// moveTo is the transient movement state. Its presence means the rendered
// position is interpolating and GridPos has not yet been committed to the
// target.
type moveTo struct {
	target   grid.TilePos
	elapsed  float64
	duration float64
}

// Actor is an entity that occupies one grid cell and renders at a
// continuous world position. GridPos is authoritative; WorldX/WorldY lag
// behind it only while a move is in flight.
type Actor struct {
	GridPos        grid.TilePos
	WorldX, WorldY float64
	Glyph          rune

	move *moveTo
}

// New creates an actor at the given cell, snapped to its world center.
func New(pos grid.TilePos, glyph rune, center CenterFunc) *Actor {
	a := &Actor{GridPos: pos, Glyph: glyph}
	a.WorldX, a.WorldY = center(pos)
	return a
}

// Moving reports whether a movement interpolation is in flight.
func (a *Actor) Moving() bool {
	return a.move != nil
}

// Target returns the cell the actor is currently moving toward.
func (a *Actor) Target() (grid.TilePos, bool) {
	if a.move == nil {
		return grid.TilePos{}, false
	}
	return a.move.target, true
}

// StartMove begins interpolating toward target over the given duration.
// Only an idle actor accepts a move; a request against a moving actor is
// caller contract misuse and is rejected without state change. Adjacency and
// terrain eligibility are the caller's responsibility.
func (a *Actor) StartMove(target grid.TilePos, duration float64) bool {
	if a.move != nil {
		return false
	}
	a.move = &moveTo{target: target, duration: duration}
	return true
}

// Update advances the interpolation by dt. When the elapsed time reaches the
// duration the grid position is committed to the target, the world position
// snaps to the target's center and the actor returns to idle. Otherwise the
// world position is the linear blend of the source and target centers at
// elapsed/duration, which stays in [0,1) on this branch.
func (a *Actor) Update(dt float64, center CenterFunc) {
	if a.move == nil {
		return
	}

	a.move.elapsed += dt
	if a.move.elapsed >= a.move.duration {
		a.GridPos = a.move.target
		a.WorldX, a.WorldY = center(a.GridPos)
		a.move = nil
		return
	}

	t := a.move.elapsed / a.move.duration
	sx, sy := center(a.GridPos)
	ex, ey := center(a.move.target)
	a.WorldX = sx + (ex-sx)*t
	a.WorldY = sy + (ey-sy)*t
}
