package actor

import (
	"testing"

	"github.com/martin-jw/santas-little-digger/internal/grid"
)

// center mirrors the tilemap's square-grid projection for 16-unit tiles.
func center(pos grid.TilePos) (float64, float64) {
	return (float64(pos.X) + 0.5) * 16.0, (float64(pos.Y) + 0.5) * 16.0
}

func TestNewSnapsToCellCenter(t *testing.T) {
	a := New(grid.TilePos{X: 5, Y: 5}, '@', center)

	if a.WorldX != 88.0 || a.WorldY != 88.0 {
		t.Errorf("spawn world position = (%v,%v), want (88,88)", a.WorldX, a.WorldY)
	}
	if a.Moving() {
		t.Error("fresh actor should be idle")
	}
}

func TestMoveMidpointAndCommit(t *testing.T) {
	a := New(grid.TilePos{X: 5, Y: 5}, '@', center)

	if !a.StartMove(grid.TilePos{X: 6, Y: 5}, 0.5) {
		t.Fatal("StartMove on idle actor should succeed")
	}

	// Halfway through the duration the rendered position is the exact
	// midpoint of the two cell centers, and the grid position has not
	// moved yet.
	a.Update(0.25, center)
	if a.WorldX != 96.0 || a.WorldY != 88.0 {
		t.Errorf("midpoint = (%v,%v), want (96,88)", a.WorldX, a.WorldY)
	}
	if (a.GridPos != grid.TilePos{X: 5, Y: 5}) {
		t.Errorf("grid position committed early: %v", a.GridPos)
	}
	if !a.Moving() {
		t.Error("actor should still be moving at the midpoint")
	}

	// Reaching the duration commits the grid position, snaps the world
	// position and clears the movement state.
	a.Update(0.25, center)
	if (a.GridPos != grid.TilePos{X: 6, Y: 5}) {
		t.Errorf("grid position = %v, want (6,5)", a.GridPos)
	}
	if a.WorldX != 104.0 || a.WorldY != 88.0 {
		t.Errorf("final world position = (%v,%v), want (104,88)", a.WorldX, a.WorldY)
	}
	if a.Moving() {
		t.Error("movement state should be gone after the commit")
	}
}

func TestOvershootStillSnaps(t *testing.T) {
	a := New(grid.TilePos{X: 2, Y: 2}, '@', center)
	a.StartMove(grid.TilePos{X: 2, Y: 3}, 0.5)

	// A large tick overshoots the duration; the commit must still land
	// exactly on the target center.
	a.Update(2.0, center)
	if (a.GridPos != grid.TilePos{X: 2, Y: 3}) {
		t.Errorf("grid position = %v, want (2,3)", a.GridPos)
	}
	if a.WorldX != 40.0 || a.WorldY != 56.0 {
		t.Errorf("world position = (%v,%v), want (40,56)", a.WorldX, a.WorldY)
	}
}

func TestStartMoveWhileMovingRejected(t *testing.T) {
	a := New(grid.TilePos{X: 1, Y: 1}, '@', center)

	if !a.StartMove(grid.TilePos{X: 2, Y: 1}, 0.5) {
		t.Fatal("first StartMove should succeed")
	}
	if a.StartMove(grid.TilePos{X: 1, Y: 2}, 0.5) {
		t.Error("StartMove on a moving actor must be rejected")
	}

	// The original target is unaffected.
	target, ok := a.Target()
	if !ok || (target != grid.TilePos{X: 2, Y: 1}) {
		t.Errorf("target = %v, %v; want (2,1), true", target, ok)
	}
}

func TestUpdateIdleIsNoOp(t *testing.T) {
	a := New(grid.TilePos{X: 3, Y: 3}, '@', center)
	x, y := a.WorldX, a.WorldY

	a.Update(1.0, center)
	if a.WorldX != x || a.WorldY != y {
		t.Error("idle update must not move the actor")
	}
	if (a.GridPos != grid.TilePos{X: 3, Y: 3}) {
		t.Error("idle update must not change the grid position")
	}
}
