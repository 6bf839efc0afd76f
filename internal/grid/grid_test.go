package grid

import "testing"

func TestPosToIndex(t *testing.T) {
	size := Size{Width: 31, Height: 31}

	tests := []struct {
		pos  TilePos
		want uint32
	}{
		{TilePos{0, 0}, 0},
		{TilePos{30, 0}, 30},
		{TilePos{0, 1}, 31},
		{TilePos{5, 5}, 160},
		{TilePos{30, 30}, 960},
	}

	for _, tt := range tests {
		if got := PosToIndex(tt.pos, size); got != tt.want {
			t.Errorf("PosToIndex(%v) = %d, want %d", tt.pos, got, tt.want)
		}
	}
}

func TestFromSigned(t *testing.T) {
	size := Size{Width: 10, Height: 8}

	tests := []struct {
		x, y int32
		ok   bool
	}{
		{0, 0, true},
		{9, 7, true},
		{-1, 0, false},
		{0, -1, false},
		{10, 0, false},
		{0, 8, false},
	}

	for _, tt := range tests {
		pos, ok := FromSigned(tt.x, tt.y, size)
		if ok != tt.ok {
			t.Errorf("FromSigned(%d,%d) ok = %v, want %v", tt.x, tt.y, ok, tt.ok)
		}
		if ok && (pos.X != uint32(tt.x) || pos.Y != uint32(tt.y)) {
			t.Errorf("FromSigned(%d,%d) = %v", tt.x, tt.y, pos)
		}
	}
}

func TestDirectionBits(t *testing.T) {
	// The mask bit assignment is a fixed convention shared with the
	// auto-tiling offset table.
	wantBits := map[Direction]uint8{
		North: 1,
		East:  2,
		South: 4,
		West:  8,
	}
	for d, want := range wantBits {
		if got := d.Bit(); got != want {
			t.Errorf("%v.Bit() = %d, want %d", d, got, want)
		}
	}

	for _, d := range []Direction{NorthEast, SouthEast, SouthWest, NorthWest} {
		if got := d.Bit(); got != 0 {
			t.Errorf("%v.Bit() = %d, want 0 for diagonal", d, got)
		}
	}
}

func TestNeighborsInterior(t *testing.T) {
	size := Size{Width: 5, Height: 5}
	center := TilePos{2, 2}

	ortho := Neighbors(center, size, false)
	if len(ortho) != 4 {
		t.Fatalf("expected 4 orthogonal neighbors, got %d", len(ortho))
	}

	want := map[Direction]TilePos{
		North: {2, 3},
		East:  {3, 2},
		South: {2, 1},
		West:  {1, 2},
	}
	for _, n := range ortho {
		if want[n.Dir] != n.Pos {
			t.Errorf("neighbor %v = %v, want %v", n.Dir, n.Pos, want[n.Dir])
		}
	}

	all := Neighbors(center, size, true)
	if len(all) != 8 {
		t.Errorf("expected 8 square neighbors, got %d", len(all))
	}
}

func TestNeighborsCorner(t *testing.T) {
	size := Size{Width: 5, Height: 5}

	// Origin corner: only North and East survive the bounds filter.
	ortho := Neighbors(TilePos{0, 0}, size, false)
	if len(ortho) != 2 {
		t.Fatalf("expected 2 orthogonal neighbors at corner, got %d", len(ortho))
	}
	for _, n := range ortho {
		if n.Dir != North && n.Dir != East {
			t.Errorf("unexpected corner neighbor direction %v", n.Dir)
		}
	}

	// With diagonals, the NE cell joins in.
	all := Neighbors(TilePos{0, 0}, size, true)
	if len(all) != 3 {
		t.Errorf("expected 3 square neighbors at corner, got %d", len(all))
	}
}

func TestOffsetBounds(t *testing.T) {
	size := Size{Width: 3, Height: 3}

	if _, ok := Offset(TilePos{0, 0}, -1, 0, size); ok {
		t.Error("Offset off the west edge should fail")
	}
	if _, ok := Offset(TilePos{2, 2}, 1, 0, size); ok {
		t.Error("Offset off the east edge should fail")
	}
	if pos, ok := Offset(TilePos{1, 1}, 1, -1, size); !ok || (pos != TilePos{2, 0}) {
		t.Errorf("Offset(1,1 by 1,-1) = %v, %v", pos, ok)
	}
}
