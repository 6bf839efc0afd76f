package assets

import "testing"

func statusFromMap(m map[Handle]Status) StatusFunc {
	return func(h Handle) (Status, bool) {
		s, ok := m[h]
		return s, ok
	}
}

func TestGroupLoadState(t *testing.T) {
	tests := []struct {
		name     string
		statuses map[Handle]Status
		handles  []Handle
		want     Status
	}{
		{
			name:     "all loaded",
			statuses: map[Handle]Status{"a": StatusLoaded, "b": StatusLoaded},
			handles:  []Handle{"a", "b"},
			want:     StatusLoaded,
		},
		{
			name:     "one still loading",
			statuses: map[Handle]Status{"a": StatusLoaded, "b": StatusLoading},
			handles:  []Handle{"a", "b"},
			want:     StatusLoading,
		},
		{
			name:     "failure dominates",
			statuses: map[Handle]Status{"a": StatusLoaded, "b": StatusFailed},
			handles:  []Handle{"a", "b"},
			want:     StatusFailed,
		},
		{
			name:     "failure dominates loading",
			statuses: map[Handle]Status{"a": StatusFailed, "b": StatusLoading},
			handles:  []Handle{"a", "b"},
			want:     StatusFailed,
		},
		{
			name:     "unknown handle anywhere",
			statuses: map[Handle]Status{"a": StatusLoaded},
			handles:  []Handle{"a", "mystery"},
			want:     StatusNotLoaded,
		},
		{
			name:     "explicit not loaded",
			statuses: map[Handle]Status{"a": StatusNotLoaded, "b": StatusLoaded},
			handles:  []Handle{"a", "b"},
			want:     StatusNotLoaded,
		},
		{
			name:     "empty set is loaded",
			statuses: map[Handle]Status{},
			handles:  nil,
			want:     StatusLoaded,
		},
	}

	for _, tt := range tests {
		if got := GroupLoadState(statusFromMap(tt.statuses), tt.handles); got != tt.want {
			t.Errorf("%s: GroupLoadState = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestTrackerLifecycle(t *testing.T) {
	tracker := NewTracker()

	tracker.Register("tiles.json")
	tracker.Register("palette.json")

	if got := tracker.State(); got != StatusLoading {
		t.Errorf("freshly registered tracker state = %v, want Loading", got)
	}

	tracker.MarkLoaded("tiles.json")
	if got := tracker.State(); got != StatusLoading {
		t.Errorf("half-loaded tracker state = %v, want Loading", got)
	}

	tracker.MarkLoaded("palette.json")
	if got := tracker.State(); got != StatusLoaded {
		t.Errorf("fully loaded tracker state = %v, want Loaded", got)
	}

	tracker.Clear()
	if len(tracker.Handles()) != 0 {
		t.Error("Clear should drop all handles")
	}
}

func TestTrackerFailure(t *testing.T) {
	tracker := NewTracker()
	tracker.Register("tiles.json")
	tracker.Register("palette.json")
	tracker.MarkLoaded("tiles.json")
	tracker.MarkFailed("palette.json")

	if got := tracker.State(); got != StatusFailed {
		t.Errorf("tracker state = %v, want Failed", got)
	}
}

func TestTrackerDoubleRegister(t *testing.T) {
	tracker := NewTracker()
	tracker.Register("tiles.json")
	tracker.MarkLoaded("tiles.json")
	tracker.Register("tiles.json") // must not reset the status

	if got := tracker.State(); got != StatusLoaded {
		t.Errorf("tracker state after re-register = %v, want Loaded", got)
	}
}

func TestGateForwardOnly(t *testing.T) {
	var gate Gate

	if gate.State() != GateLoading {
		t.Fatalf("initial gate state = %v, want Loading", gate.State())
	}

	// Non-loaded statuses keep the gate shut.
	for _, s := range []Status{StatusLoading, StatusFailed, StatusNotLoaded} {
		if gate.Advance(s) {
			t.Errorf("Advance(%v) opened the gate", s)
		}
	}

	if !gate.Advance(StatusLoaded) {
		t.Error("Advance(Loaded) should report the Loading->Ready edge")
	}
	if gate.State() != GateReady {
		t.Errorf("gate state = %v, want Ready", gate.State())
	}

	// The edge fires exactly once, and the gate never moves back.
	if gate.Advance(StatusLoaded) {
		t.Error("second Advance(Loaded) should not fire the edge again")
	}
	if gate.Advance(StatusFailed) || gate.State() != GateReady {
		t.Error("a later failure must not regress the gate")
	}
}
