package assets

// GateState is the two-state machine that unlocks map generation.
type GateState int

const (
	// GateLoading means assets are still pending and the map may not be
	// generated yet.
	GateLoading GateState = iota
	// GateReady means all assets arrived and generation has been unlocked.
	GateReady
)

// String returns a human-readable gate state name.
func (s GateState) String() string {
	switch s {
	case GateLoading:
		return "loading"
	case GateReady:
		return "ready"
	default:
		return "unknown"
	}
}

// Gate turns the aggregate load status into a forward-only Loading -> Ready
// transition. Once ready it never moves back, regardless of later status
// values.
type Gate struct {
	state GateState
}

// State returns the current gate state.
func (g *Gate) State() GateState {
	return g.state
}

// Advance feeds the current aggregate status into the gate. It returns true
// exactly once, on the Loading -> Ready edge, so the caller can trigger map
// generation a single time.
func (g *Gate) Advance(status Status) bool {
	if g.state == GateReady {
		return false
	}
	if status == StatusLoaded {
		g.state = GateReady
		return true
	}
	return false
}
