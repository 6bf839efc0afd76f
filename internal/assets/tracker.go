package assets

// Tracker is the set of pending asset handles registered during startup.
// Each subsystem that owns loadable content registers its handles here, and
// the tracker's aggregate state gates world generation. Cleared once the
// gate has consumed the fully-loaded signal.
type Tracker struct {
	statuses map[Handle]Status
	order    []Handle
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{statuses: make(map[Handle]Status)}
}

// Register adds a handle in the Loading state. Re-registering a handle is a
// no-op so a subsystem may register before kicking off its load.
func (t *Tracker) Register(h Handle) {
	if _, ok := t.statuses[h]; ok {
		return
	}
	t.statuses[h] = StatusLoading
	t.order = append(t.order, h)
}

// MarkLoaded records that the handle's asset is fully available.
func (t *Tracker) MarkLoaded(h Handle) {
	if _, ok := t.statuses[h]; ok {
		t.statuses[h] = StatusLoaded
	}
}

// MarkFailed records that the handle's asset failed to load.
func (t *Tracker) MarkFailed(h Handle) {
	if _, ok := t.statuses[h]; ok {
		t.statuses[h] = StatusFailed
	}
}

// Status reports a single handle's status; false when the handle was never
// registered.
func (t *Tracker) Status(h Handle) (Status, bool) {
	s, ok := t.statuses[h]
	return s, ok
}

// Handles returns the registered handles in registration order.
func (t *Tracker) Handles() []Handle {
	return t.order
}

// State reduces all registered handles to one composite status. An empty
// tracker reports Loaded.
func (t *Tracker) State() Status {
	return GroupLoadState(t.Status, t.order)
}

// Clear drops all registered handles. Called once the gate has opened and
// the pending set has served its purpose.
func (t *Tracker) Clear() {
	t.statuses = make(map[Handle]Status)
	t.order = nil
}
