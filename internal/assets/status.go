// Package assets tracks load progress of startup assets and gates map
// generation until everything is in.
package assets

// Status describes one asset handle's load progress.
type Status int

const (
	// StatusNotLoaded means the loader does not know the handle at all.
	StatusNotLoaded Status = iota
	// StatusLoading means the asset is still in progress.
	StatusLoading
	// StatusLoaded means the asset is fully available.
	StatusLoaded
	// StatusFailed means loading ended in an error.
	StatusFailed
)

// String returns a human-readable status name.
func (s Status) String() string {
	switch s {
	case StatusNotLoaded:
		return "not_loaded"
	case StatusLoading:
		return "loading"
	case StatusLoaded:
		return "loaded"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Handle identifies one loadable asset.
type Handle string

// StatusFunc reports the status of a handle. The second return is false when
// the handle is unknown to the loader.
type StatusFunc func(Handle) (Status, bool)

// GroupLoadState reduces the statuses of a set of handles to one composite
// status. The result is Loaded only when every handle is Loaded. A Failed
// handle dominates and short-circuits the remaining checks, as does a handle
// that is unknown or NotLoaded. Otherwise any in-progress handle degrades the
// result to Loading.
func GroupLoadState(status StatusFunc, handles []Handle) Status {
	state := StatusLoaded

	for _, h := range handles {
		s, known := status(h)
		if !known {
			return StatusNotLoaded
		}
		switch s {
		case StatusLoaded:
			continue
		case StatusLoading:
			state = StatusLoading
		case StatusFailed:
			return StatusFailed
		case StatusNotLoaded:
			return StatusNotLoaded
		}
	}

	return state
}
