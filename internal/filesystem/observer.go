package filesystem

import "sync/atomic"

// Operation names reported to the Observer.
const (
	OpStat         = "stat"
	OpReadDir      = "readdir"
	OpEvalSymlinks = "evalsymlinks"
	OpOpen         = "open"
)

// Observer records filesystem operation metrics. Implementations are provided
// by the metrics package to break the import cycle between filesystem and metrics.
type Observer interface {
	// ObserveOperation records duration and outcome for a filesystem operation.
	// operation is one of the Op* constants. outcome is "ok", "not_found" or "error".
	ObserveOperation(operation, outcome string, durationSeconds float64)
}

type observerHolder struct {
	o Observer
}

// defaultObserver is the package-level observer set at startup.
// If unset, metric recording is silently skipped (safe for tests).
var defaultObserver atomic.Pointer[observerHolder]

// SetObserver sets the package-level metrics observer.
// Call this once at startup after creating the observer implementation.
func SetObserver(o Observer) {
	if o == nil {
		defaultObserver.Store(nil)
		return
	}
	defaultObserver.Store(&observerHolder{o: o})
}

// observe is a nil-safe helper for the package-level observer.
func observe() Observer {
	if h := defaultObserver.Load(); h != nil {
		return h.o
	}
	return nil
}
