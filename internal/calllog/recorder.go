package calllog

import (
	"encoding/json"
	"fmt"
	"io"
	"sync"
)

// defaultLimit caps retained calls so a long-lived server does not grow
// without bound.
const defaultLimit = 1000

// Recorder keeps an in-memory ring of recorded calls.
// It is safe for concurrent use.
type Recorder struct {
	mu    sync.RWMutex
	calls []Call
	limit int
}

// NewRecorder creates a recorder retaining up to limit calls
// (0 means the default).
func NewRecorder(limit int) *Recorder {
	if limit <= 0 {
		limit = defaultLimit
	}
	return &Recorder{limit: limit}
}

// Record captures a call. Nil calls are ignored.
func (r *Recorder) Record(call *Call) {
	if call == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, *call)
	if len(r.calls) > r.limit {
		r.calls = r.calls[len(r.calls)-r.limit:]
	}
}

// List returns a copy of all retained calls, oldest first.
func (r *Recorder) List() []Call {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Call, len(r.calls))
	copy(out, r.calls)
	return out
}

// Len returns the number of retained calls.
func (r *Recorder) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.calls)
}

// WriteJSONL writes the retained calls to w, one JSON object per line.
func (r *Recorder) WriteJSONL(w io.Writer) error {
	enc := json.NewEncoder(w)
	for _, call := range r.List() {
		if err := enc.Encode(call); err != nil {
			return fmt.Errorf("failed to encode call %s: %w", call.ID, err)
		}
	}
	return nil
}
