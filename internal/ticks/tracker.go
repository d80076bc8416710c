// Package ticks tracks which questions a user has marked as solved.
package ticks

import "sync"

// Tracker is an in-memory key to solved mapping. Entries survive new searches.
type Tracker struct {
	mu    sync.RWMutex
	ticks map[string]bool
}

func NewTracker() *Tracker {
	return &Tracker{ticks: make(map[string]bool)}
}

// Toggle flips the state of key and returns the new value. A missing key is
// treated as unticked. An empty key is ignored and creates no entry.
func (t *Tracker) Toggle(key string) bool {
	if key == "" {
		return false
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	t.ticks[key] = !t.ticks[key]
	return t.ticks[key]
}

func (t *Tracker) IsTicked(key string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.ticks[key]
}

// Snapshot returns a copy of the current state.
func (t *Tracker) Snapshot() map[string]bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make(map[string]bool, len(t.ticks))
	for k, v := range t.ticks {
		out[k] = v
	}
	return out
}
