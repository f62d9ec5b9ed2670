package prefs

import (
	"maps"
	"sync"
)

// MemStore is an in-memory Store used in tests and as the backing store
// for headless runs seeded with defaults.
type MemStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemStore creates a MemStore seeded with the given values.
// The seed map is copied; nil is allowed.
func NewMemStore(seed map[string]string) *MemStore {
	values := make(map[string]string, len(seed))
	maps.Copy(values, seed)
	return &MemStore{values: values}
}

// Get returns the stored value for key.
func (m *MemStore) Get(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok
}

// Set stores value under key. It never fails.
func (m *MemStore) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

// Snapshot returns a copy of all stored values.
func (m *MemStore) Snapshot() map[string]string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make(map[string]string, len(m.values))
	maps.Copy(out, m.values)
	return out
}
