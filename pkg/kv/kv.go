// Package kv is the persistence boundary for the storefront's two
// persisted records: the current identity and the cart. Records are
// plain string-keyed blobs with no versioning; callers must treat an
// absent record as empty state.
package kv

import "sync"

// Store reads and writes string-keyed blobs.
type Store interface {
	// Get returns the blob for key, or ok=false when absent.
	Get(key string) ([]byte, bool, error)
	Set(key string, value []byte) error
	// Delete removes a record; deleting an absent key is not an error.
	Delete(key string) error
}

// Memory keeps records in-process. Used by tests and ephemeral runs.
type Memory struct {
	mu      sync.RWMutex
	records map[string][]byte
}

// NewMemory initializes an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{records: make(map[string][]byte)}
}

func (m *Memory) Get(key string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.records[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, true, nil
}

func (m *Memory) Set(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	v := make([]byte, len(value))
	copy(v, value)
	m.records[key] = v
	return nil
}

func (m *Memory) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.records, key)
	return nil
}
