// ABOUTME: In-memory KV backend for tests.
// ABOUTME: Implements the same contract as the Charm and Badger backends.
package storage

import "sync"

// MemKV is an in-memory KV store. Used by unit and integration tests so the
// session store can be exercised without a database on disk.
type MemKV struct {
	mu   sync.RWMutex
	data map[string][]byte

	// FailWrites makes Set return an error, for testing best-effort saves.
	FailWrites bool
}

// NewMemKV returns an empty in-memory store.
func NewMemKV() *MemKV {
	return &MemKV{data: map[string][]byte{}}
}

func (m *MemKV) Get(key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	cp := make([]byte, len(data))
	copy(cp, data)
	return cp, nil
}

func (m *MemKV) Set(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWrites {
		return errQuotaExceeded
	}
	cp := make([]byte, len(value))
	copy(cp, value)
	m.data[key] = cp
	return nil
}

func (m *MemKV) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

func (m *MemKV) Keys() ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	keys := make([]string, 0, len(m.data))
	for k := range m.data {
		keys = append(keys, k)
	}
	return keys, nil
}

func (m *MemKV) Close() error { return nil }

var errQuotaExceeded = &quotaError{}

type quotaError struct{}

func (*quotaError) Error() string { return "quota exceeded" }
