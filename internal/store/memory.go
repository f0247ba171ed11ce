package store

import (
	"context"
	"sync"
)

// Memory is an in-memory Store, used in tests and as a fallback when no
// database path is available.
type Memory struct {
	mu   sync.RWMutex
	data map[string]string

	// FailSet, when set, is returned from every Set call. Tests use it to
	// exercise best-effort persistence.
	FailSet error
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{data: make(map[string]string)}
}

func (m *Memory) Get(ctx context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *Memory) Set(ctx context.Context, key, value string) error {
	if m.FailSet != nil {
		return m.FailSet
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}
