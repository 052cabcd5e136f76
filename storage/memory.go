package storage

import (
	"context"
	"sync"
)

// MemoryPrimitive provides thread-safe in-memory storage.
type MemoryPrimitive struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewMemoryPrimitive creates an empty in-memory primitive.
func NewMemoryPrimitive() *MemoryPrimitive {
	return &MemoryPrimitive{
		data: make(map[string]string),
	}
}

var defaultPrimitive = NewMemoryPrimitive()

// Default returns the process-wide primitive shared by every adapter that is
// not given one explicitly. Adapters sharing it are separated only by their
// namespace prefix.
func Default() *MemoryPrimitive {
	return defaultPrimitive
}

// GetItem retrieves a value by key.
func (m *MemoryPrimitive) GetItem(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	return v, ok, nil
}

// SetItem stores a value by key.
func (m *MemoryPrimitive) SetItem(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

// Keys returns all stored keys.
func (m *MemoryPrimitive) Keys() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	keys := make([]string, 0, len(m.data))
	for k := range m.data {
		keys = append(keys, k)
	}
	return keys
}

// Len returns the number of stored keys.
func (m *MemoryPrimitive) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}
