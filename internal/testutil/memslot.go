// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"sync"
)

// MemSlot is an in-memory implementation of storage.Slot for testing.
type MemSlot struct {
	mu   sync.RWMutex
	data map[string][]byte

	// Puts counts successful Put calls per key.
	Puts map[string]int

	// Error injection for testing
	GetErr    error
	PutErr    error
	DeleteErr error
}

// NewMemSlot creates an empty MemSlot.
func NewMemSlot() *MemSlot {
	return &MemSlot{
		data: make(map[string][]byte),
		Puts: make(map[string]int),
	}
}

// Set stores raw bytes under key without counting a Put.
func (m *MemSlot) Set(key string, data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = append([]byte(nil), data...)
}

// Raw returns the bytes stored under key.
func (m *MemSlot) Raw(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.data[key]
	return string(data), ok
}

// Get implements storage.Slot.
func (m *MemSlot) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if m.GetErr != nil {
		return nil, false, m.GetErr
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.data[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), data...), true, nil
}

// Put implements storage.Slot.
func (m *MemSlot) Put(ctx context.Context, key string, data []byte) error {
	if m.PutErr != nil {
		return m.PutErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = append([]byte(nil), data...)
	m.Puts[key]++
	return nil
}

// Delete implements storage.Slot.
func (m *MemSlot) Delete(ctx context.Context, key string) error {
	if m.DeleteErr != nil {
		return m.DeleteErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

// Close implements storage.Slot.
func (m *MemSlot) Close() error { return nil }
