package mirror

import (
	"context"
	"sync"
)

// Memory is a process-local slot. Contents do not survive a restart.
type Memory struct {
	mu    sync.Mutex
	data  []byte
	saves int
}

// NewMemory creates an empty in-memory slot.
func NewMemory() *Memory {
	return &Memory{}
}

// Load returns a copy of the slot contents.
func (m *Memory) Load(_ context.Context) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.data == nil {
		return nil, ErrSlotEmpty
	}

	return append([]byte(nil), m.data...), nil
}

// Save replaces the slot contents.
func (m *Memory) Save(_ context.Context, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.data = append([]byte{}, data...)
	m.saves++

	return nil
}

// Saves reports how many times Save has been called.
func (m *Memory) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.saves
}
