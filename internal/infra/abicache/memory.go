package abicache

import (
	"context"
	"sync"
)

// Memory is the default process-local ABI cache.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]string
}

func NewMemory() *Memory {
	return &Memory{entries: make(map[string]string)}
}

func (m *Memory) Get(_ context.Context, address string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	abiJSON, ok := m.entries[address]
	return abiJSON, ok
}

func (m *Memory) Set(_ context.Context, address, abiJSON string) {
	m.mu.Lock()
	m.entries[address] = abiJSON
	m.mu.Unlock()
}

func (m *Memory) Close() error { return nil }
