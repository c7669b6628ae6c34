package cache

import (
	"sync"

	"github.com/paperfold/invoice-intel/internal/analysis"
)

// Memory is a bounded in-process Cache with FIFO eviction. Good enough
// for a single instance; swap for a shared store behind the same
// interface if results must survive restarts.
type Memory struct {
	mu      sync.RWMutex
	max     int
	entries map[string]analysis.Result
	order   []string
}

// NewMemory creates a cache holding at most max entries.
func NewMemory(max int) *Memory {
	if max <= 0 {
		max = 1024
	}
	return &Memory{
		max:     max,
		entries: make(map[string]analysis.Result, max),
		order:   make([]string, 0, max),
	}
}

func (m *Memory) Get(key string) (analysis.Result, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result, ok := m.entries[key]
	return result, ok
}

func (m *Memory) Put(key string, result analysis.Result) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.entries[key]; exists {
		m.entries[key] = result
		return
	}
	for len(m.order) >= m.max {
		oldest := m.order[0]
		m.order = m.order[1:]
		delete(m.entries, oldest)
	}
	m.entries[key] = result
	m.order = append(m.order, key)
}

func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}
