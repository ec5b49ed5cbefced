package status

import (
	"maps"
	"slices"
	"sync"
)

// MetricMap holds named metric cells of type T
// Cells are created once under the lock, writers keep the pointer and update it atomically
type MetricMap[T any] struct {
	mu    sync.RWMutex
	cells map[string]*T
}

func NewMetricMap[T any]() *MetricMap[T] {
	return &MetricMap[T]{cells: make(map[string]*T)}
}

// Get returns the cell for key, registering it on first use
func (m *MetricMap[T]) Get(key string) *T {
	if p, ok := m.Lookup(key); ok {
		return p
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.cells[key]
	if !ok {
		p = new(T)
		m.cells[key] = p
	}
	return p
}

// Lookup returns the cell for key without registering it
func (m *MetricMap[T]) Lookup(key string) (*T, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.cells[key]
	return p, ok
}

// Range visits cells in key order, fn must not register new keys
func (m *MetricMap[T]) Range(fn func(key string, cell *T)) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, k := range slices.Sorted(maps.Keys(m.cells)) {
		fn(k, m.cells[k])
	}
}

func (m *MetricMap[T]) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.cells)
}
