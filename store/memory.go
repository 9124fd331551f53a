package store

import (
	"context"
	"fmt"
	"sync"
)

// Memory is an in-memory Store. It backs tests and the "memory" backend used
// for local development.
type Memory struct {
	mu   sync.Mutex
	tabs map[string]*memTab
}

type memTab struct {
	header []string
	rows   [][]string
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{tabs: make(map[string]*memTab)}
}

// CreateTab registers a tab with its header row.
func (m *Memory) CreateTab(tab string, header []string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tabs[tab] = &memTab{header: append([]string(nil), header...)}
}

// Read implements Store.
func (m *Memory) Read(_ context.Context, tab string) ([]map[string]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.tabs[tab]
	if !ok {
		return nil, ErrTabNotFound
	}
	out := make([]map[string]string, 0, len(t.rows))
	for _, row := range t.rows {
		keyed := make(map[string]string, len(t.header))
		for i, col := range t.header {
			if i < len(row) {
				keyed[col] = row[i]
			} else {
				keyed[col] = ""
			}
		}
		out = append(out, keyed)
	}
	return out, nil
}

// Append implements Store.
func (m *Memory) Append(_ context.Context, tab string, rows [][]string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.tabs[tab]
	if !ok {
		return ErrTabNotFound
	}
	for _, row := range rows {
		t.rows = append(t.rows, append([]string(nil), row...))
	}
	return nil
}

// Delete implements Store. Position 1 is the header row and cannot be
// deleted.
func (m *Memory) Delete(_ context.Context, tab string, pos int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.tabs[tab]
	if !ok {
		return ErrTabNotFound
	}
	i := pos - 2
	if i < 0 || i >= len(t.rows) {
		return fmt.Errorf("row position %d out of range for tab %q", pos, tab)
	}
	t.rows = append(t.rows[:i], t.rows[i+1:]...)
	return nil
}

// Rows returns a copy of a tab's data rows, for assertions in tests and the
// CLI tools.
func (m *Memory) Rows(tab string) [][]string {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.tabs[tab]
	if !ok {
		return nil
	}
	out := make([][]string, len(t.rows))
	for i, row := range t.rows {
		out[i] = append([]string(nil), row...)
	}
	return out
}
