package sheets

import (
	"context"
	"fmt"
	"sync"
)

// Write is one cell update recorded by Memory.
type Write struct {
	Row    int
	Header string
	Value  string
}

// Memory is a Sheet held in memory, for tests.
// FailOn makes SetField fail for a given header.
type Memory struct {
	mu      sync.Mutex
	stored  grid
	loaded  grid
	Writes  []Write
	Reloads int
	FailOn  map[string]error
}

// NewMemory builds a sheet from headers and rows.
func NewMemory(headers []string, rows ...[]string) *Memory {
	values := append([][]string{headers}, rows...)
	m := &Memory{stored: newGrid(values)}
	m.loaded = newGrid(m.values())
	return m
}

func (m *Memory) values() [][]string {
	values := [][]string{m.stored.headers}
	return append(values, m.stored.rows...)
}

func (m *Memory) Reload(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loaded = newGrid(m.values())
	m.Reloads++
	return nil
}

func (m *Memory) Records() []Record {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loaded.records()
}

func (m *Memory) SetField(ctx context.Context, rec Record, header, value string) error {
	m.mu.Lock()
	if err, ok := m.FailOn[header]; ok {
		m.mu.Unlock()
		return fmt.Errorf("set %s on row %d: %w", header, rec.Row(), err)
	}
	col, ok := m.stored.column(header)
	if !ok {
		m.stored.appendHeader(header)
	}
	m.stored.set(rec.Index, col, value)
	m.Writes = append(m.Writes, Write{Row: rec.Row(), Header: header, Value: value})
	m.mu.Unlock()

	return m.Reload(ctx)
}

// Value returns the stored value at record index and header.
func (m *Memory) Value(index int, header string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	recs := m.stored.records()
	if index >= len(recs) {
		return ""
	}
	return recs[index].Fields[header]
}
