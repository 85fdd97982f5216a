package sheet

import (
	"context"
	"sync"
)

// MemoryStore keeps tables in process memory. It mirrors the positional
// semantics of the live store so the rest of the system runs unchanged when
// no spreadsheet is reachable. State does not survive a restart.
type MemoryStore struct {
	mu     sync.Mutex
	tables map[string][][]interface{}
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{tables: make(map[string][][]interface{})}
}

// Read returns the rows of the range's table from its start row onward.
func (m *MemoryStore) Read(_ context.Context, r Range) ([][]interface{}, error) {
	_, row, err := startOfRange(r.Cells)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	rows := m.tables[r.Table]
	start := row - 2
	if start >= len(rows) {
		return nil, nil
	}
	out := make([][]interface{}, 0, len(rows)-start)
	for _, row := range rows[start:] {
		out = append(out, copyRow(row))
	}
	return out, nil
}

// Append adds rows after the last data row of the table.
func (m *MemoryStore) Append(_ context.Context, r Range, rows [][]interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, row := range rows {
		m.tables[r.Table] = append(m.tables[r.Table], copyRow(row))
	}
	return nil
}

// Update overwrites cells positionally starting at the range's first cell,
// growing the table and individual rows as needed.
func (m *MemoryStore) Update(_ context.Context, r Range, rows [][]interface{}) error {
	col, row, err := startOfRange(r.Cells)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	table := m.tables[r.Table]
	start := row - 2
	for i, src := range rows {
		idx := start + i
		for idx >= len(table) {
			table = append(table, nil)
		}
		dst := table[idx]
		for j, cell := range src {
			for col+j >= len(dst) {
				dst = append(dst, "")
			}
			dst[col+j] = cell
		}
		table[idx] = dst
	}
	m.tables[r.Table] = table
	return nil
}

// Clear drops every row of the range's table from its start row onward.
func (m *MemoryStore) Clear(_ context.Context, r Range) error {
	_, row, err := startOfRange(r.Cells)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	table := m.tables[r.Table]
	start := row - 2
	if start < len(table) {
		m.tables[r.Table] = table[:start]
	}
	return nil
}

func copyRow(row []interface{}) []interface{} {
	out := make([]interface{}, len(row))
	copy(out, row)
	return out
}
