package processor

import "fmt"

// MemoryTable is a Table backed by a slice of rows. Writes past the end of a
// row grow it; writes to a row index outside the table fail.
type MemoryTable struct {
	rows [][]string
}

// NewMemoryTable wraps rows without copying them.
func NewMemoryTable(rows [][]string) *MemoryTable {
	return &MemoryTable{rows: rows}
}

// Rows returns the number of rows.
func (m *MemoryTable) Rows() int {
	return len(m.rows)
}

// Cell returns the value at row, col or "" when the row is shorter.
func (m *MemoryTable) Cell(row, col int) string {
	if row < 0 || row >= len(m.rows) || col < 0 || col >= len(m.rows[row]) {
		return ""
	}
	return m.rows[row][col]
}

// SetCell stores value at row, col.
func (m *MemoryTable) SetCell(row, col int, value string) error {
	if row < 0 || row >= len(m.rows) {
		return fmt.Errorf("row %d out of range [0,%d)", row, len(m.rows))
	}
	if col < 0 {
		return fmt.Errorf("column %d is negative", col)
	}
	for len(m.rows[row]) <= col {
		m.rows[row] = append(m.rows[row], "")
	}
	m.rows[row][col] = value
	return nil
}

// Data returns the underlying rows.
func (m *MemoryTable) Data() [][]string {
	return m.rows
}
