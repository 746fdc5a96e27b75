// ============================================================================
// spiffy - SPIF Patent Number Checker
// ============================================================================
//
// Package:     workbook
// Description: xlsx access for the checker: sheet lookup, header columns,
//              row cells and appended result columns
// Author:      Mike Stoffels
// Created:     2025-12-14
// License:     MIT
// ============================================================================

package workbook

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	spferror "github.com/msto63/spiffy/pkg/core/error"
)

// Workbook is an opened xlsx file.
type Workbook struct {
	file *excelize.File
	path string
}

// Open opens an xlsx workbook.
func Open(path string) (*Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, spferror.Wrap(err, fmt.Sprintf("Error: unable to load '%s'\nDouble check that your file can open in Excel", path)).
			WithCode(spferror.CodeUnreadableWorkbook).
			WithOperation("workbook.Open").
			WithDetail("path", path)
	}
	return &Workbook{file: f, path: path}, nil
}

// Path returns the path the workbook was opened from.
func (w *Workbook) Path() string {
	return w.path
}

// SheetNames returns the titles of all sheets.
func (w *Workbook) SheetNames() []string {
	return w.file.GetSheetList()
}

// Sheet returns the sheet with the exact title name.
func (w *Workbook) Sheet(name string) (*Sheet, error) {
	found := false
	for _, s := range w.file.GetSheetList() {
		if s == name {
			found = true
			break
		}
	}
	if !found {
		return nil, spferror.Newf("Could not find a sheet named '%s' in the workbook.", name).
			WithCode(spferror.CodeSheetNotFound).
			WithOperation("workbook.Sheet").
			WithDetail("sheet", name)
	}

	rows, err := w.file.GetRows(name)
	if err != nil {
		return nil, spferror.Wrap(err, fmt.Sprintf("Error: unable to read sheet '%s'", name)).
			WithCode(spferror.CodeUnreadableWorkbook).
			WithOperation("workbook.Sheet")
	}

	s := &Sheet{file: w.file, name: name, rows: rows}
	for _, r := range rows {
		if len(r) > s.width {
			s.width = len(r)
		}
	}
	return s, nil
}

// SaveAs writes the workbook to path.
func (w *Workbook) SaveAs(path string) error {
	if err := w.file.SaveAs(path); err != nil {
		return spferror.Wrap(err, fmt.Sprintf("Error: unable to write results to '%s'", path)).
			WithCode(spferror.CodeWriteFailed).
			WithOperation("workbook.SaveAs").
			WithDetail("path", path)
	}
	return nil
}

// Close releases the workbook.
func (w *Workbook) Close() error {
	return w.file.Close()
}

// Sheet is one worksheet. Row 1 is the header; data rows are addressed
// 0-based from row 2 on. Cell values are cached when the sheet is opened and
// kept in sync by SetCell.
type Sheet struct {
	file  *excelize.File
	name  string
	rows  [][]string
	width int
}

// Name returns the sheet title.
func (s *Sheet) Name() string {
	return s.name
}

// Header returns the cells of row 1.
func (s *Sheet) Header() []string {
	if len(s.rows) == 0 {
		return nil
	}
	return s.rows[0]
}

// RowCount returns the number of used rows, header included.
func (s *Sheet) RowCount() int {
	return len(s.rows)
}

// Rows returns the number of data rows.
func (s *Sheet) Rows() int {
	if len(s.rows) <= 1 {
		return 0
	}
	return len(s.rows) - 1
}

// Width returns the number of used columns across all rows.
func (s *Sheet) Width() int {
	return s.width
}

// Cell returns the value of data row row, column col (both 0-based).
func (s *Sheet) Cell(row, col int) string {
	r := row + 1
	if row < 0 || r >= len(s.rows) || col < 0 || col >= len(s.rows[r]) {
		return ""
	}
	return s.rows[r][col]
}

// SetCell writes value into data row row, column col (both 0-based).
func (s *Sheet) SetCell(row, col int, value string) error {
	if row < 0 {
		return fmt.Errorf("row %d is negative", row)
	}
	return s.set(row+1, col, value)
}

func (s *Sheet) set(r, col int, value string) error {
	cell, err := excelize.CoordinatesToCellName(col+1, r+1)
	if err != nil {
		return err
	}
	if err := s.file.SetCellStr(s.name, cell, value); err != nil {
		return err
	}

	for len(s.rows) <= r {
		s.rows = append(s.rows, nil)
	}
	for len(s.rows[r]) <= col {
		s.rows[r] = append(s.rows[r], "")
	}
	s.rows[r][col] = value
	if col+1 > s.width {
		s.width = col + 1
	}
	return nil
}

// Locate resolves header names in row 1 to 0-based column positions.
// All missing names are reported in one error.
func (s *Sheet) Locate(names ...string) (map[string]int, error) {
	positions := make(map[string]int, len(names))
	for i, h := range s.Header() {
		for _, n := range names {
			if h == n {
				if _, seen := positions[n]; !seen {
					positions[n] = i
				}
			}
		}
	}

	var missing []string
	for _, n := range names {
		if _, ok := positions[n]; !ok {
			missing = append(missing, fmt.Sprintf("Error: Could not find a column named '%s' in the first row of the sheet '%s'", n, s.name))
		}
	}
	if len(missing) > 0 {
		return nil, spferror.New(strings.Join(missing, "\n")).
			WithCode(spferror.CodeColumnNotFound).
			WithOperation("workbook.Locate").
			WithDetail("sheet", s.name).
			WithDetail("missing", len(missing))
	}
	return positions, nil
}

// EnsureData fails when the sheet holds no row below the header.
func (s *Sheet) EnsureData() error {
	if s.Rows() < 1 {
		return spferror.Newf("Error: There does not appear to be data in column A other than the headings, only %d row(s) found in total", s.RowCount()).
			WithCode(spferror.CodeNoDataRows).
			WithOperation("workbook.EnsureData").
			WithDetail("sheet", s.name)
	}
	return nil
}

// AppendColumns writes headers into row 1 right after the last used column
// and returns their 0-based positions.
func (s *Sheet) AppendColumns(headers ...string) ([]int, error) {
	start := s.width
	positions := make([]int, len(headers))
	for i, h := range headers {
		col := start + i
		if err := s.set(0, col, h); err != nil {
			return nil, err
		}
		positions[i] = col
	}
	return positions, nil
}
