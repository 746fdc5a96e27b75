// Package workbooktest builds xlsx fixtures for tests.
package workbooktest

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

// Sheet is the content of one fixture sheet; the first row is the header.
type Sheet struct {
	Name string
	Rows [][]string
}

// Write creates an xlsx file at path with the given sheets.
func Write(t testing.TB, path string, sheets ...Sheet) {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for i, s := range sheets {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", s.Name); err != nil {
				t.Fatalf("rename sheet: %v", err)
			}
		} else if _, err := f.NewSheet(s.Name); err != nil {
			t.Fatalf("new sheet %q: %v", s.Name, err)
		}

		for r, row := range s.Rows {
			cell, err := excelize.CoordinatesToCellName(1, r+1)
			if err != nil {
				t.Fatalf("cell name: %v", err)
			}
			values := make([]interface{}, len(row))
			for c, v := range row {
				values[c] = v
			}
			if err := f.SetSheetRow(s.Name, cell, &values); err != nil {
				t.Fatalf("write row %d: %v", r+1, err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save %s: %v", path, err)
	}
}

// WriteTemp creates name inside t.TempDir() and returns its path.
func WriteTemp(t testing.TB, name string, sheets ...Sheet) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	Write(t, path, sheets...)
	return path
}

// ReadRows returns the rows of a sheet of an existing workbook.
func ReadRows(t testing.TB, path, sheet string) [][]string {
	t.Helper()

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheet)
	if err != nil {
		t.Fatalf("read %s: %v", sheet, err)
	}
	return rows
}
