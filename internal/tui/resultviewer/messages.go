// ============================================================================
// spiffy - SPIF Patent Number Checker
// ============================================================================
//
// Package:     resultviewer
// Description: Entry and message types for the result viewer
// Author:      Mike Stoffels
// Created:     2025-12-14
// License:     MIT
// ============================================================================

package resultviewer

import (
	"github.com/msto63/spiffy/internal/service"
	"github.com/msto63/spiffy/internal/validator"
)

// Entry is one checked identifier
type Entry struct {
	SheetRow int
	Outcome  validator.Outcome
}

// Category groups outcomes for filtering
type Category int

const (
	CategoryOK Category = iota
	CategoryInvalid
	CategoryUnchecked
	CategoryUnsupported
)

// CategoryOf maps an outcome to its filter category
func CategoryOf(o validator.Outcome) Category {
	switch {
	case o.OK():
		return CategoryOK
	case o.Status == validator.Invalid:
		return CategoryInvalid
	case o.Unsupported():
		return CategoryUnsupported
	default:
		return CategoryUnchecked
	}
}

// EntriesFrom flattens checked rows into viewer entries, application first
func EntriesFrom(rows []service.RowView) []Entry {
	entries := make([]Entry, 0, 2*len(rows))
	for _, r := range rows {
		entries = append(entries,
			Entry{SheetRow: r.SheetRow, Outcome: r.Application},
			Entry{SheetRow: r.SheetRow, Outcome: r.Publication},
		)
	}
	return entries
}

// Message types for tea.Cmd async operations

// resultsLoadedMsg is sent when the workbook has been checked
type resultsLoadedMsg struct {
	entries []Entry
	sheet   string
	err     error
}
