// ============================================================================
// spiffy - SPIF Patent Number Checker
// ============================================================================
//
// Package:     error
// Description: Error codes for fatal precondition failures
// Author:      Mike Stoffels
// Created:     2025-12-14
// License:     MIT
// ============================================================================

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown  Code = "UNKNOWN"
	CodeInternal Code = "INTERNAL"

	// Command line
	CodeUsage            Code = "USAGE"
	CodeInvalidExtension Code = "INVALID_EXTENSION"

	// Workbook structure
	CodeUnreadableWorkbook Code = "UNREADABLE_WORKBOOK"
	CodeSheetNotFound      Code = "SHEET_NOT_FOUND"
	CodeColumnNotFound     Code = "COLUMN_NOT_FOUND"
	CodeNoDataRows         Code = "NO_DATA_ROWS"

	// Output
	CodeInvalidOutput Code = "INVALID_OUTPUT"
	CodeWriteFailed   Code = "WRITE_FAILED"

	// Configuration
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeInvalidConfig Code = "INVALID_CONFIG"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsPrecondition reports whether the code marks a structural failure that
// is detected before any row is validated.
func (c Code) IsPrecondition() bool {
	switch c {
	case CodeUsage, CodeInvalidExtension, CodeUnreadableWorkbook,
		CodeSheetNotFound, CodeColumnNotFound, CodeNoDataRows, CodeInvalidOutput:
		return true
	default:
		return false
	}
}
