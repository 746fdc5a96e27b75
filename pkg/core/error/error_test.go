package error

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	msg := "test error message"
	err := New(msg)

	if err == nil {
		t.Fatal("New() returned nil")
	}
	if err.Error() != msg {
		t.Errorf("Error() = %q, want %q", err.Error(), msg)
	}
	if err.Code() != CodeUnknown {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeUnknown)
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		message  string
		wantNil  bool
		wantMsg  string
		wantCode Code
	}{
		{
			name:    "wrap nil error",
			err:     nil,
			message: "context",
			wantNil: true,
		},
		{
			name:     "wrap standard error",
			err:      errors.New("zip: not a valid zip file"),
			message:  "open workbook",
			wantMsg:  "open workbook: zip: not a valid zip file",
			wantCode: CodeUnknown,
		},
		{
			name:     "wrap coded error inherits code",
			err:      New("missing sheet").WithCode(CodeSheetNotFound),
			message:  "check",
			wantMsg:  "check: missing sheet",
			wantCode: CodeSheetNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Wrap(tt.err, tt.message)
			if tt.wantNil {
				if got != nil {
					t.Errorf("Wrap() = %v, want nil", got)
				}
				return
			}
			if got.Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got.Error(), tt.wantMsg)
			}
			if got.Code() != tt.wantCode {
				t.Errorf("Code() = %v, want %v", got.Code(), tt.wantCode)
			}
			if !errors.Is(got, tt.err) {
				t.Error("errors.Is should find the wrapped cause")
			}
		})
	}
}

func TestCodeOf(t *testing.T) {
	coded := New("no rows").WithCode(CodeNoDataRows)
	wrapped := fmt.Errorf("run: %w", coded)

	if got := CodeOf(wrapped); got != CodeNoDataRows {
		t.Errorf("CodeOf() = %v, want %v", got, CodeNoDataRows)
	}
	if !HasCode(wrapped, CodeNoDataRows) {
		t.Error("HasCode() should be true through fmt wrapping")
	}
	if got := CodeOf(errors.New("plain")); got != CodeUnknown {
		t.Errorf("CodeOf(plain) = %v, want %v", got, CodeUnknown)
	}
}

func TestMessageOf(t *testing.T) {
	err := Wrap(errors.New("permission denied"), "Error: unable to load 'a.xlsx'").
		WithCode(CodeUnreadableWorkbook)

	if got := MessageOf(err); got != "Error: unable to load 'a.xlsx'" {
		t.Errorf("MessageOf() = %q", got)
	}
	if got := MessageOf(errors.New("plain")); got != "plain" {
		t.Errorf("MessageOf(plain) = %q", got)
	}
	if got := MessageOf(nil); got != "" {
		t.Errorf("MessageOf(nil) = %q, want empty", got)
	}
}

func TestError_String(t *testing.T) {
	err := New("bad column").
		WithCode(CodeColumnNotFound).
		WithOperation("workbook.Locate").
		WithDetail("sheet", "Master Data - SPIF").
		WithDetail("column", "Application Number - SPIF")

	s := err.String()
	for _, want := range []string{"[COLUMN_NOT_FOUND]", "workbook.Locate:", "column=Application Number - SPIF", "sheet=Master Data - SPIF"} {
		if !strings.Contains(s, want) {
			t.Errorf("String() = %q, missing %q", s, want)
		}
	}
}

func TestCode_IsPrecondition(t *testing.T) {
	tests := []struct {
		code Code
		want bool
	}{
		{CodeUsage, true},
		{CodeSheetNotFound, true},
		{CodeNoDataRows, true},
		{CodeWriteFailed, false},
		{CodeConfigError, false},
		{CodeUnknown, false},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			if got := tt.code.IsPrecondition(); got != tt.want {
				t.Errorf("IsPrecondition() = %v, want %v", got, tt.want)
			}
		})
	}
}
