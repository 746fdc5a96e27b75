package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/msto63/spiffy/internal/validator"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"trace", zapcore.DebugLevel},
		{"INFO", zapcore.InfoLevel},
		{"", zapcore.InfoLevel},
		{"warning", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"bogus", zapcore.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseLevel(tt.input); got != tt.expected {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestNewLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerConfig{
		ServiceName: "spiffy",
		Level:       "info",
		Format:      "json",
		Output:      &buf,
	})

	logger.Debug("hidden")
	logger.Info("checked", zap.String(KeyRunID, "abc"))
	_ = logger.Sync()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1: %q", len(lines), buf.String())
	}

	var entry map[string]interface{}
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if entry["msg"] != "checked" {
		t.Errorf("msg = %v, want checked", entry["msg"])
	}
	if entry["logger"] != "spiffy" {
		t.Errorf("logger = %v, want spiffy", entry["logger"])
	}
	if entry[KeyRunID] != "abc" {
		t.Errorf("%s = %v, want abc", KeyRunID, entry[KeyRunID])
	}
}

func TestNewLogger_Text(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultLoggerConfig("spiffy")
	cfg.Level = "debug"
	cfg.Output = &buf

	logger := NewLogger(cfg)
	logger.Debug("row checked", OutcomeFields(3, validator.Validate(validator.Application, "US1234567"))...)
	_ = logger.Sync()

	out := buf.String()
	for _, want := range []string{"DEBUG", "row checked", `"identifier": "US1234567"`, `"status": "invalid"`} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q does not contain %q", out, want)
		}
	}
}

func TestNew(t *testing.T) {
	if New("test") == nil {
		t.Fatal("New() returned nil")
	}
}
