package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

// saveAndRestoreLogger saves the current default logger and restores it on cleanup.
func saveAndRestoreLogger(t *testing.T) {
	t.Helper()
	original := slog.Default()
	t.Cleanup(func() {
		slog.SetDefault(original)
	})
}

func TestSetup_DebugMode(t *testing.T) {
	saveAndRestoreLogger(t)

	var buf bytes.Buffer
	Setup(Options{Debug: true, Writer: &buf})

	slog.Debug("parsed table", "columns", 3)

	output := buf.String()
	if !strings.Contains(output, "parsed table") {
		t.Errorf("expected debug message in output, got: %s", output)
	}
	if !strings.Contains(output, "columns=3") {
		t.Errorf("expected columns=3 in output, got: %s", output)
	}
}

func TestSetup_NormalMode(t *testing.T) {
	saveAndRestoreLogger(t)

	var buf bytes.Buffer
	Setup(Options{Writer: &buf})

	slog.Debug("debug message")
	slog.Info("info message")

	output := buf.String()
	if strings.Contains(output, "debug message") {
		t.Errorf("debug message should not appear in normal mode")
	}
	if !strings.Contains(output, "info message") {
		t.Errorf("info message should appear")
	}
}

func TestSetup_NilWriter(t *testing.T) {
	saveAndRestoreLogger(t)

	// Defaults to stderr.
	Setup(Options{})
	slog.Info("test")
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Options{Debug: true, Format: FormatJSON, Writer: &buf})

	logger.Debug("debug json", "key", "value")
	logger.Info("info json")

	output := buf.String()
	if !strings.Contains(output, `"msg":"debug json"`) {
		t.Errorf("expected debug message in JSON output, got: %s", output)
	}
	if !strings.Contains(output, `"key":"value"`) {
		t.Errorf("expected key in JSON output, got: %s", output)
	}
	if !strings.Contains(output, `"msg":"info json"`) {
		t.Errorf("expected info message in JSON output, got: %s", output)
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
		ok   bool
	}{
		{"", FormatText, true},
		{"text", FormatText, true},
		{" JSON ", FormatJSON, true},
		{"xml", "", false},
	}
	for _, tt := range tests {
		got, ok := ParseFormat(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseFormat(%q) = %q, %v; want %q, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}
