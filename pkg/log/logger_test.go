package log

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestLoggerWritesToSink(t *testing.T) {
	var buf bytes.Buffer
	SetSink(&buf)
	defer SetSink(os.Stderr)

	logger := New("test")
	logger.Noticef("rendered %d rows", 42)

	out := buf.String()
	if !strings.Contains(out, "rendered 42 rows") {
		t.Errorf("Expected message in sink, got %q", out)
	}
	if !strings.Contains(out, "[test]") {
		t.Errorf("Expected module name in output, got %q", out)
	}
}

func TestSetLevelFiltersMessages(t *testing.T) {
	tests := []struct {
		name      string
		level     Level
		logFn     func(Logger)
		expectOut bool
	}{
		{"debug hidden at notice", Notice, func(l Logger) { l.Debug("hidden") }, false},
		{"info hidden at notice", Notice, func(l Logger) { l.Info("hidden") }, false},
		{"warning shown at notice", Notice, func(l Logger) { l.Warning("shown") }, true},
		{"info shown at info", Info, func(l Logger) { l.Infof("%s", "shown") }, true},
		{"debug shown at debug", Debug, func(l Logger) { l.Debugf("%s", "shown") }, true},
		{"notice hidden at error", Error, func(l Logger) { l.Notice("hidden") }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			SetSink(&buf)
			defer SetSink(os.Stderr)
			SetLevel(tt.level)

			tt.logFn(New("levels"))

			if got := buf.Len() > 0; got != tt.expectOut {
				t.Errorf("Expected output=%t, got %q", tt.expectOut, buf.String())
			}
		})
	}
}

func TestSinkOutputIsPlainText(t *testing.T) {
	var buf bytes.Buffer
	SetSink(&buf)
	defer SetSink(os.Stderr)

	New("plain").Warning("careful")

	out := buf.String()
	if !strings.Contains(out, "[WARNING] careful") {
		t.Errorf("Expected level and message, got %q", out)
	}
	if strings.Contains(out, "\x1b[") {
		t.Errorf("Expected no terminal color codes, got %q", out)
	}
}
