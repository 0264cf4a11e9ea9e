package app

import (
	"bytes"
	"strings"
	"testing"
)

func newBufLogger(level LogLevel) (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerConfig{Level: level, Output: &buf, Prefix: "reckon"})
	return logger, &buf
}

func TestLoggerLevelFiltering(t *testing.T) {
	logger, buf := newBufLogger(LogLevelWarn)

	logger.Debug("too quiet")
	logger.Info("still too quiet")
	logger.Warn("heard")
	logger.Error("also heard")

	out := buf.String()
	if strings.Contains(out, "too quiet") {
		t.Errorf("messages below the level leaked:\n%s", out)
	}
	if !strings.Contains(out, "[WARN] reckon: heard") {
		t.Errorf("warn line missing:\n%s", out)
	}
	if !strings.Contains(out, "[ERROR] reckon: also heard") {
		t.Errorf("error line missing:\n%s", out)
	}
}

func TestLoggerKeyValuePairs(t *testing.T) {
	logger, buf := newBufLogger(LogLevelInfo)

	logger.Info("calculation performed", "operation", "add", "result", 5)

	out := buf.String()
	if !strings.Contains(out, "operation=add") || !strings.Contains(out, "result=5") {
		t.Errorf("key=value pairs missing:\n%s", out)
	}
}

func TestLoggerWithComponent(t *testing.T) {
	logger, buf := newBufLogger(LogLevelInfo)

	logger.WithComponent("store").Info("saved")

	if !strings.Contains(buf.String(), "component=store") {
		t.Errorf("component field missing:\n%s", buf.String())
	}

	buf.Reset()
	logger.Info("plain")
	if strings.Contains(buf.String(), "component=") {
		t.Errorf("WithComponent must not mutate the parent logger:\n%s", buf.String())
	}
}

func TestLoggerSetLevel(t *testing.T) {
	logger, buf := newBufLogger(LogLevelError)

	logger.Info("dropped")
	logger.SetLevel(LogLevelDebug)
	logger.Debug("kept")

	out := buf.String()
	if strings.Contains(out, "dropped") || !strings.Contains(out, "kept") {
		t.Errorf("SetLevel did not take effect:\n%s", out)
	}
}

func TestLoggerDisable(t *testing.T) {
	logger, buf := newBufLogger(LogLevelDebug)

	logger.Disable()
	logger.Error("nothing")

	if buf.Len() != 0 {
		t.Errorf("disabled logger wrote output:\n%s", buf.String())
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want LogLevel
	}{
		{"debug", LogLevelDebug},
		{"info", LogLevelInfo},
		{"warn", LogLevelWarn},
		{"warning", LogLevelWarn},
		{"ERROR", LogLevelError},
		{"bogus", LogLevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLogLevel(tt.in); got != tt.want {
			t.Errorf("ParseLogLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
