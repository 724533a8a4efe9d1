package logging

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    LogLevel
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{"INFO", LevelInfo, false},
		{"", LevelInfo, false},
		{"warning", LevelWarn, false},
		{"error", LevelError, false},
		{"loud", LevelInfo, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			assert.Equal(t, tt.want, got)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCLIModeWritesSubsystem(t *testing.T) {
	var buf bytes.Buffer
	InitForCLI(LevelInfo, &buf)

	Info("Gateway", "fetched %s", "/recommend")
	Debug("Gateway", "hidden below threshold")
	Error("Gateway", errors.New("boom"), "request failed")

	out := buf.String()
	assert.Contains(t, out, "fetched /recommend")
	assert.Contains(t, out, "subsystem=Gateway")
	assert.Contains(t, out, "error=boom")
	assert.NotContains(t, out, "hidden below threshold")
}

func TestTUIModeSendsEntries(t *testing.T) {
	ch := InitForTUI(LevelDebug)
	defer CloseTUIChannel()

	Warn("LivePoller", "tick %d failed", 3)

	select {
	case entry := <-ch:
		assert.Equal(t, LevelWarn, entry.Level)
		assert.Equal(t, "LivePoller", entry.Subsystem)
		assert.Equal(t, "tick 3 failed", entry.Message)
	case <-time.After(time.Second):
		require.Fail(t, "expected a log entry on the TUI channel")
	}
}

func TestLogEntryString(t *testing.T) {
	ts := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	e := LogEntry{Timestamp: ts, Level: LevelError, Subsystem: "Controller", Message: "oops", Err: errors.New("cause")}
	assert.Equal(t, "03:04:05.000 [ERROR] [Controller] oops -- Error: cause", e.String())
}
