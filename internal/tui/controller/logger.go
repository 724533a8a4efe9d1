package controller

import (
	"feeboard/internal/tui/model"
	"feeboard/pkg/logging"
)

const controllerSubsystem = "Controller"

// LogDebug logs a debug-level message. It respects the TUI model's
// DebugMode flag.
func LogDebug(m *model.Model, format string, a ...interface{}) {
	if m != nil && m.DebugMode {
		logging.Debug(controllerSubsystem, format, a...)
	}
}

// handleNewLogEntry appends an entry to the activity log. Debug entries
// are only kept while debug mode is on.
func handleNewLogEntry(m *model.Model, msg model.NewLogEntryMsg) *model.Model {
	entry := msg.Entry
	if entry.Level >= logging.LevelInfo || m.DebugMode {
		model.AddRawLineToActivityLog(m, entry.String())
	}
	return m
}
