package controller

import (
	"feeboard/internal/api"
	"feeboard/internal/config"
	"feeboard/internal/live"
	"feeboard/internal/tui/model"
	"feeboard/pkg/logging"

	tea "github.com/charmbracelet/bubbletea"
)

// NewProgram creates the dashboard program. The poller is started when the
// program starts and stopped when the user quits.
func NewProgram(
	cfg config.FeeboardConfig,
	feeAPI api.FeeAPI,
	poller *live.Poller,
	debugMode bool,
	logChannel <-chan logging.LogEntry,
) *tea.Program {
	m := model.InitializeModel(cfg, feeAPI, poller, debugMode, logChannel)
	app := NewAppModel(m)
	return tea.NewProgram(app, tea.WithAltScreen())
}
