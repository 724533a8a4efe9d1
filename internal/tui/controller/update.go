package controller

import (
	"time"

	"feeboard/internal/tui/model"
	"feeboard/internal/tui/view"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// Update is the central message routing function of the dashboard. It
// directs every message to its handler, then refreshes the log viewport.
func Update(msg tea.Msg, m *model.Model) (*model.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg.(type) {
	case spinner.TickMsg, model.NewLogEntryMsg, model.LiveUpdateMsg:
	default:
		LogDebug(m, "Received msg: %T", msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return quit(m)
		}
		if m.CurrentAppMode == model.ModeMainDashboard && m.FocusedInput != model.InputNone {
			m, cmd = handleKeyMsgInputMode(m, msg)
		} else {
			m, cmd = handleKeyMsgGlobal(m, msg)
		}
		cmds = append(cmds, cmd)

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height

	case model.RecommendResultMsg:
		cmds = append(cmds, handleRecommendResult(m, msg))
	case model.EstimateResultMsg:
		cmds = append(cmds, handleEstimateResult(m, msg))
	case model.CompareResultMsg:
		cmds = append(cmds, handleCompareResult(m, msg))
	case model.MinerTargetsResultMsg:
		cmds = append(cmds, handleMinerTargetsResult(m, msg))
	case model.HistoryResultMsg:
		cmds = append(cmds, handleHistoryResult(m, msg))

	case model.LiveUpdateMsg:
		m = handleLiveUpdate(m, msg)
		cmds = append(cmds, model.ListenForLiveUpdatesCmd(m.LiveUpdates))

	case model.NewLogEntryMsg:
		m = handleNewLogEntry(m, msg)
		cmds = append(cmds, model.ListenForLogEntriesCmd(m.LogChannel))

	case model.ClearStatusBarMsg:
		m.StatusBarMessage = ""
		m.StatusBarMessageType = model.StatusBarInfo
		m.StatusBarClearCancel = nil

	case spinner.TickMsg:
		m.Spinner, cmd = m.Spinner.Update(msg)
		cmds = append(cmds, cmd)

	case tea.MouseMsg:
		if m.CurrentAppMode == model.ModeLogOverlay {
			m.LogViewport, cmd = m.LogViewport.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	if m.ActivityLogDirty || m.LogViewportLastWidth != m.LogViewport.Width {
		m.LogViewport.SetContent(view.PrepareLogContent(m.ActivityLog))
		if m.CurrentAppMode != model.ModeLogOverlay || m.LogViewport.AtBottom() {
			m.LogViewport.GotoBottom()
		}
		m.LogViewportLastWidth = m.LogViewport.Width
		m.ActivityLogDirty = false
	}

	return m, tea.Batch(cmds...)
}

// quit stops the live poller, the only thing that needs tearing down.
func quit(m *model.Model) (*model.Model, tea.Cmd) {
	m.CurrentAppMode = model.ModeQuitting
	m.QuittingMessage = "Stopping live poller..."
	m.QuitApp = true
	if m.Poller != nil {
		m.Poller.Stop()
	}
	return m, tea.Quit
}

const statusBarDuration = 3 * time.Second
