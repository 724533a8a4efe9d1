package controller

import (
	"strings"

	"feeboard/internal/api"
	"feeboard/internal/render"
	"feeboard/internal/tui/model"
	"feeboard/pkg/logging"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// handleKeyMsgGlobal processes key presses when no text input is focused.
// It governs overlays, tab navigation and the per-tab actions.
func handleKeyMsgGlobal(m *model.Model, keyMsg tea.KeyMsg) (*model.Model, tea.Cmd) {
	// --- Overlay-specific key handling --------------------------------------
	if m.CurrentAppMode == model.ModeLogOverlay {
		switch keyMsg.String() {
		case "L", "esc":
			m.CurrentAppMode = model.ModeMainDashboard
			return m, nil
		case "y":
			if err := clipboard.WriteAll(strings.Join(m.ActivityLog, "\n")); err != nil {
				logging.Error(controllerSubsystem, err, "Failed to copy logs")
				return m, m.SetStatusMessage("Copy logs failed", model.StatusBarError, statusBarDuration)
			}
			return m, m.SetStatusMessage("Logs copied to clipboard", model.StatusBarSuccess, statusBarDuration)
		case "k", "up", "j", "down", "pgup", "pgdown", "home", "end":
			var vpCmd tea.Cmd
			m.LogViewport, vpCmd = m.LogViewport.Update(keyMsg)
			return m, vpCmd
		case "q":
			return quit(m)
		default:
			return m, nil
		}
	}

	if m.CurrentAppMode == model.ModeHelpOverlay {
		if key.Matches(keyMsg, m.Keys.Esc) || key.Matches(keyMsg, m.Keys.Help) {
			m.CurrentAppMode = model.ModeMainDashboard
			return m, nil
		}
		if key.Matches(keyMsg, m.Keys.Quit) {
			return quit(m)
		}
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.Keys.Quit):
		return quit(m)
	case key.Matches(keyMsg, m.Keys.Help):
		m.CurrentAppMode = model.ModeHelpOverlay
		return m, nil
	case key.Matches(keyMsg, m.Keys.ToggleLog):
		m.CurrentAppMode = model.ModeLogOverlay
		m.LogViewport.GotoBottom()
		return m, nil
	case key.Matches(keyMsg, m.Keys.ToggleDebug):
		m.DebugMode = !m.DebugMode
		return m, nil
	case key.Matches(keyMsg, m.Keys.Tab):
		return m, activateTab(m, m.Tabs.Neighbor(1))
	case key.Matches(keyMsg, m.Keys.ShiftTab):
		return m, activateTab(m, m.Tabs.Neighbor(-1))
	case key.Matches(keyMsg, m.Keys.JumpTab):
		idx := int(keyMsg.String()[0] - '1')
		return m, activateTab(m, model.Tabs[idx])
	}

	switch m.Tabs.Active {
	case model.TabRecommend:
		return handleRecommendKeys(m, keyMsg)
	case model.TabEstimate:
		return handleEstimateKeys(m, keyMsg)
	case model.TabCompare:
		switch {
		case key.Matches(keyMsg, m.Keys.Explain):
			m.CompareExplain = nextExplain(m.CompareExplain)
		case key.Matches(keyMsg, m.Keys.Refresh), key.Matches(keyMsg, m.Keys.Enter):
			return m, startCompare(m)
		}
	case model.TabHistory:
		if key.Matches(keyMsg, m.Keys.Refresh) || key.Matches(keyMsg, m.Keys.Enter) {
			return m, startHistory(m)
		}
	case model.TabMinerTargets:
		switch {
		case key.Matches(keyMsg, m.Keys.EditInput):
			return m, m.FocusInput(model.InputMinerCount)
		case key.Matches(keyMsg, m.Keys.Refresh), key.Matches(keyMsg, m.Keys.Enter):
			return m, startMinerTargets(m)
		}
	}
	return m, nil
}

func handleRecommendKeys(m *model.Model, keyMsg tea.KeyMsg) (*model.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, m.Keys.Priority):
		m.Priority = nextPriority(m.Priority)
	case key.Matches(keyMsg, m.Keys.Explain):
		m.RecommendExplain = nextExplain(m.RecommendExplain)
	case key.Matches(keyMsg, m.Keys.Refresh), key.Matches(keyMsg, m.Keys.Enter):
		return m, startRecommend(m)
	case key.Matches(keyMsg, m.Keys.CopyFee):
		return m, copyFee(m, m.SingleResult)
	}
	return m, nil
}

func handleEstimateKeys(m *model.Model, keyMsg tea.KeyMsg) (*model.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, m.Keys.EditInput):
		return m, m.FocusInput(model.InputCustomFee)
	case key.Matches(keyMsg, m.Keys.Explain):
		m.EstimateExplain = nextExplain(m.EstimateExplain)
	case key.Matches(keyMsg, m.Keys.Refresh), key.Matches(keyMsg, m.Keys.Enter):
		return m, startEstimate(m)
	case key.Matches(keyMsg, m.Keys.CopyFee):
		return m, copyFee(m, m.EstimateResult)
	}
	return m, nil
}

// copyFee puts the recommended fee of a visible slot on the clipboard.
func copyFee(m *model.Model, slot model.ResultSlot) tea.Cmd {
	if !slot.Visible {
		return m.SetStatusMessage("Nothing to copy yet", model.StatusBarWarning, statusBarDuration)
	}
	fee := render.Number(slot.Rec.RecommendedFeeSatVB)
	if err := clipboard.WriteAll(fee); err != nil {
		logging.Error(controllerSubsystem, err, "Failed to copy fee")
		return m.SetStatusMessage("Copy fee failed", model.StatusBarError, statusBarDuration)
	}
	return m.SetStatusMessage("Copied "+fee+" sat/vB", model.StatusBarSuccess, statusBarDuration)
}

func nextPriority(p api.Priority) api.Priority {
	for i, candidate := range api.Priorities {
		if candidate == p {
			return api.Priorities[(i+1)%len(api.Priorities)]
		}
	}
	return api.Priorities[0]
}

func nextExplain(e api.ExplainMode) api.ExplainMode {
	for i, candidate := range api.ExplainModes {
		if candidate == e {
			return api.ExplainModes[(i+1)%len(api.ExplainModes)]
		}
	}
	return api.ExplainModes[0]
}
