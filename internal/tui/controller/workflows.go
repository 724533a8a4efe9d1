package controller

import (
	"feeboard/internal/params"
	"feeboard/internal/render"
	"feeboard/internal/tui/model"
	"feeboard/pkg/logging"

	tea "github.com/charmbracelet/bubbletea"
)

// activateTab shows tab and starts the load its activation asks for.
func activateTab(m *model.Model, tab model.Tab) tea.Cmd {
	m.FocusInput(model.InputNone)
	switch m.Tabs.Activate(tab) {
	case model.LoadHistory:
		return startHistory(m)
	case model.LoadCompare:
		return startCompare(m)
	case model.LoadMinerTargets:
		return startMinerTargets(m)
	}
	return nil
}

// discard reports whether a result belongs to a superseded request.
func discard(m *model.Model, w model.Workflow, gen uint64) bool {
	if m.Gen.IsCurrent(w, gen) {
		return false
	}
	LogDebug(m, "Discarding stale %s result (generation %d, current %d)", w, gen, m.Gen.Current(w))
	return true
}

func loading(text string) model.StatusLine {
	return model.StatusLine{Text: text, Loading: true}
}

func failed(err error) model.StatusLine {
	return model.StatusLine{Text: err.Error(), IsError: true}
}

// ---- Recommend ----

func startRecommend(m *model.Model) tea.Cmd {
	m.SingleResult.Hide()
	m.EstimateResult.Hide()
	m.Status = loading(model.RecommendLoading)
	gen := m.Gen.Next(model.WorkflowRecommend)
	LogDebug(m, "Requesting %s recommendation (generation %d)", m.Priority, gen)
	return model.FetchRecommendationCmd(m.FeeAPI, gen, m.Priority, m.RecommendExplain)
}

func handleRecommendResult(m *model.Model, msg model.RecommendResultMsg) tea.Cmd {
	if discard(m, model.WorkflowRecommend, msg.Gen) {
		return nil
	}
	if msg.Err != nil {
		logging.Warn(controllerSubsystem, "Recommendation failed: %v", msg.Err)
		m.Status = failed(msg.Err)
		return nil
	}
	m.SingleResult.Render(render.RecommendTitle(msg.Priority), msg.Rec)
	m.Status = model.StatusLine{Text: model.DoneText}
	return nil
}

// ---- Estimate ----

// startEstimate validates the custom fee before anything is requested. An
// invalid fee still supersedes any estimate in flight.
func startEstimate(m *model.Model) tea.Cmd {
	m.EstimateResult.Hide()
	m.SingleResult.Hide()
	gen := m.Gen.Next(model.WorkflowEstimate)

	fee, err := params.ValidateCustomFee(m.CustomFeeInput.Value())
	if err != nil {
		m.EstimateStatus = failed(err)
		return nil
	}
	m.EstimateStatus = loading(model.EstimateLoading)
	LogDebug(m, "Requesting estimate for %s sat/vB (generation %d)", render.Number(fee), gen)
	return model.FetchEstimateCmd(m.FeeAPI, gen, fee, m.EstimateExplain)
}

func handleEstimateResult(m *model.Model, msg model.EstimateResultMsg) tea.Cmd {
	if discard(m, model.WorkflowEstimate, msg.Gen) {
		return nil
	}
	if msg.Err != nil {
		logging.Warn(controllerSubsystem, "Estimate failed: %v", msg.Err)
		m.EstimateStatus = failed(msg.Err)
		return nil
	}
	m.EstimateResult.Render(render.EstimateTitle(msg.Fee), msg.Rec)
	m.EstimateStatus = model.StatusLine{Text: model.DoneText}
	return nil
}

// ---- Compare ----

func startCompare(m *model.Model) tea.Cmd {
	m.CompareStatus = loading(model.CompareLoading)
	m.SingleResult.Hide()
	m.EstimateResult.Hide()
	m.Compare.Clear()
	gen := m.Gen.Next(model.WorkflowCompare)
	LogDebug(m, "Requesting comparison (generation %d)", gen)
	return model.FetchCompareCmd(m.FeeAPI, gen, m.CompareExplain)
}

func handleCompareResult(m *model.Model, msg model.CompareResultMsg) tea.Cmd {
	if discard(m, model.WorkflowCompare, msg.Gen) {
		return nil
	}
	if msg.Err != nil {
		logging.Warn(controllerSubsystem, "Comparison failed: %v", msg.Err)
		m.CompareStatus = failed(msg.Err)
		return nil
	}
	m.Compare.Render(msg.Result)
	m.CompareStatus = model.StatusLine{Text: model.DoneText}
	return nil
}

// ---- Miner targets ----

func startMinerTargets(m *model.Model) tea.Cmd {
	raw := m.MinerRaw()
	m.MinerCommitted = raw
	count, q := params.MinerQuery(raw[0], raw[1], raw[2])

	m.Miner = render.MinerLoading()
	m.MinerLoading = true
	gen := m.Gen.Next(model.WorkflowMinerTargets)
	LogDebug(m, "Requesting %d miner targets (generation %d)", count, gen)
	return model.FetchMinerTargetsCmd(m.FeeAPI, gen, count, q)
}

func handleMinerTargetsResult(m *model.Model, msg model.MinerTargetsResultMsg) tea.Cmd {
	if discard(m, model.WorkflowMinerTargets, msg.Gen) {
		return nil
	}
	m.MinerLoading = false
	if msg.Err != nil {
		logging.Warn(controllerSubsystem, "Mining targets failed: %v", msg.Err)
		m.Miner = render.MinerError(msg.Err)
		return nil
	}
	m.Miner = render.MinerTargets(msg.Result, msg.Count)
	return nil
}

// ---- History ----

func startHistory(m *model.Model) tea.Cmd {
	m.HistoryLoading = true
	gen := m.Gen.Next(model.WorkflowHistory)
	LogDebug(m, "Requesting history (generation %d)", gen)
	return model.FetchHistoryCmd(m.FeeAPI, gen)
}

func handleHistoryResult(m *model.Model, msg model.HistoryResultMsg) tea.Cmd {
	if discard(m, model.WorkflowHistory, msg.Gen) {
		return nil
	}
	m.HistoryLoading = false
	if msg.Err != nil {
		logging.Warn(controllerSubsystem, "History failed: %v", msg.Err)
		v := render.HistoryError(msg.Err)
		v.Insight = m.History.Insight
		m.History = v
		return nil
	}
	m.History = render.History(msg.Result)
	return nil
}
