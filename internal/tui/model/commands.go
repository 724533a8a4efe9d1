package model

import (
	"context"

	"feeboard/internal/api"
	"feeboard/internal/live"
	"feeboard/pkg/logging"

	tea "github.com/charmbracelet/bubbletea"
)

// FetchRecommendationCmd requests the recommendation for p.
func FetchRecommendationCmd(feeAPI api.FeeAPI, gen uint64, p api.Priority, explain api.ExplainMode) tea.Cmd {
	return func() tea.Msg {
		rec, err := feeAPI.Recommend(context.Background(), p, explain)
		return RecommendResultMsg{Gen: gen, Priority: p, Rec: rec, Err: err}
	}
}

// FetchEstimateCmd requests the estimate for a validated custom fee.
func FetchEstimateCmd(feeAPI api.FeeAPI, gen uint64, fee float64, explain api.ExplainMode) tea.Cmd {
	return func() tea.Msg {
		rec, err := feeAPI.Estimate(context.Background(), fee, explain)
		return EstimateResultMsg{Gen: gen, Fee: fee, Rec: rec, Err: err}
	}
}

// FetchCompareCmd requests the three preset recommendations.
func FetchCompareCmd(feeAPI api.FeeAPI, gen uint64, explain api.ExplainMode) tea.Cmd {
	return func() tea.Msg {
		res, err := feeAPI.Compare(context.Background(), explain)
		return CompareResultMsg{Gen: gen, Result: res, Err: err}
	}
}

// FetchMinerTargetsCmd requests the projected blocks; count is carried
// through so the result is truncated to what was asked for.
func FetchMinerTargetsCmd(feeAPI api.FeeAPI, gen uint64, count int, q api.MiningTargetQuery) tea.Cmd {
	return func() tea.Msg {
		res, err := feeAPI.MiningTarget(context.Background(), q)
		return MinerTargetsResultMsg{Gen: gen, Count: count, Result: res, Err: err}
	}
}

// FetchHistoryCmd requests the recent recommendations.
func FetchHistoryCmd(feeAPI api.FeeAPI, gen uint64) tea.Cmd {
	return func() tea.Msg {
		res, err := feeAPI.History(context.Background())
		return HistoryResultMsg{Gen: gen, Result: res, Err: err}
	}
}

// ListenForLogEntriesCmd waits for the next log entry. It must be re-issued
// after every NewLogEntryMsg.
func ListenForLogEntriesCmd(ch <-chan logging.LogEntry) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		entry, ok := <-ch
		if !ok {
			return nil
		}
		return NewLogEntryMsg{Entry: entry}
	}
}

// ListenForLiveUpdatesCmd waits for the next poller update. It must be
// re-issued after every LiveUpdateMsg.
func ListenForLiveUpdatesCmd(ch <-chan live.Update) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		u, ok := <-ch
		if !ok {
			return nil
		}
		return LiveUpdateMsg{Update: u}
	}
}
