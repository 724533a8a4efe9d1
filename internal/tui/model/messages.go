package model

import (
	"feeboard/internal/api"
	"feeboard/internal/live"
	"feeboard/pkg/logging"
)

// ---- Workflow results ----

// Each result carries the generation it was issued with; Err is set on
// failure and the payload is then zero.

type RecommendResultMsg struct {
	Gen      uint64
	Priority api.Priority
	Rec      api.Recommendation
	Err      error
}

type EstimateResultMsg struct {
	Gen uint64
	Fee float64
	Rec api.Recommendation
	Err error
}

type CompareResultMsg struct {
	Gen    uint64
	Result api.CompareResult
	Err    error
}

type MinerTargetsResultMsg struct {
	Gen    uint64
	Count  int
	Result api.MinerTargetResult
	Err    error
}

type HistoryResultMsg struct {
	Gen    uint64
	Result api.HistoryResult
	Err    error
}

// ---- Background channels ----

type LiveUpdateMsg struct {
	Update live.Update
}

type NewLogEntryMsg struct {
	Entry logging.LogEntry
}

// ---- Misc overlay / status bar ----

type ClearStatusBarMsg struct{}
