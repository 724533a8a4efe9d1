package api

// Priority is a named urgency tier.
type Priority string

const (
	PriorityFast   Priority = "fast"
	PriorityMedium Priority = "medium"
	PrioritySlow   Priority = "slow"
)

// Priorities lists the tiers in display order.
var Priorities = []Priority{PriorityFast, PriorityMedium, PrioritySlow}

// ExplainMode requests additional explanatory text. The empty mode sends
// no explain parameter at all.
type ExplainMode string

const (
	ExplainDefault ExplainMode = ""
	ExplainNone    ExplainMode = "none"
	ExplainLLM     ExplainMode = "llm"
)

// ExplainModes lists the selectable modes in cycling order.
var ExplainModes = []ExplainMode{ExplainDefault, ExplainNone, ExplainLLM}

// Recommendation is one computed fee suggestion.
type Recommendation struct {
	Priority            string            `json:"priority"`
	Mode                string            `json:"mode"`
	BaseFeeSatVB        float64           `json:"base_fee_sat_vb"`
	RecommendedFeeSatVB float64           `json:"recommended_fee_sat_vb"`
	InputFeeSatVB       Optional[float64] `json:"input_fee_sat_vb"`
	ETABlocksMin        float64           `json:"eta_blocks_min"`
	ETABlocksMax        float64           `json:"eta_blocks_max"`
	ETAMinutesMin       float64           `json:"eta_minutes_min"`
	ETAMinutesMax       float64           `json:"eta_minutes_max"`
	RiskLevel           string            `json:"risk_level"`
	MempoolTxCount      int64             `json:"mempool_tx_count"`
	Explanation         []string          `json:"explanation"`
	AgentSummary        Optional[string]  `json:"agent_summary"`
	WhatIfHint          Optional[string]  `json:"what_if_hint"`
	SignalsUsed         map[string]any    `json:"signals_used,omitempty"`
	RulesFired          []string          `json:"rules_fired"`
	Confidence          string            `json:"confidence"`
	CacheUsed           bool              `json:"cache_used"`
	Source              string            `json:"source,omitempty"`
	LLMExplanation      Optional[string]  `json:"llm_explanation"`
}

// CompareResult bundles the three preset recommendations.
type CompareResult struct {
	Fast                          Recommendation   `json:"fast"`
	Medium                        Recommendation   `json:"medium"`
	Slow                          Recommendation   `json:"slow"`
	OverpayPercentFastVsMedium    float64          `json:"overpay_percent_fast_vs_medium"`
	OverpayDeltaFastVsMediumSatVB float64          `json:"overpay_delta_fast_vs_medium_sat_vb"`
	Note                          Optional[string] `json:"note"`
	VerdictTitle                  string           `json:"verdict_title"`
	VerdictText                   string           `json:"verdict_text"`
}

// FeeData is the upstream fee snapshot carried by LiveStatus.
type FeeData struct {
	FastestFee  Optional[float64] `json:"fastestFee"`
	HalfHourFee Optional[float64] `json:"halfHourFee"`
	HourFee     Optional[float64] `json:"hourFee"`
	EconomyFee  Optional[float64] `json:"economyFee"`
	MinimumFee  Optional[float64] `json:"minimumFee"`
}

// MempoolData is the upstream mempool snapshot carried by LiveStatus.
type MempoolData struct {
	Count    Optional[int64]   `json:"count"`
	VSize    Optional[int64]   `json:"vsize"`
	TotalFee Optional[float64] `json:"total_fee"`
}

// LiveStatus is the polled snapshot of the backend's latest data.
type LiveStatus struct {
	UpdatedAtEpoch Optional[float64]     `json:"updated_at_epoch"`
	Timestamp      Optional[string]      `json:"timestamp"`
	CacheUsed      bool                  `json:"cache_used"`
	FeeData        Optional[FeeData]     `json:"fee_data"`
	MempoolData    Optional[MempoolData] `json:"mempool_data"`
	Error          Optional[string]      `json:"error"`
	Source         string                `json:"source,omitempty"`
	NetworkState   Optional[string]      `json:"network_state"`
	NetworkNote    Optional[string]      `json:"network_note"`
}

// FastestFee returns fee_data.fastestFee, if present.
func (s LiveStatus) FastestFee() Optional[float64] {
	if fd, ok := s.FeeData.Get(); ok {
		return fd.FastestFee
	}
	return None[float64]()
}

// HalfHourFee returns fee_data.halfHourFee, if present.
func (s LiveStatus) HalfHourFee() Optional[float64] {
	if fd, ok := s.FeeData.Get(); ok {
		return fd.HalfHourFee
	}
	return None[float64]()
}

// MempoolCount returns mempool_data.count, if present.
func (s LiveStatus) MempoolCount() Optional[int64] {
	if md, ok := s.MempoolData.Get(); ok {
		return md.Count
	}
	return None[int64]()
}

// MinerBlock is one projected mempool block.
type MinerBlock struct {
	BlockIndex int               `json:"block_index"`
	MinFee     Optional[float64] `json:"minFee"`
	MedianFee  Optional[float64] `json:"medianFee"`
	BlockSize  Optional[int64]   `json:"blockSize"`
	TxCount    Optional[int64]   `json:"txCount"`
}

// UserFeeEval evaluates a user-provided fee against the projected blocks.
type UserFeeEval struct {
	ProvidedFeeSatVB float64       `json:"provided_fee_sat_vb"`
	FitsInBlockIndex Optional[int] `json:"fits_in_block_index"`
	MeetsMinFee      bool          `json:"meets_min_fee"`
	Note             string        `json:"note"`
}

// MinerTargetResult is the projected-blocks response.
type MinerTargetResult struct {
	Timestamp         string                `json:"timestamp"`
	CacheUsed         bool                  `json:"cache_used"`
	Source            string                `json:"source,omitempty"`
	Blocks            []MinerBlock          `json:"blocks"`
	Error             Optional[string]      `json:"error"`
	UserFeeEval       Optional[UserFeeEval] `json:"user_fee_eval"`
	TargetBlocks      Optional[int]         `json:"target_blocks"`
	TargetMinFee      Optional[float64]     `json:"target_min_fee"`
	TargetMedianFee   Optional[float64]     `json:"target_median_fee"`
	SavingsVsFast     Optional[float64]     `json:"savings_vs_fast_sat_vb"`
	ExtraDelayMinutes Optional[float64]     `json:"extra_delay_minutes"`
	TargetNote        Optional[string]      `json:"target_note"`
}

// MiningTargetQuery holds the validated miner-target parameters. Absent
// values are omitted from the request.
type MiningTargetQuery struct {
	Fee          Optional[float64]
	TargetBlocks Optional[int]
}

// HistoryEntry is one recorded recommendation.
type HistoryEntry struct {
	Timestamp           Optional[string]     `json:"timestamp"`
	Priority            string               `json:"priority"`
	BaseFeeSatVB        Optional[FlexNumber] `json:"base_fee_sat_vb"`
	RecommendedFeeSatVB Optional[FlexNumber] `json:"recommended_fee_sat_vb"`
	MempoolTxCount      Optional[FlexNumber] `json:"mempool_tx_count"`
}

// HistoryResult is the recent recommendation history.
type HistoryResult struct {
	Items   []HistoryEntry   `json:"items"`
	Insight Optional[string] `json:"insight"`
}

// HealthStatus is the health probe response.
type HealthStatus struct {
	Status string `json:"status"`
}
