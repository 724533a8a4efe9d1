package render

import (
	"feeboard/internal/api"
)

// NoRecordsText is shown for an empty history.
const NoRecordsText = "No records found"

// HistoryRow is one history line.
type HistoryRow struct {
	Time     string
	Priority string
	Fee      string
	Mempool  string
}

// HistoryView is the display structure of the history tab. Exactly one of
// Rows, Empty or Error describes the list area.
type HistoryView struct {
	Insight api.Optional[string]
	Rows    []HistoryRow
	Empty   string
	Error   string
}

// History renders the recent recommendations.
func History(res api.HistoryResult) HistoryView {
	view := HistoryView{Insight: nonEmpty(res.Insight)}
	if len(res.Items) == 0 {
		view.Empty = NoRecordsText
		return view
	}
	for _, item := range res.Items {
		fee := Placeholder + " sat/vB"
		if v, ok := item.RecommendedFeeSatVB.Get(); ok {
			fee = SatPerVByte(v.Float64())
		}
		view.Rows = append(view.Rows, HistoryRow{
			Time:     item.Timestamp.OrElse(Placeholder),
			Priority: item.Priority,
			Fee:      fee,
			Mempool:  GroupedFloat(item.MempoolTxCount.OrElse(0).Float64()),
		})
	}
	return view
}

// HistoryError replaces the list with the failure text. The insight of a
// previous load is kept by the caller.
func HistoryError(err error) HistoryView {
	return HistoryView{Error: err.Error()}
}
