package render

import (
	"fmt"

	"feeboard/internal/api"
)

// Miner status texts.
const (
	MinerLoadingText = "Loading miner targets..."
	MinerNoDataText  = "No data available"
	MinerFailedText  = "Failed to load mining targets"
	MinerCachedText  = "Using cached data"
	MinerLiveText    = "Live data"
	MinFeeLabel      = "Min Fee to Enter"
	MedianFeeLabel   = "Median Fee"
	TxCountLabel     = "Tx Count"
	BlockSizeLabel   = "Size"
)

var blockTitles = []string{"Next Block", "2nd Block", "3rd Block"}

// BlockTitle returns the positional title of the card at idx (0-based).
func BlockTitle(idx int) string {
	if idx >= 0 && idx < len(blockTitles) {
		return blockTitles[idx]
	}
	return fmt.Sprintf("Block %d", idx+1)
}

// Note is a line of text that may be error-styled.
type Note struct {
	Text    string
	IsError bool
}

// MinerCard shows one projected block. Absent figures are Placeholder.
type MinerCard struct {
	Title     string
	MinFee    string
	MedianFee string
	TxCount   string
	BlockSize string
	Highlight bool
}

// MinerView is the display structure of the miner-targets tab.
type MinerView struct {
	Status     Note
	Eval       api.Optional[Note]
	TargetNote api.Optional[string]
	Cards      []MinerCard
}

// MinerLoading is shown while a request is in flight; it clears every
// previous card and note.
func MinerLoading() MinerView {
	return MinerView{Status: Note{Text: MinerLoadingText}}
}

// MinerError shows a failed request.
func MinerError(err error) MinerView {
	msg := ""
	if err != nil {
		msg = err.Error()
	}
	if msg == "" {
		msg = MinerFailedText
	}
	return MinerView{Status: Note{Text: msg, IsError: true}}
}

// MinerTargets renders at most count blocks of res. When nothing is left
// to show, only an error status is produced.
func MinerTargets(res api.MinerTargetResult, count int) MinerView {
	blocks := res.Blocks
	if count < 0 {
		count = 0
	}
	if len(blocks) > count {
		blocks = blocks[:count]
	}
	if len(blocks) == 0 {
		return MinerView{Status: Note{Text: res.Error.OrElse(MinerNoDataText), IsError: true}}
	}

	view := MinerView{Status: Note{Text: MinerLiveText}}
	if res.CacheUsed {
		view.Status.Text = MinerCachedText
	}
	if eval, ok := res.UserFeeEval.Get(); ok {
		view.Eval = api.Some(Note{Text: eval.Note, IsError: !eval.MeetsMinFee})
	}
	view.TargetNote = nonEmpty(res.TargetNote)

	for i, blk := range blocks {
		view.Cards = append(view.Cards, MinerCard{
			Title:     BlockTitle(i),
			MinFee:    OptionalNumber(blk.MinFee),
			MedianFee: OptionalNumber(blk.MedianFee),
			TxCount:   optionalGrouped(blk.TxCount),
			BlockSize: optionalInt(blk.BlockSize),
			Highlight: i == 0,
		})
	}
	return view
}

func optionalGrouped(v api.Optional[int64]) string {
	if n, ok := v.Get(); ok {
		return Grouped(n)
	}
	return Placeholder
}

func optionalInt(v api.Optional[int64]) string {
	if n, ok := v.Get(); ok {
		return fmt.Sprintf("%d", n)
	}
	return Placeholder
}
