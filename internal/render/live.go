package render

import (
	"math"
	"time"

	"feeboard/internal/api"
)

// timeLocation is the zone live timestamps are shown in.
var timeLocation = time.Local

// LiveBoard holds the live metrics strip. It is updated in place by each
// poll; updates older than the last one applied are ignored.
type LiveBoard struct {
	Updated      string
	Mempool      string
	Fastest      string
	HalfHour     string
	CacheVisible bool
	ErrorText    string
	ErrorVisible bool
	State        Badge
	Note         string

	lastSeq uint64
}

// NewLiveBoard returns a board showing placeholders everywhere.
func NewLiveBoard() *LiveBoard {
	return &LiveBoard{
		Updated:  Placeholder,
		Mempool:  Placeholder,
		Fastest:  Placeholder,
		HalfHour: Placeholder,
		State:    Badge{Text: Placeholder, Classes: []string{"badge"}},
	}
}

// LastSequence returns the sequence number of the last accepted update.
func (b *LiveBoard) LastSequence() uint64 {
	return b.lastSeq
}

func (b *LiveBoard) accept(seq uint64) bool {
	if seq <= b.lastSeq {
		return false
	}
	b.lastSeq = seq
	return true
}

// Apply overwrites every live field from st. The network-state badge is
// only replaced when st carries a state.
func (b *LiveBoard) Apply(seq uint64, st api.LiveStatus) bool {
	if !b.accept(seq) {
		return false
	}

	b.Updated = Placeholder
	if epoch, ok := st.UpdatedAtEpoch.Get(); ok && epoch != 0 {
		sec, frac := math.Modf(epoch)
		b.Updated = time.Unix(int64(sec), int64(frac*1e9)).In(timeLocation).Format("15:04:05")
	}
	b.Mempool = Grouped(st.MempoolCount().OrElse(0))
	b.Fastest = OptionalNumber(st.FastestFee())
	b.HalfHour = OptionalNumber(st.HalfHourFee())
	b.CacheVisible = st.CacheUsed

	errText, hasErr := st.Error.Get()
	b.ErrorVisible = hasErr
	b.ErrorText = errText

	if state, ok := st.NetworkState.Get(); ok {
		b.State = newBadge(state)
	}
	b.Note = st.NetworkNote.OrElse("")
	return true
}

// Fail shows a failed poll. Every other live field keeps its last value.
func (b *LiveBoard) Fail(seq uint64, err error) bool {
	if !b.accept(seq) {
		return false
	}
	b.ErrorText = err.Error()
	b.ErrorVisible = true
	return true
}
