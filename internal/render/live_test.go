package render

import (
	"errors"
	"testing"
	"time"

	"feeboard/internal/api"

	"github.com/stretchr/testify/assert"
)

func liveStatus() api.LiveStatus {
	return api.LiveStatus{
		UpdatedAtEpoch: api.Some(float64(time.Date(2024, 5, 1, 13, 45, 9, 0, time.UTC).Unix())),
		CacheUsed:      true,
		FeeData:        api.Some(api.FeeData{FastestFee: api.Some(21.0), HalfHourFee: api.Some(14.5)}),
		MempoolData:    api.Some(api.MempoolData{Count: api.Some(int64(123456))}),
		NetworkState:   api.Some("congested"),
		NetworkNote:    api.Some("Blocks are full."),
	}
}

func withUTC(t *testing.T) {
	t.Helper()
	original := timeLocation
	timeLocation = time.UTC
	t.Cleanup(func() { timeLocation = original })
}

func TestLiveBoard_Apply(t *testing.T) {
	withUTC(t)
	b := NewLiveBoard()

	assert.True(t, b.Apply(1, liveStatus()))

	assert.Equal(t, "13:45:09", b.Updated)
	assert.Equal(t, "123,456", b.Mempool)
	assert.Equal(t, "21", b.Fastest)
	assert.Equal(t, "14.5", b.HalfHour)
	assert.True(t, b.CacheVisible)
	assert.False(t, b.ErrorVisible)
	assert.Equal(t, "congested", b.State.Text)
	assert.True(t, b.State.HasClass("badge-congested"))
	assert.Equal(t, "Blocks are full.", b.Note)
}

func TestLiveBoard_ApplyDefaults(t *testing.T) {
	b := NewLiveBoard()
	b.Apply(1, liveStatus())

	b.Apply(2, api.LiveStatus{Error: api.Some("mempool.space unreachable")})

	assert.Equal(t, "-", b.Updated)
	assert.Equal(t, "0", b.Mempool)
	assert.Equal(t, "-", b.Fastest)
	assert.Equal(t, "-", b.HalfHour)
	assert.False(t, b.CacheVisible)
	assert.True(t, b.ErrorVisible)
	assert.Equal(t, "mempool.space unreachable", b.ErrorText)
	assert.Equal(t, "congested", b.State.Text, "state badge is kept when absent")
	assert.Empty(t, b.Note)
}

func TestLiveBoard_FailKeepsFigures(t *testing.T) {
	b := NewLiveBoard()
	b.Apply(1, liveStatus())

	assert.True(t, b.Fail(2, errors.New("Request failed (500)")))

	assert.Equal(t, "21", b.Fastest)
	assert.Equal(t, "14.5", b.HalfHour)
	assert.Equal(t, "123,456", b.Mempool)
	assert.True(t, b.ErrorVisible)
	assert.Equal(t, "Request failed (500)", b.ErrorText)
}

func TestLiveBoard_IgnoresOlderUpdates(t *testing.T) {
	b := NewLiveBoard()
	b.Apply(5, liveStatus())

	assert.False(t, b.Fail(3, errors.New("late failure")))
	assert.False(t, b.Apply(5, api.LiveStatus{}))
	assert.False(t, b.ErrorVisible)
	assert.Equal(t, "21", b.Fastest)
	assert.Equal(t, uint64(5), b.LastSequence())
}

func TestGroupedFloat(t *testing.T) {
	assert.Equal(t, "1,234", GroupedFloat(1234))
	assert.Equal(t, "1,234.5", GroupedFloat(1234.5))
}
