package app

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"feeboard/internal/api"
	"feeboard/internal/config"
	"feeboard/internal/live"
	"feeboard/internal/metrics"
	"feeboard/internal/render"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunWatchMode_StopsWithContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"fee_data":{"fastestFee":30,"halfHourFee":20},"mempool_data":{"count":15000},"network_state":"calm"}`))
	}))
	defer srv.Close()

	fc := config.GetDefaultConfig()
	fc.Backend.BaseURL = srv.URL
	cfg := &Config{Feeboard: &fc}
	services, err := InitializeServices(cfg)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	var out bytes.Buffer
	err = runWatchMode(ctx, cfg, services, WatchOptions{Interval: 20 * time.Millisecond, Out: &out})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.NotEmpty(t, lines)
	assert.Contains(t, lines[0], "fastest=30")
	assert.Contains(t, lines[0], "mempool=15,000")
	assert.Contains(t, lines[0], "state=calm")
}

func TestApplyWatchUpdate(t *testing.T) {
	board := render.NewLiveBoard()
	lm := metrics.NewLiveMetrics()
	st := api.LiveStatus{FeeData: api.Some(api.FeeData{FastestFee: api.Some(12.0)})}

	assert.True(t, applyWatchUpdate(board, lm, live.Update{Seq: 1, Status: st}))
	assert.True(t, applyWatchUpdate(board, lm, live.Update{Seq: 2, Err: errors.New("Request failed (503)")}))
	assert.False(t, applyWatchUpdate(board, lm, live.Update{Seq: 1, Status: api.LiveStatus{}}))

	assert.Equal(t, "12", board.Fastest)
	line := watchLine(board)
	assert.Contains(t, line, "fastest=12")
	assert.Contains(t, line, "error=Request failed (503)")
}

func TestLiveSample(t *testing.T) {
	st := api.LiveStatus{
		CacheUsed:   true,
		FeeData:     api.Some(api.FeeData{HalfHourFee: api.Some(8.5)}),
		MempoolData: api.Some(api.MempoolData{Count: api.Some(int64(42))}),
	}
	s := liveSample(st)

	assert.True(t, s.CacheUsed)
	assert.Nil(t, s.FastestFee)
	require.NotNil(t, s.HalfHourFee)
	assert.Equal(t, 8.5, *s.HalfHourFee)
	require.NotNil(t, s.MempoolTxCount)
	assert.Equal(t, int64(42), *s.MempoolTxCount)
	assert.Nil(t, s.UpdatedAt)
}
