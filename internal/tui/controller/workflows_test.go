package controller

import (
	"context"
	"errors"
	"testing"

	"feeboard/internal/api"
	"feeboard/internal/api/apitest"
	"feeboard/internal/live"
	"feeboard/internal/tui/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecommend_RendersAndHidesEstimate(t *testing.T) {
	fake := &apitest.Fake{
		RecommendFunc: func(_ context.Context, p api.Priority, _ api.ExplainMode) (api.Recommendation, error) {
			return api.Recommendation{Priority: string(p), RecommendedFeeSatVB: 21}, nil
		},
	}
	m := newTestModel(t, fake)
	m.EstimateResult.Visible = true

	cmd := startRecommend(m)
	assert.True(t, m.Status.Loading)
	assert.Equal(t, model.RecommendLoading, m.Status.Text)
	assert.False(t, m.EstimateResult.Visible)
	assert.False(t, m.SingleResult.Visible)

	m = exec(t, m, cmd)
	assert.True(t, m.SingleResult.Visible)
	assert.False(t, m.EstimateResult.Visible)
	assert.Equal(t, model.DoneText, m.Status.Text)
	assert.False(t, m.Status.Loading)
	assert.Equal(t, float64(21), m.SingleResult.Rec.RecommendedFeeSatVB)
	assert.Equal(t, 1, fake.Calls("recommend"))
}

func TestRecommend_ErrorShowsMessage(t *testing.T) {
	fake := &apitest.Fake{
		RecommendFunc: func(context.Context, api.Priority, api.ExplainMode) (api.Recommendation, error) {
			return api.Recommendation{}, &api.TransportError{Kind: api.KindStatus, Path: "/recommend", Status: 500}
		},
	}
	m := newTestModel(t, fake)

	m = exec(t, m, startRecommend(m))
	assert.True(t, m.Status.IsError)
	assert.Equal(t, "Request failed (500)", m.Status.Text)
	assert.False(t, m.SingleResult.Visible)
}

func TestRecommend_StaleResultDiscarded(t *testing.T) {
	m := newTestModel(t, &apitest.Fake{})

	m.Priority = api.PrioritySlow
	first := startRecommend(m)
	m.Priority = api.PriorityMedium
	second := startRecommend(m)

	firstMsg := first()
	m = exec(t, m, second)
	m, _ = Update(firstMsg, m)

	require.True(t, m.SingleResult.Visible)
	assert.Equal(t, "medium", m.SingleResult.Rec.Priority)
	assert.Equal(t, model.DoneText, m.Status.Text)
}

func TestEstimate_InvalidFeeSkipsRequest(t *testing.T) {
	for _, raw := range []string{"", "0", "-3", "abc"} {
		t.Run(raw, func(t *testing.T) {
			fake := &apitest.Fake{}
			m := newTestModel(t, fake)
			m.CustomFeeInput.SetValue(raw)

			cmd := startEstimate(m)
			assert.Nil(t, cmd)
			assert.True(t, m.EstimateStatus.IsError)
			assert.Equal(t, "Enter a fee > 0", m.EstimateStatus.Text)
			assert.Equal(t, 0, fake.Calls("estimate"))
		})
	}
}

func TestEstimate_InvalidFeeSupersedesPending(t *testing.T) {
	m := newTestModel(t, &apitest.Fake{})
	m.CustomFeeInput.SetValue("5")
	pending := startEstimate(m)
	require.NotNil(t, pending)

	m.CustomFeeInput.SetValue("nope")
	assert.Nil(t, startEstimate(m))

	m = exec(t, m, pending)
	assert.False(t, m.EstimateResult.Visible)
	assert.True(t, m.EstimateStatus.IsError)
}

func TestEstimate_ValidFee(t *testing.T) {
	fake := &apitest.Fake{}
	m := newTestModel(t, fake)
	m.SingleResult.Visible = true
	m.CustomFeeInput.SetValue("12.5")

	cmd := startEstimate(m)
	assert.Equal(t, model.EstimateLoading, m.EstimateStatus.Text)
	assert.False(t, m.SingleResult.Visible)

	m = exec(t, m, cmd)
	require.True(t, m.EstimateResult.Visible)
	fee, ok := m.EstimateResult.Rec.InputFeeSatVB.Get()
	require.True(t, ok)
	assert.Equal(t, 12.5, fee)
	assert.Equal(t, model.DoneText, m.EstimateStatus.Text)
}

func TestCompare_LoadsOnlyOnFirstActivation(t *testing.T) {
	fake := &apitest.Fake{}
	m := newTestModel(t, fake)

	m = exec(t, m, activateTab(m, model.TabCompare))
	assert.True(t, m.Compare.Present)
	assert.Nil(t, activateTab(m, model.TabRecommend))
	assert.Nil(t, activateTab(m, model.TabCompare))
	assert.Equal(t, 1, fake.Calls("compare"))

	// An explicit refresh still fetches.
	m = exec(t, m, startCompare(m))
	assert.Equal(t, 2, fake.Calls("compare"))
}

func TestCompare_ClearsGridWhileLoading(t *testing.T) {
	m := newTestModel(t, &apitest.Fake{})
	m = exec(t, m, startCompare(m))
	require.True(t, m.Compare.Present)

	startCompare(m)
	assert.False(t, m.Compare.Present)
	assert.Equal(t, model.CompareLoading, m.CompareStatus.Text)
}

func TestHistory_LoadsOnEveryActivation(t *testing.T) {
	fake := &apitest.Fake{
		HistoryFunc: func(context.Context) (api.HistoryResult, error) {
			return api.HistoryResult{Insight: api.Some("Fees are falling")}, nil
		},
	}
	m := newTestModel(t, fake)

	m = exec(t, m, activateTab(m, model.TabHistory))
	activateTab(m, model.TabRecommend)
	m = exec(t, m, activateTab(m, model.TabHistory))

	assert.Equal(t, 2, fake.Calls("history"))
	assert.Equal(t, "Fees are falling", m.History.Insight.OrElse(""))
	assert.False(t, m.HistoryLoading)
}

func TestHistory_ErrorKeepsInsight(t *testing.T) {
	fail := false
	fake := &apitest.Fake{
		HistoryFunc: func(context.Context) (api.HistoryResult, error) {
			if fail {
				return api.HistoryResult{}, &api.TransportError{Kind: api.KindNetwork, Path: "/history", Cause: errors.New("refused")}
			}
			return api.HistoryResult{Insight: api.Some("Stable")}, nil
		},
	}
	m := newTestModel(t, fake)
	m = exec(t, m, startHistory(m))

	fail = true
	m = exec(t, m, startHistory(m))
	assert.Equal(t, "Stable", m.History.Insight.OrElse(""))
	assert.NotEmpty(t, m.History.Error)
}

func TestMinerTargets_QueryFromInputs(t *testing.T) {
	var got api.MiningTargetQuery
	fake := &apitest.Fake{
		MiningTargetFunc: func(_ context.Context, q api.MiningTargetQuery) (api.MinerTargetResult, error) {
			got = q
			blocks := make([]api.MinerBlock, 8)
			for i := range blocks {
				blocks[i].BlockIndex = i
			}
			return api.MinerTargetResult{Blocks: blocks}, nil
		},
	}
	m := newTestModel(t, fake)
	m.MinerCountInput.SetValue("9")
	m.MinerFeeInput.SetValue("0")
	m.TargetInput.SetValue("2")

	m = exec(t, m, startMinerTargets(m))
	assert.False(t, got.Fee.IsPresent())
	target, ok := got.TargetBlocks.Get()
	require.True(t, ok)
	assert.Equal(t, 2, target)
	assert.Len(t, m.Miner.Cards, 6)
	assert.False(t, m.MinerLoading)
	assert.Equal(t, [3]string{"9", "0", "2"}, m.MinerCommitted)
}

func TestMinerTargets_ReloadOnlyWhenInputChanged(t *testing.T) {
	fake := &apitest.Fake{}
	m := newTestModel(t, fake)
	m.FocusInput(model.InputMinerCount)

	_, cmd := handleKeyMsgInputMode(m, keyEsc())
	assert.Nil(t, cmd)
	assert.Equal(t, model.InputNone, m.FocusedInput)

	m.FocusInput(model.InputMinerCount)
	m.MinerCountInput.SetValue("5")
	m, cmd = handleKeyMsgInputMode(m, keyEnter())
	m = exec(t, m, cmd)
	assert.Equal(t, 1, fake.Calls("mining_target"))
	assert.Equal(t, "5", m.MinerCommitted[0])
}

func TestLiveUpdate_FailureKeepsFees(t *testing.T) {
	m := newTestModel(t, &apitest.Fake{})
	st := api.LiveStatus{
		FeeData: api.Some(api.FeeData{FastestFee: api.Some(30.0), HalfHourFee: api.Some(20.0)}),
	}

	m = handleLiveUpdate(m, model.LiveUpdateMsg{Update: live.Update{Seq: 1, Status: st}})
	m = handleLiveUpdate(m, model.LiveUpdateMsg{Update: live.Update{Seq: 2, Err: errors.New("Request failed (502)")}})

	assert.Equal(t, "30", m.Live.Fastest)
	assert.Equal(t, "20", m.Live.HalfHour)
	assert.True(t, m.Live.ErrorVisible)
	assert.Equal(t, "Request failed (502)", m.Live.ErrorText)

	// An older poll landing late is ignored.
	m = handleLiveUpdate(m, model.LiveUpdateMsg{Update: live.Update{Seq: 1, Status: api.LiveStatus{}}})
	assert.Equal(t, "30", m.Live.Fastest)
}
