package view

import (
	"errors"
	"strings"
	"testing"

	"feeboard/internal/api"
	"feeboard/internal/api/apitest"
	"feeboard/internal/config"
	"feeboard/internal/render"
	"feeboard/internal/tui/model"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func newTestModel() *model.Model {
	m := model.InitializeModel(config.GetDefaultConfig(), &apitest.Fake{}, nil, false, nil)
	m.Width = 120
	m.Height = 40
	return m
}

func sampleRec() api.Recommendation {
	return api.Recommendation{
		Priority:            "fast",
		Mode:                "rules",
		BaseFeeSatVB:        10,
		RecommendedFeeSatVB: 12.5,
		ETABlocksMin:        1,
		ETABlocksMax:        2,
		ETAMinutesMin:       10,
		ETAMinutesMax:       20,
		RiskLevel:           "low",
		MempoolTxCount:      15000,
		Explanation:         []string{"Mempool is calm"},
		RulesFired:          []string{"calm_discount"},
		Confidence:          "high",
		CacheUsed:           true,
		LLMExplanation:      api.Some("Plenty of room in the next block."),
	}
}

func TestRender_WaitingForSize(t *testing.T) {
	m := newTestModel()
	m.Width = 0
	assert.Contains(t, Render(m), "Initializing")
}

func TestRender_Quitting(t *testing.T) {
	m := newTestModel()
	m.CurrentAppMode = model.ModeQuitting
	m.QuittingMessage = "Stopping live poller..."
	assert.Contains(t, Render(m), "Stopping live poller...")
}

func TestRender_MainDashboardShowsEveryTab(t *testing.T) {
	m := newTestModel()
	out := Render(m)

	for _, tab := range model.Tabs {
		assert.Contains(t, out, tab.Title())
	}
	assert.Contains(t, out, "feeboard")
	assert.Contains(t, out, model.ReadyText)
	assert.LessOrEqual(t, lipgloss.Height(out), m.Height)
}

func TestRender_RecommendCard(t *testing.T) {
	m := newTestModel()
	m.SingleResult.Render(render.RecommendTitle(api.PriorityFast), sampleRec())
	m.Status = model.StatusLine{Text: model.DoneText}

	out := Render(m)
	assert.Contains(t, out, "fast priority")
	assert.Contains(t, out, "12.5 sat/vB")
	assert.Contains(t, out, "15,000")
	assert.Contains(t, out, render.LLMLabel)
	assert.Contains(t, out, "cache")
}

func TestRender_EstimateErrorStatus(t *testing.T) {
	m := newTestModel()
	m.Tabs.Activate(model.TabEstimate)
	m.EstimateStatus = model.StatusLine{Text: "Enter a fee > 0", IsError: true}

	out := Render(m)
	assert.Contains(t, out, "Custom fee (sat/vB)")
	assert.Contains(t, out, "Enter a fee > 0")
}

func TestRender_CompareGrid(t *testing.T) {
	m := newTestModel()
	m.Tabs.Activate(model.TabCompare)
	m.Compare.Render(api.CompareResult{
		Fast: sampleRec(), Medium: sampleRec(), Slow: sampleRec(),
		OverpayPercentFastVsMedium:    25,
		OverpayDeltaFastVsMediumSatVB: 3,
		VerdictTitle:                  "Medium is enough",
	})

	out := Render(m)
	assert.Contains(t, out, "Medium is enough")
	assert.Contains(t, out, "Fast vs Medium overpay: 25% (3 sat/vB).")
	for _, title := range render.CompareTitles {
		assert.Contains(t, out, title)
	}
}

func TestRender_MinerTab(t *testing.T) {
	m := newTestModel()
	m.Tabs.Activate(model.TabMinerTargets)
	m.Miner = render.MinerTargets(api.MinerTargetResult{
		Blocks: []api.MinerBlock{{BlockIndex: 0, MinFee: api.Some(8.0)}, {BlockIndex: 1}},
	}, 3)

	out := Render(m)
	assert.Contains(t, out, "Next Block")
	assert.Contains(t, out, "2nd Block")
	assert.Contains(t, out, render.MinerLiveText)
	assert.Contains(t, out, "Target blocks")
}

func TestRender_HistoryError(t *testing.T) {
	m := newTestModel()
	m.Tabs.Activate(model.TabHistory)
	m.History = render.HistoryError(errors.New("Request failed (502)"))

	assert.Contains(t, Render(m), "Request failed (502)")
}

func TestRender_LiveFailureShowsError(t *testing.T) {
	m := newTestModel()
	m.Live.Fail(1, errors.New("connection refused"))
	assert.Contains(t, Render(m), "connection refused")
}

func TestRender_HelpOverlay(t *testing.T) {
	m := newTestModel()
	m.CurrentAppMode = model.ModeHelpOverlay

	out := Render(m)
	assert.Contains(t, out, "KEYBOARD SHORTCUTS")
	assert.Contains(t, out, "cycle priority")
}

func TestRender_LogOverlaySizesViewport(t *testing.T) {
	m := newTestModel()
	m.CurrentAppMode = model.ModeLogOverlay
	m.LogViewport.SetContent(PrepareLogContent([]string{"12:00:00.000 [INFO] [Gateway] GET /recommend ok"}))

	out := Render(m)
	assert.Contains(t, out, "Activity Log")
	assert.Greater(t, m.LogViewport.Width, 0)
	assert.Greater(t, m.LogViewport.Height, 0)
}

func TestPrepareLogContent(t *testing.T) {
	lines := []string{"a [INFO] x", "b [WARN] y", "c [ERROR] z", "d [DEBUG] w"}
	out := PrepareLogContent(lines)
	assert.Len(t, strings.Split(out, "\n"), 4)
	for _, l := range lines {
		assert.Contains(t, out, l)
	}
}

func TestColumnWidth(t *testing.T) {
	w, side := columnWidth(120, 3, 36)
	assert.True(t, side)
	assert.Equal(t, 39, w)

	w, side = columnWidth(80, 3, 36)
	assert.False(t, side)
	assert.Equal(t, 36, w)

	w, side = columnWidth(20, 3, 36)
	assert.False(t, side)
	assert.Equal(t, 20, w)
}

func TestBadge_RiskInverted(t *testing.T) {
	card := render.Recommendation("x", sampleRec())
	assert.True(t, isRiskBadge(card.Risk))
	assert.False(t, isRiskBadge(card.Confidence))
	assert.Contains(t, Badge(card.Risk), "low")
}
