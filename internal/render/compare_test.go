package render

import (
	"testing"

	"feeboard/internal/api"

	"github.com/stretchr/testify/assert"
)

func TestCompare_ThreeCardsInOrder(t *testing.T) {
	same := fastRecommendation()
	res := api.CompareResult{
		Fast:                          same,
		Medium:                        same,
		Slow:                          same,
		OverpayPercentFastVsMedium:    0,
		OverpayDeltaFastVsMediumSatVB: 0,
		VerdictTitle:                  "No rush",
		VerdictText:                   "All tiers cost the same.",
	}

	view := Compare(res)

	assert.Len(t, view.Cards, 3)
	assert.Equal(t, "Fast", view.Cards[0].Title)
	assert.Equal(t, "Medium", view.Cards[1].Title)
	assert.Equal(t, "Slow", view.Cards[2].Title)
	assert.Equal(t, Verdict{Title: "No rush", Text: "All tiers cost the same."}, view.Verdict)
	assert.Equal(t, "Fast vs Medium overpay: 0% (0 sat/vB).", view.Summary)
}

func TestOverpaySummary(t *testing.T) {
	assert.Equal(t,
		"Fast vs Medium overpay: 33.3% (10.5 sat/vB). Fast pays more, slow delays more.",
		OverpaySummary(33.33, 10.5, api.Some("Fast pays more, slow delays more.")))
	assert.Equal(t,
		"Fast vs Medium overpay: 12.4% (2 sat/vB).",
		OverpaySummary(12.36, 2, api.None[string]()))
}
