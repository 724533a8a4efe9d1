package render

import (
	"fmt"
	"math"
	"strings"

	"feeboard/internal/api"
)

// Titles of the compare cards, in display order.
var CompareTitles = [3]string{"Fast", "Medium", "Slow"}

// Verdict is the compare headline.
type Verdict struct {
	Title string
	Text  string
}

// CompareView is the display structure of a CompareResult.
type CompareView struct {
	Verdict Verdict
	Summary string
	Cards   [3]RecommendationCard
}

// Compare builds the verdict, the overpay summary and exactly three cards
// in the order fast, medium, slow.
func Compare(res api.CompareResult) CompareView {
	return CompareView{
		Verdict: Verdict{Title: res.VerdictTitle, Text: res.VerdictText},
		Summary: OverpaySummary(res.OverpayPercentFastVsMedium, res.OverpayDeltaFastVsMediumSatVB, res.Note),
		Cards: [3]RecommendationCard{
			Recommendation(CompareTitles[0], res.Fast),
			Recommendation(CompareTitles[1], res.Medium),
			Recommendation(CompareTitles[2], res.Slow),
		},
	}
}

// OverpaySummary describes how much fast overpays relative to medium. The
// percentage is rounded to one decimal.
func OverpaySummary(percent, delta float64, note api.Optional[string]) string {
	rounded := math.Round(percent*10) / 10
	s := fmt.Sprintf("Fast vs Medium overpay: %s%% (%s sat/vB). %s", Number(rounded), Number(delta), note.OrElse(""))
	return strings.TrimSpace(s)
}
