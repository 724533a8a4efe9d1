// Package render turns backend records into display structures.
//
// Every function here is pure: it reads an immutable record and returns a
// fresh value that fully describes what a slot shows. Painting is left to
// the TUI view and the CLI commands.
package render

import (
	"fmt"

	"feeboard/internal/api"
)

// Fixed labels of the recommendation card.
const (
	ExplanationLabel = "Why this fee"
	RulesLabel       = "Rules fired"
	LLMLabel         = "LLM Explanation"
)

// Badge is a short styled label. Classes always include "badge" and
// "badge-<text>".
type Badge struct {
	Text    string
	Classes []string
}

func newBadge(text string, extra ...string) Badge {
	classes := append([]string{"badge", "badge-" + text}, extra...)
	return Badge{Text: text, Classes: classes}
}

// HasClass reports whether the badge carries class c.
func (b Badge) HasClass(c string) bool {
	for _, cls := range b.Classes {
		if cls == c {
			return true
		}
	}
	return false
}

// Stat is one labelled figure.
type Stat struct {
	Label string
	Value string
}

// RecommendationCard is the display structure of one Recommendation.
type RecommendationCard struct {
	Title          string
	Confidence     Badge
	Risk           Badge
	Cache          api.Optional[Badge]
	Stats          []Stat
	Explanation    []string
	RulesFired     []string
	AgentSummary   api.Optional[string]
	WhatIfHint     api.Optional[string]
	LLMExplanation api.Optional[string]
}

// Recommendation builds the card for rec. Missing optional fields are
// omitted, never an error.
func Recommendation(title string, rec api.Recommendation) RecommendationCard {
	card := RecommendationCard{
		Title:          title,
		Confidence:     newBadge(rec.Confidence),
		Risk:           newBadge(rec.RiskLevel, "badge-risk-"+rec.RiskLevel),
		Explanation:    append([]string{}, rec.Explanation...),
		RulesFired:     append([]string{}, rec.RulesFired...),
		AgentSummary:   nonEmpty(rec.AgentSummary),
		WhatIfHint:     nonEmpty(rec.WhatIfHint),
		LLMExplanation: nonEmpty(rec.LLMExplanation),
	}
	if rec.CacheUsed {
		card.Cache = api.Some(newBadge("cache"))
	}

	card.Stats = []Stat{
		{Label: "Fee", Value: SatPerVByte(rec.RecommendedFeeSatVB)},
		{Label: "Base fee", Value: SatPerVByte(rec.BaseFeeSatVB)},
		{Label: "Mode", Value: rec.Mode},
	}
	if input, ok := rec.InputFeeSatVB.Get(); ok {
		card.Stats = append(card.Stats, Stat{Label: "Input fee", Value: SatPerVByte(input)})
	}
	card.Stats = append(card.Stats,
		Stat{Label: "Blocks", Value: fmt.Sprintf("%s-%s", Number(rec.ETABlocksMin), Number(rec.ETABlocksMax))},
		Stat{Label: "ETA", Value: fmt.Sprintf("%s-%s min", Number(rec.ETAMinutesMin), Number(rec.ETAMinutesMax))},
		Stat{Label: "Mempool tx", Value: Grouped(rec.MempoolTxCount)},
	)
	return card
}

// Stat returns the value of the stat with the given label.
func (c RecommendationCard) Stat(label string) (string, bool) {
	for _, s := range c.Stats {
		if s.Label == label {
			return s.Value, true
		}
	}
	return "", false
}

// Badges returns the header badges in display order.
func (c RecommendationCard) Badges() []Badge {
	badges := []Badge{c.Confidence, c.Risk}
	if cache, ok := c.Cache.Get(); ok {
		badges = append(badges, cache)
	}
	return badges
}
