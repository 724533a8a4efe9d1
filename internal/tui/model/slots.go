package model

import (
	"feeboard/internal/api"
	"feeboard/internal/render"
)

// ResultSlot holds one rendered recommendation card and the record it was
// rendered from.
type ResultSlot struct {
	Rec     api.Recommendation
	Card    render.RecommendationCard
	Visible bool
}

// Render replaces the whole slot content with the card for rec and shows it.
func (s *ResultSlot) Render(title string, rec api.Recommendation) {
	*s = ResultSlot{Rec: rec, Card: render.Recommendation(title, rec), Visible: true}
}

// Hide hides the slot without touching its content.
func (s *ResultSlot) Hide() {
	s.Visible = false
}

// CompareSlot holds the compare grid. The container itself is never hidden;
// clearing removes the cards, the verdict and the summary.
type CompareSlot struct {
	View    render.CompareView
	Present bool
}

// Clear empties the grid and hides verdict and summary.
func (s *CompareSlot) Clear() {
	*s = CompareSlot{}
}

// Render replaces the grid with the view of res.
func (s *CompareSlot) Render(res api.CompareResult) {
	*s = CompareSlot{View: render.Compare(res), Present: true}
}

// Workflow names a request-issuing workflow.
type Workflow int

const (
	WorkflowRecommend Workflow = iota
	WorkflowEstimate
	WorkflowCompare
	WorkflowMinerTargets
	WorkflowHistory
	workflowCount
)

// String returns the workflow name used in logs.
func (w Workflow) String() string {
	switch w {
	case WorkflowRecommend:
		return "recommend"
	case WorkflowEstimate:
		return "estimate"
	case WorkflowCompare:
		return "compare"
	case WorkflowMinerTargets:
		return "miner-targets"
	case WorkflowHistory:
		return "history"
	default:
		return "unknown"
	}
}

// Generations counts the requests issued per workflow. A response is only
// applied when it carries the current generation of its workflow.
type Generations struct {
	counters [workflowCount]uint64
}

// Next starts a new request for w and returns its generation.
func (g *Generations) Next(w Workflow) uint64 {
	g.counters[w]++
	return g.counters[w]
}

// Current returns the generation of the latest request for w.
func (g *Generations) Current(w Workflow) uint64 {
	return g.counters[w]
}

// IsCurrent reports whether gen is the latest request for w.
func (g *Generations) IsCurrent(w Workflow, gen uint64) bool {
	return g.counters[w] == gen
}
