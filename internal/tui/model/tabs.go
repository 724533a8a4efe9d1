package model

// Tab is one named panel of the dashboard.
type Tab int

const (
	TabRecommend Tab = iota
	TabEstimate
	TabCompare
	TabHistory
	TabMinerTargets
)

// Tabs lists every tab in display order.
var Tabs = []Tab{TabRecommend, TabEstimate, TabCompare, TabHistory, TabMinerTargets}

// String returns the tab id.
func (t Tab) String() string {
	switch t {
	case TabRecommend:
		return "recommend"
	case TabEstimate:
		return "estimate"
	case TabCompare:
		return "compare"
	case TabHistory:
		return "history"
	case TabMinerTargets:
		return "miner-targets"
	default:
		return "unknown"
	}
}

// Title is the label shown in the tab bar.
func (t Tab) Title() string {
	switch t {
	case TabRecommend:
		return "Recommend"
	case TabEstimate:
		return "Custom Fee"
	case TabCompare:
		return "Compare"
	case TabHistory:
		return "History"
	case TabMinerTargets:
		return "Miner Targets"
	default:
		return "?"
	}
}

// ParseTab resolves a tab id.
func ParseTab(id string) (Tab, bool) {
	for _, t := range Tabs {
		if t.String() == id {
			return t, true
		}
	}
	return TabRecommend, false
}

// Load is the fetch a tab activation asks for.
type Load int

const (
	LoadNone Load = iota
	LoadHistory
	LoadCompare
	LoadMinerTargets
)

// TabState is the exclusive tab selection plus the compare latch.
type TabState struct {
	Active Tab
	// CompareLoadedOnce is set by the first compare activation and never
	// cleared.
	CompareLoadedOnce bool
}

// Activate shows tab and returns the load it triggers. History and miner
// targets reload on every activation, compare only on the first one.
func (s *TabState) Activate(tab Tab) Load {
	s.Active = tab
	switch tab {
	case TabHistory:
		return LoadHistory
	case TabMinerTargets:
		return LoadMinerTargets
	case TabCompare:
		if !s.CompareLoadedOnce {
			s.CompareLoadedOnce = true
			return LoadCompare
		}
	}
	return LoadNone
}

// Neighbor returns the tab delta steps away from the active one, wrapping
// around at both ends.
func (s TabState) Neighbor(delta int) Tab {
	n := len(Tabs)
	idx := (int(s.Active) + delta%n + n) % n
	return Tabs[idx]
}
