package view

import (
	"strings"

	"feeboard/internal/api"
	"feeboard/internal/render"
	"feeboard/internal/tui/design"
	"feeboard/internal/tui/model"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
)

func renderActiveTab(m *model.Model, width int) string {
	switch m.Tabs.Active {
	case model.TabEstimate:
		return renderEstimateTab(m, width)
	case model.TabCompare:
		return renderCompareTab(m, width)
	case model.TabHistory:
		return HistoryList(m.History, width)
	case model.TabMinerTargets:
		return renderMinerTab(m, width)
	default:
		return renderRecommendTab(m, width)
	}
}

func controls(pairs ...string) string {
	var parts []string
	for i := 0; i+1 < len(pairs); i += 2 {
		parts = append(parts, design.LabelStyle.Render(pairs[i]+": ")+design.ValueStyle.Render(pairs[i+1]))
	}
	return strings.Join(parts, "   ")
}

func priorityPicker(current api.Priority) string {
	parts := make([]string, 0, len(api.Priorities))
	for _, p := range api.Priorities {
		if p == current {
			parts = append(parts, design.TabActiveStyle.Render(string(p)))
		} else {
			parts = append(parts, design.TabStyle.Render(string(p)))
		}
	}
	return strings.Join(parts, "")
}

func renderRecommendTab(m *model.Model, width int) string {
	parts := []string{
		design.LabelStyle.Render("Priority: ") + priorityPicker(m.Priority) + "   " +
			controls("Explain", explainLabel(m.RecommendExplain)),
		renderStatusLine(m, m.Status),
	}
	if m.SingleResult.Visible {
		parts = append(parts, RecommendationCard(m.SingleResult.Card, cardWidth(width), true))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func renderEstimateTab(m *model.Model, width int) string {
	parts := []string{
		lipgloss.JoinHorizontal(lipgloss.Center,
			labelledInput("Custom fee (sat/vB)", m.CustomFeeInput),
			"   ",
			controls("Explain", explainLabel(m.EstimateExplain)),
		),
		renderStatusLine(m, m.EstimateStatus),
	}
	if m.EstimateResult.Visible {
		parts = append(parts, RecommendationCard(m.EstimateResult.Card, cardWidth(width), true))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func renderCompareTab(m *model.Model, width int) string {
	parts := []string{
		controls("Explain", explainLabel(m.CompareExplain)),
		renderStatusLine(m, m.CompareStatus),
	}
	if m.Compare.Present {
		parts = append(parts, CompareGrid(m.Compare.View, width))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func renderMinerTab(m *model.Model, width int) string {
	inputs := lipgloss.JoinHorizontal(lipgloss.Center,
		labelledInput("Blocks", m.MinerCountInput),
		"  ",
		labelledInput("Fee filter", m.MinerFeeInput),
		"  ",
		labelledInput("Target blocks", m.TargetInput),
	)
	view := m.Miner
	if view.Status.Text == "" && len(view.Cards) == 0 {
		view = render.MinerLoading()
	}
	return lipgloss.JoinVertical(lipgloss.Left, inputs, MinerGrid(view, width))
}

func labelledInput(label string, in textinput.Model) string {
	style := design.InputStyle
	if in.Focused() {
		style = design.InputFocusedStyle
	}
	return lipgloss.JoinHorizontal(lipgloss.Center,
		design.InputLabelStyle.Render(label+" "),
		style.Render(in.View()),
	)
}

func cardWidth(width int) int {
	if width > 2*design.CardWidth {
		return 2 * design.CardWidth
	}
	return width
}
