package view

import (
	"fmt"
	"strings"

	"feeboard/internal/render"
	"feeboard/internal/tui/components"
	"feeboard/internal/tui/design"

	"github.com/charmbracelet/lipgloss"
)

const cardGap = 1

// Badge paints a render.Badge. Risk badges invert the level colours.
func Badge(b render.Badge) string {
	text := b.Text
	if text == "" {
		text = render.Placeholder
	}
	return design.GetLevelStyle(b.Text, isRiskBadge(b)).Render(text)
}

func isRiskBadge(b render.Badge) bool {
	for _, c := range b.Classes {
		if strings.HasPrefix(c, "badge-risk-") {
			return true
		}
	}
	return false
}

func statLine(label, value string, emphasise bool) string {
	valueStyle := design.ValueStyle
	if emphasise {
		valueStyle = design.FeeValueStyle
	}
	return design.LabelStyle.Render(label+": ") + valueStyle.Render(value)
}

// RecommendationCard paints one recommendation card at the given width.
func RecommendationCard(card render.RecommendationCard, width int, highlight bool) string {
	var lines []string
	for _, s := range card.Stats {
		lines = append(lines, statLine(s.Label, s.Value, s.Label == "Fee"))
	}

	if len(card.Explanation) > 0 {
		lines = append(lines, "", design.TitleStyle.Render(render.ExplanationLabel))
		for _, e := range card.Explanation {
			lines = append(lines, "• "+e)
		}
	}

	lines = append(lines, "", design.TitleStyle.Render(render.RulesLabel))
	if len(card.RulesFired) == 0 {
		lines = append(lines, design.DimStyle.Render(render.Placeholder))
	}
	for _, r := range card.RulesFired {
		lines = append(lines, design.DimStyle.Render("• "+r))
	}

	if s, ok := card.AgentSummary.Get(); ok {
		lines = append(lines, "", design.TextInfoStyle.Render(s))
	}
	if s, ok := card.WhatIfHint.Get(); ok {
		lines = append(lines, "", design.TextSecondaryStyle.Render(s))
	}
	if s, ok := card.LLMExplanation.Get(); ok {
		lines = append(lines, "", design.TitleStyle.Render(render.LLMLabel), s)
	}

	var badges []string
	for _, b := range card.Badges() {
		badges = append(badges, Badge(b))
	}

	return components.NewPanel(card.Title).
		WithBadges(badges...).
		WithContent(strings.Join(lines, "\n")).
		WithDimensions(width, 0).
		SetHighlight(highlight).
		Render()
}

// CompareGrid paints the verdict, the overpay summary and the three cards.
// The cards sit side by side when width allows it and stack otherwise.
func CompareGrid(v render.CompareView, width int) string {
	var parts []string
	if v.Verdict.Title != "" {
		parts = append(parts, design.TitleStyle.Render(v.Verdict.Title))
	}
	if v.Verdict.Text != "" {
		parts = append(parts, lipgloss.NewStyle().Width(width).Render(v.Verdict.Text))
	}
	if v.Summary != "" {
		parts = append(parts, design.TextWarningStyle.Width(width).Render(v.Summary))
	}

	cards := make([]string, len(v.Cards))
	cardWidth, sideBySide := columnWidth(width, len(v.Cards), design.CardWidth)
	for i, c := range v.Cards {
		cards[i] = RecommendationCard(c, cardWidth, i == 1)
	}
	parts = append(parts, "", joinCards(cards, sideBySide))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// MinerGrid paints the miner-targets status, notes and block cards.
func MinerGrid(v render.MinerView, width int) string {
	var parts []string
	statusStyle := design.TextSuccessStyle
	if v.Status.IsError {
		statusStyle = design.TextErrorStyle
	}
	if v.Status.Text != "" {
		parts = append(parts, statusStyle.Render(v.Status.Text))
	}
	if eval, ok := v.Eval.Get(); ok {
		style := design.TextSuccessStyle
		if eval.IsError {
			style = design.TextErrorStyle
		}
		parts = append(parts, style.Width(width).Render(eval.Text))
	}
	if note, ok := v.TargetNote.Get(); ok {
		parts = append(parts, design.TextInfoStyle.Width(width).Render(note))
	}
	if len(v.Cards) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, parts...)
	}

	cardWidth, sideBySide := columnWidth(width, len(v.Cards), design.MinerCardWidth)
	cards := make([]string, len(v.Cards))
	for i, c := range v.Cards {
		content := strings.Join([]string{
			statLine(render.MinFeeLabel, c.MinFee, true),
			statLine(render.MedianFeeLabel, c.MedianFee, false),
			statLine(render.TxCountLabel, c.TxCount, false),
			statLine(render.BlockSizeLabel, c.BlockSize, false),
		}, "\n")
		cards[i] = components.NewPanel(c.Title).
			WithContent(content).
			WithDimensions(cardWidth, 0).
			SetHighlight(c.Highlight).
			Render()
	}
	parts = append(parts, "", joinCards(cards, sideBySide))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// HistoryList paints the insight and the history rows.
func HistoryList(v render.HistoryView, width int) string {
	var parts []string
	if insight, ok := v.Insight.Get(); ok {
		parts = append(parts, design.TextInfoStyle.Width(width).Render(insight))
	}

	switch {
	case v.Error != "":
		parts = append(parts, design.TextErrorStyle.Render(v.Error))
	case v.Empty != "":
		parts = append(parts, design.DimStyle.Render(v.Empty))
	default:
		header := fmt.Sprintf("%s %s %s %s",
			components.PadRight("Time", 26), components.PadRight("Priority", 9),
			components.PadRight("Fee", 14), "Mempool tx")
		lines := []string{design.LabelStyle.Render(header)}
		for _, r := range v.Rows {
			line := fmt.Sprintf("%s %s %s %s",
				components.PadRight(components.Truncate(r.Time, 26), 26),
				components.PadRight(r.Priority, 9),
				components.PadRight(r.Fee, 14),
				r.Mempool)
			lines = append(lines, components.Truncate(line, width))
		}
		parts = append(parts, strings.Join(lines, "\n"))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// LiveStrip paints the live metrics board on one or two lines.
func LiveStrip(b *render.LiveBoard, width int) string {
	if b == nil {
		return ""
	}
	fields := []string{
		statLine("Updated", b.Updated, false),
		statLine("Mempool", b.Mempool+" tx", false),
		statLine("Fastest", b.Fastest+" sat/vB", true),
		statLine("Half hour", b.HalfHour+" sat/vB", false),
		Badge(b.State),
	}
	if b.CacheVisible {
		fields = append(fields, design.BadgeInfoStyle.Render("cache"))
	}
	line := strings.Join(fields, "  ")

	var lines []string
	lines = append(lines, line)
	if b.Note != "" {
		lines = append(lines, design.TextSecondaryStyle.Render(components.Truncate(b.Note, width)))
	}
	if b.ErrorVisible {
		lines = append(lines, design.TextErrorStyle.Render(components.Truncate(b.ErrorText, width)))
	}
	return lipgloss.NewStyle().MaxWidth(width).Render(strings.Join(lines, "\n"))
}

// columnWidth returns the width of each of n cards and whether they fit
// side by side.
func columnWidth(width, n, preferred int) (int, bool) {
	if n <= 0 {
		return width, false
	}
	if per := (width - cardGap*(n-1)) / n; per >= preferred {
		return per, true
	}
	if width < preferred {
		return width, false
	}
	return preferred, false
}

func joinCards(cards []string, sideBySide bool) string {
	if !sideBySide {
		return lipgloss.JoinVertical(lipgloss.Left, cards...)
	}
	spaced := make([]string, 0, len(cards)*2)
	for i, c := range cards {
		if i > 0 {
			spaced = append(spaced, strings.Repeat(" ", cardGap))
		}
		spaced = append(spaced, c)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, spaced...)
}
