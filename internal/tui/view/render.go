package view

import (
	"fmt"
	"strings"

	"feeboard/internal/api"
	"feeboard/internal/tui/components"
	"feeboard/internal/tui/design"
	"feeboard/internal/tui/model"

	"github.com/charmbracelet/lipgloss"
)

const appTitle = "feeboard"

// Render renders the UI according to the current model state.
func Render(m *model.Model) string {
	switch m.CurrentAppMode {
	case model.ModeQuitting:
		return design.TextSecondaryStyle.Render(m.QuittingMessage)
	case model.ModeHelpOverlay:
		return renderHelpOverlay(m)
	case model.ModeLogOverlay:
		return renderLogOverlay(m)
	default:
		if m.Width == 0 || m.Height == 0 {
			return design.TextSecondaryStyle.Render("Initializing... (waiting for window size)")
		}
		return renderMainDashboard(m)
	}
}

func renderMainDashboard(m *model.Model) string {
	width := m.Width

	header := renderHeader(m, width)
	live := components.NewPanel("Live").
		WithContent(LiveStrip(m.Live, width-design.PanelStyle.GetHorizontalFrameSize())).
		WithDimensions(width, 0).
		Render()
	tabs := renderTabBar(m, width)
	statusBar := renderStatusBar(m, width)

	used := lipgloss.Height(header) + lipgloss.Height(live) + lipgloss.Height(tabs) + lipgloss.Height(statusBar)
	bodyHeight := m.Height - used
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	body := lipgloss.NewStyle().
		Width(width).
		Height(bodyHeight).
		MaxHeight(bodyHeight).
		Render(renderActiveTab(m, width))

	return lipgloss.JoinVertical(lipgloss.Left, header, live, tabs, body, statusBar)
}

func renderHeader(m *model.Model, width int) string {
	h := components.NewHeader(appTitle).
		WithSubtitle(m.BaseURL).
		WithRightContent(design.DimStyle.Render("h help  L log  q quit")).
		WithWidth(width)
	if anyLoading(m) {
		h = h.WithSpinner(m.Spinner.View())
	}
	return h.Render()
}

func anyLoading(m *model.Model) bool {
	return m.Status.Loading || m.EstimateStatus.Loading || m.CompareStatus.Loading || m.MinerLoading || m.HistoryLoading
}

func renderTabBar(m *model.Model, width int) string {
	parts := make([]string, 0, len(model.Tabs))
	for i, tab := range model.Tabs {
		label := fmt.Sprintf("%d %s", i+1, tab.Title())
		if tab == m.Tabs.Active {
			parts = append(parts, design.TabActiveStyle.Render(label))
		} else {
			parts = append(parts, design.TabStyle.Render(label))
		}
	}
	return lipgloss.NewStyle().MaxWidth(width).Render(strings.Join(parts, " "))
}

func renderStatusBar(m *model.Model, width int) string {
	left := "Tab: " + m.Tabs.Active.Title()
	if m.DebugMode {
		left += "  [debug]"
	}
	bar := components.NewStatusBar(width).
		WithLeftText(left).
		WithRightText(m.Help.ShortHelpView(m.Keys.ShortHelp()))
	if m.StatusBarMessage != "" {
		bar = bar.WithMessage(m.StatusBarMessage, m.StatusBarMessageType)
	}
	return bar.Render()
}

func explainLabel(e api.ExplainMode) string {
	if e == api.ExplainDefault {
		return "default"
	}
	return string(e)
}

// renderStatusLine paints a workflow status line, with the spinner while
// its request is in flight.
func renderStatusLine(m *model.Model, s model.StatusLine) string {
	switch {
	case s.Loading:
		return m.Spinner.View() + " " + design.TextSecondaryStyle.Render(s.Text)
	case s.IsError:
		return design.TextErrorStyle.Render(s.Text)
	case s.Text == model.DoneText:
		return design.TextSuccessStyle.Render(s.Text)
	default:
		return design.TextSecondaryStyle.Render(s.Text)
	}
}
