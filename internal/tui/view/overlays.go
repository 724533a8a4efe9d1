package view

import (
	"feeboard/internal/tui/design"
	"feeboard/internal/tui/model"

	"github.com/charmbracelet/lipgloss"
)

func renderHelpOverlay(m *model.Model) string {
	titleView := design.HelpTitleStyle.Render("KEYBOARD SHORTCUTS")

	h := m.Help
	h.ShowAll = true
	body := h.FullHelpView(m.Keys.FullHelp())

	overlay := design.CenteredOverlayContainerStyle.Render(
		lipgloss.JoinVertical(lipgloss.Center, titleView, body),
	)
	if m.Width == 0 || m.Height == 0 {
		return overlay
	}
	canvas := lipgloss.Place(m.Width, m.Height-1, lipgloss.Center, lipgloss.Center, overlay)
	return lipgloss.JoinVertical(lipgloss.Left, canvas, renderStatusBar(m, m.Width))
}

// renderLogOverlay sizes the log viewport to the overlay and paints it.
func renderLogOverlay(m *model.Model) string {
	width := m.Width * 9 / 10
	height := m.Height * 8 / 10
	if width < 20 {
		width = 20
	}
	if height < 6 {
		height = 6
	}

	title := design.LogPanelTitleStyle.Render("Activity Log  (↑/↓ scroll  •  y copy  •  Esc close)")
	vpWidth := width - design.LogOverlayStyle.GetHorizontalFrameSize()
	vpHeight := height - design.LogOverlayStyle.GetVerticalFrameSize() - lipgloss.Height(title)
	if vpWidth < 0 {
		vpWidth = 0
	}
	if vpHeight < 0 {
		vpHeight = 0
	}
	m.LogViewport.Width = vpWidth
	m.LogViewport.Height = vpHeight

	content := lipgloss.JoinVertical(lipgloss.Left, title, m.LogViewport.View())
	overlay := design.LogOverlayStyle.
		Width(width - design.LogOverlayStyle.GetHorizontalBorderSize()).
		Height(height - design.LogOverlayStyle.GetVerticalBorderSize()).
		Render(content)

	if m.Width == 0 || m.Height == 0 {
		return overlay
	}
	canvas := lipgloss.Place(m.Width, m.Height-1, lipgloss.Center, lipgloss.Center, overlay)
	return lipgloss.JoinVertical(lipgloss.Left, canvas, renderStatusBar(m, m.Width))
}
