package components

import (
	"strings"

	"feeboard/internal/tui/design"

	"github.com/charmbracelet/lipgloss"
)

// Header represents the application header
type Header struct {
	Title        string
	Subtitle     string
	SpinnerView  string
	Width        int
	RightContent string
}

// NewHeader creates a new header
func NewHeader(title string) *Header {
	return &Header{
		Title: title,
		Width: 80,
	}
}

// WithSubtitle adds a subtitle
func (h *Header) WithSubtitle(subtitle string) *Header {
	h.Subtitle = subtitle
	return h
}

// WithSpinner shows a spinner in front of the title
func (h *Header) WithSpinner(spinnerView string) *Header {
	h.SpinnerView = spinnerView
	return h
}

// WithRightContent adds content to the right side
func (h *Header) WithRightContent(content string) *Header {
	h.RightContent = content
	return h
}

// WithWidth sets the header width
func (h *Header) WithWidth(width int) *Header {
	h.Width = width
	return h
}

// Render returns the styled header
func (h *Header) Render() string {
	var leftParts []string
	if h.SpinnerView != "" {
		leftParts = append(leftParts, h.SpinnerView)
	}
	leftParts = append(leftParts, h.Title)
	if h.Subtitle != "" {
		leftParts = append(leftParts, design.TextSecondaryStyle.Render(h.Subtitle))
	}
	leftContent := strings.Join(leftParts, " ")

	availableWidth := h.Width - design.HeaderStyle.GetHorizontalFrameSize()
	content := leftContent
	if h.RightContent != "" {
		leftWidth := lipgloss.Width(leftContent)
		rightWidth := lipgloss.Width(h.RightContent)
		if leftWidth+rightWidth+2 <= availableWidth {
			content = leftContent + strings.Repeat(" ", availableWidth-leftWidth-rightWidth) + h.RightContent
		}
	}

	return design.HeaderStyle.
		Width(h.Width).
		MaxWidth(h.Width).
		Render(content)
}
