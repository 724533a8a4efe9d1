package components

import (
	"strings"

	"feeboard/internal/tui/design"

	"github.com/charmbracelet/lipgloss"
)

// PanelType defines the visual style of a panel
type PanelType int

const (
	PanelTypeDefault PanelType = iota
	PanelTypeSuccess
	PanelTypeError
	PanelTypeWarning
	PanelTypeInfo
)

// String returns the panel type name.
func (pt PanelType) String() string {
	switch pt {
	case PanelTypeDefault:
		return "Default"
	case PanelTypeSuccess:
		return "Success"
	case PanelTypeError:
		return "Error"
	case PanelTypeWarning:
		return "Warning"
	case PanelTypeInfo:
		return "Info"
	default:
		return "Unknown"
	}
}

// Panel is a bordered box with a title line. Cards, the live strip and
// the history list are all panels.
type Panel struct {
	Title     string
	Badges    []string
	Content   string
	Width     int
	Height    int
	Highlight bool
	Type      PanelType
}

// NewPanel creates a new panel with default settings
func NewPanel(title string) *Panel {
	return &Panel{
		Title: title,
		Width: design.MinPanelWidth,
		Type:  PanelTypeDefault,
	}
}

// WithContent sets the panel content
func (p *Panel) WithContent(content string) *Panel {
	p.Content = content
	return p
}

// WithBadges appends already-styled badges after the title.
func (p *Panel) WithBadges(badges ...string) *Panel {
	p.Badges = append(p.Badges, badges...)
	return p
}

// WithDimensions sets the panel dimensions. A zero height sizes the panel
// to its content.
func (p *Panel) WithDimensions(width, height int) *Panel {
	p.Width = width
	p.Height = height
	return p
}

// WithType sets the panel type for styling
func (p *Panel) WithType(panelType PanelType) *Panel {
	p.Type = panelType
	return p
}

// SetHighlight marks the panel as the emphasised one in a row.
func (p *Panel) SetHighlight(highlight bool) *Panel {
	p.Highlight = highlight
	return p
}

// Render returns the styled panel
func (p *Panel) Render() string {
	if p.Width < design.MinPanelWidth {
		p.Width = design.MinPanelWidth
	}
	if p.Height < 0 {
		p.Height = 0
	}

	style := p.getStyle()
	innerWidth := p.Width - style.GetHorizontalFrameSize()
	if innerWidth < 1 {
		innerWidth = 1
	}

	var lines []string
	if title := p.renderTitle(innerWidth); title != "" {
		lines = append(lines, title)
	}
	if p.Content != "" {
		body := lipgloss.NewStyle().Width(innerWidth).Render(p.Content)
		lines = append(lines, strings.Split(body, "\n")...)
	}

	if p.Height > 0 {
		innerHeight := p.Height - style.GetVerticalFrameSize()
		if innerHeight < 1 {
			innerHeight = 1
		}
		if len(lines) > innerHeight {
			lines = lines[:innerHeight]
			if innerHeight > 1 {
				lines[innerHeight-1] = ellipsis
			}
		}
		for len(lines) < innerHeight {
			lines = append(lines, "")
		}
	}

	return style.
		Width(p.Width - style.GetHorizontalBorderSize()).
		Render(strings.Join(lines, "\n"))
}

// getStyle returns the appropriate style based on panel state
func (p *Panel) getStyle() lipgloss.Style {
	baseStyle := design.PanelStyle
	if p.Highlight {
		baseStyle = design.PanelHighlightStyle
	}

	switch p.Type {
	case PanelTypeSuccess:
		return baseStyle.BorderForeground(design.ColorSuccess)
	case PanelTypeError:
		return baseStyle.BorderForeground(design.ColorError)
	case PanelTypeWarning:
		return baseStyle.BorderForeground(design.ColorWarning)
	case PanelTypeInfo:
		return baseStyle.BorderForeground(design.ColorInfo)
	default:
		return baseStyle
	}
}

// renderTitle renders the title followed by the badges that still fit.
func (p *Panel) renderTitle(width int) string {
	if p.Title == "" {
		return ""
	}
	if width < 1 {
		width = 1
	}

	titleStyle := design.TitleStyle
	if p.Highlight {
		titleStyle = titleStyle.Foreground(design.ColorPrimary)
	}
	title := titleStyle.Render(Truncate(p.Title, width))

	used := lipgloss.Width(title)
	for _, badge := range p.Badges {
		bw := lipgloss.Width(badge)
		if used+1+bw > width {
			break
		}
		title += " " + badge
		used += 1 + bw
	}
	return title
}
