package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Param is one key/value line. Slices of Param keep their order when rendered.
type Param struct {
	Key   string
	Value string
}

// Header is the banner drawn above a decoded frame
type Header struct {
	Title  string  // e.g., "REPORT FRAME"
	Source string  // e.g., "line 12"
	Params []Param // e.g., Command, Length, Checksum
	Width  int     // Terminal width for responsive rendering
}

// NewHeader creates a new header with the given values
func NewHeader(title, source string, params []Param) *Header {
	return &Header{
		Title:  title,
		Source: source,
		Params: params,
		Width:  GetTerminalWidth(),
	}
}

// SetWidth sets the terminal width for responsive rendering
func (h *Header) SetWidth(width int) *Header {
	h.Width = width
	return h
}

// Render returns the styled header as a string
func (h *Header) Render() string {
	width := clampWidth(h.Width)

	top := HeaderTitleStyle.Render(strings.ToUpper(h.Title))
	if h.Source != "" {
		top = lipgloss.JoinVertical(lipgloss.Left, top, HeaderSourceStyle.Render(h.Source))
	}

	content := top
	if len(h.Params) > 0 {
		dividerWidth := width - 6 // Account for border and padding
		if dividerWidth < 10 {
			dividerWidth = 10
		}
		divider := RenderHorizontalDivider(dividerWidth, "─")

		lines := make([]string, 0, len(h.Params))
		for _, p := range h.Params {
			lines = append(lines, HeaderParamKeyStyle.Render(p.Key+":")+" "+HeaderParamValueStyle.Render(p.Value))
		}
		content = lipgloss.JoinVertical(lipgloss.Left, top, divider, strings.Join(lines, "\n"))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(PrimaryColor).
		Width(width - 2). // Account for border characters
		Render(content)
}

// String implements fmt.Stringer
func (h *Header) String() string {
	return h.Render()
}
