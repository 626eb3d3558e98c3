package ui

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Color palette for frame rendering
var (
	PrimaryColor = lipgloss.Color("#7D56F4") // Purple - headers, borders
	SuccessColor = lipgloss.Color("#43BF6D") // Green - checksum OK
	ErrorColor   = lipgloss.Color("#FF5555") // Red - decode failures
	WarningColor = lipgloss.Color("#FFA500") // Orange - checksum mismatch
	MutedColor   = lipgloss.Color("#626262") // Gray - secondary info
	TextColor    = lipgloss.Color("#FFFFFF") // White - main content
	AccentColor  = lipgloss.Color("#5FAFFF") // Blue - payload hex
)

// Layout constants
const (
	MinTerminalWidth = 60  // Minimum supported terminal width
	MaxContentWidth  = 100 // Maximum content width before capping
	DefaultPadding   = 2   // Default padding inside boxes
	KeyColumnWidth   = 26  // Width of the field name column
)

// Shared styles
var (
	// HeaderTitleStyle is for the frame title (e.g., "REPORT FRAME")
	HeaderTitleStyle = lipgloss.NewStyle().
				Foreground(TextColor).
				Bold(true).
				PaddingLeft(2)

	// HeaderSourceStyle is for where the frame came from (e.g., "line 12")
	HeaderSourceStyle = lipgloss.NewStyle().
				Foreground(MutedColor).
				PaddingLeft(2)

	// HeaderParamKeyStyle is for header keys (e.g., "Command:")
	HeaderParamKeyStyle = lipgloss.NewStyle().
				Foreground(MutedColor).
				PaddingLeft(2)

	// HeaderParamValueStyle is for header values (e.g., "0x31")
	HeaderParamValueStyle = lipgloss.NewStyle().
				Foreground(TextColor)

	SuccessTitleStyle = lipgloss.NewStyle().
				Foreground(SuccessColor).
				Bold(true)

	WarningTitleStyle = lipgloss.NewStyle().
				Foreground(WarningColor).
				Bold(true)

	ErrorTitleStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	ErrorMessageStyle = lipgloss.NewStyle().
				Foreground(ErrorColor)

	// FieldKeyStyle is for decoded field names
	FieldKeyStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			Width(KeyColumnWidth)

	// FieldValueStyle is for decoded field values
	FieldValueStyle = lipgloss.NewStyle().
			Foreground(TextColor)

	// NullValueStyle is for fields the payload did not carry
	NullValueStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			Italic(true)

	// PayloadStyle is for hex dumps
	PayloadStyle = lipgloss.NewStyle().
			Foreground(AccentColor)

	SectionTitleStyle = lipgloss.NewStyle().
				Foreground(MutedColor).
				Bold(true)

	HintItemStyle = lipgloss.NewStyle().
			Foreground(MutedColor)
)

// Status markers
const (
	SuccessMarker = "✓"
	WarningMarker = "⚠"
	FailureMarker = "✗"
)

// GetTerminalWidth returns the current terminal width, with fallback
func GetTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width < MinTerminalWidth {
		return MinTerminalWidth
	}
	if width > MaxContentWidth {
		return MaxContentWidth
	}
	return width
}

// IsTerminal reports whether stdout is attached to a terminal
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// clampWidth keeps a requested width within the supported range
func clampWidth(width int) int {
	if width < MinTerminalWidth {
		return MinTerminalWidth
	}
	if width > MaxContentWidth {
		return MaxContentWidth
	}
	return width
}

// RenderHorizontalDivider creates a horizontal line of the specified width
func RenderHorizontalDivider(width int, char string) string {
	if width < 1 {
		width = 1
	}
	return lipgloss.NewStyle().
		Foreground(PrimaryColor).
		Render(strings.Repeat(char, width))
}
