package browser

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	PrimaryColor   = lipgloss.Color("#7D56F4") // Purple
	HighlightColor = lipgloss.Color("#43BF6D") // Green
	WarningColor   = lipgloss.Color("#FFA500") // Orange
	ErrorColor     = lipgloss.Color("#FF5555") // Red
	TextColor      = lipgloss.Color("#FFFFFF") // White
	SubtleColor    = lipgloss.Color("#626262") // Gray
)

var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true).
			Padding(0, 1)

	ItemTitleStyle = lipgloss.NewStyle().
			PaddingLeft(4).
			Foreground(TextColor)

	SelectedItemTitleStyle = lipgloss.NewStyle().
				PaddingLeft(2).
				Foreground(HighlightColor).
				Bold(true)

	ItemDescStyle = lipgloss.NewStyle().
			PaddingLeft(4).
			Foreground(SubtleColor)

	StatusOKStyle = lipgloss.NewStyle().
			Foreground(HighlightColor)

	StatusWarnStyle = lipgloss.NewStyle().
			Foreground(WarningColor)

	StatusErrorStyle = lipgloss.NewStyle().
				Foreground(ErrorColor)

	HelpStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			Padding(0, 1)

	DetailTitleStyle = lipgloss.NewStyle().
				Foreground(PrimaryColor).
				Bold(true).
				Padding(0, 1)
)
