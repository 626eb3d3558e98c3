package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ResultType indicates how a frame decode went
type ResultType int

const (
	ResultSuccess ResultType = iota // Decoded, checksum OK
	ResultWarning                   // Decoded, checksum mismatch
	ResultFailure                   // Not decoded
)

// Result is the box drawn for one decode attempt
type Result struct {
	Type    ResultType
	Title   string  // e.g., "checksum OK"
	Payload string  // Pre-formatted hex rows
	Fields  []Param // Decoded fields in report order
	Nulls   map[string]bool
	Error   error    // For failures
	Hints   []string // For failures
	Width   int
}

// NewSuccessResult creates a box for a frame whose checksum matched
func NewSuccessResult(title string, fields []Param) *Result {
	return &Result{Type: ResultSuccess, Title: title, Fields: fields, Width: GetTerminalWidth()}
}

// NewWarningResult creates a box for a frame that decoded with a bad checksum
func NewWarningResult(title string, fields []Param) *Result {
	return &Result{Type: ResultWarning, Title: title, Fields: fields, Width: GetTerminalWidth()}
}

// NewFailureResult creates a box for a candidate that did not decode
func NewFailureResult(title string, err error, hints []string) *Result {
	return &Result{Type: ResultFailure, Title: title, Error: err, Hints: hints, Width: GetTerminalWidth()}
}

// SetWidth sets the terminal width for responsive rendering
func (r *Result) SetWidth(width int) *Result {
	r.Width = width
	return r
}

// SetPayload sets the hex rows shown above the fields
func (r *Result) SetPayload(rows string) *Result {
	r.Payload = rows
	return r
}

// MarkNull renders the named field as absent
func (r *Result) MarkNull(name string) *Result {
	if r.Nulls == nil {
		r.Nulls = make(map[string]bool)
	}
	r.Nulls[name] = true
	return r
}

// Render returns the styled result box as a string
func (r *Result) Render() string {
	width := clampWidth(r.Width)

	var (
		lines  []string
		border lipgloss.Color
	)

	switch r.Type {
	case ResultFailure:
		border = ErrorColor
		lines = append(lines, "", ErrorTitleStyle.Render(fmt.Sprintf(" %s  FAILED  ─  %s", FailureMarker, r.Title)), "")
		if r.Error != nil {
			lines = append(lines, ErrorMessageStyle.Render(" Error: "+r.Error.Error()), "")
		}
		if len(r.Hints) > 0 {
			lines = append(lines, r.renderHints(width), "")
		}
	case ResultWarning:
		border = WarningColor
		lines = append(lines, "", WarningTitleStyle.Render(fmt.Sprintf(" %s  %s", WarningMarker, r.Title)), "")
		lines = append(lines, r.renderBody()...)
	default:
		border = SuccessColor
		lines = append(lines, "", SuccessTitleStyle.Render(fmt.Sprintf(" %s  %s", SuccessMarker, r.Title)), "")
		lines = append(lines, r.renderBody()...)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(border).
		Width(width - 2).
		Padding(0, 2).
		Render(strings.Join(lines, "\n"))
}

func (r *Result) renderBody() []string {
	var lines []string
	if r.Payload != "" {
		lines = append(lines, SectionTitleStyle.Render(" Payload"))
		for _, row := range strings.Split(r.Payload, "\n") {
			lines = append(lines, PayloadStyle.Render("   "+row))
		}
		lines = append(lines, "")
	}
	if len(r.Fields) > 0 {
		lines = append(lines, SectionTitleStyle.Render(" Decoded"))
		for _, f := range r.Fields {
			value := FieldValueStyle.Render(f.Value)
			if r.Nulls[f.Key] {
				value = NullValueStyle.Render(f.Value)
			}
			lines = append(lines, FieldKeyStyle.Render("   "+f.Key)+" "+value)
		}
		lines = append(lines, "")
	}
	return lines
}

func (r *Result) renderHints(width int) string {
	lines := []string{SectionTitleStyle.Render("Hints:"), ""}
	for _, hint := range r.Hints {
		lines = append(lines, HintItemStyle.Render("  • "+hint))
	}

	innerWidth := width - 12 // Indent within outer box
	if innerWidth < 40 {
		innerWidth = 40
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(MutedColor).
		Width(innerWidth).
		Padding(0, 1).
		MarginLeft(1).
		Render(strings.Join(lines, "\n"))
}

// String implements fmt.Stringer
func (r *Result) String() string {
	return r.Render()
}
