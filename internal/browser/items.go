package browser

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/muurk/sinclair-decoder/internal/capture"
	"github.com/muurk/sinclair-decoder/internal/protocol"
)

// frameItem wraps a capture result for use with bubbles/list
type frameItem struct {
	index int
	res   capture.Result
}

// FilterValue lets the list filter on source, command and field values
func (f frameItem) FilterValue() string {
	parts := []string{f.res.Source}
	if !f.res.OK() {
		parts = append(parts, "error", f.res.Err.Error())
		return strings.Join(parts, " ")
	}
	parts = append(parts, f.res.Frame.CommandName())
	for _, field := range f.res.Fields.Fields {
		parts = append(parts, protocol.FormatValue(field.Value))
	}
	return strings.Join(parts, " ")
}

// Title returns the list heading for the frame
func (f frameItem) Title() string {
	source := f.res.Source
	if source == "" {
		source = "input"
	}
	if !f.res.OK() {
		return fmt.Sprintf("#%d  %s  decode failure", f.index+1, source)
	}
	return fmt.Sprintf("#%d  %s  %s 0x%02X", f.index+1, source, f.res.Frame.CommandName(), f.res.Frame.Command)
}

// Description summarizes the decoded frame
func (f frameItem) Description() string {
	if !f.res.OK() {
		return f.res.Err.Error()
	}
	fr := f.res.Frame
	summary := fmt.Sprintf("len=%d payload=%d", fr.Length, len(fr.Payload))
	for _, name := range []string{protocol.FieldPower, protocol.FieldMode, protocol.FieldTargetTemp} {
		if v, ok := f.res.Fields.Get(name); ok {
			summary += fmt.Sprintf(" %s=%s", name, protocol.FormatValue(v))
		}
	}
	return summary
}

// status returns the styled checksum/decode marker
func (f frameItem) status() string {
	switch {
	case !f.res.OK():
		return StatusErrorStyle.Render("✗ error")
	case f.res.Frame.ChecksumOK:
		return StatusOKStyle.Render("✓ checksum")
	default:
		return StatusWarnStyle.Render("⚠ checksum")
	}
}

// frameDelegate renders two-line list entries
type frameDelegate struct{}

func (d frameDelegate) Height() int { return 2 }

func (d frameDelegate) Spacing() int { return 1 }

func (d frameDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }

func (d frameDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	fi, ok := item.(frameItem)
	if !ok {
		return
	}

	title := ItemTitleStyle.Render(fi.Title())
	if index == m.Index() {
		title = SelectedItemTitleStyle.Render("→ " + fi.Title())
	}

	fmt.Fprintf(w, "%s  %s\n%s", title, fi.status(), ItemDescStyle.Render(fi.Description()))
}

func toItems(results []capture.Result) []list.Item {
	items := make([]list.Item, len(results))
	for i, res := range results {
		items[i] = frameItem{index: i, res: res}
	}
	return items
}
