package browser

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muurk/sinclair-decoder/internal/capture"
	"github.com/muurk/sinclair-decoder/internal/protocol"
	"github.com/muurk/sinclair-decoder/internal/report"
)

func sampleResults(t *testing.T) []capture.Result {
	t.Helper()
	var text []string
	for _, mode := range []byte{protocol.ModeCool, protocol.ModeHeat} {
		payload := make([]byte, 43)
		payload[4] = 0x80 | mode<<4
		length := byte(len(payload) + 2)
		f := []byte{protocol.SyncByte, protocol.SyncByte, length, protocol.CmdReport}
		f = append(f, payload...)
		f = append(f, protocol.Checksum(length, protocol.CmdReport, payload))
		text = append(text, protocol.FormatHex(f, " "))
	}
	results, err := capture.NewProcessor(capture.PolicyExtract).DecodeText(strings.Join(text, " "))
	require.NoError(t, err)
	require.Len(t, results, 2)
	return append(results, capture.Result{Source: "line 7", Raw: []byte{0x7E}, Err: protocol.ErrFrameTooShort})
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model, cmd
}

func TestModel_OpenAndNavigate(t *testing.T) {
	m := New(sampleResults(t), "capture.log", report.Options{})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 90, Height: 40})

	assert.Contains(t, m.View(), "capture.log")
	assert.Contains(t, m.View(), "REPORT 0x31")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, m.ShowDetail)
	assert.Equal(t, 0, m.Current)
	assert.Contains(t, m.View(), "frame 1 of 3")
	assert.Contains(t, m.View(), "COOL")

	m, _ = update(t, m, keyRune('n'))
	assert.Equal(t, 1, m.Current)
	assert.Contains(t, m.View(), "HEAT")

	m, _ = update(t, m, keyRune('n'))
	m, _ = update(t, m, keyRune('n'))
	assert.Equal(t, 2, m.Current, "next stops at the last frame")
	assert.Contains(t, m.View(), "DECODE FAILURE")

	m, _ = update(t, m, keyRune('p'))
	assert.Equal(t, 1, m.Current)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.ShowDetail)
}

func TestModel_Quit(t *testing.T) {
	m := New(sampleResults(t), "input", report.Options{})

	_, cmd := update(t, m, keyRune('q'))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModel_HelpToggle(t *testing.T) {
	m := New(sampleResults(t), "input", report.Options{})
	assert.False(t, m.Help.ShowAll)

	m, _ = update(t, m, keyRune('?'))
	assert.True(t, m.Help.ShowAll)
}

func TestModel_Empty(t *testing.T) {
	m := New(nil, "empty.log", report.Options{})
	assert.Contains(t, m.View(), "No frames found")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, m.ShowDetail)
}

func TestFrameItem(t *testing.T) {
	results := sampleResults(t)

	ok := frameItem{index: 0, res: results[0]}
	assert.Equal(t, "#1  input  REPORT 0x31", ok.Title())
	assert.Contains(t, ok.Description(), "mode=COOL")
	assert.Contains(t, ok.Description(), "power_bit_raw=1")
	assert.Contains(t, ok.FilterValue(), "COOL")

	failed := frameItem{index: 2, res: results[2]}
	assert.Equal(t, "#3  line 7  decode failure", failed.Title())
	assert.Equal(t, "frame too short", failed.Description())
	assert.Contains(t, failed.FilterValue(), "error")
}
