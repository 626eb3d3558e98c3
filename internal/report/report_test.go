package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/muurk/sinclair-decoder/internal/capture"
	"github.com/muurk/sinclair-decoder/internal/protocol"
)

// reportFrame is a REPORT frame: mode COOL, power on, indoor byte 40
func reportFrame() []byte {
	payload := make([]byte, 43)
	payload[4] = 0x90
	payload[42] = 40
	length := byte(len(payload) + 2)
	f := []byte{protocol.SyncByte, protocol.SyncByte, length, protocol.CmdReport}
	f = append(f, payload...)
	return append(f, protocol.Checksum(length, protocol.CmdReport, payload))
}

func decode(t *testing.T, text string, opts ...capture.Option) []capture.Result {
	t.Helper()
	results, err := capture.NewProcessor(capture.PolicyExtract, opts...).DecodeText(text)
	require.NoError(t, err)
	return results
}

func render(t *testing.T, format Format, opts Options, results []capture.Result) string {
	t.Helper()
	var buf bytes.Buffer
	w := NewWriter(&buf, format, opts)
	require.NoError(t, w.WriteAll(results))
	assert.Equal(t, len(results), w.Count())
	return buf.String()
}

func TestParseFormat(t *testing.T) {
	for _, name := range []string{"text", "compact", "detailed", "json", "yaml"} {
		f, err := ParseFormat(strings.ToUpper(name))
		require.NoError(t, err)
		assert.Equal(t, name, f.String())
	}
	_, err := ParseFormat("xml")
	assert.Error(t, err)
	assert.Equal(t, "Format(7)", Format(7).String())
}

func TestWriter_Text(t *testing.T) {
	hexText := protocol.FormatHex(reportFrame(), " ")
	out := render(t, FormatText, Options{}, decode(t, hexText))

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.GreaterOrEqual(t, len(lines), 4)
	assert.Equal(t, "CMD=0x31, LEN=45, checksum_ok=true", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "PAYLOAD: 00 00 00 00 90 00"))
	assert.Equal(t, "Decoded:", lines[2])
	assert.Equal(t, "  power_bit_raw: 1", lines[3])
	assert.Equal(t, "  mode: COOL", lines[4])
	assert.Contains(t, out, "  ac_indoor_temperature: 24.0\n")
	assert.Contains(t, out, "  beeper_effective: ON if raw=1 (reported state)\n")
	assert.NotContains(t, out, separator)
}

func TestWriter_TextSeparatorAndFailure(t *testing.T) {
	frame := protocol.FormatHex(reportFrame(), " ")
	results := decode(t, frame+" "+frame)
	results = append(results, capture.Result{Source: "input", Raw: []byte{0x01}, Err: protocol.ErrFrameTooShort})

	out := render(t, FormatText, Options{ShowRaw: true}, results)
	assert.Equal(t, 2, strings.Count(out, separator+"\n"))
	assert.Contains(t, out, "Failed to parse frame: frame too short\nRAW: 01\n")
	assert.Contains(t, out, "RAW: 7E 7E 2D 31")
}

func TestWriter_TextPayloadColumns(t *testing.T) {
	out := render(t, FormatText, Options{PayloadColumns: 16}, decode(t, protocol.FormatHex(reportFrame(), " ")))
	assert.Contains(t, out, "PAYLOAD: 00 00 00 00 90 00 00 00 00 00 00 00 00 00 00 00\n         00")
}

func TestWriter_Compact(t *testing.T) {
	out := render(t, FormatCompact, Options{}, decode(t, protocol.FormatHex(reportFrame(), ".")))
	assert.True(t, strings.HasPrefix(out, "input: REPORT cmd=0x31 len=45 checksum=ok power_bit_raw=1 mode=COOL"))
	assert.Contains(t, out, "ac_indoor_temperature=24.0")
	assert.Contains(t, out, "beeper_raw=0 beeper_effective=ON-if-1 ")
	assert.Equal(t, 1, strings.Count(out, "\n"))
}

func TestWriter_CompactBeeperNote(t *testing.T) {
	payload := make([]byte, protocol.SetPayloadLen)
	payload[40] = 0x01
	length := byte(len(payload) + 2)
	f := []byte{protocol.SyncByte, protocol.SyncByte, length, protocol.CmdSet}
	f = append(f, payload...)
	f = append(f, protocol.Checksum(length, protocol.CmdSet, payload))

	out := render(t, FormatCompact, Options{}, decode(t, protocol.FormatHex(f, " ")))
	assert.Contains(t, out, "beeper_raw=1 beeper_effective=OFF-if-1 ")

	fields := strings.Fields(out)
	textOut := render(t, FormatText, Options{}, decode(t, protocol.FormatHex(f, " ")))
	for _, name := range []string{protocol.FieldBeeperRaw, protocol.FieldBeeperEffective, protocol.FieldIndoorTemp} {
		assert.Contains(t, textOut, "  "+name+": ")
		assert.True(t, containsPrefix(fields, name+"="), name)
	}
}

func containsPrefix(items []string, prefix string) bool {
	for _, s := range items {
		if strings.HasPrefix(s, prefix) {
			return true
		}
	}
	return false
}

func TestWriter_CompactBadChecksum(t *testing.T) {
	f := reportFrame()
	f[len(f)-1] ^= 0xFF
	out := render(t, FormatCompact, Options{}, decode(t, protocol.FormatHex(f, " ")))
	assert.Contains(t, out, "checksum=BAD(0x")
}

func TestWriter_JSON(t *testing.T) {
	results := decode(t, protocol.FormatHex(reportFrame(), " "))
	results = append(results, capture.Result{Source: "line 2", Line: 2, Raw: []byte{0x7E}, Err: protocol.ErrFrameTooShort})

	out := render(t, FormatJSON, Options{}, results)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)

	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &rec))
	assert.Equal(t, "0x31", rec["command"])
	assert.Equal(t, "REPORT", rec["direction"])
	assert.Equal(t, true, rec["checksum_ok"])
	assert.Equal(t, float64(45), rec["length"])
	fields := rec["fields"].(map[string]any)
	assert.Equal(t, "COOL", fields["mode"])
	assert.Equal(t, float64(24), fields["ac_indoor_temperature"])

	// Field order follows the payload layout
	assert.Less(t, strings.Index(lines[0], `"power_bit_raw"`), strings.Index(lines[0], `"mode"`))
	assert.Less(t, strings.Index(lines[0], `"mode"`), strings.Index(lines[0], `"ac_indoor_temperature"`))

	var failed map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &failed))
	assert.Equal(t, "frame too short", failed["error"])
	assert.Equal(t, "7E", failed["raw"])
	assert.NotContains(t, failed, "fields")
}

func TestWriter_JSONNullField(t *testing.T) {
	res := capture.Result{
		Source: "input",
		Frame:  &protocol.Frame{Length: 4, Command: protocol.CmdReport, Payload: []byte{0x00, 0x10}},
	}
	res.Fields = protocol.DecodePayload(res.Frame.Payload, protocol.DirectionReport)

	out := render(t, FormatJSON, Options{}, []capture.Result{res})
	assert.Contains(t, out, `"ac_indoor_temperature":null`)
}

func TestWriter_YAML(t *testing.T) {
	frame := protocol.FormatHex(reportFrame(), " ")
	out := render(t, FormatYAML, Options{}, decode(t, frame+" "+frame, capture.WithLabels(true)))

	assert.Equal(t, 2, strings.Count(out, "---\n"))

	dec := yaml.NewDecoder(strings.NewReader(out))
	var doc struct {
		Command    string         `yaml:"command"`
		ChecksumOK bool           `yaml:"checksum_ok"`
		Fields     map[string]any `yaml:"fields"`
	}
	require.NoError(t, dec.Decode(&doc))
	assert.Equal(t, "0x31", doc.Command)
	assert.True(t, doc.ChecksumOK)
	assert.Equal(t, "COOL", doc.Fields["mode"])
	assert.Equal(t, "OFF", doc.Fields["vertical_swing"])

	assert.Less(t, strings.Index(out, "power_bit_raw:"), strings.Index(out, "mode:"))
}

func TestWriter_Detailed(t *testing.T) {
	results := decode(t, protocol.FormatHex(reportFrame(), " "))
	results = append(results, capture.Result{Source: "line 9", Raw: []byte{0x00, 0x00, 0x00, 0x00, 0x00}})
	_, results[1].Err = protocol.DecodeFrame(results[1].Raw)

	out := render(t, FormatDetailed, Options{Width: 80}, results)
	assert.Contains(t, out, "REPORT FRAME")
	assert.Contains(t, out, "checksum OK")
	assert.Contains(t, out, "COOL")
	assert.Contains(t, out, "DECODE FAILURE")
	assert.Contains(t, out, "line 9")
	assert.Contains(t, out, "Frames start with 7E 7E")
}

func TestPayloadRows(t *testing.T) {
	payload := []byte{1, 2, 3, 4, 5}
	assert.Equal(t, []string{"01 02 03 04 05"}, PayloadRows(payload, 0))
	assert.Equal(t, []string{"01 02", "03 04", "05"}, PayloadRows(payload, 2))
	assert.Equal(t, []string{"01 02 03 04 05"}, PayloadRows(payload, 5))
	assert.Equal(t, []string{""}, PayloadRows(nil, 4))
}

func TestWriteStats(t *testing.T) {
	stats := capture.NewStats()
	p := capture.NewProcessor(capture.PolicyFallback, capture.WithStats(stats))
	input := protocol.FormatHex(reportFrame(), " ") + "\n01 02 03 04 05\n"
	_, err := p.Collect(t.Context(), strings.NewReader(input))
	require.NoError(t, err)

	var text bytes.Buffer
	require.NoError(t, WriteStats(&text, stats, FormatText))
	assert.Contains(t, text.String(), "CAPTURE STATISTICS")
	assert.Contains(t, text.String(), "0x31 (REPORT): 1 (100.00%)")
	assert.Contains(t, text.String(), "MissingSync: 1")
	assert.Contains(t, text.String(), "Issues found: 1 decode failures, 0 checksum failures")

	var js bytes.Buffer
	require.NoError(t, WriteStats(&js, stats, FormatJSON))
	var rec statsRecord
	require.NoError(t, json.Unmarshal(js.Bytes(), &rec))
	assert.Equal(t, 2, rec.Candidates)
	assert.Equal(t, 1, rec.Commands["0x31"])
	assert.Equal(t, 1, rec.PayloadLengths[43])

	var ym bytes.Buffer
	require.NoError(t, WriteStats(&ym, stats, FormatYAML))
	assert.Contains(t, ym.String(), "decode_failures: 1")
}

func TestWriteStats_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteStats(&buf, capture.NewStats(), FormatText))
	assert.Contains(t, buf.String(), "No frames found")
}
