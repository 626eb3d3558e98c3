package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/muurk/sinclair-decoder/internal/capture"
	"github.com/muurk/sinclair-decoder/internal/protocol"
)

// separator is printed between text blocks
const separator = "---"

// Options tunes rendering
type Options struct {
	PayloadColumns int  // Hex bytes per payload row, 0 for a single row
	ShowRaw        bool // Include the raw frame bytes
	Width          int  // Terminal width for the detailed format, 0 to detect
}

// Writer renders results to an io.Writer in one format
type Writer struct {
	out    io.Writer
	format Format
	opts   Options
	count  int
}

// NewWriter creates a Writer
func NewWriter(out io.Writer, format Format, opts Options) *Writer {
	return &Writer{out: out, format: format, opts: opts}
}

// Count returns how many results were written
func (w *Writer) Count() int {
	return w.count
}

// Write renders one result
func (w *Writer) Write(res capture.Result) error {
	var err error
	switch w.format {
	case FormatCompact:
		err = w.writeCompact(res)
	case FormatDetailed:
		err = w.writeDetailed(res)
	case FormatJSON:
		err = w.writeJSON(res)
	case FormatYAML:
		err = w.writeYAML(res)
	default:
		err = w.writeText(res)
	}
	if err != nil {
		return fmt.Errorf("failed to write %s output: %w", w.format, err)
	}
	w.count++
	return nil
}

// WriteAll renders results in order
func (w *Writer) WriteAll(results []capture.Result) error {
	for _, res := range results {
		if err := w.Write(res); err != nil {
			return err
		}
	}
	return nil
}

func (w *Writer) writeText(res capture.Result) error {
	var b strings.Builder
	if w.count > 0 {
		b.WriteString(separator + "\n")
	}

	if !res.OK() {
		fmt.Fprintf(&b, "Failed to parse frame: %v\n", res.Err)
		if w.opts.ShowRaw {
			fmt.Fprintf(&b, "RAW: %s\n", protocol.FormatHex(res.Raw, " "))
		}
		_, err := io.WriteString(w.out, b.String())
		return err
	}

	f := res.Frame
	if w.opts.ShowRaw {
		fmt.Fprintf(&b, "RAW: %s\n", protocol.FormatHex(f.Raw, " "))
	}
	fmt.Fprintf(&b, "CMD=0x%02X, LEN=%d, checksum_ok=%v\n", f.Command, f.Length, f.ChecksumOK)

	rows := PayloadRows(f.Payload, w.opts.PayloadColumns)
	b.WriteString("PAYLOAD: " + strings.Join(rows, "\n         ") + "\n")

	b.WriteString("Decoded:\n")
	for _, field := range res.Fields.Fields {
		fmt.Fprintf(&b, "  %s: %s\n", field.Name, protocol.FormatValue(field.Value))
	}

	_, err := io.WriteString(w.out, b.String())
	return err
}

func (w *Writer) writeCompact(res capture.Result) error {
	source := res.Source
	if source == "" {
		source = "input"
	}

	if !res.OK() {
		_, err := fmt.Fprintf(w.out, "%s: error: %v\n", source, res.Err)
		return err
	}

	f := res.Frame
	parts := []string{
		source + ":",
		f.CommandName(),
		fmt.Sprintf("cmd=0x%02X", f.Command),
		fmt.Sprintf("len=%d", f.Length),
	}
	if f.ChecksumOK {
		parts = append(parts, "checksum=ok")
	} else {
		parts = append(parts, fmt.Sprintf("checksum=BAD(0x%02X)", f.Checksum))
	}
	for _, field := range res.Fields.Fields {
		value := compactValue(field.Value)
		if field.Name == protocol.FieldBeeperEffective {
			value = compactBeeperNote(field.Value)
		}
		parts = append(parts, field.Name+"="+value)
	}

	_, err := fmt.Fprintln(w.out, strings.Join(parts, " "))
	return err
}

// compactValue quotes values containing spaces so lines stay splittable
func compactValue(v any) string {
	s := protocol.FormatValue(v)
	if strings.ContainsAny(s, " \t") {
		return fmt.Sprintf("%q", s)
	}
	return s
}

// compactBeeperNote shortens the beeper note to a single token
func compactBeeperNote(v any) string {
	switch v {
	case protocol.BeeperNoteSet:
		return "OFF-if-1"
	case protocol.BeeperNoteReport:
		return "ON-if-1"
	default:
		return compactValue(v)
	}
}

// PayloadRows formats payload bytes as hex rows of columns bytes each.
// columns <= 0 puts everything on one row. An empty payload is one empty row.
func PayloadRows(payload []byte, columns int) []string {
	if columns <= 0 || len(payload) <= columns {
		return []string{protocol.FormatHex(payload, " ")}
	}
	rows := make([]string, 0, (len(payload)+columns-1)/columns)
	for start := 0; start < len(payload); start += columns {
		end := min(start+columns, len(payload))
		rows = append(rows, protocol.FormatHex(payload[start:end], " "))
	}
	return rows
}
