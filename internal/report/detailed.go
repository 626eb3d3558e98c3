package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/muurk/sinclair-decoder/internal/capture"
	"github.com/muurk/sinclair-decoder/internal/protocol"
	"github.com/muurk/sinclair-decoder/internal/ui"
)

// failureHints maps decode failures to suggestions shown in the detailed view
var failureHints = map[protocol.ErrorKind][]string{
	protocol.KindFrameTooShort: {
		"A frame needs at least 5 bytes: 7E 7E, length, command, checksum",
		"Check that the whole frame was captured on one line",
	},
	protocol.KindMissingSync: {
		"Frames start with 7E 7E",
		"Use --policy extract to search for frames inside noisy lines",
	},
	protocol.KindFrameTruncated: {
		"The length byte declares more bytes than were captured",
		"SET frames (command 0x01) always carry a 45-byte payload",
	},
}

// RenderDetailed renders one result as a header and a box
func RenderDetailed(res capture.Result, opts Options) string {
	width := opts.Width
	if width <= 0 {
		width = ui.GetTerminalWidth()
	}

	if !res.OK() {
		var hints []string
		if kind, ok := protocol.KindOf(res.Err); ok {
			hints = failureHints[kind]
		}
		header := ui.NewHeader("Decode failure", res.Source, []ui.Param{
			{Key: "Bytes", Value: fmt.Sprintf("%d", len(res.Raw))},
			{Key: "Raw", Value: protocol.FormatHex(res.Raw, " ")},
		}).SetWidth(width)
		box := ui.NewFailureResult("candidate not decoded", res.Err, hints).SetWidth(width)
		return header.Render() + "\n" + box.Render()
	}

	f := res.Frame
	params := []ui.Param{
		{Key: "Command", Value: fmt.Sprintf("0x%02X (%s)", f.Command, f.CommandName())},
		{Key: "Length", Value: fmt.Sprintf("%d", f.Length)},
		{Key: "Checksum", Value: fmt.Sprintf("0x%02X", f.Checksum)},
	}
	if opts.ShowRaw {
		params = append(params, ui.Param{Key: "Raw", Value: protocol.FormatHex(f.Raw, " ")})
	}
	header := ui.NewHeader(f.Direction().String()+" frame", res.Source, params).SetWidth(width)

	fields := make([]ui.Param, 0, len(res.Fields.Fields))
	for _, field := range res.Fields.Fields {
		fields = append(fields, ui.Param{Key: field.Name, Value: protocol.FormatValue(field.Value)})
	}

	columns := opts.PayloadColumns
	if columns <= 0 {
		columns = 16
	}

	var box *ui.Result
	if f.ChecksumOK {
		box = ui.NewSuccessResult("checksum OK", fields)
	} else {
		expected := protocol.Checksum(f.Length, f.Command, f.Payload)
		box = ui.NewWarningResult(fmt.Sprintf("checksum mismatch (expected 0x%02X)", expected), fields)
	}
	box.SetWidth(width).SetPayload(strings.Join(PayloadRows(f.Payload, columns), "\n"))
	for _, field := range res.Fields.Fields {
		if field.Value == nil {
			box.MarkNull(field.Name)
		}
	}

	return header.Render() + "\n" + box.Render()
}

func (w *Writer) writeDetailed(res capture.Result) error {
	_, err := io.WriteString(w.out, RenderDetailed(res, w.opts)+"\n")
	return err
}
