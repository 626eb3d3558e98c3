// Package ui provides lipgloss styling for decoded frames.
//
// The components follow a render-once pattern: they build a string that the
// caller writes wherever it likes. Two component types exist:
//
//   - Header: banner with the frame's direction, source and header fields
//   - Result: box holding the payload hex and decoded fields, or the
//     failure reason with hints when a candidate did not decode
//
// The box color reflects the outcome: green when the checksum matched,
// orange on a checksum mismatch, red when decoding failed.
//
// Example:
//
//	header := ui.NewHeader("REPORT FRAME", "line 12", []ui.Param{
//	    {Key: "Command", Value: "0x31"},
//	    {Key: "Length", Value: "45"},
//	})
//	box := ui.NewSuccessResult("checksum OK", fields).SetPayload(rows)
//	fmt.Println(header.Render())
//	fmt.Println(box.Render())
//
// Widths come from the terminal via golang.org/x/term and are clamped to
// MinTerminalWidth..MaxContentWidth.
package ui
