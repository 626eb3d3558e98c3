// Package protocol decodes the Sinclair/Gree air conditioner UART protocol.
//
// The indoor unit controller and its network gateway exchange binary frames
// over a serial link. This package turns hex dumps of that traffic into
// frames and then into named, human-readable fields. It only decodes; it
// never builds frames and never talks to a device.
//
// # Frame Format
//
// Every frame has this structure:
//   - Sync: 2 bytes (0x7E 0x7E)
//   - Length: 1 byte, counts the command, payload and checksum bytes
//   - Command: 1 byte (0x01 SET from the gateway, 0x31 REPORT from the unit)
//   - Payload: Length-2 bytes (SET frames always carry 45)
//   - Checksum: 1 byte, 8-bit sum of length, command and payload
//
// A frame therefore occupies 3+Length bytes on the wire.
//
// # Payload Layout
//
// Payload fields are packed bitfields addressed by (offset, mask, shift).
// The complete layout lives in one table (see layout.go) that drives a single
// extraction routine, so the table can be audited against captures directly.
// SET and REPORT payloads share the layout; only the beeper bit changes
// meaning with direction.
//
// # Usage Example
//
//	data := protocol.ParseHexBytes("7E 7E 2F 01 ...")
//	for raw := range protocol.ExtractFrames(data) {
//	    frame, err := protocol.DecodeFrame(raw)
//	    if err != nil {
//	        continue // skip the bad candidate, keep going
//	    }
//	    fields := frame.Decode()
//	    fmt.Println(fields.Get("mode"))
//	}
//
// # Error Handling
//
// DecodeFrame returns a *DecodeError for structural failures (too short,
// missing sync, truncated). A checksum mismatch is not an error: it is
// reported through Frame.ChecksumOK and decoding continues. Unknown mode
// codes decode to "UNKNOWN(n)".
//
// Extraction never fails. Whether to fall back to extraction after a failed
// direct decode is a caller decision (see internal/capture).
//
// # Thread Safety
//
// All functions are pure and the lookup tables are read-only, so decoding
// is safe for concurrent use.
package protocol
