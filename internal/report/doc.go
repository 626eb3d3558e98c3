// Package report renders capture results and statistics.
//
// Five formats are supported:
//
//   - text: the classic block per frame (CMD line, PAYLOAD line, Decoded list)
//   - compact: one line per frame with key=value fields
//   - detailed: lipgloss boxes sized to the terminal
//   - json: one JSON object per line, fields in report order
//   - yaml: one YAML document per frame, fields in report order
//
// A text block looks like:
//
//	CMD=0x31, LEN=45, checksum_ok=true
//	PAYLOAD: 00 00 00 10 00 ...
//	Decoded:
//	  power_bit_raw: 0
//	  mode: AUTO
//
// A Writer renders results as they arrive, so large captures stream.
package report
