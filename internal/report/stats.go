package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/muurk/sinclair-decoder/internal/capture"
	"github.com/muurk/sinclair-decoder/internal/protocol"
)

// statsRecord is the structured form of capture statistics
type statsRecord struct {
	Lines            int            `json:"lines" yaml:"lines"`
	LinesWithHex     int            `json:"lines_with_hex" yaml:"lines_with_hex"`
	Candidates       int            `json:"candidates" yaml:"candidates"`
	Decoded          int            `json:"decoded" yaml:"decoded"`
	ChecksumFailures int            `json:"checksum_failures" yaml:"checksum_failures"`
	DecodeFailures   int            `json:"decode_failures" yaml:"decode_failures"`
	Commands         map[string]int `json:"commands" yaml:"commands"`
	ErrorKinds       map[string]int `json:"error_kinds,omitempty" yaml:"error_kinds,omitempty"`
	PayloadLengths   map[int]int    `json:"payload_lengths" yaml:"payload_lengths"`
}

func newStatsRecord(s *capture.Stats) statsRecord {
	rec := statsRecord{
		Lines:            s.Lines,
		LinesWithHex:     s.LinesWithHex,
		Candidates:       s.Candidates,
		Decoded:          s.Decoded,
		ChecksumFailures: s.ChecksumFailures,
		DecodeFailures:   s.DecodeFailures,
		Commands:         make(map[string]int, len(s.Commands)),
		ErrorKinds:       make(map[string]int, len(s.ErrorKinds)),
		PayloadLengths:   s.PayloadLengths,
	}
	for cmd, n := range s.Commands {
		rec.Commands[fmt.Sprintf("0x%02X", cmd)] = n
	}
	for kind, n := range s.ErrorKinds {
		rec.ErrorKinds[kind.String()] = n
	}
	return rec
}

// WriteStats renders capture statistics. Text, compact and detailed share
// the human-readable summary.
func WriteStats(out io.Writer, s *capture.Stats, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(newStatsRecord(s))
	case FormatYAML:
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(newStatsRecord(s)); err != nil {
			return err
		}
		return enc.Close()
	default:
		_, err := io.WriteString(out, renderStatsText(s))
		return err
	}
}

func renderStatsText(s *capture.Stats) string {
	var b strings.Builder
	rule := strings.Repeat("=", 40)
	thin := strings.Repeat("-", 40)

	fmt.Fprintf(&b, "%s\nCAPTURE STATISTICS\n%s\n\n", rule, rule)
	fmt.Fprintf(&b, "Lines:              %d\n", s.Lines)
	fmt.Fprintf(&b, "Lines with hex:     %d\n", s.LinesWithHex)
	fmt.Fprintf(&b, "Candidates:         %d\n", s.Candidates)
	fmt.Fprintf(&b, "Decoded:            %d (%.2f%%)\n", s.Decoded, capture.Percent(s.Decoded, s.Candidates))
	fmt.Fprintf(&b, "Decode failures:    %d (%.2f%%)\n", s.DecodeFailures, capture.Percent(s.DecodeFailures, s.Candidates))
	fmt.Fprintf(&b, "Checksum failures:  %d (%.2f%% of decoded)\n", s.ChecksumFailures, capture.Percent(s.ChecksumFailures, s.Decoded))

	if len(s.Commands) > 0 {
		fmt.Fprintf(&b, "\n%s\nCOMMANDS\n%s\n", thin, thin)
		for _, cmd := range s.SortedCommands() {
			n := s.Commands[cmd]
			fmt.Fprintf(&b, "0x%02X (%s): %d (%.2f%%)\n", cmd, protocol.CommandName(cmd), n, capture.Percent(n, s.Decoded))
		}
	}

	if len(s.PayloadLengths) > 0 {
		fmt.Fprintf(&b, "\n%s\nPAYLOAD LENGTHS\n%s\n", thin, thin)
		for _, l := range s.SortedPayloadLengths() {
			fmt.Fprintf(&b, "%d bytes: %d frames\n", l, s.PayloadLengths[l])
		}
	}

	if len(s.ErrorKinds) > 0 {
		fmt.Fprintf(&b, "\n%s\nFAILURE KINDS\n%s\n", thin, thin)
		for _, kind := range s.SortedErrorKinds() {
			fmt.Fprintf(&b, "%s: %d\n", kind, s.ErrorKinds[kind])
		}
	}

	if len(s.Failures) > 0 {
		fmt.Fprintf(&b, "\n%s\nFIRST FAILURES\n%s\n", thin, thin)
		for i, f := range s.Failures {
			preview := f.Hex
			if len(preview) > 80 {
				preview = preview[:80] + "..."
			}
			fmt.Fprintf(&b, "#%d %s: %s\n   %s\n", i+1, f.Source, f.Error, preview)
		}
	}

	fmt.Fprintf(&b, "\n%s\n", rule)
	switch {
	case s.Candidates == 0:
		b.WriteString("No frames found\n")
	case s.DecodeFailures == 0 && s.ChecksumFailures == 0:
		b.WriteString("All frames decoded with valid checksums\n")
	default:
		fmt.Fprintf(&b, "Issues found: %d decode failures, %d checksum failures\n", s.DecodeFailures, s.ChecksumFailures)
	}
	b.WriteString(rule + "\n")

	return b.String()
}
