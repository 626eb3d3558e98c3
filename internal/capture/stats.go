package capture

import (
	"maps"
	"slices"

	"github.com/muurk/sinclair-decoder/internal/protocol"
)

// maxFailures caps how many failures Stats keeps for display
const maxFailures = 10

// Failure describes one candidate that did not decode
type Failure struct {
	Source string
	Hex    string
	Error  string
}

// Stats tracks decode results across an input
type Stats struct {
	Lines            int
	LinesWithHex     int
	Candidates       int
	Decoded          int
	ChecksumFailures int
	DecodeFailures   int
	Commands         map[byte]int
	ErrorKinds       map[protocol.ErrorKind]int
	PayloadLengths   map[int]int
	Failures         []Failure // First maxFailures failures
}

// NewStats returns empty statistics
func NewStats() *Stats {
	return &Stats{
		Commands:       make(map[byte]int),
		ErrorKinds:     make(map[protocol.ErrorKind]int),
		PayloadLengths: make(map[int]int),
	}
}

// Record adds one Result
func (s *Stats) Record(r *Result) {
	s.Candidates++

	if !r.OK() {
		s.DecodeFailures++
		if kind, ok := protocol.KindOf(r.Err); ok {
			s.ErrorKinds[kind]++
		}
		if len(s.Failures) < maxFailures {
			s.Failures = append(s.Failures, Failure{
				Source: r.Source,
				Hex:    protocol.FormatHex(r.Raw, " "),
				Error:  r.Err.Error(),
			})
		}
		return
	}

	s.Decoded++
	s.Commands[r.Frame.Command]++
	s.PayloadLengths[len(r.Frame.Payload)]++
	if !r.Frame.ChecksumOK {
		s.ChecksumFailures++
	}
}

// SortedCommands returns the seen command codes in ascending order
func (s *Stats) SortedCommands() []byte {
	return slices.Sorted(maps.Keys(s.Commands))
}

// SortedPayloadLengths returns the seen payload lengths in ascending order
func (s *Stats) SortedPayloadLengths() []int {
	return slices.Sorted(maps.Keys(s.PayloadLengths))
}

// SortedErrorKinds returns the seen error kinds in ascending order
func (s *Stats) SortedErrorKinds() []protocol.ErrorKind {
	return slices.Sorted(maps.Keys(s.ErrorKinds))
}

// Percent returns n as a percentage of total, or 0 when total is 0
func Percent(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(n) / float64(total) * 100
}
