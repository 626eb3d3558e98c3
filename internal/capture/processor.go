package capture

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/muurk/sinclair-decoder/internal/logging"
	"github.com/muurk/sinclair-decoder/internal/protocol"
)

// ErrNoHexBytes is returned when the input holds no hex byte pairs
var ErrNoHexBytes = errors.New("no hex bytes found")

// maxLineSize bounds a single capture line
const maxLineSize = 1 << 20

// Result is the outcome of decoding one candidate frame
type Result struct {
	Source string                  // "input" or "line N"
	Line   int                     // 1-based line number, 0 for a single blob
	Raw    []byte                  // Candidate bytes
	Frame  *protocol.Frame         // Nil when decoding failed
	Fields *protocol.DecodedFields // Nil when decoding failed
	Err    error                   // Decode failure
}

// OK reports whether the candidate decoded
func (r *Result) OK() bool {
	return r.Err == nil && r.Frame != nil
}

// Option configures a Processor
type Option func(*Processor)

// WithLabels toggles the swing label fields in decoded output
func WithLabels(enabled bool) Option {
	return func(p *Processor) {
		p.labels = enabled
	}
}

// WithStats records every Result into s
func WithStats(s *Stats) Option {
	return func(p *Processor) {
		p.stats = s
	}
}

// Processor decodes hex text according to a Policy.
// A Processor is not safe for concurrent use when it records Stats.
type Processor struct {
	policy Policy
	labels bool
	stats  *Stats
}

// NewProcessor creates a Processor for the given policy
func NewProcessor(policy Policy, opts ...Option) *Processor {
	p := &Processor{policy: policy}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Policy returns the processor's policy
func (p *Processor) Policy() Policy {
	return p.policy
}

// DecodeText decodes one blob of hex text. With PolicyFallback a failed
// direct decode is retried by extraction; if extraction finds nothing, the
// direct failure is returned as the only Result.
func (p *Processor) DecodeText(text string) ([]Result, error) {
	data := protocol.ParseHexBytes(text)
	if len(data) == 0 {
		return nil, ErrNoHexBytes
	}
	logging.LogRawBytes("input bytes", data)

	var results []Result
	switch p.policy {
	case PolicyDirect:
		results = []Result{p.decode("input", 0, data)}

	case PolicyExtract:
		results = p.extract("input", 0, data)

	default:
		direct := p.decode("input", 0, data)
		if direct.Err == nil {
			results = []Result{direct}
			break
		}
		results = p.extract("input", 0, data)
		if len(results) == 0 {
			results = []Result{direct}
		}
	}

	p.record(results...)
	return results, nil
}

// ProcessReader decodes r line by line and calls fn for every Result.
// Lines without hex bytes are skipped. Returning an error from fn stops
// processing and that error is returned.
func (p *Processor) ProcessReader(ctx context.Context, r io.Reader, fn func(Result) error) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	lineNo := 0
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		lineNo++

		if p.stats != nil {
			p.stats.Lines++
		}

		data := protocol.ParseHexBytes(scanner.Text())
		if len(data) == 0 {
			continue
		}
		if p.stats != nil {
			p.stats.LinesWithHex++
		}

		results := p.decodeLine(lineNo, data)
		logging.LogLineSummary(lineNo, len(data), len(results))
		p.record(results...)

		for _, res := range results {
			if err := fn(res); err != nil {
				return err
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	return nil
}

// Collect is ProcessReader gathering every Result into a slice
func (p *Processor) Collect(ctx context.Context, r io.Reader) ([]Result, error) {
	var results []Result
	err := p.ProcessReader(ctx, r, func(res Result) error {
		results = append(results, res)
		return nil
	})
	return results, err
}

func (p *Processor) decodeLine(lineNo int, data []byte) []Result {
	source := fmt.Sprintf("line %d", lineNo)

	switch p.policy {
	case PolicyDirect:
		return []Result{p.decode(source, lineNo, data)}
	case PolicyExtract:
		return p.extract(source, lineNo, data)
	default:
		results := p.extract(source, lineNo, data)
		if len(results) == 0 {
			results = []Result{p.decode(source, lineNo, data)}
		}
		return results
	}
}

func (p *Processor) extract(source string, lineNo int, data []byte) []Result {
	var results []Result
	for candidate := range protocol.ExtractFrames(data) {
		results = append(results, p.decode(source, lineNo, candidate))
	}
	return results
}

func (p *Processor) decode(source string, lineNo int, data []byte) Result {
	res := Result{Source: source, Line: lineNo, Raw: data}

	frame, err := protocol.DecodeFrame(data)
	if err != nil {
		logging.LogDecodeFailure(source, data, err)
		res.Err = err
		return res
	}
	logging.LogFrame(source, frame.Command, frame.Length, len(frame.Payload), frame.ChecksumOK)

	var opts []protocol.DecodeOption
	if p.labels {
		opts = append(opts, protocol.WithLabels())
	}

	res.Frame = frame
	res.Fields = protocol.DecodePayload(frame.Payload, frame.Direction(), opts...)
	return res
}

func (p *Processor) record(results ...Result) {
	if p.stats == nil {
		return
	}
	for i := range results {
		p.stats.Record(&results[i])
	}
}
