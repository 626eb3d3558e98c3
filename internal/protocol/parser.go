package protocol

import (
	"fmt"
	"strconv"
	"strings"
)

// Field is one decoded payload value.
// Value is a string, an int (flags are 0 or 1), a float64, or nil when the
// payload does not carry the field.
type Field struct {
	Name  string
	Value any
}

// DecodedFields is the ordered result of decoding one payload
type DecodedFields struct {
	Direction Direction
	Fields    []Field
}

// DecodeOption adjusts DecodePayload
type DecodeOption func(*decodeOptions)

type decodeOptions struct {
	labels bool
}

// WithLabels adds the swing position label fields next to their indices
func WithLabels() DecodeOption {
	return func(o *decodeOptions) {
		o.labels = true
	}
}

// DecodePayload interprets every field of the payload layout for the given
// direction. Fields whose bytes lie beyond the payload decode to nil.
func DecodePayload(payload []byte, dir Direction, opts ...DecodeOption) *DecodedFields {
	var o decodeOptions
	for _, opt := range opts {
		opt(&o)
	}

	out := &DecodedFields{
		Direction: dir,
		Fields:    make([]Field, 0, len(payloadLayout)),
	}

	for _, entry := range payloadLayout {
		if entry.label && !o.labels {
			continue
		}
		field := Field{Name: entry.name}
		v, ok := entry.bits.Extract(payload)
		if !ok && entry.alt != nil {
			v, ok = entry.alt.Extract(payload)
		}
		if ok {
			field.Value = entry.interpret(v, payload, dir)
		}
		out.Fields = append(out.Fields, field)
	}

	return out
}

// Get returns the value of a named field
func (d *DecodedFields) Get(name string) (any, bool) {
	for _, f := range d.Fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return nil, false
}

// Map returns the fields as a map. Ordering is lost; use Fields to keep it.
func (d *DecodedFields) Map() map[string]any {
	m := make(map[string]any, len(d.Fields))
	for _, f := range d.Fields {
		m[f.Name] = f.Value
	}
	return m
}

// FormatValue renders a field value the way the text report prints it
func FormatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return "None"
	case float64:
		return formatFloat(val)
	default:
		return fmt.Sprint(val)
	}
}

// formatFloat always keeps a decimal point so whole degrees read as 20.0
func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if strings.ContainsAny(s, ".IN") {
		return s
	}
	return s + ".0"
}
