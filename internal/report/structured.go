package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/muurk/sinclair-decoder/internal/capture"
	"github.com/muurk/sinclair-decoder/internal/protocol"
)

// orderedFields marshals decoded fields as a JSON object in report order
type orderedFields []protocol.Field

// MarshalJSON implements json.Marshaler
func (o orderedFields) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range o {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(f.Name)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(f.Value)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", f.Name, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// frameRecord is the structured form of one result
type frameRecord struct {
	Source      string        `json:"source,omitempty"`
	Line        int           `json:"line,omitempty"`
	Direction   string        `json:"direction,omitempty"`
	Command     string        `json:"command,omitempty"`
	CommandName string        `json:"command_name,omitempty"`
	Length      *int          `json:"length,omitempty"`
	Checksum    string        `json:"checksum,omitempty"`
	ChecksumOK  *bool         `json:"checksum_ok,omitempty"`
	Payload     string        `json:"payload,omitempty"`
	Raw         string        `json:"raw,omitempty"`
	Fields      orderedFields `json:"fields,omitempty"`
	Error       string        `json:"error,omitempty"`
}

func newRecord(res capture.Result, showRaw bool) frameRecord {
	rec := frameRecord{Source: res.Source, Line: res.Line}

	if !res.OK() {
		rec.Error = res.Err.Error()
		rec.Raw = protocol.FormatHex(res.Raw, " ")
		return rec
	}

	f := res.Frame
	length := int(f.Length)
	ok := f.ChecksumOK
	rec.Direction = f.Direction().String()
	rec.Command = fmt.Sprintf("0x%02X", f.Command)
	rec.CommandName = f.CommandName()
	rec.Length = &length
	rec.Checksum = fmt.Sprintf("0x%02X", f.Checksum)
	rec.ChecksumOK = &ok
	rec.Payload = protocol.FormatHex(f.Payload, " ")
	rec.Fields = orderedFields(res.Fields.Fields)
	if showRaw {
		rec.Raw = protocol.FormatHex(f.Raw, " ")
	}
	return rec
}

func (w *Writer) writeJSON(res capture.Result) error {
	data, err := json.Marshal(newRecord(res, w.opts.ShowRaw))
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = w.out.Write(data)
	return err
}

// yamlNode builds an ordered mapping node for a record
func (r frameRecord) yamlNode() (*yaml.Node, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}

	add := func(key string, value any) error {
		var v yaml.Node
		if err := v.Encode(value); err != nil {
			return fmt.Errorf("field %s: %w", key, err)
		}
		node.Content = append(node.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: key}, &v)
		return nil
	}

	type kv struct {
		key   string
		value any
		skip  bool
	}
	header := []kv{
		{"source", r.Source, r.Source == ""},
		{"line", r.Line, r.Line == 0},
		{"direction", r.Direction, r.Direction == ""},
		{"command", r.Command, r.Command == ""},
		{"command_name", r.CommandName, r.CommandName == ""},
		{"length", r.Length, r.Length == nil},
		{"checksum", r.Checksum, r.Checksum == ""},
		{"checksum_ok", r.ChecksumOK, r.ChecksumOK == nil},
		{"payload", r.Payload, r.Error != ""},
		{"raw", r.Raw, r.Raw == ""},
		{"error", r.Error, r.Error == ""},
	}
	for _, h := range header {
		if h.skip {
			continue
		}
		if err := add(h.key, h.value); err != nil {
			return nil, err
		}
	}

	if len(r.Fields) > 0 {
		fields := &yaml.Node{Kind: yaml.MappingNode}
		for _, f := range r.Fields {
			var v yaml.Node
			if err := v.Encode(f.Value); err != nil {
				return nil, fmt.Errorf("field %s: %w", f.Name, err)
			}
			fields.Content = append(fields.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: f.Name}, &v)
		}
		node.Content = append(node.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: "fields"}, fields)
	}

	return node, nil
}

func (w *Writer) writeYAML(res capture.Result) error {
	node, err := newRecord(res, w.opts.ShowRaw).yamlNode()
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	buf.WriteString("---\n")
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(node); err != nil {
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}

	_, err = io.Copy(w.out, &buf)
	return err
}
