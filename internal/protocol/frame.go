package protocol

import (
	"fmt"
)

// Frame constants
const (
	SyncByte       = 0x7E
	FrameHeaderLen = 3 // Sync pair + length byte
	MinFrameSize   = 5 // Sync pair + length + command + checksum
	SetPayloadLen  = 45
)

// Command codes
const (
	CmdSet    = 0x01 // Parameter set, gateway -> unit
	CmdReport = 0x31 // Unit status report, unit -> gateway
)

// Direction tells which side of the link produced a frame
type Direction int

const (
	DirectionSet Direction = iota
	DirectionReport
)

// DirectionOf returns SET for the set command and REPORT for everything else
func DirectionOf(command byte) Direction {
	if command == CmdSet {
		return DirectionSet
	}
	return DirectionReport
}

// String returns "SET" or "REPORT"
func (d Direction) String() string {
	switch d {
	case DirectionSet:
		return "SET"
	case DirectionReport:
		return "REPORT"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Frame is one decoded protocol message
type Frame struct {
	Length     byte   // Declared length byte
	Command    byte   // Command code
	Payload    []byte // Command-specific payload
	Checksum   byte   // Trailing checksum byte
	ChecksumOK bool   // Whether Checksum matches the computed value
	Raw        []byte // Frame bytes, sync pair through checksum
}

// FrameSize returns the number of bytes a frame with the given length byte
// occupies, sync pair included. The length byte counts command, payload and
// checksum, so the total is 3 + length. Protocol notes that quote 2 + length
// leave out the length byte itself, and DecodeFrame could never accept the
// candidates that count would produce.
func FrameSize(length byte) int {
	return FrameHeaderLen + int(length)
}

// PayloadLen returns the payload size implied by a length byte and command.
// SET frames always carry SetPayloadLen bytes whatever the length byte says.
func PayloadLen(length, command byte) int {
	if command == CmdSet {
		return SetPayloadLen
	}
	if length < 2 {
		return 0
	}
	return int(length) - 2
}

// DecodeFrame validates one candidate frame and splits it into its fields.
// A checksum mismatch is reported through ChecksumOK, not as an error.
func DecodeFrame(data []byte) (*Frame, error) {
	if len(data) < MinFrameSize {
		return nil, &DecodeError{Kind: KindFrameTooShort, Len: len(data), Need: MinFrameSize}
	}

	if data[0] != SyncByte || data[1] != SyncByte {
		return nil, &DecodeError{Kind: KindMissingSync, Len: len(data), Got: [2]byte{data[0], data[1]}}
	}

	frame := &Frame{
		Length:  data[2],
		Command: data[3],
	}

	payloadLen := PayloadLen(frame.Length, frame.Command)
	checksumIdx := 4 + payloadLen
	if checksumIdx >= len(data) {
		return nil, &DecodeError{Kind: KindFrameTruncated, Len: len(data), Need: checksumIdx + 1}
	}

	frame.Raw = data[:checksumIdx+1]
	frame.Payload = data[4:checksumIdx]
	frame.Checksum = data[checksumIdx]
	frame.ChecksumOK = VerifyChecksum(frame)

	return frame, nil
}

// Direction returns the traffic direction of the frame
func (f *Frame) Direction() Direction {
	return DirectionOf(f.Command)
}

// Decode interprets the payload bitfields for the frame's direction
func (f *Frame) Decode() *DecodedFields {
	return DecodePayload(f.Payload, f.Direction())
}

// CommandName returns a human-readable name for the frame's command
func (f *Frame) CommandName() string {
	return CommandName(f.Command)
}

// CommandName returns a human-readable name for a command code
func CommandName(command byte) string {
	switch command {
	case CmdSet:
		return "SET"
	case CmdReport:
		return "REPORT"
	default:
		return fmt.Sprintf("unknown(0x%02X)", command)
	}
}

// String returns a debug representation of the frame
func (f *Frame) String() string {
	return fmt.Sprintf("Frame{cmd=0x%02X (%s), len=%d, payload=%d bytes, checksum=0x%02X, ok=%v}",
		f.Command, f.CommandName(), f.Length, len(f.Payload), f.Checksum, f.ChecksumOK)
}
