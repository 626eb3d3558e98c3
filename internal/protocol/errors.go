package protocol

import (
	"errors"
	"fmt"
)

// ErrorKind represents the category of a frame decode failure
type ErrorKind int

const (
	// KindFrameTooShort indicates fewer than MinFrameSize bytes were supplied
	KindFrameTooShort ErrorKind = iota
	// KindMissingSync indicates the frame does not start with 0x7E 0x7E
	KindMissingSync
	// KindFrameTruncated indicates the declared length runs past the end of the data
	KindFrameTruncated
)

// Sentinel errors for errors.Is checks
var (
	ErrFrameTooShort  = errors.New("frame too short")
	ErrMissingSync    = errors.New("frame does not start with 0x7E 0x7E")
	ErrFrameTruncated = errors.New("frame truncated")
)

// String returns a human-readable name for the error kind
func (k ErrorKind) String() string {
	switch k {
	case KindFrameTooShort:
		return "FrameTooShort"
	case KindMissingSync:
		return "MissingSync"
	case KindFrameTruncated:
		return "FrameTruncated"
	default:
		return fmt.Sprintf("ErrorKind(%d)", k)
	}
}

// sentinel maps a kind to the error returned from Unwrap
func (k ErrorKind) sentinel() error {
	switch k {
	case KindFrameTooShort:
		return ErrFrameTooShort
	case KindMissingSync:
		return ErrMissingSync
	case KindFrameTruncated:
		return ErrFrameTruncated
	default:
		return nil
	}
}

// DecodeError describes why a candidate byte sequence could not be decoded
type DecodeError struct {
	Kind ErrorKind // Category of failure
	Len  int       // Number of bytes supplied
	Need int       // Number of bytes required (0 when not applicable)
	Got  [2]byte   // First two bytes (MissingSync only)
}

// Error implements the error interface
func (e *DecodeError) Error() string {
	switch e.Kind {
	case KindFrameTooShort:
		return fmt.Sprintf("%s: %d bytes (minimum %d)", ErrFrameTooShort, e.Len, e.Need)
	case KindMissingSync:
		return fmt.Sprintf("%s: got 0x%02X 0x%02X", ErrMissingSync, e.Got[0], e.Got[1])
	case KindFrameTruncated:
		return fmt.Sprintf("%s: have %d bytes, declared length needs %d", ErrFrameTruncated, e.Len, e.Need)
	default:
		return fmt.Sprintf("%s: %d bytes", e.Kind, e.Len)
	}
}

// Unwrap returns the sentinel error for the kind, so errors.Is works
func (e *DecodeError) Unwrap() error {
	return e.Kind.sentinel()
}

// IsDecodeError returns true if err is (or wraps) a *DecodeError
func IsDecodeError(err error) bool {
	var de *DecodeError
	return errors.As(err, &de)
}

// KindOf returns the ErrorKind of err and whether err carried one
func KindOf(err error) (ErrorKind, bool) {
	var de *DecodeError
	if errors.As(err, &de) {
		return de.Kind, true
	}
	return 0, false
}
