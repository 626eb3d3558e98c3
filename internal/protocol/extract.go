package protocol

import (
	"encoding/hex"
	"iter"
	"regexp"
	"strings"
)

// hexPair matches two consecutive hex digits. FindAll scans left to right
// without overlap, so "7E7E2F" yields three bytes and "7E.7E" yields two.
var hexPair = regexp.MustCompile(`[0-9A-Fa-f]{2}`)

// ParseHexBytes pulls every hex byte out of free-form text. Separators can be
// anything that is not a hex digit (spaces, dots, commas, "0x" prefixes);
// concatenated digits are read in pairs.
func ParseHexBytes(text string) []byte {
	pairs := hexPair.FindAllString(text, -1)
	if len(pairs) == 0 {
		return nil
	}

	out := make([]byte, 0, len(pairs))
	for _, p := range pairs {
		b, err := hex.DecodeString(p)
		if err != nil {
			// Unreachable: the pattern only matches hex digits
			continue
		}
		out = append(out, b[0])
	}
	return out
}

// ExtractFrames yields every candidate frame found in data. A candidate starts
// at a 0x7E 0x7E pair followed by a length byte and is emitted only if the
// whole declared frame fits. Scanning resumes one byte after each sync point,
// so overlapping candidates are all reported. Malformed spans yield nothing.
func ExtractFrames(data []byte) iter.Seq[[]byte] {
	return func(yield func([]byte) bool) {
		for i := 0; i+1 < len(data); i++ {
			if data[i] != SyncByte || data[i+1] != SyncByte {
				continue
			}
			if i+2 >= len(data) {
				continue
			}
			total := FrameSize(data[i+2])
			if i+total > len(data) {
				continue
			}
			if !yield(data[i : i+total]) {
				return
			}
		}
	}
}

// ExtractAll collects ExtractFrames into a slice
func ExtractAll(data []byte) [][]byte {
	var frames [][]byte
	for f := range ExtractFrames(data) {
		frames = append(frames, f)
	}
	return frames
}

// FormatHex renders bytes as upper-case hex pairs joined by sep
func FormatHex(data []byte, sep string) string {
	if len(data) == 0 {
		return ""
	}
	parts := make([]string, len(data))
	for i, b := range data {
		parts[i] = strings.ToUpper(hex.EncodeToString([]byte{b}))
	}
	return strings.Join(parts, sep)
}
