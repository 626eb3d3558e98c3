package protocol

// ChecksumMask keeps the running sum to 8 bits
const ChecksumMask = 0xFF

// Checksum computes the frame checksum: the 8-bit wraparound sum of the
// length byte, the command byte and every payload byte. The sync pair and
// the checksum byte itself are not included.
func Checksum(length, command byte, payload []byte) byte {
	sum := int(length) + int(command)
	for _, b := range payload {
		sum += int(b)
	}
	return byte(sum & ChecksumMask)
}

// VerifyChecksum reports whether a decoded frame's checksum byte matches
func VerifyChecksum(f *Frame) bool {
	return Checksum(f.Length, f.Command, f.Payload) == f.Checksum
}
