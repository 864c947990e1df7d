// Package bits implements the low level bit transfers used to move packed
// fields in and out of little-endian byte buffers.
package bits

// BitCount returns the number of bits held by count bytes.
func BitCount(count int) uint {
	return 8 * uint(count)
}

// ByteCount returns the number of bytes needed to hold count bits.
func ByteCount(count uint) int {
	return int((count + 7) / 8)
}

// Aligned reports whether a span of count bits starting at shift begins and
// ends on byte boundaries.
func Aligned(shift, count uint) bool {
	return shift%8 == 0 && count%8 == 0
}
