package bitfield

import (
	"fmt"
	"math/big"

	"github.com/segmentio/bitfield/internal/bits"
)

// BitsForRange returns the number of bits needed to represent every integer
// of the inclusive range [min, max].
//
// A range holding a single value still requires one bit. An error wrapping
// ErrInvalidRange is returned if max is lower than min.
func BitsForRange(min, max *big.Int) (int, error) {
	if max.Cmp(min) < 0 {
		return 0, fmt.Errorf("[%s, %s]: maximum is lower than minimum: %w", min, max, ErrInvalidRange)
	}
	span := new(big.Int).Sub(max, min)
	return bitsForSpan(span), nil
}

// BitsForValue returns the number of bits needed to represent every integer
// between zero and max, it is equivalent to BitsForRange(0, max).
func BitsForValue(max *big.Int) (int, error) {
	return BitsForRange(new(big.Int), max)
}

// BytesForBits returns the number of bytes needed to hold n bits.
func BytesForBits(n int) int {
	if n <= 0 {
		return 0
	}
	return bits.ByteCount(uint(n))
}

// ceil(log2(span+1)) is the bit length of span, except for an empty span
// which is accounted for as one bit.
func bitsForSpan(span *big.Int) int {
	if n := span.BitLen(); n > 0 {
		return n
	}
	return 1
}

// maxUint returns 2^n - 1.
func maxUint(n int) *big.Int {
	v := new(big.Int).Lsh(big.NewInt(1), uint(n))
	return v.Sub(v, big.NewInt(1))
}
