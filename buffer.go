package bitfield

import (
	"math/big"

	"github.com/segmentio/bitfield/internal/bits"
)

type transferFunc func(dst []byte, dstShift uint, src []byte, srcShift uint, count uint) int

// packBytes writes the packed representation of l to buf in little-endian
// byte order. buf must hold at least TotalBytesNeeded bytes.
func (l *Layout) packBytes(buf []byte, transfer transferFunc) {
	for i := range buf {
		buf[i] = 0
	}

	n := new(big.Int)
	scratch := make([]byte, 0, 32)

	for i := range l.fields {
		f := &l.fields[i]
		f.normalize(n, l.values[i])
		scratch = appendLittleEndian(scratch[:0], n, BytesForBits(f.width))
		transfer(buf, uint(f.offset), scratch, 0, uint(f.width))
	}
}

// unpackBytes decodes the fields of l from buf, which holds a packed value in
// little-endian byte order. buf must hold at least TotalBytesNeeded bytes.
func (l *Layout) unpackBytes(buf []byte, transfer transferFunc) {
	n := new(big.Int)
	scratch := make([]byte, 0, 32)

	for i := range l.fields {
		f := &l.fields[i]
		scratch = append(scratch[:0], make([]byte, BytesForBits(f.width))...)
		transfer(scratch, 0, buf, uint(f.offset), uint(f.width))
		reverse(scratch)
		n.SetBytes(scratch)
		f.denormalize(l.values[i], n)
	}
}

func appendLittleEndian(b []byte, n *big.Int, size int) []byte {
	offset := len(b)
	b = append(b, make([]byte, size)...)
	n.FillBytes(b[offset:])
	reverse(b[offset:])
	return b
}

func reverse(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}

var defaultTransfer transferFunc = bits.Copy
