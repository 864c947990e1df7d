package bitfield

import (
	"fmt"
	"io"
)

// UnlimitedPacker is a layout with no bit limit, packing values into arbitrary
// precision integers or byte buffers.
type UnlimitedPacker struct {
	Layout
}

// NewUnlimitedPacker constructs an empty unbounded packer.
func NewUnlimitedPacker() *UnlimitedPacker {
	return &UnlimitedPacker{}
}

// PackBytes returns the packed value in little-endian byte order. The returned
// slice holds exactly TotalBytesNeeded bytes.
func (p *UnlimitedPacker) PackBytes() []byte {
	b := make([]byte, p.TotalBytesNeeded())
	p.packBytes(b, defaultTransfer)
	return b
}

// UnpackBytes decodes the value of every field from b, which holds a packed
// value in little-endian byte order.
//
// An error wrapping io.ErrShortBuffer is returned if b is shorter than
// TotalBytesNeeded, in which case the packer is left unchanged.
func (p *UnlimitedPacker) UnpackBytes(b []byte) error {
	if n := p.TotalBytesNeeded(); len(b) < n {
		return fmt.Errorf("cannot unpack %d bits from %d bytes: %w", p.width, len(b), io.ErrShortBuffer)
	}
	p.unpackBytes(b, defaultTransfer)
	return nil
}

// CreateSimilar returns a new packer with the same fields as p, and all
// values set to the field minimums.
func (p *UnlimitedPacker) CreateSimilar() *UnlimitedPacker {
	return &UnlimitedPacker{Layout: *p.Layout.CreateSimilar()}
}
