package bitfield

import (
	"fmt"
	"math/big"
)

// Bit256Packer is a layout bounded to 256 bits, the size of the words used by
// the Ethereum virtual machine.
type Bit256Packer struct {
	Layout
}

// NewBit256Packer constructs an empty 256 bits packer.
func NewBit256Packer() *Bit256Packer {
	return &Bit256Packer{Layout: Layout{limit: Bit256Limit}}
}

// Pack encodes the current values of all fields into an integer of at most
// 256 bits.
//
// An error wrapping ErrOverflow is returned if the result would exceed 256
// bits, which only happens when the packer was not created by
// NewBit256Packer.
func (p *Bit256Packer) Pack() (*big.Int, error) {
	v := p.Layout.Pack()
	if n := v.BitLen(); n > Bit256Limit {
		return nil, fmt.Errorf("packed value of %d bits exceeds %d bits: %w", n, Bit256Limit, ErrOverflow)
	}
	return v, nil
}

// Unpack decodes the value of every field from packed, replacing all current
// values.
//
// An error wrapping ErrOverflow is returned if packed is negative or longer
// than 256 bits, in which case the packer is left unchanged.
func (p *Bit256Packer) Unpack(packed *big.Int) error {
	if n := packed.BitLen(); n > Bit256Limit {
		return fmt.Errorf("cannot unpack value of %d bits into %d bits: %w", n, Bit256Limit, ErrOverflow)
	}
	return p.Layout.Unpack(packed)
}

// PackBytes is like Pack but returns the packed value as 32 bytes in
// little-endian order. Like Pack, it only fails when the packed value itself
// exceeds 256 bits.
func (p *Bit256Packer) PackBytes() ([32]byte, error) {
	var b [32]byte
	if p.width <= Bit256Limit {
		p.packBytes(b[:], defaultTransfer)
		return b, nil
	}
	v, err := p.Pack()
	if err != nil {
		return b, err
	}
	v.FillBytes(b[:])
	reverse(b[:])
	return b, nil
}

// UnpackBytes is like Unpack but reads the packed value from 32 bytes in
// little-endian order.
func (p *Bit256Packer) UnpackBytes(b [32]byte) {
	p.unpackBytes(b[:], defaultTransfer)
}

// RemainingBits returns the number of bits still available for new fields.
func (p *Bit256Packer) RemainingBits() int {
	if p.width >= Bit256Limit {
		return 0
	}
	return Bit256Limit - p.width
}

// CanFitField reports whether a field of the given width can be added to p.
func (p *Bit256Packer) CanFitField(bitWidth int) bool {
	return bitWidth > 0 && bitWidth <= p.RemainingBits()
}

// CanFitValue reports whether a field holding values from zero to max can be
// added to p.
func (p *Bit256Packer) CanFitValue(max *big.Int) bool {
	n, err := BitsForValue(max)
	return err == nil && p.CanFitField(n)
}

// MaxValueForRemainingBits returns the largest value a field using all the
// remaining bits could hold, which is zero when no bits remain.
func (p *Bit256Packer) MaxValueForRemainingBits() *big.Int {
	return maxUint(p.RemainingBits())
}

// CreateSimilar returns a new packer with the same fields as p, and all
// values set to the field minimums.
func (p *Bit256Packer) CreateSimilar() *Bit256Packer {
	return &Bit256Packer{Layout: *p.Layout.CreateSimilar()}
}
