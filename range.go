package bitfield

import (
	"fmt"
	"math/big"
)

// Range is an inclusive interval of integers. The zero value is the range
// [0, 0].
//
// Range values are immutable, the methods returning *big.Int always return
// copies that the caller is free to modify.
type Range struct {
	min *big.Int
	max *big.Int
}

// NewRange constructs the range [min, max]. An error wrapping ErrInvalidRange
// is returned if max is lower than min.
func NewRange(min, max int64) (Range, error) {
	return NewBigRange(big.NewInt(min), big.NewInt(max))
}

// NewBigRange is like NewRange but accepts arbitrary precision bounds.
func NewBigRange(min, max *big.Int) (Range, error) {
	if max.Cmp(min) < 0 {
		return Range{}, fmt.Errorf("[%s, %s]: maximum is lower than minimum: %w", min, max, ErrInvalidRange)
	}
	return Range{
		min: new(big.Int).Set(min),
		max: new(big.Int).Set(max),
	}, nil
}

// MustRange is like NewRange but panics if the range is invalid.
func MustRange(min, max int64) Range {
	r, err := NewRange(min, max)
	if err != nil {
		panic(err)
	}
	return r
}

// Min returns the lower bound of r.
func (r Range) Min() *big.Int { return r.bound(r.min) }

// Max returns the upper bound of r.
func (r Range) Max() *big.Int { return r.bound(r.max) }

// Span returns max - min.
func (r Range) Span() *big.Int { return new(big.Int).Sub(r.bound(r.max), r.bound(r.min)) }

// ValueCount returns the number of integers in r, which is Span() + 1.
func (r Range) ValueCount() *big.Int {
	n := r.Span()
	return n.Add(n, big.NewInt(1))
}

// BitsRequired returns the width of a field able to hold every value of r.
func (r Range) BitsRequired() int {
	return bitsForSpan(r.Span())
}

// Contains reports whether v is within r.
func (r Range) Contains(v *big.Int) bool {
	return v.Cmp(r.bound(r.min)) >= 0 && v.Cmp(r.bound(r.max)) <= 0
}

func (r Range) String() string {
	return fmt.Sprintf("[%s, %s]", r.bound(r.min), r.bound(r.max))
}

func (r Range) bound(v *big.Int) *big.Int { return bigOrZero(v) }
