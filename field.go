package bitfield

import (
	"fmt"
	"math"
	"math/big"
)

// Field describes a named slot of a layout: the span of bits it occupies and
// the inclusive bounds of the values it holds.
//
// Fields are created by the Add* methods of Layout and cannot be modified
// after that. The zero value has no name, zero width and bounds [0, 0].
type Field struct {
	name   string
	offset int
	width  int
	min    *big.Int
	max    *big.Int
	mask   *big.Int
	// Native copies of min and mask for the fixed width packers. mask64 is
	// set for fields of at most 64 bits, min64 only when small is true.
	small  bool
	min64  int64
	mask64 uint64
}

func newField(name string, offset, width int, min, max *big.Int) Field {
	f := Field{
		name:   name,
		offset: offset,
		width:  width,
		min:    new(big.Int).Set(min),
		max:    new(big.Int).Set(max),
		mask:   maxUint(width),
	}
	if width <= 64 {
		f.mask64 = math.MaxUint64 >> uint(64-width)
		// Every value reachable by decoding width bits must fit in an int64
		// for the native arithmetic to be exact.
		top := new(big.Int).Add(min, f.mask)
		if min.IsInt64() && top.IsInt64() {
			f.small = true
			f.min64 = min.Int64()
		}
	}
	return f
}

// Name returns the name of f.
func (f Field) Name() string { return f.name }

// Offset returns the index of the first bit of f in the packed value.
func (f Field) Offset() int { return f.offset }

// Width returns the number of bits occupied by f.
func (f Field) Width() int { return f.width }

// Min returns the lowest value f can hold.
func (f Field) Min() *big.Int { return bigOrZero(f.min) }

// Max returns the highest value f can hold.
func (f Field) Max() *big.Int { return bigOrZero(f.max) }

// Mask returns 2^Width() - 1.
func (f Field) Mask() *big.Int { return bigOrZero(f.mask) }

// Range returns the bounds of f.
func (f Field) Range() Range { return Range{min: f.Min(), max: f.Max()} }

// ValidateValue returns an error wrapping ErrOutOfRange if v is not within the
// bounds of f.
func (f Field) ValidateValue(v *big.Int) error {
	if min := f.Min(); v.Cmp(min) < 0 {
		return fmt.Errorf("field %q: value %s is below the minimum of %s: %w", f.name, v, min, ErrOutOfRange)
	}
	if max := f.Max(); v.Cmp(max) > 0 {
		return fmt.Errorf("field %q: value %s is above the maximum of %s: %w", f.name, v, max, ErrOutOfRange)
	}
	return nil
}

// NormalizeValue returns v - Min(), after verifying that v is within the
// bounds of f.
func (f Field) NormalizeValue(v *big.Int) (*big.Int, error) {
	if err := f.ValidateValue(v); err != nil {
		return nil, err
	}
	return new(big.Int).Sub(v, f.Min()), nil
}

// DenormalizeValue returns n + Min().
func (f Field) DenormalizeValue(n *big.Int) *big.Int {
	return new(big.Int).Add(n, f.Min())
}

func (f Field) String() string {
	return fmt.Sprintf("%s %s @%d:%d", f.name, f.Range(), f.offset, f.offset+f.width)
}

// normalize64 returns the zero based encoding of v, which must already have
// been validated. The result is only meaningful for fields of at most 64 bits.
func (f *Field) normalize64(v *big.Int) uint64 {
	if f.small {
		return (uint64(v.Int64()) - uint64(f.min64)) & f.mask64
	}
	n := new(big.Int).Sub(v, f.min)
	return n.Uint64() & f.mask64
}

// denormalize64 sets v to the value encoded by n.
func (f *Field) denormalize64(v *big.Int, n uint64) {
	n &= f.mask64
	if f.small {
		v.SetInt64(int64(uint64(f.min64) + n))
		return
	}
	v.SetUint64(n)
	v.Add(v, f.min)
}

func (f *Field) normalize(n, v *big.Int) *big.Int {
	n.Sub(v, f.min)
	return n.And(n, f.mask)
}

func (f *Field) denormalize(v, n *big.Int) {
	v.And(n, f.mask)
	v.Add(v, f.min)
}

func bigOrZero(v *big.Int) *big.Int {
	if v == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(v)
}
