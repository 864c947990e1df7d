package bitfield

import (
	"fmt"
	"math"
	"unsafe"

	"github.com/segmentio/bitfield/internal/debug"
)

// Word is the set of fixed width integer types that a Packer can pack values
// into.
type Word interface {
	~uint32 | ~int32 | ~uint64 | ~int64
}

// Packer is a layout bounded by the number of bits available in a word of
// type T. Signed words reserve their sign bit, so packed values are never
// negative.
//
// Packing and unpacking shift and mask within a native 64 bits word instead of
// going through the arbitrary precision methods of Layout.
//
// Packers must be created with NewPacker or one of the specialized
// constructors, the zero value is not bounded.
type Packer[T Word] struct {
	Layout
}

type (
	// Uint32Packer packs up to 32 bits of fields into uint32 values.
	Uint32Packer = Packer[uint32]
	// Int32Packer packs up to 31 bits of fields into non-negative int32 values.
	Int32Packer = Packer[int32]
	// Uint64Packer packs up to 64 bits of fields into uint64 values.
	Uint64Packer = Packer[uint64]
	// Int64Packer packs up to 63 bits of fields into non-negative int64 values.
	Int64Packer = Packer[int64]
)

// NewPacker constructs an empty packer for words of type T.
func NewPacker[T Word]() *Packer[T] {
	return &Packer[T]{Layout: Layout{limit: wordBits[T]()}}
}

func NewUint32Packer() *Uint32Packer { return NewPacker[uint32]() }

func NewInt32Packer() *Int32Packer { return NewPacker[int32]() }

func NewUint64Packer() *Uint64Packer { return NewPacker[uint64]() }

func NewInt64Packer() *Int64Packer { return NewPacker[int64]() }

// Pack encodes the current values of all fields into a word.
//
// An error wrapping ErrOverflow is returned if the fields do not fit in the
// non-negative range of T, which only happens when the packer was not
// created by NewPacker.
func (p *Packer[T]) Pack() (T, error) {
	limit := wordBits[T]()
	if p.width > limit {
		return 0, fmt.Errorf("%d bits of fields do not fit in %d bits words: %w", p.width, limit, ErrOverflow)
	}

	var word uint64
	for i := range p.fields {
		f := &p.fields[i]
		word |= f.normalize64(p.values[i]) << uint(f.offset)
	}

	if limit < 64 && (word>>uint(limit)) != 0 {
		debug.Format("bitfield: packed word %#x overflows %d bits", word, limit)
		return 0, fmt.Errorf("packed value %#x does not fit in %d bits: %w", word, limit, ErrOverflow)
	}
	return T(word), nil
}

// Unpack decodes the value of every field from word, replacing all current
// values. The sign bit of signed words is ignored.
func (p *Packer[T]) Unpack(word T) {
	bits := uint64(word) & (math.MaxUint64 >> uint(64-wordBits[T]()))

	for i := range p.fields {
		f := &p.fields[i]
		f.denormalize64(p.values[i], bits>>uint(f.offset))
	}
}

// CreateSimilar returns a new packer with the same fields as p, and all
// values set to the field minimums.
func (p *Packer[T]) CreateSimilar() *Packer[T] {
	return &Packer[T]{Layout: *p.Layout.CreateSimilar()}
}

// wordBits returns the number of bits of T that can hold field values.
func wordBits[T Word]() int {
	var zero T
	n := 8 * int(unsafe.Sizeof(zero))
	if ^zero < 0 {
		n--
	}
	return n
}
