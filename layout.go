package bitfield

import (
	"fmt"
	"math"
	"math/big"
	"sort"

	"github.com/samber/lo"

	"github.com/segmentio/bitfield/internal/debug"
)

// Layout is an ordered collection of fields packed into a single integer.
//
// Fields are laid out in the order they were added, the first field occupies
// the lowest bits of the packed value. Two layouts constructed with the same
// sequence of Add* calls encode values identically.
//
// Each field holds a current value, which starts at the field minimum and is
// updated by SetValue and Unpack. Layout values are not safe for concurrent
// use, programs that need to pack or unpack from multiple goroutines should
// give each goroutine its own copy obtained with CreateSimilar.
//
// The zero value is an empty layout with no bit limit.
type Layout struct {
	fields []Field
	index  map[string]int
	values []*big.Int
	width  int
	// Maximum number of bits, zero when the layout is unbounded.
	limit int
}

// NewLayout constructs an empty layout with no bit limit.
func NewLayout() *Layout {
	return &Layout{}
}

// AddField adds a field of the given width holding values in the range
// [0, 2^bitWidth-1].
func (l *Layout) AddField(name string, bitWidth int) error {
	return l.add(name, bitWidth, func() (*big.Int, *big.Int) {
		return new(big.Int), maxUint(bitWidth)
	})
}

// AddRangeField adds a field holding values of r, using the smallest width
// able to represent all of them.
func (l *Layout) AddRangeField(name string, r Range) error {
	return l.add(name, r.BitsRequired(), func() (*big.Int, *big.Int) {
		return r.Min(), r.Max()
	})
}

// AddFieldWithBytes adds a field of byteCount*8 bits holding values in the
// range [minValue, minValue+2^(byteCount*8)-1].
func (l *Layout) AddFieldWithBytes(name string, byteCount int, minValue int64) error {
	switch {
	case byteCount <= 0:
		return fmt.Errorf("field %q: byte count must be positive but got %d: %w", name, byteCount, ErrInvalidField)
	case byteCount > math.MaxInt/8:
		return fmt.Errorf("field %q: byte count %d is too large: %w", name, byteCount, ErrInvalidField)
	}
	width := 8 * byteCount
	return l.add(name, width, func() (*big.Int, *big.Int) {
		min := big.NewInt(minValue)
		max := maxUint(width)
		return min, max.Add(max, min)
	})
}

// AddFields adds one field of the given width for each name, in order.
//
// Adding the fields is not atomic, if an error occurs the fields that were
// added before the one that failed remain in the layout.
func (l *Layout) AddFields(bitWidth int, names ...string) error {
	for _, name := range names {
		if err := l.AddField(name, bitWidth); err != nil {
			return err
		}
	}
	return nil
}

// AddRangeFields is like AddFields but adds fields holding values of r.
func (l *Layout) AddRangeFields(r Range, names ...string) error {
	for _, name := range names {
		if err := l.AddRangeField(name, r); err != nil {
			return err
		}
	}
	return nil
}

// add validates the field before calling bounds, which may allocate integers
// as wide as the field.
func (l *Layout) add(name string, width int, bounds func() (min, max *big.Int)) error {
	if l.limit > 0 && width > l.limit-l.width {
		debug.Format("bitfield: rejected field %q of %d bits with %d/%d bits used", name, width, l.width, l.limit)
		return errCapacityExceeded(name, width, l.width, l.limit)
	}

	switch {
	case name == "":
		return fmt.Errorf("field name must not be empty: %w", ErrInvalidField)
	case width <= 0:
		return fmt.Errorf("field %q: bit width must be positive but got %d: %w", name, width, ErrInvalidField)
	}

	if _, exists := l.index[name]; exists {
		return errDuplicateField(name)
	}

	if l.index == nil {
		l.index = make(map[string]int)
	}

	min, max := bounds()
	f := newField(name, l.width, width, min, max)
	l.index[name] = len(l.fields)
	l.fields = append(l.fields, f)
	l.values = append(l.values, new(big.Int).Set(f.min))
	l.width += width

	debug.Format("bitfield: added field %q at offset %d with width %d", name, f.offset, f.width)
	return nil
}

// SetValue sets the current value of the named field.
//
// An error wrapping ErrFieldNotFound is returned if the layout has no field
// of that name, and ErrOutOfRange if the value is outside of the field
// bounds. The layout is left unchanged when an error is returned.
func (l *Layout) SetValue(name string, value int64) error {
	return l.SetBigValue(name, big.NewInt(value))
}

// SetBigValue is like SetValue but accepts arbitrary precision values.
func (l *Layout) SetBigValue(name string, value *big.Int) error {
	i, ok := l.index[name]
	if !ok {
		return errFieldNotFound(name)
	}
	if err := l.fields[i].ValidateValue(value); err != nil {
		return err
	}
	l.values[i].Set(value)
	return nil
}

// SetValues sets the current value of multiple fields. All values are
// validated before any of them is assigned, so the layout is left unchanged
// if an error is returned.
func (l *Layout) SetValues(values map[string]int64) error {
	names := lo.Keys(values)
	sort.Strings(names)

	indexes := make([]int, len(names))
	for j, name := range names {
		i, ok := l.index[name]
		if !ok {
			return errFieldNotFound(name)
		}
		if err := l.fields[i].ValidateValue(big.NewInt(values[name])); err != nil {
			return err
		}
		indexes[j] = i
	}

	for j, name := range names {
		l.values[indexes[j]].SetInt64(values[name])
	}
	return nil
}

// Value returns the current value of the named field, which is the field
// minimum if it was never set.
//
// An error wrapping ErrOverflow is returned if the value does not fit in an
// int64, BigValue must be used for such fields.
func (l *Layout) Value(name string) (int64, error) {
	v, err := l.BigValue(name)
	if err != nil {
		return 0, err
	}
	if !v.IsInt64() {
		return 0, fmt.Errorf("field %q: value %s does not fit in 64 bits: %w", name, v, ErrOverflow)
	}
	return v.Int64(), nil
}

// BigValue is like Value but returns an arbitrary precision value.
func (l *Layout) BigValue(name string) (*big.Int, error) {
	i, ok := l.index[name]
	if !ok {
		return nil, errFieldNotFound(name)
	}
	return new(big.Int).Set(l.values[i]), nil
}

// Reset sets the value of every field back to its minimum.
func (l *Layout) Reset() {
	for i := range l.fields {
		l.values[i].Set(l.fields[i].min)
	}
}

// Pack encodes the current values of all fields into a single non-negative
// integer.
func (l *Layout) Pack() *big.Int {
	result, n := new(big.Int), new(big.Int)

	for i := range l.fields {
		f := &l.fields[i]
		f.normalize(n, l.values[i])
		n.Lsh(n, uint(f.offset))
		result.Or(result, n)
	}

	debug.Format("bitfield: packed %d fields into %d bits", len(l.fields), result.BitLen())
	return result
}

// Unpack decodes the value of every field from packed, replacing all current
// values. Fields whose bits are all zero in packed are set to their minimum.
//
// An error wrapping ErrOverflow is returned if packed is negative, in which
// case the layout is left unchanged.
func (l *Layout) Unpack(packed *big.Int) error {
	if packed.Sign() < 0 {
		return fmt.Errorf("cannot unpack negative value %s: %w", packed, ErrOverflow)
	}

	n := new(big.Int)
	for i := range l.fields {
		f := &l.fields[i]
		n.Rsh(packed, uint(f.offset))
		f.denormalize(l.values[i], n)
	}

	debug.Format("bitfield: unpacked %d fields from %d bits", len(l.fields), packed.BitLen())
	return nil
}

// CreateSimilar returns a new layout with the same fields as l, and all
// values set to the field minimums.
func (l *Layout) CreateSimilar() *Layout {
	c := &Layout{
		fields: make([]Field, len(l.fields)),
		index:  make(map[string]int, len(l.index)),
		values: make([]*big.Int, len(l.values)),
		width:  l.width,
		limit:  l.limit,
	}
	copy(c.fields, l.fields)
	for name, i := range l.index {
		c.index[name] = i
	}
	for i := range c.fields {
		c.values[i] = new(big.Int).Set(c.fields[i].min)
	}
	return c
}

// Fields returns the fields of l in the order they were added.
func (l *Layout) Fields() []Field {
	fields := make([]Field, len(l.fields))
	copy(fields, l.fields)
	return fields
}

// Field returns the field of the given name, and a boolean indicating
// whether it was found.
func (l *Layout) Field(name string) (Field, bool) {
	if i, ok := l.index[name]; ok {
		return l.fields[i], true
	}
	return Field{}, false
}

// FieldNames returns the names of the fields of l in the order they were
// added.
func (l *Layout) FieldNames() []string {
	return lo.Map(l.fields, func(f Field, _ int) string { return f.name })
}

// FieldCount returns the number of fields in l.
func (l *Layout) FieldCount() int { return len(l.fields) }

// TotalBitWidth returns the sum of the widths of all fields, which is also the
// offset of the next field added to l.
func (l *Layout) TotalBitWidth() int { return l.width }

// TotalBytesNeeded returns the number of bytes needed to hold the packed
// value.
func (l *Layout) TotalBytesNeeded() int { return BytesForBits(l.width) }

// BitLimit returns the maximum number of bits that l may hold, or zero if the
// layout is unbounded.
func (l *Layout) BitLimit() int { return l.limit }
