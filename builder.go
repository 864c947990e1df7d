package bitfield

// Adder is implemented by Layout and all packer types, which embed it.
type Adder interface {
	AddField(name string, bitWidth int) error
	AddRangeField(name string, r Range) error
	AddFieldWithBytes(name string, byteCount int, minValue int64) error
}

// Builder chains field additions on a layout. The first error encountered is
// retained and every call that follows it is ignored, so a sequence of
// additions can be written as a single expression and checked once:
//
//	p := bitfield.NewUint32Packer()
//	err := bitfield.NewBuilder(p).
//		Field("flags", 4).
//		Range("delta", -50, 50).
//		Bytes("id", 2, 0).
//		Err()
type Builder struct {
	layout Adder
	err    error
}

// NewBuilder returns a builder adding fields to layout.
func NewBuilder(layout Adder) *Builder {
	return &Builder{layout: layout}
}

// Field adds a field of the given width.
func (b *Builder) Field(name string, bitWidth int) *Builder {
	return b.do(func() error { return b.layout.AddField(name, bitWidth) })
}

// Fields adds one field of the given width for each name.
func (b *Builder) Fields(bitWidth int, names ...string) *Builder {
	for _, name := range names {
		b.Field(name, bitWidth)
	}
	return b
}

// Range adds a field holding values in [min, max].
func (b *Builder) Range(name string, min, max int64) *Builder {
	return b.do(func() error {
		r, err := NewRange(min, max)
		if err != nil {
			return err
		}
		return b.layout.AddRangeField(name, r)
	})
}

// RangeField adds a field holding values of r.
func (b *Builder) RangeField(name string, r Range) *Builder {
	return b.do(func() error { return b.layout.AddRangeField(name, r) })
}

// Bytes adds a field of byteCount bytes with values starting at minValue.
func (b *Builder) Bytes(name string, byteCount int, minValue int64) *Builder {
	return b.do(func() error { return b.layout.AddFieldWithBytes(name, byteCount, minValue) })
}

// Err returns the first error encountered by b.
func (b *Builder) Err() error { return b.err }

func (b *Builder) do(add func() error) *Builder {
	if b.err == nil {
		b.err = add()
	}
	return b
}

var (
	_ Adder = (*Layout)(nil)
	_ Adder = (*Uint32Packer)(nil)
	_ Adder = (*Bit256Packer)(nil)
	_ Adder = (*UnlimitedPacker)(nil)
)
