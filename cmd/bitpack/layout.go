package main

import (
	"fmt"
	"math/big"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/segmentio/encoding/json"

	"github.com/segmentio/bitfield"
	"github.com/segmentio/bitfield/internal/debug"
)

type layoutFile struct {
	Backing string      `json:"backing"`
	Fields  []fieldSpec `json:"fields"`
}

type fieldSpec struct {
	Name  string `json:"name"`
	Bits  int    `json:"bits,omitempty"`
	Bytes int    `json:"bytes,omitempty"`
	Min   *int64 `json:"min,omitempty"`
	Max   *int64 `json:"max,omitempty"`
}

// codec abstracts over the packer types so commands can exchange packed values
// as arbitrary precision integers regardless of the backing.
type codec interface {
	bitfield.Adder
	layout() *bitfield.Layout
	pack() (*big.Int, error)
	unpack(*big.Int) error
}

type wordCodec[T bitfield.Word] struct{ *bitfield.Packer[T] }

func (c wordCodec[T]) layout() *bitfield.Layout { return &c.Packer.Layout }

func (c wordCodec[T]) pack() (*big.Int, error) {
	w, err := c.Packer.Pack()
	if err != nil {
		return nil, err
	}
	return new(big.Int).SetUint64(uint64(w)), nil
}

func (c wordCodec[T]) unpack(v *big.Int) error {
	if v.Sign() < 0 || v.BitLen() > c.BitLimit() {
		return fmt.Errorf("%s does not fit in %d bits: %w", v, c.BitLimit(), bitfield.ErrOverflow)
	}
	c.Packer.Unpack(T(v.Uint64()))
	return nil
}

type bit256Codec struct{ *bitfield.Bit256Packer }

func (c bit256Codec) layout() *bitfield.Layout { return &c.Bit256Packer.Layout }
func (c bit256Codec) pack() (*big.Int, error)  { return c.Bit256Packer.Pack() }
func (c bit256Codec) unpack(v *big.Int) error  { return c.Bit256Packer.Unpack(v) }

type unlimitedCodec struct{ *bitfield.UnlimitedPacker }

func (c unlimitedCodec) layout() *bitfield.Layout { return &c.UnlimitedPacker.Layout }
func (c unlimitedCodec) pack() (*big.Int, error)  { return c.UnlimitedPacker.Pack(), nil }
func (c unlimitedCodec) unpack(v *big.Int) error  { return c.UnlimitedPacker.Unpack(v) }

func newCodec(backing string) (codec, error) {
	switch strings.ToLower(backing) {
	case "uint32":
		return wordCodec[uint32]{bitfield.NewUint32Packer()}, nil
	case "int32":
		return wordCodec[int32]{bitfield.NewInt32Packer()}, nil
	case "uint64":
		return wordCodec[uint64]{bitfield.NewUint64Packer()}, nil
	case "int64":
		return wordCodec[int64]{bitfield.NewInt64Packer()}, nil
	case "bit256":
		return bit256Codec{bitfield.NewBit256Packer()}, nil
	case "", "unlimited":
		return unlimitedCodec{bitfield.NewUnlimitedPacker()}, nil
	default:
		return nil, fmt.Errorf("unsupported backing type: %q", backing)
	}
}

func loadLayout(path string) (codec, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var file layoutFile
	if err := json.Unmarshal(b, &file); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}

	c, err := newCodec(file.Backing)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	for i, f := range file.Fields {
		if err := addField(c, f); err != nil {
			return nil, fmt.Errorf("%s: field #%d: %w", path, i, err)
		}
	}

	debug.Format("loaded %d fields (%d bits) from %s", c.layout().FieldCount(), c.layout().TotalBitWidth(), path)
	return c, nil
}

func addField(c codec, f fieldSpec) error {
	switch {
	case f.Bits > 0:
		if f.Min != nil || f.Max != nil {
			return fmt.Errorf("%q: bits cannot be combined with min or max", f.Name)
		}
		return c.AddField(f.Name, f.Bits)

	case f.Bytes > 0:
		if f.Max != nil {
			return fmt.Errorf("%q: bytes cannot be combined with max", f.Name)
		}
		min := int64(0)
		if f.Min != nil {
			min = *f.Min
		}
		return c.AddFieldWithBytes(f.Name, f.Bytes, min)

	case f.Min != nil && f.Max != nil:
		r, err := bitfield.NewRange(*f.Min, *f.Max)
		if err != nil {
			return fmt.Errorf("%q: %w", f.Name, err)
		}
		return c.AddRangeField(f.Name, r)

	default:
		return fmt.Errorf("%q: one of bits, bytes or min and max must be set", f.Name)
	}
}

// parseValue parses decimal and 0x prefixed hexadecimal integers, as well as
// UUIDs which are converted to their 128 bits value.
func parseValue(s string) (*big.Int, error) {
	if strings.Count(s, "-") == 4 {
		if id, err := uuid.Parse(s); err == nil {
			return new(big.Int).SetBytes(id[:]), nil
		}
	}
	v, ok := new(big.Int).SetString(s, 0)
	if !ok {
		return nil, fmt.Errorf("invalid integer value: %q", s)
	}
	return v, nil
}
