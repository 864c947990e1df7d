// Package bitfield packs sets of named, range bounded integer fields into
// single integers and unpacks them back.
//
// A Layout describes the fields: each field is given a name and either a bit
// width or an inclusive range of values, and is assigned the bits immediately
// above the fields added before it. Values are stored relative to the field
// minimum, so a field holding values in [-50, 50] only needs 7 bits.
//
// Layouts are bounded by the backing type that packed values are stored in:
//
//	Uint32Packer    32 bits, packs into uint32
//	Int32Packer     31 bits, packs into non-negative int32
//	Uint64Packer    64 bits, packs into uint64
//	Int64Packer     63 bits, packs into non-negative int64
//	Bit256Packer    256 bits, packs into *big.Int or [32]byte
//	UnlimitedPacker no limit, packs into *big.Int or []byte
//
// Packed values carry no description of their layout, programs exchanging
// them must construct their layouts with the same sequence of field additions,
// or derive them from one another with CreateSimilar.
package bitfield
