package bitfield

const (
	// Uint32Limit is the number of bits available to the fields of a
	// Uint32Packer.
	Uint32Limit = 32

	// Int32Limit is the number of bits available to the fields of an
	// Int32Packer, the sign bit is reserved.
	Int32Limit = 31

	// Uint64Limit is the number of bits available to the fields of a
	// Uint64Packer.
	Uint64Limit = 64

	// Int64Limit is the number of bits available to the fields of an
	// Int64Packer, the sign bit is reserved.
	Int64Limit = 63

	// Bit256Limit is the number of bits available to the fields of a
	// Bit256Packer.
	Bit256Limit = 256
)
