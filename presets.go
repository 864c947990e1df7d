package bitfield

// NewEthereumPacker returns a 256 bits packer laid out as an Ethereum style
// transfer: a 160 bits "Address", a 64 bits "Value" and a 32 bits "Nonce".
func NewEthereumPacker() *Bit256Packer {
	p := NewBit256Packer()
	must(NewBuilder(p).
		Field("Address", 160).
		Field("Value", 64).
		Field("Nonce", 32).
		Err())
	return p
}

// NewRGBAPacker returns a 32 bits packer with one 8 bits field for each of the
// "R", "G", "B" and "A" color channels.
func NewRGBAPacker() *Uint32Packer {
	p := NewUint32Packer()
	must(p.AddFields(8, "R", "G", "B", "A"))
	return p
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}
