package bitfield_test

import (
	"fmt"

	"github.com/segmentio/bitfield"
)

func ExampleUint32Packer() {
	p := bitfield.NewUint32Packer()

	err := bitfield.NewBuilder(p).
		Field("kind", 4).
		Range("temperature", -50, 50).
		Bytes("sensor", 2, 0).
		Err()
	if err != nil {
		panic(err)
	}

	if err := p.SetValues(map[string]int64{"kind": 3, "temperature": -25, "sensor": 512}); err != nil {
		panic(err)
	}

	packed, err := p.Pack()
	if err != nil {
		panic(err)
	}

	q := p.CreateSimilar()
	q.Unpack(packed)

	temperature, _ := q.Value("temperature")
	sensor, _ := q.Value("sensor")
	fmt.Println(p.TotalBitWidth(), temperature, sensor)
	// Output: 27 -25 512
}

func ExampleRange_BitsRequired() {
	r := bitfield.MustRange(-50, 50)
	fmt.Println(r, r.BitsRequired())
	// Output: [-50, 50] 7
}
