package bitfield

import (
	"bytes"
	"math/big"
	"math/rand"
	"testing"

	"github.com/segmentio/bitfield/internal/bits"
)

func TestPackBytesAlignedMatchesBitByBit(t *testing.T) {
	l := NewLayout()
	must(l.AddFieldWithBytes("a", 1, 0))
	must(l.AddFieldWithBytes("b", 4, -1000))
	must(l.AddField("c", 16))
	must(l.AddFieldWithBytes("d", 20, 0))

	for _, f := range l.fields {
		if !bits.Aligned(uint(f.offset), uint(f.width)) {
			t.Fatalf("field %q is not byte aligned", f.name)
		}
	}

	prng := rand.New(rand.NewSource(0))

	for i := 0; i < 100; i++ {
		for j := range l.fields {
			f := &l.fields[j]
			n := new(big.Int).Rand(prng, new(big.Int).Add(f.mask, big.NewInt(1)))
			must(l.SetBigValue(f.name, n.Add(n, f.min)))
		}
		testPackBytesPaths(t, l)
	}
}

func TestPackBytesUnalignedMatchesBitByBit(t *testing.T) {
	prng := rand.New(rand.NewSource(1))

	for i := 0; i < 100; i++ {
		l := NewLayout()
		for j, n := 0, 1+prng.Intn(20); j < n; j++ {
			must(l.AddField("f"+string(rune('a'+j)), 1+prng.Intn(70)))
		}
		for j := range l.fields {
			f := &l.fields[j]
			must(l.SetBigValue(f.name, new(big.Int).Rand(prng, new(big.Int).Add(f.mask, big.NewInt(1)))))
		}
		testPackBytesPaths(t, l)
	}
}

func testPackBytesPaths(t *testing.T, l *Layout) {
	t.Helper()

	fast := make([]byte, l.TotalBytesNeeded())
	slow := make([]byte, l.TotalBytesNeeded())
	l.packBytes(fast, bits.Copy)
	l.packBytes(slow, bits.CopyBits)

	if !bytes.Equal(fast, slow) {
		t.Fatalf("%s: packed bytes mismatch\nwant: %08b\ngot:  %08b", l, slow, fast)
	}

	want := l.Pack()
	for _, transfer := range []transferFunc{bits.Copy, bits.CopyBits} {
		c := l.CreateSimilar()
		c.unpackBytes(fast, transfer)
		if got := c.Pack(); got.Cmp(want) != 0 {
			t.Fatalf("%s: unpacked value mismatch\nwant: %x\ngot:  %x", l, want, got)
		}
	}
}
