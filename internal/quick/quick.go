// Package quick generates deterministic random layouts for property tests.
package quick

import (
	"fmt"
	"math/big"
	"math/rand"
	"strconv"
)

// Field describes a random field: its bounds, and a value within them.
type Field struct {
	Name  string
	Min   *big.Int
	Max   *big.Int
	Value *big.Int
}

// Width returns the number of bits needed to hold the values of f.
func (f Field) Width() int {
	if n := new(big.Int).Sub(f.Max, f.Min).BitLen(); n > 0 {
		return n
	}
	return 1
}

// Check is inspired by the standard quick.Check package. It calls f with
// random sequences of fields of increasing length, whose total width never
// exceeds limit bits. A limit of zero means that layouts are unbounded.
func Check(limit int, f func([]Field) bool) error {
	r := rand.New(rand.NewSource(0))

	for _, n := range [...]int{
		0, 1, 2, 3, 4, 5, 6, 7, 8, 9,
		10, 11, 12, 13, 14, 15, 16, 17, 18, 19,
		20, 31, 32, 33, 63, 64, 65,
	} {
		for i := 0; i < 3; i++ {
			in := makeFields(r, n, limit)
			if !f(in) {
				return fmt.Errorf("test #%d: failed on input of size %d: %v\n", i+1, n, in)
			}
		}
	}
	return nil
}

func makeFields(r *rand.Rand, n, limit int) []Field {
	const maxWidth = 96

	fields := make([]Field, 0, n)
	used := 0

	for i := 0; i < n; i++ {
		width := 1 + r.Intn(maxWidth)
		if limit > 0 {
			remain := limit - used
			if remain <= 0 {
				break
			}
			if width > remain {
				width = 1 + r.Intn(remain)
			}
		}

		// The span is drawn with at most width bits, the field may end up
		// narrower than width but never wider.
		span := new(big.Int).Rand(r, new(big.Int).Lsh(big.NewInt(1), uint(width)))
		min := makeMin(r)
		max := new(big.Int).Add(min, span)
		value := new(big.Int).Rand(r, new(big.Int).Add(span, big.NewInt(1)))

		f := Field{
			Name:  "f" + strconv.Itoa(i),
			Min:   min,
			Max:   max,
			Value: value.Add(value, min),
		}
		fields = append(fields, f)
		used += f.Width()
	}

	return fields
}

func makeMin(r *rand.Rand) *big.Int {
	switch r.Intn(4) {
	case 0:
		return new(big.Int)
	case 1:
		return big.NewInt(r.Int63n(2000) - 1000)
	case 2:
		return big.NewInt(-r.Int63())
	default:
		// Bounds which do not fit in 64 bits.
		v := new(big.Int).Lsh(big.NewInt(r.Int63()), 40)
		if r.Intn(2) == 0 {
			v.Neg(v)
		}
		return v
	}
}

func (f Field) String() string {
	return fmt.Sprintf("%s=%s[%s, %s]", f.Name, f.Value, f.Min, f.Max)
}
