package bitfield_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/segmentio/bitfield"
	"github.com/segmentio/bitfield/internal/quick"
)

func mustBigInt(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 0)
	if !ok {
		panic("invalid integer: " + s)
	}
	return v
}

func TestEthereumPacker(t *testing.T) {
	address := mustBigInt("0x742d35Cc6634C0532925a3b844Bc454e4438f44e")
	wei := mustBigInt("1000000000000000000")

	p := bitfield.NewEthereumPacker()
	assert.Equal(t, 256, p.TotalBitWidth())
	assert.Equal(t, 0, p.RemainingBits())
	assert.False(t, p.CanFitField(1))
	assert.Equal(t, int64(0), p.MaxValueForRemainingBits().Int64())

	require.NoError(t, p.SetBigValue("Address", address))
	require.NoError(t, p.SetBigValue("Value", wei))
	require.NoError(t, p.SetValue("Nonce", 42))

	packed, err := p.Pack()
	require.NoError(t, err)
	assert.LessOrEqual(t, packed.BitLen(), 256)

	q := p.CreateSimilar()
	require.NoError(t, q.Unpack(packed))

	v, _ := q.BigValue("Address")
	assert.Equal(t, 0, v.Cmp(address), "address: %x", v)
	v, _ = q.BigValue("Value")
	assert.Equal(t, 0, v.Cmp(wei), "value: %s", v)
	n, _ := q.Value("Nonce")
	assert.Equal(t, int64(42), n)

	b, err := p.PackBytes()
	require.NoError(t, err)

	r := p.CreateSimilar()
	r.UnpackBytes(b)
	require.NoError(t, r.Compatible(&q.Layout))
	assert.Equal(t, 0, r.Layout.Pack().Cmp(packed))
}

func TestBit256PackerRemainingBits(t *testing.T) {
	p := bitfield.NewBit256Packer()
	assert.Equal(t, 256, p.RemainingBits())
	assert.True(t, p.CanFitField(256))
	assert.False(t, p.CanFitField(257))
	assert.False(t, p.CanFitField(0))

	require.NoError(t, p.AddField("a", 250))
	assert.Equal(t, 6, p.RemainingBits())
	assert.Equal(t, int64(63), p.MaxValueForRemainingBits().Int64())
	assert.True(t, p.CanFitValue(big.NewInt(63)))
	assert.False(t, p.CanFitValue(big.NewInt(64)))
	assert.False(t, p.CanFitValue(big.NewInt(-1)))

	assert.ErrorIs(t, p.AddField("b", 7), bitfield.ErrCapacityExceeded)
	require.NoError(t, p.AddField("b", 6))
	assert.Equal(t, 0, p.RemainingBits())
}

func TestBit256PackerOverflow(t *testing.T) {
	var p bitfield.Bit256Packer
	require.NoError(t, p.AddField("a", 200))
	require.NoError(t, p.AddField("b", 100))
	require.NoError(t, p.SetBigValue("b", new(big.Int).Lsh(big.NewInt(1), 56)))

	_, err := p.Pack()
	assert.ErrorIs(t, err, bitfield.ErrOverflow)

	_, err = p.PackBytes()
	assert.ErrorIs(t, err, bitfield.ErrOverflow)
}

func TestBit256PackerWideLayoutWithinLimit(t *testing.T) {
	var p bitfield.Bit256Packer
	require.NoError(t, p.AddField("a", 200))
	require.NoError(t, p.AddField("b", 100))
	require.NoError(t, p.SetValue("a", 3))
	require.NoError(t, p.SetValue("b", 1))

	packed, err := p.Pack()
	require.NoError(t, err)
	assert.Equal(t, 201, packed.BitLen())

	b, err := p.PackBytes()
	require.NoError(t, err)
	assert.Equal(t, byte(3), b[0])
	assert.Equal(t, byte(1), b[25])

	q := p.CreateSimilar()
	q.UnpackBytes(b)
	v, _ := q.BigValue("b")
	assert.Equal(t, int64(1), v.Int64())
}

func TestBit256PackerUnpackTooLarge(t *testing.T) {
	p := bitfield.NewBit256Packer()
	require.NoError(t, p.AddField("a", 8))
	require.NoError(t, p.SetValue("a", 7))

	err := p.Unpack(new(big.Int).Lsh(big.NewInt(1), 256))
	assert.ErrorIs(t, err, bitfield.ErrOverflow)

	v, _ := p.Value("a")
	assert.Equal(t, int64(7), v)
}

func TestBit256PackerRoundTrip(t *testing.T) {
	err := quick.Check(bitfield.Bit256Limit, func(fields []quick.Field) bool {
		p := bitfield.NewBit256Packer()
		if err := addQuickFields(&p.Layout, fields); err != nil {
			t.Error(err)
			return false
		}

		packed, err := p.Pack()
		if err != nil {
			t.Error(err)
			return false
		}
		q := p.CreateSimilar()
		if err := q.Unpack(packed); err != nil {
			t.Error(err)
			return false
		}
		if !checkQuickFields(t, &q.Layout, fields) {
			return false
		}

		b, err := p.PackBytes()
		if err != nil {
			t.Error(err)
			return false
		}
		r := p.CreateSimilar()
		r.UnpackBytes(b)
		return checkQuickFields(t, &r.Layout, fields)
	})
	if err != nil {
		t.Error(err)
	}
}
