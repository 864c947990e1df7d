package bitfield_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/segmentio/bitfield"
)

func TestFieldAccessors(t *testing.T) {
	l := bitfield.NewLayout()
	require.NoError(t, l.AddField("flags", 3))
	require.NoError(t, l.AddRangeField("temp", bitfield.MustRange(-50, 50)))

	f, ok := l.Field("temp")
	require.True(t, ok)
	assert.Equal(t, "temp", f.Name())
	assert.Equal(t, 3, f.Offset())
	assert.Equal(t, 7, f.Width())
	assert.Equal(t, int64(-50), f.Min().Int64())
	assert.Equal(t, int64(50), f.Max().Int64())
	assert.Equal(t, int64(127), f.Mask().Int64())
	assert.Equal(t, "[-50, 50]", f.Range().String())
	assert.Equal(t, "temp [-50, 50] @3:10", f.String())

	f.Min().SetInt64(0)
	assert.Equal(t, int64(-50), f.Min().Int64())

	_, ok = l.Field("missing")
	assert.False(t, ok)
}

func TestFieldZeroValue(t *testing.T) {
	l := bitfield.NewLayout()
	f, ok := l.Field("missing")
	require.False(t, ok)

	assert.Equal(t, "", f.Name())
	assert.Equal(t, 0, f.Width())
	assert.Equal(t, 0, f.Min().Sign())
	assert.Equal(t, 0, f.Max().Sign())
	assert.Equal(t, 0, f.Mask().Sign())
	assert.Equal(t, "[0, 0]", f.Range().String())
	assert.Equal(t, " [0, 0] @0:0", f.String())
	assert.NoError(t, f.ValidateValue(big.NewInt(0)))
	assert.ErrorIs(t, f.ValidateValue(big.NewInt(1)), bitfield.ErrOutOfRange)
	assert.Equal(t, int64(5), f.DenormalizeValue(big.NewInt(5)).Int64())
}

func TestFieldValidateValue(t *testing.T) {
	l := bitfield.NewLayout()
	require.NoError(t, l.AddRangeField("temp", bitfield.MustRange(-50, 50)))
	f, _ := l.Field("temp")

	tests := []struct {
		scenario string
		value    int64
		message  string
	}{
		{scenario: "minimum", value: -50},
		{scenario: "maximum", value: 50},
		{scenario: "below", value: -51, message: "below the minimum of -50"},
		{scenario: "above", value: 51, message: "above the maximum of 50"},
	}

	for _, test := range tests {
		t.Run(test.scenario, func(t *testing.T) {
			err := f.ValidateValue(big.NewInt(test.value))
			if test.message == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, bitfield.ErrOutOfRange)
			assert.Contains(t, err.Error(), test.message)
		})
	}
}

func TestFieldNormalizeValue(t *testing.T) {
	l := bitfield.NewLayout()
	require.NoError(t, l.AddRangeField("temp", bitfield.MustRange(-50, 50)))
	f, _ := l.Field("temp")

	n, err := f.NormalizeValue(big.NewInt(-25))
	require.NoError(t, err)
	assert.Equal(t, int64(25), n.Int64())
	assert.Equal(t, int64(-25), f.DenormalizeValue(n).Int64())

	_, err = f.NormalizeValue(big.NewInt(100))
	assert.ErrorIs(t, err, bitfield.ErrOutOfRange)
}
