package bitfield_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/segmentio/bitfield"
)

func TestBuilder(t *testing.T) {
	p := bitfield.NewUint32Packer()
	err := bitfield.NewBuilder(p).
		Field("flags", 4).
		Range("delta", -50, 50).
		RangeField("level", bitfield.MustRange(1, 8)).
		Bytes("id", 2, 0).
		Err()
	require.NoError(t, err)

	assert.Equal(t, []string{"flags", "delta", "level", "id"}, p.FieldNames())
	assert.Equal(t, 4+7+3+16, p.TotalBitWidth())
}

func TestBuilderKeepsFirstError(t *testing.T) {
	l := bitfield.NewLayout()
	err := bitfield.NewBuilder(l).
		Fields(2, "a", "b").
		Range("c", 10, 0).
		Field("a", 4).
		Field("d", 1).
		Err()

	assert.ErrorIs(t, err, bitfield.ErrInvalidRange)
	assert.Equal(t, []string{"a", "b"}, l.FieldNames())
}

func TestBuilderCapacity(t *testing.T) {
	p := bitfield.NewInt32Packer()
	err := bitfield.NewBuilder(p).
		Field("field1", 10).
		Field("field2", 15).
		Field("field3", 6).
		Field("field4", 1).
		Err()

	assert.ErrorIs(t, err, bitfield.ErrCapacityExceeded)
	assert.Equal(t, 31, p.TotalBitWidth())
}
