package decode

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/bitkit/byteorder"
	"github.com/joshuapare/bitkit/typedesc"
)

func TestDecode_UnsignedMatchingOrder(t *testing.T) {
	v, err := Decode(0x01020304, typedesc.U32, byteorder.Host())
	require.NoError(t, err)
	require.Equal(t, uint64(0x01020304), v.Uint64())
}

func TestDecode_UnsignedOppositeOrder(t *testing.T) {
	v, err := Decode(0x01020304, typedesc.U32, byteorder.Host().Opposite())
	require.NoError(t, err)
	require.Equal(t, uint64(0x04030201), v.Uint64())
}

func TestDecode_SignedNarrowValue(t *testing.T) {
	// 0xFF as s8 is -1
	v, err := Decode(0xFF, typedesc.S8, byteorder.Host())
	require.NoError(t, err)
	require.Equal(t, int64(-1), v.Int64())

	// 0x7F stays positive
	v, err = Decode(0x7F, typedesc.S8, byteorder.Host())
	require.NoError(t, err)
	require.Equal(t, int64(127), v.Int64())

	// 0x8000 as s16 is -32768
	v, err = Decode(0x8000, typedesc.S16, byteorder.Host())
	require.NoError(t, err)
	require.Equal(t, int64(-32768), v.Int64())
}

func TestDecode_Float(t *testing.T) {
	v, err := Decode(uint64(math.Float32bits(1.5)), typedesc.F32, byteorder.Host())
	require.NoError(t, err)
	f, err := v.Float64()
	require.NoError(t, err)
	require.Equal(t, 1.5, f)

	v, err = Decode(math.Float64bits(-2.25), typedesc.F64, byteorder.Host())
	require.NoError(t, err)
	f, err = v.Float64()
	require.NoError(t, err)
	require.Equal(t, -2.25, f)
}

func TestDecode_InvalidWidth(t *testing.T) {
	_, err := Decode(0xFFFFFF, typedesc.New(typedesc.Unsigned, 3), byteorder.Big)
	require.ErrorIs(t, err, byteorder.ErrInvalidSize)
}

func TestValue_FloatViewRequiresFloatWidth(t *testing.T) {
	v, err := Decode(0xFFFF, typedesc.U16, byteorder.Host())
	require.NoError(t, err)

	_, err = v.Float64()
	require.ErrorIs(t, err, ErrFloatSize)
}

func TestField(t *testing.T) {
	// low nibble and high nibble of a byte
	require.Equal(t, uint64(0xB), Field(0xAB, 3, 0))
	require.Equal(t, uint64(0xA), Field(0xAB, 7, 4))
	// full width
	require.Equal(t, uint64(0xDEADBEEF), Field(0xDEADBEEF, 63, 0))
}

func TestSignedField(t *testing.T) {
	// high nibble 0xF is -1 as a 4-bit signed field
	require.Equal(t, int64(-1), SignedField(0xF0, 7, 4))
	require.Equal(t, int64(7), SignedField(0x70, 7, 4))
	// 3-bit field 0b100 is -4
	require.Equal(t, int64(-4), SignedField(0b100_00, 4, 2))
}
