package decode

import (
	"fmt"
	"math"

	"github.com/joshuapare/bitkit/bitutil"
	"github.com/joshuapare/bitkit/byteorder"
	"github.com/joshuapare/bitkit/typedesc"
)

// Value is a decoded numeric value: a 64-bit container holding the
// normalized bit pattern, plus the descriptor that tells callers how to
// view it. Values are plain data; copy them freely.
type Value struct {
	Desc typedesc.Descriptor
	Bits uint64
}

// Decode normalizes raw from dataOrder into host order and, for signed
// values narrower than the container, replicates the sign bit through the
// full 64 bits so Int64 reads correctly. raw holds the field's bytes in
// dataOrder in its low desc.Size() bytes.
//
// The only reported failure is an unsupported descriptor width, surfaced
// from the byte-order normalization.
func Decode(raw uint64, desc typedesc.Descriptor, dataOrder byteorder.Order) (Value, error) {
	size := desc.Size()
	normalized, err := byteorder.SwapSize(raw, size, dataOrder)
	if err != nil {
		return Value{}, fmt.Errorf("decode value: %w", err)
	}
	if desc.IsSigned() && size < 8 {
		normalized = bitutil.SignExtend(normalized, uint(size)*8, 64)
	}
	return Value{Desc: desc, Bits: normalized}, nil
}

// Uint64 returns the container bits as an unsigned value.
func (v Value) Uint64() uint64 {
	return v.Bits
}

// Int64 returns the container bits as a signed value. Decode has already
// replicated the sign for signed descriptors, so this is a plain
// reinterpretation.
func (v Value) Int64() int64 {
	return int64(v.Bits)
}

// Float64 reinterprets the container bits as an IEEE-754 value. Only 4- and
// 8-byte widths have a float representation; anything else reports
// ErrFloatSize.
func (v Value) Float64() (float64, error) {
	switch v.Desc.Size() {
	case 4:
		return float64(math.Float32frombits(uint32(v.Bits))), nil
	case 8:
		return math.Float64frombits(v.Bits), nil
	default:
		return 0, fmt.Errorf("%d-byte value: %w", v.Desc.Size(), ErrFloatSize)
	}
}

// Field extracts the inclusive bit range [to, from] from word, for values
// packed into a sub-range of a larger container (a 5-bit field sharing a
// byte with other fields, say). Range preconditions are bitutil.Extract's.
func Field(word uint64, from, to uint) uint64 {
	return bitutil.Extract(from, to, word)
}

// SignedField extracts the inclusive bit range [to, from] from word and
// reinterprets it as a two's-complement quantity of from-to+1 bits.
func SignedField(word uint64, from, to uint) int64 {
	return bitutil.Int(bitutil.Extract(from, to, word), from-to+1)
}
