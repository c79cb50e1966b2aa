package decode

import (
	"encoding/binary"
	"fmt"

	"github.com/joshuapare/bitkit/bitutil"
	"github.com/joshuapare/bitkit/byteorder"
	"github.com/joshuapare/bitkit/typedesc"
)

// Load reads a size-byte value from the front of b in the given order,
// zero-extended into a 64-bit container. size must be 1, 2, 4, or 8, and b
// must cover it; short buffers report ErrShortBuffer.
func Load(b []byte, size int, order byteorder.Order) (uint64, error) {
	switch size {
	case 1, 2, 4, 8:
	default:
		return 0, fmt.Errorf("load %d bytes: %w", size, byteorder.ErrInvalidSize)
	}
	if len(b) < size {
		return 0, fmt.Errorf("load %d bytes from %d: %w", size, len(b), ErrShortBuffer)
	}

	var bo binary.ByteOrder = binary.LittleEndian
	if order == byteorder.Big {
		bo = binary.BigEndian
	}
	switch size {
	case 1:
		return uint64(b[0]), nil
	case 2:
		return uint64(bo.Uint16(b)), nil
	case 4:
		return uint64(bo.Uint32(b)), nil
	default:
		return bo.Uint64(b), nil
	}
}

// DecodeBytes loads desc.Size() bytes from b in dataOrder and returns the
// decoded value. The load already lands in host order, so only sign
// extension remains.
func DecodeBytes(b []byte, desc typedesc.Descriptor, dataOrder byteorder.Order) (Value, error) {
	size := desc.Size()
	raw, err := Load(b, size, dataOrder)
	if err != nil {
		return Value{}, err
	}
	if desc.IsSigned() && size < 8 {
		raw = bitutil.SignExtend(raw, uint(size)*8, 64)
	}
	return Value{Desc: desc, Bits: raw}, nil
}
