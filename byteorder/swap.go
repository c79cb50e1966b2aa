package byteorder

import (
	"fmt"
	mathbits "math/bits"
	"unsafe"
)

// Fixed constrains Swap to the integer types whose size is exactly 1, 2, 4,
// or 8 bytes. Any other width fails to satisfy the constraint and is
// rejected at compile time.
type Fixed interface {
	~int8 | ~uint8 | ~int16 | ~uint16 | ~int32 | ~uint32 | ~int64 | ~uint64
}

// Swap returns v with its bytes reordered to match target. It is the
// identity when target equals the host order.
func Swap[T Fixed](v T, target Order) T {
	if target == Host() {
		return v
	}
	switch unsafe.Sizeof(v) {
	case 1:
		return v
	case 2:
		return T(mathbits.ReverseBytes16(uint16(v)))
	case 4:
		return T(mathbits.ReverseBytes32(uint32(v)))
	default:
		return T(mathbits.ReverseBytes64(uint64(v)))
	}
}

// SwapSize reorders the low size bytes of v to match target. size arrives
// from runtime data (typically a declared field width out of parsed format
// metadata) and must be 1, 2, 4, or 8; anything else reports ErrInvalidSize.
// The size check runs before the identity fast path so a malformed width is
// reported even when no swap would be needed.
//
// Bytes of v above size are dropped by the swap, matching a size-byte
// container that happens to ride in a 64-bit word.
func SwapSize(v uint64, size int, target Order) (uint64, error) {
	switch size {
	case 1, 2, 4, 8:
	default:
		return 0, fmt.Errorf("swap %d bytes: %w", size, ErrInvalidSize)
	}
	if target == Host() || size == 1 {
		return v, nil
	}
	switch size {
	case 2:
		return uint64(mathbits.ReverseBytes16(uint16(v))), nil
	case 4:
		return uint64(mathbits.ReverseBytes32(uint32(v))), nil
	default:
		return mathbits.ReverseBytes64(v), nil
	}
}
