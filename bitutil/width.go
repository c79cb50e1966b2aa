package bitutil

import mathbits "math/bits"

// Width returns the number of bits needed to represent x: the position of
// the highest set bit plus one. Width(0) is 0.
func Width(x uint64) uint {
	return uint(mathbits.Len64(x))
}

// Ceil returns the smallest power of two greater than or equal to x.
// Ceil(0) and Ceil(1) are both 1. The result is undefined when x exceeds
// 1<<63; callers sizing buffers never get near that range.
func Ceil(x uint64) uint64 {
	if x <= 1 {
		return 1
	}
	return uint64(1) << Width(x-1)
}
