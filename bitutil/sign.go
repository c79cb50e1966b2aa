package bitutil

// SignExtend reinterprets the low currWidth bits of v as a two's-complement
// signed quantity and widens it to targetWidth bits. The returned container
// holds the targetWidth-bit pattern with the sign bit replicated up through
// bit targetWidth-1 and zeros above, so a negative 4-bit field widened to
// 8 bits comes back as 0xFF.
//
// The widening uses the bias trick: with mask = 1 << (currWidth-1),
// (v ^ mask) - mask yields the correctly signed 64-bit quantity, which is
// then truncated to targetWidth bits by a shift pair.
//
// Callers must ensure 1 <= currWidth <= targetWidth <= 64; results outside
// that range are unspecified.
func SignExtend(v uint64, currWidth, targetWidth uint) uint64 {
	mask := uint64(1) << (currWidth - 1)
	widened := (v ^ mask) - mask
	shift := 64 - targetWidth
	return widened << shift >> shift
}

// Int reinterprets the low width bits of v as a two's-complement signed
// integer. Callers must ensure 1 <= width <= 64.
//
//	Int(0b011, 3) == 3
//	Int(0b111, 3) == -1
//	Int(0b100, 3) == -4
func Int(v uint64, width uint) int64 {
	return int64(SignExtend(v, width, 64))
}
