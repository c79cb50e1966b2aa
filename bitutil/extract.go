package bitutil

// Extract returns the inclusive bit range [to, from] of v, shifted down so
// that bit to lands at bit 0. Bit positions count from the least significant
// bit; callers must ensure 0 <= to <= from <= 63.
//
// The mask is built as (^uint64(0) >> (63 - (from - to))) << to. The shift
// amount stays in [0, 63] for every valid range, including the full-width
// case from=63, to=0, so no shift here can reach the undefined-at-64
// boundary. Results for to > from are unspecified.
func Extract(from, to uint, v uint64) uint64 {
	mask := (^uint64(0) >> (63 - (from - to))) << to
	return (v & mask) >> to
}
