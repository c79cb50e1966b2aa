// Package byteorder normalizes multi-byte values between byte orders.
//
// Two entry points cover the two ways callers learn a value's width. Swap is
// generic over the fixed-width integer types, so the width is settled at
// compile time and unsupported widths never build. SwapSize takes the width
// as a runtime argument for callers decoding a width chosen by parsed format
// metadata; because that input can be malformed, an unsupported size is a
// reported error rather than undefined behavior.
//
// Both forms are the identity when the target order already matches the
// host, and single-byte values pass through unchanged regardless of order.
package byteorder
