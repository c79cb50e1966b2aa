// Package bitutil contains the bit-level primitives used to decode raw
// binary data: arbitrary bit-field extraction from a 64-bit word, sign
// extension between arbitrary widths, and power-of-two sizing helpers.
//
// Every function is a pure computation over its arguments. Preconditions are
// documented rather than checked; these routines sit on hot decode paths and
// callers are expected to validate ranges derived from untrusted format
// metadata before reaching this package.
package bitutil
