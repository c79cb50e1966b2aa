// Package decode turns raw binary containers into typed numeric values.
//
// The decode path for a fixed-width field is: consult the type descriptor
// for category and width, normalize the container's byte order to the host,
// then sign-extend signed values narrower than the 64-bit container. Values
// packed into a sub-range of a larger word go through Field and SignedField
// instead.
//
// The package does not validate that an input buffer covers the declared
// width of a *word* handed to Decode; that word was already read by the
// caller. Slice-based entry points (Load, DecodeBytes) do check length,
// since the slice carries it.
package decode
