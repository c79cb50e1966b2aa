package decode

import "errors"

var (
	// ErrFloatSize indicates a float view was requested for a width other
	// than 4 or 8 bytes.
	ErrFloatSize = errors.New("decode: float width must be 4 or 8 bytes")
	// ErrShortBuffer indicates the input slice lacked the bytes for the
	// requested width.
	ErrShortBuffer = errors.New("decode: short buffer")
)
