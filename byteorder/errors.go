package byteorder

import "errors"

var (
	// ErrInvalidSize indicates a runtime width outside the supported
	// 1/2/4/8-byte set.
	ErrInvalidSize = errors.New("byteorder: invalid value size")
)
