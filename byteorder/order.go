package byteorder

import (
	"encoding/binary"
	"fmt"
)

// Order identifies a byte order for multi-byte values.
type Order uint8

const (
	// Little is least-significant-byte-first order.
	Little Order = iota
	// Big is most-significant-byte-first order.
	Big
)

// host is resolved once at startup by probing encoding/binary's native view.
var host = func() Order {
	var b [2]byte
	binary.NativeEndian.PutUint16(b[:], 0x0102)
	if b[0] == 0x02 {
		return Little
	}
	return Big
}()

// Host returns the byte order native to the executing machine.
func Host() Order {
	return host
}

// Opposite returns the other byte order.
func (o Order) Opposite() Order {
	if o == Little {
		return Big
	}
	return Little
}

func (o Order) String() string {
	switch o {
	case Little:
		return "little"
	case Big:
		return "big"
	default:
		return fmt.Sprintf("order(%d)", uint8(o))
	}
}

// Parse maps the names "little" and "big" to their Order.
func Parse(s string) (Order, error) {
	switch s {
	case "little":
		return Little, nil
	case "big":
		return Big, nil
	default:
		return 0, fmt.Errorf("byteorder: unknown order %q", s)
	}
}
