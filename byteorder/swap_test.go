package byteorder

import (
	"errors"
	"testing"
)

func TestSwap_HostOrderIsIdentity(t *testing.T) {
	if got := Swap(uint8(0xAB), Host()); got != 0xAB {
		t.Fatalf("1-byte identity broken: 0x%x", got)
	}
	if got := Swap(uint16(0xABCD), Host()); got != 0xABCD {
		t.Fatalf("2-byte identity broken: 0x%x", got)
	}
	if got := Swap(uint32(0x01020304), Host()); got != 0x01020304 {
		t.Fatalf("4-byte identity broken: 0x%x", got)
	}
	if got := Swap(uint64(0x0102030405060708), Host()); got != 0x0102030405060708 {
		t.Fatalf("8-byte identity broken: 0x%x", got)
	}
}

func TestSwap_OppositeOrderReverses(t *testing.T) {
	opp := Host().Opposite()

	// single bytes have no internal order
	if got := Swap(uint8(0xAB), opp); got != 0xAB {
		t.Fatalf("Swap(uint8) = 0x%x, want 0xAB", got)
	}
	if got := Swap(uint16(0x0102), opp); got != 0x0201 {
		t.Fatalf("Swap(uint16) = 0x%x, want 0x0201", got)
	}
	if got := Swap(uint32(0x01020304), opp); got != 0x04030201 {
		t.Fatalf("Swap(uint32) = 0x%x, want 0x04030201", got)
	}
	if got := Swap(uint64(0x0102030405060708), opp); got != 0x0807060504030201 {
		t.Fatalf("Swap(uint64) = 0x%x, want 0x0807060504030201", got)
	}

	// signed types reorder their bit pattern the same way
	if got := Swap(int16(0x0102), opp); got != 0x0201 {
		t.Fatalf("Swap(int16) = 0x%x, want 0x0201", got)
	}
}

func TestSwapSize_DoubleSwapIsIdentity(t *testing.T) {
	opp := Host().Opposite()
	values := []uint64{0, 1, 0xABCD, 0xDEADBEEF, 0x0102030405060708}

	for _, size := range []int{2, 4, 8} {
		for _, v := range values {
			// keep the value within the declared width so the truncating
			// swap is invertible
			if size < 8 {
				v &= 1<<(8*size) - 1
			}
			once, err := SwapSize(v, size, opp)
			if err != nil {
				t.Fatalf("SwapSize(%d): %v", size, err)
			}
			twice, err := SwapSize(once, size, opp)
			if err != nil {
				t.Fatalf("SwapSize(%d): %v", size, err)
			}
			if twice != v {
				t.Fatalf("double swap size %d: 0x%x -> 0x%x", size, v, twice)
			}
		}
	}
}

func TestSwapSize_HostOrderIsIdentity(t *testing.T) {
	for _, size := range []int{1, 2, 4, 8} {
		got, err := SwapSize(0x0102030405060708, size, Host())
		if err != nil {
			t.Fatalf("SwapSize(%d): %v", size, err)
		}
		if got != 0x0102030405060708 {
			t.Fatalf("SwapSize(%d) host identity broken: 0x%x", size, got)
		}
	}
}

func TestSwapSize_InvalidSizes(t *testing.T) {
	for _, size := range []int{0, 3, 5, 6, 7, 9, -1, 16} {
		for _, order := range []Order{Little, Big} {
			_, err := SwapSize(0xFF, size, order)
			if !errors.Is(err, ErrInvalidSize) {
				t.Fatalf("SwapSize(size=%d, order=%v) err = %v, want ErrInvalidSize", size, order, err)
			}
		}
	}
}

// Decoding a little-endian 4-byte field held in the word 0x01020304: a
// big-endian-normalizing pass reverses it, a matching-order pass leaves it
// alone.
func TestSwapSize_FourByteScenario(t *testing.T) {
	word := uint64(0x01020304)

	swapped, err := SwapSize(word, 4, Host().Opposite())
	if err != nil {
		t.Fatalf("SwapSize: %v", err)
	}
	if swapped != 0x04030201 {
		t.Fatalf("normalizing pass = 0x%x, want 0x04030201", swapped)
	}

	same, err := SwapSize(word, 4, Host())
	if err != nil {
		t.Fatalf("SwapSize: %v", err)
	}
	if same != 0x01020304 {
		t.Fatalf("matching pass = 0x%x, want 0x01020304", same)
	}
}
