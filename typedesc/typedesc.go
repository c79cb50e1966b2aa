// Package typedesc decodes the packed numeric type codes a binary format
// interpreter attaches to decoded values. A code packs the value's category
// into the low nibble (0 unsigned, 1 signed, 2 float) and its byte width
// into the remaining high bits, so the full cross-product of categories and
// widths collapses into distinct small integers usable as switch keys.
//
// The packed form is deliberately opaque: callers go through the accessors
// and never compare codes structurally.
package typedesc

// Category labels the numeric interpretation of a decoded value.
type Category uint8

const (
	// Unsigned marks plain binary magnitudes.
	Unsigned Category = 0x0
	// Signed marks two's-complement quantities.
	Signed Category = 0x1
	// Float marks IEEE-754 bit patterns.
	Float Category = 0x2
)

const (
	categoryMask = 0x0F
	widthShift   = 4
)

// Descriptor is a packed type code. Build one with New, or wrap a raw code
// produced by an external type system with FromCode.
type Descriptor uint32

// New packs a category and a byte width into a Descriptor.
func New(cat Category, size int) Descriptor {
	return Descriptor(uint32(size)<<widthShift | uint32(cat)&categoryMask)
}

// FromCode wraps a raw packed code without validation.
func FromCode(code uint32) Descriptor {
	return Descriptor(code)
}

// Code returns the raw packed representation.
func (d Descriptor) Code() uint32 {
	return uint32(d)
}

// Size returns the value's width in bytes.
func (d Descriptor) Size() int {
	return int(d >> widthShift)
}

// The three category predicates are independent equality tests on the low
// nibble. A corrupt code whose nibble matches none of the categories answers
// false to all three; legitimate type systems never produce one, and the
// codec does not police it.

// IsUnsigned reports whether the category nibble is exactly Unsigned.
func (d Descriptor) IsUnsigned() bool {
	return Category(d&categoryMask) == Unsigned
}

// IsSigned reports whether the category nibble is exactly Signed.
func (d Descriptor) IsSigned() bool {
	return Category(d&categoryMask) == Signed
}

// IsFloat reports whether the category nibble is exactly Float.
func (d Descriptor) IsFloat() bool {
	return Category(d&categoryMask) == Float
}

// Descriptors for the common fixed-width types.
var (
	U8  = New(Unsigned, 1)
	U16 = New(Unsigned, 2)
	U32 = New(Unsigned, 4)
	U64 = New(Unsigned, 8)

	S8  = New(Signed, 1)
	S16 = New(Signed, 2)
	S32 = New(Signed, 4)
	S64 = New(Signed, 8)

	F32 = New(Float, 4)
	F64 = New(Float, 8)
)
