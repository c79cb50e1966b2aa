// Package render formats decoded bytes and byte counts for human display.
package render

import (
	"unicode"
	"unicode/utf8"

	"github.com/dustin/go-humanize"
	"golang.org/x/text/encoding/charmap"
)

// controlNames holds the short names of the C0 control codes 0x00-0x1F.
var controlNames = [0x20]string{
	"NUL", "SOH", "STX", "ETX", "EOT", "ENQ", "ACK", "BEL",
	"BS", "TAB", "LF", "VT", "FF", "CR", "SO", "SI",
	"DLE", "DC1", "DC2", "DC3", "DC4", "NAK", "SYN", "ETB",
	"CAN", "EM", "SUB", "ESC", "FS", "GS", "RS", "US",
}

// ByteString renders a byte count with binary magnitude suffixes
// (KiB, MiB, ...).
func ByteString(bytes uint64) string {
	return humanize.IBytes(bytes)
}

// Printable renders a single byte for display. Control codes come back as
// their short names, printable ASCII as itself, and high bytes are decoded
// as Windows-1252 when that yields a printable character. Everything else
// becomes ".".
func Printable(c byte) string {
	switch {
	case c < 0x20:
		return controlNames[c]
	case c == 0x7F:
		return "DEL"
	case c < 0x7F:
		return string(rune(c))
	}
	// Windows-1252 leaves a handful of bytes undefined; DecodeByte maps
	// those to the replacement rune.
	r := charmap.Windows1252.DecodeByte(c)
	if r != utf8.RuneError && unicode.IsPrint(r) {
		return string(r)
	}
	return "."
}
