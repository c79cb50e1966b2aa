package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/joshuapare/bitkit/byteorder"
	"github.com/joshuapare/bitkit/decode"
	"github.com/joshuapare/bitkit/typedesc"
)

var (
	decodeType  string
	decodeOrder string
)

// namedTypes maps the CLI type names to their descriptors.
var namedTypes = map[string]typedesc.Descriptor{
	"u8":  typedesc.U8,
	"u16": typedesc.U16,
	"u32": typedesc.U32,
	"u64": typedesc.U64,
	"s8":  typedesc.S8,
	"s16": typedesc.S16,
	"s32": typedesc.S32,
	"s64": typedesc.S64,
	"f32": typedesc.F32,
	"f64": typedesc.F64,
}

func init() {
	cmd := newDecodeCmd()
	cmd.Flags().StringVar(&decodeType, "type", "u64", "Value type (u8..u64, s8..s64, f32, f64)")
	cmd.Flags().StringVar(&decodeOrder, "order", "little", "Byte order of the input word (little or big)")
	rootCmd.AddCommand(cmd)
}

func newDecodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode <hex-word>",
		Short: "Decode a raw word into a typed value",
		Long: `The decode command normalizes a raw hex word from the given byte order
and interprets it according to the requested type.

Example:
  bitctl decode 0x01020304 --type u32 --order big
  bitctl decode 0xFF --type s8
  bitctl decode 0x3FC00000 --type f32`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDecode(args[0])
		},
	}
}

func runDecode(arg string) error {
	raw, err := parseWord(arg)
	if err != nil {
		return err
	}

	desc, ok := namedTypes[decodeType]
	if !ok {
		return fmt.Errorf("unknown type %q", decodeType)
	}
	order, err := byteorder.Parse(decodeOrder)
	if err != nil {
		return err
	}

	printVerbose("Decoding %d-byte %s value from %s-endian word 0x%X\n",
		desc.Size(), decodeType, order, raw)

	v, err := decode.Decode(raw, desc, order)
	if err != nil {
		return fmt.Errorf("failed to decode value: %w", err)
	}

	switch {
	case desc.IsFloat():
		f, err := v.Float64()
		if err != nil {
			return err
		}
		printInfo("%v\n", f)
	case desc.IsSigned():
		printInfo("%d\n", v.Int64())
	default:
		printInfo("%d (0x%X)\n", v.Uint64(), v.Uint64())
	}
	return nil
}

// parseWord parses a hex word with or without a 0x prefix.
func parseWord(s string) (uint64, error) {
	trimmed := strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	raw, err := strconv.ParseUint(trimmed, 16, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid hex word %q: %w", s, err)
	}
	return raw, nil
}
