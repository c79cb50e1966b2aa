package main

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/joshuapare/bitkit/render"
)

func init() {
	rootCmd.AddCommand(newCharsCmd())
}

func newCharsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chars <hex-bytes>",
		Short: "Render bytes as printable characters",
		Long: `The chars command renders each input byte the way a hex viewer's
character column would: control codes by name, printable characters as
themselves, and everything else as ".".

Example:
  bitctl chars 48656C6C6F00FF`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChars(args[0])
		},
	}
}

func runChars(arg string) error {
	trimmed := strings.TrimPrefix(strings.TrimPrefix(arg, "0x"), "0X")
	data, err := hex.DecodeString(trimmed)
	if err != nil {
		return fmt.Errorf("invalid hex bytes %q: %w", arg, err)
	}

	for _, c := range data {
		printInfo("%02X  %s\n", c, render.Printable(c))
	}
	printInfo("%s total\n", render.ByteString(uint64(len(data))))
	return nil
}
