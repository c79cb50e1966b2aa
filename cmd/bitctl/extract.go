package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/bitkit/decode"
)

var (
	extractFrom   uint
	extractTo     uint
	extractSigned bool
)

func init() {
	cmd := newExtractCmd()
	cmd.Flags().UintVar(&extractFrom, "from", 63, "High bit of the field (inclusive)")
	cmd.Flags().UintVar(&extractTo, "to", 0, "Low bit of the field (inclusive)")
	cmd.Flags().BoolVar(&extractSigned, "signed", false, "Sign-extend the extracted field")
	rootCmd.AddCommand(cmd)
}

func newExtractCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "extract <hex-word>",
		Short: "Extract a bit field from a word",
		Long: `The extract command pulls the inclusive bit range [to, from] out of a
hex word, optionally reinterpreting it as a signed quantity.

Example:
  bitctl extract 0xAB --from 7 --to 4
  bitctl extract 0xF0 --from 7 --to 4 --signed`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExtract(args[0])
		},
	}
}

func runExtract(arg string) error {
	word, err := parseWord(arg)
	if err != nil {
		return err
	}
	if extractFrom > 63 || extractTo > extractFrom {
		return fmt.Errorf("invalid bit range [%d, %d]", extractTo, extractFrom)
	}

	printVerbose("Extracting bits [%d, %d] of 0x%X\n", extractTo, extractFrom, word)

	if extractSigned {
		printInfo("%d\n", decode.SignedField(word, extractFrom, extractTo))
		return nil
	}
	field := decode.Field(word, extractFrom, extractTo)
	printInfo("%d (0x%X)\n", field, field)
	return nil
}
