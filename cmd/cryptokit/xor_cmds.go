package main

import (
	"bytes"

	"github.com/spf13/cobra"

	"github.com/provide-io/cryptokit/internal/input"
	"github.com/provide-io/cryptokit/pkg/codec"
	"github.com/provide-io/cryptokit/pkg/crack"
)

func newXORCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "xor",
		Short: "Repeating-key and fixed XOR",
	}
	cmd.AddCommand(newXOREncryptCmd(), newXORDecryptCmd(), newXORFixedCmd())
	return cmd
}

func cipherOptions(lineReset bool) []crack.Option {
	opts := []crack.Option{crack.WithLogger(logger)}
	if lineReset {
		opts = append(opts, crack.WithLineReset())
	}
	return opts
}

func newXOREncryptCmd() *cobra.Command {
	var (
		key       string
		lineReset bool
	)

	cmd := &cobra.Command{
		Use:   "encrypt [file]",
		Short: "Encrypt raw input with an encoded repeating key",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			plaintext, err := input.ReadAll(argOrStdin(args))
			if err != nil {
				return err
			}
			plaintext = bytes.TrimSuffix(plaintext, []byte{'\n'})

			out, err := crack.Encrypt(activeCodec, plaintext, []byte(key), cipherOptions(lineReset)...)
			if err != nil {
				return err
			}
			return writeLine(cmd.OutOrStdout(), out)
		},
	}

	cmd.Flags().StringVarP(&key, "key", "k", "", "encoded key (required)")
	cmd.Flags().BoolVar(&lineReset, "line-reset", false, "restart the key at every line")
	if err := cmd.MarkFlagRequired("key"); err != nil {
		panic(err)
	}
	return cmd
}

func newXORDecryptCmd() *cobra.Command {
	var (
		key       string
		lineReset bool
		encoded   bool
	)

	cmd := &cobra.Command{
		Use:   "decrypt [file]",
		Short: "Decrypt encoded ciphertext with an encoded repeating key",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := input.ReadAll(argOrStdin(args))
			if err != nil {
				return err
			}
			content = bytes.Join(splitLines(content), []byte{'\n'})

			out, err := crack.Decrypt(activeCodec, content, []byte(key), cipherOptions(lineReset)...)
			if err != nil {
				return err
			}
			if encoded {
				return writeLine(cmd.OutOrStdout(), out)
			}
			return writeLine(cmd.OutOrStdout(), decodeJoined(out))
		},
	}

	cmd.Flags().StringVarP(&key, "key", "k", "", "encoded key (required)")
	cmd.Flags().BoolVar(&lineReset, "line-reset", false, "restart the key at every line")
	cmd.Flags().BoolVar(&encoded, "encoded", false, "print the plaintext in the codec's encoding")
	if err := cmd.MarkFlagRequired("key"); err != nil {
		panic(err)
	}
	return cmd
}

func newXORFixedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fixed <a> <b>",
		Short: "XOR two encoded buffers of equal length",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := crack.FixedXOR(activeCodec, []byte(args[0]), []byte(args[1]))
			return writeLine(cmd.OutOrStdout(), out)
		},
	}
}

// decodeJoined decodes newline-separated encoded lines and joins the raw
// lines with '\n' again.
func decodeJoined(encoded []byte) []byte {
	lines := bytes.Split(encoded, []byte{'\n'})
	for i, line := range lines {
		lines[i] = codec.Decode(activeCodec, line)
	}
	return bytes.Join(lines, []byte{'\n'})
}
