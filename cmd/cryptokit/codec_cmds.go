package main

import (
	"bytes"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/provide-io/cryptokit/internal/input"
	"github.com/provide-io/cryptokit/pkg/codec"
)

func newEncodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "encode [file]",
		Short: "Encode raw input with the selected codec",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := input.ReadAll(argOrStdin(args))
			if err != nil {
				return err
			}
			logger.Debug("📦 Encoding input", "codec", activeCodec.Name(), "bytes", len(data))
			fmt.Fprintln(cmd.OutOrStdout(), codec.EncodeToString(activeCodec, data))
			return nil
		},
	}
}

func newDecodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode [file]",
		Short: "Decode encoded input, one line at a time",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := input.ReadAll(argOrStdin(args))
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(decodeLines(activeCodec, data))
			return err
		},
	}
}

func newTranscodeCmd() *cobra.Command {
	var (
		chain   string
		reverse bool
	)

	cmd := &cobra.Command{
		Use:   "transcode [file]",
		Short: "Re-encode input through a codec chain, e.g. --chain 'hex|base64'",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := codec.ParseChain(chain)
			if err != nil {
				return err
			}
			data, err := input.ReadAll(argOrStdin(args))
			if err != nil {
				return err
			}

			walk := codec.TranscodeChain
			if reverse {
				walk = codec.ReverseChain
			}

			logger.Debug("🔁 Transcoding", "chain", codec.ChainToString(ids), "reverse", reverse)
			out := cmd.OutOrStdout()
			for _, line := range splitLines(data) {
				res, err := walk(line, ids)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, string(res))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&chain, "chain", "hex|base64", "pipe-separated codec chain; the first codec decodes, the rest encode")
	cmd.Flags().BoolVar(&reverse, "reverse", false, "undo the chain: decode the output of a forward transcode back to the first codec")
	return cmd
}

func argOrStdin(args []string) string {
	if len(args) == 0 {
		return "-"
	}
	return args[0]
}

// splitLines splits on '\n' and drops one trailing empty line
func splitLines(data []byte) [][]byte {
	data = bytes.TrimSuffix(data, []byte{'\n'})
	if len(data) == 0 {
		return nil
	}
	lines := bytes.Split(data, []byte{'\n'})
	for i, line := range lines {
		lines[i] = bytes.TrimSuffix(line, []byte{'\r'})
	}
	return lines
}

// decodeLines decodes every line on its own and concatenates the raw bytes.
// Decoding line by line keeps the decode windows aligned.
func decodeLines(c codec.Codec, data []byte) []byte {
	var buf bytes.Buffer
	for _, line := range splitLines(data) {
		buf.Write(codec.Decode(c, line))
	}
	return buf.Bytes()
}

func writeLine(w io.Writer, b []byte) error {
	if _, err := w.Write(b); err != nil {
		return err
	}
	_, err := w.Write([]byte{'\n'})
	return err
}
