package main

import (
	"bytes"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/provide-io/cryptokit/internal/input"
	"github.com/provide-io/cryptokit/pkg/crack"
)

var (
	keyColor   = color.New(color.FgGreen, color.Bold)
	scoreColor = color.New(color.FgCyan)
)

func searchOptions() []crack.Option {
	return []crack.Option{
		crack.WithLogger(logger),
		crack.WithWorkers(settings.Workers),
	}
}

func newCrackCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "crack [file]",
		Short: "Recover a single-byte XOR key by brute force",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := input.ReadAll(argOrStdin(args))
			if err != nil {
				return err
			}
			content = bytes.Join(splitLines(content), []byte{'\n'})

			r, err := crack.BruteForceSingleByteKey(cmd.Context(), activeCodec, content, searchOptions()...)
			if err != nil {
				return err
			}
			printResult(cmd.OutOrStdout(), r)
			return nil
		},
	}
}

func newDetectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "detect [file]",
		Short: "Find the line encrypted with single-byte XOR",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lines, err := input.ReadLines(argOrStdin(args))
			if err != nil {
				return err
			}
			logger.Info("🔍 Scanning lines", "count", len(lines))

			best, err := crack.DetectSingleByteXOR(cmd.Context(), activeCodec, lines, searchOptions()...)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "line:      %d\n", best.Line+1)
			printResult(cmd.OutOrStdout(), best.Result)
			return nil
		},
	}
}

func printResult(w io.Writer, r *crack.Result) {
	fmt.Fprintf(w, "key:       %s (%s)\n",
		keyColor.Sprintf("0x%02x", r.Key),
		r.EncodedKey(activeCodec),
	)
	fmt.Fprintf(w, "score:     %s\n", scoreColor.Sprint(r.Score))
	fmt.Fprintf(w, "plaintext: %q\n", r.Plaintext)
}
