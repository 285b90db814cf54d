package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/provide-io/cryptokit/internal/config"
	"github.com/provide-io/cryptokit/pkg/codec"
	_ "github.com/provide-io/cryptokit/pkg/codec/base64"
	_ "github.com/provide-io/cryptokit/pkg/codec/hex"
	"github.com/provide-io/cryptokit/pkg/logging"
)

const version = "0.1.0"

var (
	rootCmd     *cobra.Command
	settings    config.Settings
	logger      hclog.Logger = hclog.NewNullLogger()
	activeCodec codec.Codec
	versionFlag bool
)

// buildStamp describes the VCS state the binary was built from, or
// "unknown" when the build carries no VCS information.
func buildStamp() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}

	var revision, at string
	dirty := false
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
		case "vcs.time":
			at = setting.Value
		case "vcs.modified":
			dirty = setting.Value == "true"
		}
	}
	if revision == "" {
		return "unknown"
	}
	if len(revision) > 12 {
		revision = revision[:12]
	}
	if dirty {
		revision += "-dirty"
	}
	if at != "" {
		return fmt.Sprintf("%s (%s)", revision, at)
	}
	return revision
}

func init() {
	rootCmd = &cobra.Command{
		Use:           "cryptokit",
		Short:         "Hex/Base64 codecs and XOR cryptanalysis",
		Long:          `Encode and decode hex and Base64, encrypt with repeating-key XOR and recover single-byte XOR keys.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Rebuilt per run so the environment is read at execution time.
			settings = config.Load(config.New(cmd.Root().PersistentFlags()))
			logger = logging.NewLogger("cryptokit", settings.LogLevel, settings.LogFormat, cmd.ErrOrStderr())

			// The root command only prints help or the version.
			if cmd == cmd.Root() {
				return nil
			}

			c, err := codec.Lookup(settings.Codec)
			if err != nil {
				return err
			}
			activeCodec = c
			logger.Debug("🔧 Settings resolved",
				"codec", c.Name(),
				"workers", settings.Workers,
				"log_level", settings.LogLevel,
			)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if versionFlag {
				printVersion(cmd)
				return nil
			}
			return cmd.Help()
		},
	}

	config.AddFlags(rootCmd.PersistentFlags())
	rootCmd.Flags().BoolVarP(&versionFlag, "version", "V", false, "Show version information")

	rootCmd.AddCommand(newEncodeCmd(), newDecodeCmd(), newTranscodeCmd())
	rootCmd.AddCommand(newXORCmd(), newCrackCmd(), newDetectCmd())
}

func printVersion(cmd *cobra.Command) {
	fmt.Fprintf(cmd.OutOrStdout(), "cryptokit %s\n", version)
	fmt.Fprintf(cmd.OutOrStdout(), "Build: %s\n", buildStamp())
	fmt.Fprintf(cmd.OutOrStdout(), "Codecs: %v\n", codec.Names())
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		logger.Error("❌ Command failed", "error", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
