// Package config resolves CLI settings from flags and CRYPTOKIT_* environment
// variables. Flags win over the environment, the environment over defaults.
package config

import (
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/provide-io/cryptokit/pkg/logging"
)

// Setting keys, also used as flag names
const (
	KeyLogLevel  = "log-level"
	KeyLogFormat = "log-format"
	KeyCodec     = "codec"
	KeyWorkers   = "workers"
)

// EnvPrefix prefixes every environment variable, e.g. CRYPTOKIT_LOG_LEVEL
const EnvPrefix = "CRYPTOKIT"

// Settings holds the resolved configuration
type Settings struct {
	LogLevel  string
	LogFormat string
	Codec     string
	Workers   int
}

// AddFlags registers the persistent flags backing the settings
func AddFlags(flags *pflag.FlagSet) {
	flags.String(KeyLogLevel, logging.GetLogLevel(), "log level (trace, debug, info, warn, error)")
	flags.String(KeyLogFormat, logging.GetLogFormat(), "log output format (text/json)")
	flags.String(KeyCodec, "hex", "encoding of keys and ciphertext (hex, base64)")
	flags.Int(KeyWorkers, 0, "maximum concurrent brute-force workers (0 = one per key)")
}

// New returns a viper instance bound to flags and to the environment.
// The environment is read when New is called; CRYPTOKIT_JSON_LOG=1 turns
// the default log format into json.
func New(flags *pflag.FlagSet) *viper.Viper {
	v := viper.New()

	v.SetDefault(KeyLogLevel, logging.GetLogLevel())
	v.SetDefault(KeyLogFormat, logging.GetLogFormat())
	v.SetDefault(KeyCodec, "hex")
	v.SetDefault(KeyWorkers, 0)

	for _, key := range []string{KeyLogLevel, KeyLogFormat, KeyCodec, KeyWorkers} {
		if f := flags.Lookup(key); f != nil {
			_ = v.BindPFlag(key, f)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	_ = v.BindEnv(KeyLogFormat, "CRYPTOKIT_LOG_FORMAT", "CRYPTOKIT_LOG_FORMATTER")

	return v
}

// Load resolves the settings
func Load(v *viper.Viper) Settings {
	return Settings{
		LogLevel:  v.GetString(KeyLogLevel),
		LogFormat: strings.ToLower(v.GetString(KeyLogFormat)),
		Codec:     strings.ToLower(v.GetString(KeyCodec)),
		Workers:   v.GetInt(KeyWorkers),
	}
}
