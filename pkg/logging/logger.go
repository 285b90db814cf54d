// Package logging builds the hclog loggers used across cryptokit.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"
)

// NewLogger creates an hclog logger writing "json" or prefixed "text" lines.
// Callers without their own settings pass GetLogLevel and GetLogFormat.
func NewLogger(name, level, format string, output io.Writer) hclog.Logger {
	if output == nil {
		output = os.Stderr
	}

	jsonFormat := strings.EqualFold(format, "json")

	// Add prefix for non-JSON output
	if !jsonFormat {
		output = NewPrefixWriter("🔐 ", output)
	}

	opts := &hclog.LoggerOptions{
		Name:       name,
		Level:      hclog.LevelFromString(level),
		JSONFormat: jsonFormat,
		Output:     output,
		TimeFormat: "2006-01-02T15:04:05Z", // UTC ISO format
		TimeFn: func() time.Time {
			return time.Now().UTC()
		},
	}

	return hclog.New(opts)
}

// GetLogLevel returns the configured log level from environment
func GetLogLevel() string {
	level := os.Getenv("CRYPTOKIT_LOG_LEVEL")
	if level == "" {
		level = "warn"
	}
	return level
}

// GetLogFormat returns "json" when CRYPTOKIT_JSON_LOG=1, "text" otherwise
func GetLogFormat() string {
	if os.Getenv("CRYPTOKIT_JSON_LOG") == "1" {
		return "json"
	}
	return "text"
}
