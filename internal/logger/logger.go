// Package logger builds the application's structured zerolog logger from
// configuration.
package logger

import (
	"os"

	"github.com/rs/zerolog"

	"github.com/nmoreau/go-apihandler/internal/config"
)

// New constructs the root logger.
//
// Console format writes human-friendly output to stderr; anything else
// writes JSON. Unknown levels fall back to info rather than failing startup.
func New(cfg *config.Config) *zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Logging.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}

	var out = zerolog.New(os.Stderr)
	if cfg.Logging.Format == "console" {
		out = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	log := out.Level(level).With().
		Timestamp().
		Str("env", cfg.Primary.Env).
		Logger()

	return &log
}
