// Package logger configures the application's logging.
//
// It builds the root zerolog logger from the logging config: JSON to
// stderr for deployed environments, a human-friendly console writer
// for local work. Request-scoped child loggers are derived from this
// root by the middleware layer.
package logger

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"

	"github.com/deppfellow/campus-registry/internal/config"
)

// New constructs the root logger from the loaded config. Debug level
// additionally records caller locations and the process id; error
// stacks marshal through pkgerrors so wrapped errors keep their
// traces.
func New(cfg *config.Config) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(cfg.Logging.Level)
	if err != nil {
		return zerolog.Logger{}, fmt.Errorf("parsing log level %q: %w", cfg.Logging.Level, err)
	}

	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack

	var out io.Writer = os.Stderr
	if cfg.Logging.Format == "console" {
		out = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	}

	logCtx := zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Str("environment", cfg.Primary.Env)

	if level <= zerolog.DebugLevel {
		logCtx = logCtx.Caller().Int("pid", os.Getpid())
	}

	return logCtx.Logger(), nil
}
