package config

import (
	"fmt"
	"time"
)

// LoggingConfig holds application logging configuration. It lives
// behind a pointer in Config so the whole block can be omitted and
// defaulted.
type LoggingConfig struct {
	// Level is the verbosity threshold; entries below it are dropped.
	Level string `koanf:"level"`

	// Format selects the output format, "json" or "console".
	Format string `koanf:"format"`

	// SlowQueryThreshold is the duration beyond which a statement gets
	// flagged as slow in the logs. Supplied as a duration string like
	// "100ms" or "1s".
	SlowQueryThreshold time.Duration `koanf:"slow_query_threshold"`
}

// DefaultLoggingConfig provides the defaults used when no logging
// block is configured: info-level JSON, flagging statements slower
// than 100ms.
func DefaultLoggingConfig() *LoggingConfig {
	return &LoggingConfig{
		Level:              "info",
		Format:             "json",
		SlowQueryThreshold: 100 * time.Millisecond,
	}
}

// Validate applies the constraints struct tags cannot express: the
// level and format must come from the known sets, and the slow query
// threshold cannot be negative. Empty level/format fall back to the
// defaults rather than failing.
func (c *LoggingConfig) Validate() error {
	if c.Level == "" {
		c.Level = "info"
	}
	if c.Format == "" {
		c.Format = "json"
	}

	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[c.Level] {
		return fmt.Errorf("invalid logging level: %s (must be one of: debug, info, warn, error)", c.Level)
	}

	if c.Format != "json" && c.Format != "console" {
		return fmt.Errorf("invalid logging format: %s (must be json or console)", c.Format)
	}

	if c.SlowQueryThreshold < 0 {
		return fmt.Errorf("logging slow_query_threshold must be non-negative")
	}

	return nil
}
