package logger

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/campus-registry/internal/config"
)

func testConfig(level, format string) *config.Config {
	return &config.Config{
		Primary: config.Primary{Env: "local"},
		Logging: &config.LoggingConfig{Level: level, Format: format},
	}
}

func TestNew(t *testing.T) {
	log, err := New(testConfig("info", "json"))
	require.NoError(t, err)

	assert.Equal(t, zerolog.InfoLevel, log.GetLevel())
}

func TestNewConsoleFormat(t *testing.T) {
	log, err := New(testConfig("debug", "console"))
	require.NoError(t, err)

	assert.Equal(t, zerolog.DebugLevel, log.GetLevel())
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, err := New(testConfig("loud", "json"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing log level")
}
