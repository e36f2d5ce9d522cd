package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()

	t.Setenv("REGISTRY_PRIMARY__ENV", "local")
	t.Setenv("REGISTRY_SERVER__PORT", "8002")
	t.Setenv("REGISTRY_SERVER__READ_TIMEOUT", "30")
	t.Setenv("REGISTRY_SERVER__WRITE_TIMEOUT", "30")
	t.Setenv("REGISTRY_SERVER__IDLE_TIMEOUT", "60")
	t.Setenv("REGISTRY_SERVER__CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")
	t.Setenv("REGISTRY_DATABASE__HOST", "localhost")
	t.Setenv("REGISTRY_DATABASE__PORT", "3306")
	t.Setenv("REGISTRY_DATABASE__USER", "registry")
	t.Setenv("REGISTRY_DATABASE__PASSWORD", "registry")
	t.Setenv("REGISTRY_DATABASE__NAME", "registry")
	t.Setenv("REGISTRY_DATABASE__MAX_OPEN_CONNS", "25")
	t.Setenv("REGISTRY_DATABASE__MAX_IDLE_CONNS", "5")
	t.Setenv("REGISTRY_DATABASE__CONN_MAX_LIFETIME", "300")
	t.Setenv("REGISTRY_DATABASE__CONN_MAX_IDLE_TIME", "60")
}

func TestLoad(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "local", cfg.Primary.Env)
	assert.True(t, cfg.IsLocal())
	assert.Equal(t, "8002", cfg.Server.Port)
	assert.Equal(t, 30, cfg.Server.ReadTimeout)
	assert.Equal(t, []string{"http://localhost:3000", "http://localhost:5173"}, cfg.Server.CORSAllowedOrigins)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 3306, cfg.Database.Port)
	assert.Equal(t, 25, cfg.Database.MaxOpenConns)
}

func TestLoadInjectsLoggingDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	require.NotNil(t, cfg.Logging)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, 100*time.Millisecond, cfg.Logging.SlowQueryThreshold)
}

func TestLoadWithLoggingBlock(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("REGISTRY_LOGGING__LEVEL", "debug")
	t.Setenv("REGISTRY_LOGGING__FORMAT", "console")
	t.Setenv("REGISTRY_LOGGING__SLOW_QUERY_THRESHOLD", "250ms")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, 250*time.Millisecond, cfg.Logging.SlowQueryThreshold)
}

func TestLoadMissingRequired(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("REGISTRY_DATABASE__HOST", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validating config")
}

func TestLoadRejectsBadLogLevel(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("REGISTRY_LOGGING__LEVEL", "verbose")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid logging level")
}

func TestLoggingConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     LoggingConfig
		wantErr bool
	}{
		{name: "defaults pass", cfg: *DefaultLoggingConfig()},
		{name: "empty fields fall back", cfg: LoggingConfig{}},
		{name: "console format", cfg: LoggingConfig{Level: "warn", Format: "console"}},
		{name: "unknown level", cfg: LoggingConfig{Level: "trace", Format: "json"}, wantErr: true},
		{name: "unknown format", cfg: LoggingConfig{Level: "info", Format: "logfmt"}, wantErr: true},
		{name: "negative threshold", cfg: LoggingConfig{Level: "info", Format: "json", SlowQueryThreshold: -time.Second}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
