// Package config manages environment variables.
//
// It reads variables from the process environment (optionally seeded
// from a `.env` file), maps them into structured Go types, and
// validates that required values are present so the application fails
// fast on bad or missing config.
//
// Env vars use the REGISTRY_ prefix. A double underscore separates
// nesting levels so multi-word leaf keys keep their single
// underscores:
//
//	REGISTRY_SERVER__PORT             -> server.port
//	REGISTRY_DATABASE__MAX_OPEN_CONNS -> database.max_open_conns
//	REGISTRY_LOGGING__LEVEL           -> logging.level
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	// Side-effect import: loads a `.env` file into the process
	// environment before anything reads it.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// Config is the root configuration object for the application.
//
// Logging is a pointer because the whole block is optional; Load
// injects defaults when it is absent.
type Config struct {
	Primary  Primary        `koanf:"primary" validate:"required"`
	Server   ServerConfig   `koanf:"server" validate:"required"`
	Database DatabaseConfig `koanf:"database" validate:"required"`
	Logging  *LoggingConfig `koanf:"logging"`
}

// Primary holds top-level information about the runtime environment,
// used to tag logs and switch behavior between local and deployed runs.
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups settings for the HTTP server runtime. Timeouts
// are whole seconds.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"required"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"required"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"required"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required"`
}

// DatabaseConfig contains MySQL connection parameters and pool tuning.
// Lifetime and idle time are whole seconds.
type DatabaseConfig struct {
	Host            string `koanf:"host" validate:"required"`
	Port            int    `koanf:"port" validate:"required"`
	User            string `koanf:"user" validate:"required"`
	Password        string `koanf:"password" validate:"required"`
	Name            string `koanf:"name" validate:"required"`
	MaxOpenConns    int    `koanf:"max_open_conns" validate:"required"`
	MaxIdleConns    int    `koanf:"max_idle_conns" validate:"required"`
	ConnMaxLifetime int    `koanf:"conn_max_lifetime" validate:"required"`
	ConnMaxIdleTime int    `koanf:"conn_max_idle_time" validate:"required"`
}

// Load reads REGISTRY_ env vars, unmarshals them into a Config,
// validates required fields, and injects logging defaults when the
// block is absent. The caller decides what a failed load is fatal for.
func Load() (*Config, error) {
	k := koanf.New(".")

	err := k.Load(env.Provider("REGISTRY_", ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, "REGISTRY_")), "__", ".")
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("loading environment variables: %w", err)
	}

	mainConfig := &Config{}

	if err := k.Unmarshal("", mainConfig); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := validator.New().Struct(mainConfig); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	if mainConfig.Logging == nil {
		mainConfig.Logging = DefaultLoggingConfig()
	}

	if err := mainConfig.Logging.Validate(); err != nil {
		return nil, fmt.Errorf("invalid logging config: %w", err)
	}

	return mainConfig, nil
}

// IsLocal reports whether the application runs in a local development
// environment.
func (c *Config) IsLocal() bool {
	return c.Primary.Env == "local"
}
