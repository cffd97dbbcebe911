// Package config maps environment variables into structured, validated
// configuration for the example service.
//
// Variables use the APIHANDLER_ prefix and dot-delimited nesting, e.g.
// APIHANDLER_SERVER.PORT maps to Config.Server.Port. A local .env file is
// loaded automatically when present.
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	// Side-effect import: loads a .env file into the process environment
	// before any variable is read.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// envPrefix namespaces every environment variable this service reads.
const envPrefix = "APIHANDLER_"

// Config is the root configuration object.
//
// Logging is a pointer because it is optional; Load injects defaults when it
// is absent.
type Config struct {
	Primary Primary        `koanf:"primary" validate:"required"`
	Server  ServerConfig   `koanf:"server" validate:"required"`
	Auth    AuthConfig     `koanf:"auth" validate:"required"`
	Logging *LoggingConfig `koanf:"logging"`
}

// Primary holds top-level information about the runtime environment, used to
// tag logs and switch behavior per environment.
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups settings for the HTTP server runtime. Timeouts are in
// seconds.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"required"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"required"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"required"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required"`
}

// AuthConfig stores the API key gate for the write endpoints. Keep the .env
// file out of version control.
type AuthConfig struct {
	APIKey string `koanf:"api_key" validate:"required"`
}

// LoggingConfig controls the structured logger.
type LoggingConfig struct {
	// Level is the verbosity threshold: debug, info, warn or error.
	Level string `koanf:"level" validate:"required,oneof=debug info warn error"`

	// Format selects "json" (log pipelines) or "console" (humans).
	Format string `koanf:"format" validate:"required,oneof=json console"`
}

// DefaultLoggingConfig is used when no logging block is configured.
func DefaultLoggingConfig() *LoggingConfig {
	return &LoggingConfig{
		Level:  "info",
		Format: "json",
	}
}

// Load reads, unmarshals and validates the configuration. The service fails
// fast on missing or malformed values.
func Load() (*Config, error) {
	k := koanf.New(".")

	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("could not load environment variables: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("could not unmarshal config: %w", err)
	}

	if cfg.Logging == nil {
		cfg.Logging = DefaultLoggingConfig()
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}
