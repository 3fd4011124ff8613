// Package config loads server configuration from an optional config file
// and DAWN_-prefixed environment variables, with sensible defaults.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"readTimeout"`
	WriteTimeout    time.Duration `mapstructure:"writeTimeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdownTimeout"`
}

// StorageConfig selects and configures the storage backend
type StorageConfig struct {
	// Type is "memory", "redis" or "sqlite"
	Type string `mapstructure:"type"`

	Redis  RedisConfig  `mapstructure:"redis"`
	SQLite SQLiteConfig `mapstructure:"sqlite"`
}

// RedisConfig holds Redis connection settings
type RedisConfig struct {
	URL          string `mapstructure:"url"`
	PoolSize     int    `mapstructure:"poolSize"`
	MinIdleConns int    `mapstructure:"minIdleConns"`
}

// SQLiteConfig holds SQLite settings
type SQLiteConfig struct {
	Path string `mapstructure:"path"`
}

// AuthConfig holds session settings
type AuthConfig struct {
	SessionDuration time.Duration `mapstructure:"sessionDuration"`
}

// Config is the full server configuration
type Config struct {
	LogLevel string        `mapstructure:"logLevel"`
	Server   ServerConfig  `mapstructure:"server"`
	Storage  StorageConfig `mapstructure:"storage"`
	Auth     AuthConfig    `mapstructure:"auth"`
}

// Load reads configuration from the given file (optional, YAML) and the
// environment. Environment variables use the DAWN_ prefix with underscores,
// e.g. DAWN_STORAGE_TYPE=redis.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("logLevel", "info")

	v.SetDefault("server.host", "")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.readTimeout", 15*time.Second)
	v.SetDefault("server.writeTimeout", 15*time.Second)
	v.SetDefault("server.shutdownTimeout", 30*time.Second)

	v.SetDefault("storage.type", "memory")
	v.SetDefault("storage.redis.url", "redis://localhost:6379")
	v.SetDefault("storage.redis.poolSize", 10)
	v.SetDefault("storage.redis.minIdleConns", 2)
	v.SetDefault("storage.sqlite.path", "data.db")

	v.SetDefault("auth.sessionDuration", 30*time.Minute)

	v.SetEnvPrefix("DAWN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	return &cfg, nil
}
