// Package config loads service configuration from defaults, an optional
// YAML file and FOOS_-prefixed environment variables.
package config

import (
	"errors"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config contains process configuration
type Config struct {
	// Addr is the HTTP listen address, e.g. ":8080"
	Addr string `koanf:"addr"`

	// LogLevel controls verbosity: debug, info, warn, error
	LogLevel string `koanf:"log_level"`

	// RedisAddr is the Redis host:port
	RedisAddr string `koanf:"redis_addr"`

	// RedisPassword is the Redis auth password, empty for none
	RedisPassword string `koanf:"redis_password"`

	// RedisDB selects the Redis logical database
	RedisDB int `koanf:"redis_db"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Addr:      ":8080",
		LogLevel:  "info",
		RedisAddr: "localhost:6379",
		RedisDB:   0,
	}
}

// Load builds a Config by layering defaults, an optional YAML file and
// environment variables. Precedence, low to high:
//  1. Default()
//  2. YAML file named by FOOS_CONFIG, when set
//  3. environment (FOOS_ADDR, FOOS_REDIS_ADDR, ...)
func Load() (*Config, error) {
	k := koanf.New(".")

	if path := os.Getenv("FOOS_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, err
		}
	}

	// FOOS_LOG_LEVEL -> log_level, matching the koanf struct tags
	envProvider := env.Provider("FOOS_", ".", func(s string) string {
		s = strings.ToLower(s)
		return strings.TrimPrefix(s, "foos_")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, err
	}

	cfg := *Default()
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, err
	}

	if cfg.Addr == "" {
		return nil, errors.New("addr must not be empty")
	}
	if cfg.RedisAddr == "" {
		return nil, errors.New("redis_addr must not be empty")
	}

	return &cfg, nil
}
