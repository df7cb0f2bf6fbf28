// Package common provides shared utilities for the RapiCredit back-office service
package common

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds all configuration for the back-office service
type Config struct {
	Environment string        `toml:"environment"`
	Server      ServerConfig  `toml:"server"`
	Clients     ClientsConfig `toml:"clients"`
	Cache       CacheConfig   `toml:"cache"`
	Logging     LoggingConfig `toml:"logging"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

// ClientsConfig holds upstream API client configurations
type ClientsConfig struct {
	Core     CoreConfig     `toml:"core"`
	Identity IdentityConfig `toml:"identity"`
}

// CoreConfig holds core lending API configuration.
// BaseURL has no default: the upstream API location must be supplied
// explicitly, and its absence is a startup error.
type CoreConfig struct {
	BaseURL   string `toml:"base_url"`
	RateLimit int    `toml:"rate_limit"`
	Timeout   string `toml:"timeout"`
}

// GetTimeout parses and returns the timeout duration
func (c *CoreConfig) GetTimeout() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 30 * time.Second
	}
	return d
}

// IdentityConfig holds identity provider configuration
type IdentityConfig struct {
	BaseURL string `toml:"base_url"`
	APIKey  string `toml:"api_key"`
	Timeout string `toml:"timeout"`
}

// GetTimeout parses and returns the timeout duration
func (c *IdentityConfig) GetTimeout() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 15 * time.Second
	}
	return d
}

// CacheConfig holds response cache configuration. When Addr is empty the
// service falls back to an in-process cache.
type CacheConfig struct {
	Addr string `toml:"addr"`
	TTL  string `toml:"ttl"`
}

// GetTTL parses and returns the cache TTL duration
func (c *CacheConfig) GetTTL() time.Duration {
	d, err := time.ParseDuration(c.TTL)
	if err != nil {
		return 5 * time.Minute
	}
	return d
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level string `toml:"level"`
}

// NewDefaultConfig returns a Config with sensible defaults
func NewDefaultConfig() *Config {
	return &Config{
		Environment: "development",
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8080,
		},
		Clients: ClientsConfig{
			Core: CoreConfig{
				RateLimit: 10,
				Timeout:   "30s",
			},
			Identity: IdentityConfig{
				Timeout: "15s",
			},
		},
		Cache: CacheConfig{
			TTL: "5m",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// LoadConfig loads configuration from files with environment overrides.
// Later files override earlier ones; missing files are skipped.
func LoadConfig(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	for _, path := range paths {
		if path == "" {
			continue
		}

		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	applyEnvOverrides(config)

	if config.Clients.Core.BaseURL == "" {
		return nil, fmt.Errorf("core API base URL is not configured (set clients.core.base_url or RAPICREDIT_API_URL)")
	}

	return config, nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(config *Config) {
	if env := os.Getenv("RAPICREDIT_ENV"); env != "" {
		config.Environment = env
	}

	if host := os.Getenv("RAPICREDIT_HOST"); host != "" {
		config.Server.Host = host
	}

	if port := os.Getenv("RAPICREDIT_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	}

	if level := os.Getenv("RAPICREDIT_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}

	// Both names are honored; deployments have historically used either.
	if url := os.Getenv("RAPICREDIT_API_URL"); url != "" {
		config.Clients.Core.BaseURL = url
	} else if url := os.Getenv("RAPICREDIT_API_BASE_URL"); url != "" {
		config.Clients.Core.BaseURL = url
	}

	if url := os.Getenv("RAPICREDIT_IDENTITY_URL"); url != "" {
		config.Clients.Identity.BaseURL = url
	}

	if key := os.Getenv("RAPICREDIT_IDENTITY_API_KEY"); key != "" {
		config.Clients.Identity.APIKey = key
	}

	if addr := os.Getenv("RAPICREDIT_CACHE_ADDR"); addr != "" {
		config.Cache.Addr = addr
	}
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	env := strings.ToLower(strings.TrimSpace(c.Environment))
	return env == "production" || env == "prod"
}
