// Package config provides configuration loading and validation for the KYP analysis tool.
package config

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	envPrefix  = "KYP"
	configName = "kyp"
)

// Config is the complete runtime configuration.
// Values come from flags, KYP_* environment variables, an optional config
// file and finally the defaults below, in that order of precedence.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Log       LogConfig       `mapstructure:"log"`
	RateLimit RateLimitConfig `mapstructure:"ratelimit"`
	Report    ReportConfig    `mapstructure:"report"`
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// Addr returns the host:port listen address.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// LogConfig configures the process logger.
type LogConfig struct {
	Level  string `mapstructure:"level"`  // trace, debug, info, warn, error
	Format string `mapstructure:"format"` // json or console
}

// RateLimitConfig configures request throttling.
type RateLimitConfig struct {
	Enabled         bool          `mapstructure:"enabled"`
	DefaultLimit    int           `mapstructure:"default_limit"`
	DefaultWindow   time.Duration `mapstructure:"default_window"`
	ReportLimit     int           `mapstructure:"report_limit"`
	ReportWindow    time.Duration `mapstructure:"report_window"`
	ReportBurst     int           `mapstructure:"report_burst"`
	CleanupInterval time.Duration `mapstructure:"cleanup_interval"`
	Whitelist       []string      `mapstructure:"whitelist"`
	Blacklist       []string      `mapstructure:"blacklist"`
}

// ReportConfig controls document-wide styling of exported reports.
type ReportConfig struct {
	Font     string `mapstructure:"font"`
	FontSize int    `mapstructure:"font_size"`
}

// SetDefaults registers every configuration key with its default value.
// Keys must be registered for environment overrides to be picked up.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 30*time.Second)
	v.SetDefault("server.write_timeout", 60*time.Second)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	v.SetDefault("ratelimit.enabled", true)
	v.SetDefault("ratelimit.default_limit", 600)
	v.SetDefault("ratelimit.default_window", time.Minute)
	v.SetDefault("ratelimit.report_limit", 30)
	v.SetDefault("ratelimit.report_window", time.Minute)
	v.SetDefault("ratelimit.report_burst", 5)
	v.SetDefault("ratelimit.cleanup_interval", 5*time.Minute)
	v.SetDefault("ratelimit.whitelist", []string{})
	v.SetDefault("ratelimit.blacklist", []string{})

	v.SetDefault("report.font", "Calibri")
	v.SetDefault("report.font_size", 11)
}

// Load reads configuration into a Config. When path is empty, a kyp.{yaml,toml,json}
// file in the working directory is used if present; a missing file is not an error.
func Load(v *viper.Viper, path string) (*Config, error) {
	if v == nil {
		v = viper.New()
	}

	SetDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configName)
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("config error: 'server.port' must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.ShutdownTimeout < 0 {
		return fmt.Errorf("config error: 'server.shutdown_timeout' must be non-negative")
	}

	switch c.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("config error: 'log.format' must be json or console, got %q", c.Log.Format)
	}

	if c.RateLimit.Enabled {
		if c.RateLimit.DefaultLimit < 0 || c.RateLimit.ReportLimit < 0 {
			return fmt.Errorf("config error: rate limits must be non-negative")
		}
		if c.RateLimit.DefaultWindow <= 0 || c.RateLimit.ReportWindow <= 0 {
			return fmt.Errorf("config error: rate limit windows must be positive")
		}
	}

	if c.Report.FontSize < 0 {
		return fmt.Errorf("config error: 'report.font_size' must be non-negative")
	}

	return nil
}
