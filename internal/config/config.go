// Package config provides centralized configuration management for brandkit.
// Values are layered: built-in defaults, an optional YAML config file, then
// BRANDKIT_* environment variables (optionally primed from a .env file).
package config

import "time"

// Config represents the complete application configuration.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Registrar RegistrarConfig `mapstructure:"registrar"`
	Social    SocialConfig    `mapstructure:"social"`
	Verify    VerifyConfig    `mapstructure:"verify"`
	Logging   LoggingConfig   `mapstructure:"logging"`
	Workers   int             `mapstructure:"workers"`
}

// ServerConfig contains HTTP server configuration for serve mode.
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// RegistrarConfig contains the Namecheap API credentials and endpoint.
// All four credentials are required for any domain check; validation is
// fatal at startup, not per call.
type RegistrarConfig struct {
	APIUser  string        `mapstructure:"api_user"`
	APIKey   string        `mapstructure:"api_key"`
	Username string        `mapstructure:"username"`
	ClientIP string        `mapstructure:"client_ip"`
	BaseURL  string        `mapstructure:"base_url"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

// SocialConfig tunes the profile-URL prober.
type SocialConfig struct {
	Timeout      time.Duration `mapstructure:"timeout"`
	MaxBodyBytes int64         `mapstructure:"max_body_bytes"`
}

// VerifyConfig controls the RDAP cross-check on exact-mode results.
type VerifyConfig struct {
	Enabled bool          `mapstructure:"enabled"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	// Level controls the minimum log level.
	// Valid values: debug, info, warn, error
	Level string `mapstructure:"level"`
}
