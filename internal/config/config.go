// Package config provides centralized configuration management for the application.
// It loads configuration from environment variables with sensible defaults and
// validates all settings on startup to fail fast on misconfiguration.
package config

import (
	"strconv"
	"time"
)

// Config holds all application configuration.
// All settings can be configured via environment variables.
type Config struct {
	Server   ServerConfig
	Session  SessionConfig
	Limits   LimitsConfig
	Rate     RateLimitConfig
	Security SecurityConfig
	Logging  LoggingConfig
	Defaults DefaultsConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	// Host is the interface to bind to (default: 0.0.0.0)
	Host string `env:"SERVER_HOST" default:"0.0.0.0"`

	// Port is the port to listen on (default: 8080)
	Port int `env:"SERVER_PORT" default:"8080"`

	// ReadTimeout is the maximum duration for reading request body (default: 15s)
	ReadTimeout time.Duration `env:"SERVER_READ_TIMEOUT" default:"15s"`

	// WriteTimeout is the maximum duration for writing response (default: 30s)
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" default:"30s"`

	// IdleTimeout is the keep-alive timeout (default: 60s)
	IdleTimeout time.Duration `env:"SERVER_IDLE_TIMEOUT" default:"60s"`

	// ShutdownTimeout is the maximum duration to wait for graceful shutdown (default: 30s)
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" default:"30s"`

	// RequestTimeout is the middleware timeout for requests (default: 60s)
	RequestTimeout time.Duration `env:"SERVER_REQUEST_TIMEOUT" default:"60s"`
}

// SessionConfig holds session store settings.
type SessionConfig struct {
	// Capacity is the number of sessions kept before LRU eviction (default: 256)
	Capacity int `env:"SESSION_CAPACITY" default:"256"`

	// TTL is the idle time before a session expires (default: 1h)
	TTL time.Duration `env:"SESSION_TTL" default:"1h"`

	// MaxRecords is the maximum number of records one session may hold (default: 10000)
	MaxRecords int `env:"SESSION_MAX_RECORDS" default:"10000"`
}

// LimitsConfig holds request and input size limits.
type LimitsConfig struct {
	// MaxBodyBytes is the largest accepted request body in bytes (default: 2MB)
	MaxBodyBytes int64 `env:"LIMITS_MAX_BODY_BYTES" default:"2097152"`

	// MaxInputBytes is the largest pasted table accepted by the parser in bytes (default: 1MB)
	MaxInputBytes int `env:"LIMITS_MAX_INPUT_BYTES" default:"1048576"`
}

// RateLimitConfig holds rate limiting settings per time window.
type RateLimitConfig struct {
	// Enabled controls whether rate limiting is active (default: true)
	Enabled bool `env:"RATE_LIMIT_ENABLED" default:"true"`

	// RequestsPerMinute is the default rate limit per IP (default: 120)
	RequestsPerMinute int `env:"RATE_LIMIT_REQUESTS_PER_MINUTE" default:"120"`

	// ConvertPerMinute is requests per minute for document-generating endpoints (default: 20)
	ConvertPerMinute int `env:"RATE_LIMIT_CONVERT" default:"20"`
}

// SecurityConfig holds security-related settings.
type SecurityConfig struct {
	// TrustedProxies is a comma-separated list of trusted proxy CIDRs
	TrustedProxies []string `env:"TRUSTED_PROXIES"`

	// RequireAPIKey controls whether API requests must carry X-API-Key (default: false)
	RequireAPIKey bool `env:"REQUIRE_API_KEY" default:"false"`

	// APIKeys is a comma-separated list of accepted API keys
	APIKeys []string `env:"API_KEYS"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: info)
	Level string `env:"LOG_LEVEL" default:"info"`

	// Format is the log format: text or json (default: text)
	Format string `env:"LOG_FORMAT" default:"text"`
}

// DefaultsConfig holds the registry keys used when a request names none.
type DefaultsConfig struct {
	// Schema is the input schema applied when a parse request omits one (default: sap-es)
	Schema string `env:"DEFAULT_SCHEMA" default:"sap-es"`

	// Profile is the format profile applied when an encode request omits one (default: pm42-triple-split)
	Profile string `env:"DEFAULT_PROFILE" default:"pm42-triple-split"`
}

// Addr returns the server listen address in host:port format.
func (c *ServerConfig) Addr() string {
	return c.Host + ":" + strconv.Itoa(c.Port)
}
