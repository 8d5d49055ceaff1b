package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds configuration settings for the bridge
type Config struct {
	// API Server
	APIHost  string
	APIPort  int
	LogLevel string

	// Upstream n8n API
	BaseURL string
	APIKey  string
	Timeout time.Duration

	ShutdownTimeout time.Duration
}

const (
	DefaultAPIPort = 8080
	DefaultAPIHost = "0.0.0.0"
	MaxTCPPort     = 65535

	DefaultBaseURL = "http://localhost:5678/api/v1"
	DefaultTimeout = 30 * time.Second
	MaxTimeout     = 10 * time.Minute

	DefaultShutdownTimeout = 10 * time.Second
)

var (
	ErrInvalidAPIPort = errors.New("invalid API port")
	ErrInvalidBaseURL = errors.New("invalid n8n base URL")
	ErrInvalidTimeout = errors.New("n8n timeout must be positive")
)

// NewDefaultConfig creates a configuration with sensible defaults for
// the API server and the upstream n8n connection
func NewDefaultConfig() *Config {
	return &Config{
		APIHost:         DefaultAPIHost,
		APIPort:         DefaultAPIPort,
		LogLevel:        "info",
		BaseURL:         DefaultBaseURL,
		Timeout:         DefaultTimeout,
		ShutdownTimeout: DefaultShutdownTimeout,
	}
}

// LoadFromEnv populates configuration values from environment
// variables. Returns an error if any env var cannot be parsed
func (c *Config) LoadFromEnv() error {
	if base := firstEnv("N8N_URL", "N8N_BASE_URL"); base != "" {
		c.BaseURL = base
	}
	if key := firstEnv("N8N_API_KEY", "N8N_API_TOKEN"); key != "" {
		c.APIKey = key
	}
	if apiHost := os.Getenv("API_HOST"); apiHost != "" {
		c.APIHost = apiHost
	}
	if logLevel := os.Getenv("LOG_LEVEL"); logLevel != "" {
		c.LogLevel = logLevel
	}

	if err := loadEnvInt("API_PORT", &c.APIPort, 0, MaxTCPPort); err != nil {
		return err
	}

	if err := loadEnvSeconds("N8N_TIMEOUT", &c.Timeout); err != nil {
		return err
	}
	return loadEnvSeconds("SHUTDOWN_TIMEOUT", &c.ShutdownTimeout)
}

// Validate checks that all configuration values are valid
func (c *Config) Validate() error {
	if c.APIPort <= 0 || c.APIPort > MaxTCPPort {
		return fmt.Errorf("%w: %d", ErrInvalidAPIPort, c.APIPort)
	}

	u, err := url.Parse(strings.TrimSpace(c.BaseURL))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: %q", ErrInvalidBaseURL, c.BaseURL)
	}

	if c.Timeout <= 0 {
		return ErrInvalidTimeout
	}
	return nil
}

// firstEnv returns the first non-empty value among the given keys
func firstEnv(keys ...string) string {
	for _, key := range keys {
		if v := os.Getenv(key); v != "" {
			return v
		}
	}
	return ""
}

// loadEnvInt reads key from the environment, parses it as an integer,
// and sets *dst if the value is in the range (min, max). Returns an
// error if the value cannot be parsed or falls outside the valid range
func loadEnvInt[T ~int | ~int64](key string, dst *T, min, max T) error {
	s := os.Getenv(key)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid %s: %q", key, s)
	}
	tv := T(v)
	if tv <= min || tv > max {
		return fmt.Errorf("invalid %s: %d out of range [%d, %d]",
			key, tv, min+1, max)
	}
	*dst = tv
	return nil
}

// loadEnvSeconds reads key as a number of seconds, fractional values
// included, and sets *dst to the resulting duration
func loadEnvSeconds(key string, dst *time.Duration) error {
	s := os.Getenv(key)
	if s == "" {
		return nil
	}
	secs, err := strconv.ParseFloat(s, 64)
	if err != nil || secs <= 0 {
		return fmt.Errorf("invalid %s: %q", key, s)
	}
	d := time.Duration(secs * float64(time.Second))
	if d > MaxTimeout {
		return fmt.Errorf("invalid %s: %s exceeds %s", key, d, MaxTimeout)
	}
	*dst = d
	return nil
}
