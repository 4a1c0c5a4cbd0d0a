// Package config provides environment-driven configuration for cinegraph.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
)

// Secret wraps a sensitive string to prevent accidental logging or marshalling.
type Secret string

// String implements fmt.Stringer, returning a redacted placeholder.
func (s Secret) String() string { return "[REDACTED]" }

// GoString implements fmt.GoStringer, returning a redacted placeholder.
func (s Secret) GoString() string { return "[REDACTED]" }

// MarshalText implements encoding.TextMarshaler, returning a redacted placeholder.
func (s Secret) MarshalText() ([]byte, error) { return []byte("[REDACTED]"), nil }

// Value returns the underlying secret string.
func (s Secret) Value() string { return string(s) }

// Config holds all application configuration values.
type Config struct {
	FusekiEndpoint   string
	FusekiAdminURL   string
	FusekiDataset    string
	FusekiUser       string
	FusekiPassword   Secret
	Port             string
	ListenHost       string
	CORSOrigins      []string
	LogLevel         string
	RecommendLimit   int
	MinSimilarRating float64
}

// Load reads configuration from environment variables with sensible defaults.
func Load() (*Config, error) {
	cfg := &Config{
		FusekiEndpoint: envOrDefault("FUSEKI_ENDPOINT", "http://localhost:3030/movies"),
		FusekiAdminURL: envOrDefault("FUSEKI_ADMIN_URL", "http://localhost:3030"),
		FusekiDataset:  envOrDefault("FUSEKI_DATASET", "movies"),
		FusekiUser:     envOrDefault("FUSEKI_USER", ""),
		FusekiPassword: Secret(envOrDefault("FUSEKI_PASSWORD", "")),
		Port:           envOrDefault("PORT", "8080"),
		ListenHost:     envOrDefault("LISTEN_HOST", "127.0.0.1"),
		LogLevel:       envOrDefault("LOG_LEVEL", "info"),
	}

	limit, err := strconv.Atoi(envOrDefault("RECOMMEND_LIMIT", "5"))
	if err != nil || limit < 1 || limit > 50 {
		return nil, fmt.Errorf("RECOMMEND_LIMIT must be an integer between 1 and 50")
	}
	cfg.RecommendLimit = limit

	minRating, err := strconv.ParseFloat(envOrDefault("MIN_SIMILAR_RATING", "3.5"), 64)
	if err != nil || minRating < 1.0 || minRating > 5.0 {
		return nil, fmt.Errorf("MIN_SIMILAR_RATING must be a number between 1.0 and 5.0")
	}
	cfg.MinSimilarRating = minRating

	origins := envOrDefault("CORS_ORIGINS", "http://localhost:3000")
	cfg.CORSOrigins = strings.Split(origins, ",")

	for i, o := range cfg.CORSOrigins {
		cfg.CORSOrigins[i] = strings.TrimSpace(o)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

// Addr returns the listen address in host:port format.
func (c *Config) Addr() string {
	return c.ListenHost + ":" + c.Port
}

func (c *Config) validate() error {
	if err := c.validateFuseki(); err != nil {
		return err
	}

	if err := c.validateNetwork(); err != nil {
		return err
	}

	return c.validateCORS()
}

func (c *Config) validateFuseki() error {
	endpoint, err := url.ParseRequestURI(c.FusekiEndpoint)
	if err != nil {
		return fmt.Errorf("FUSEKI_ENDPOINT is not a valid URL: %w", err)
	}

	if endpoint.Scheme != "http" && endpoint.Scheme != "https" {
		return fmt.Errorf("FUSEKI_ENDPOINT scheme must be http:// or https://")
	}

	if endpoint.Hostname() == "" {
		return fmt.Errorf("FUSEKI_ENDPOINT must include a host")
	}

	if _, err := url.ParseRequestURI(c.FusekiAdminURL); err != nil {
		return fmt.Errorf("FUSEKI_ADMIN_URL is not a valid URL: %w", err)
	}

	if c.FusekiDataset == "" {
		return fmt.Errorf("FUSEKI_DATASET must not be empty")
	}

	if c.FusekiUser == "" && c.FusekiPassword.Value() != "" {
		return fmt.Errorf("FUSEKI_PASSWORD requires FUSEKI_USER")
	}

	return nil
}

func (c *Config) validateNetwork() error {
	port, err := strconv.Atoi(c.Port)
	if err != nil {
		return fmt.Errorf("PORT must be a valid integer: %w", err)
	}

	if port < 1 || port > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535")
	}

	return nil
}

func (c *Config) validateCORS() error {
	for _, origin := range c.CORSOrigins {
		if origin == "*" {
			return fmt.Errorf("CORS_ORIGINS must not contain wildcard '*'")
		}
		u, err := url.Parse(origin)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("CORS_ORIGINS contains invalid origin %q (must have scheme and host)", origin)
		}
	}

	return nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}
