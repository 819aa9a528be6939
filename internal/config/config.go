// Package config provides environment-driven configuration for the server.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds everything the server needs at startup. Values come from the
// environment; a .env file is loaded by the CLI entry point before this runs.
type Config struct {
	DatabaseURL     string
	Port            int
	BaseURL         string
	SessionSecret   string
	SessionTTLHours int
	SMTP            SMTPConfig
}

// SMTPConfig holds mail delivery settings for one-time-passcode login links.
// All fields empty means mail delivery is disabled; login attempts then
// surface a configuration error on the form instead of sending.
type SMTPConfig struct {
	Host string
	Port string
	User string
	Pass string
}

// Load reads configuration from environment variables.
// DATABASE_URL and SESSION_SECRET are required.
func Load() (*Config, error) {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required but not set")
	}

	sessionSecret := os.Getenv("SESSION_SECRET")
	if sessionSecret == "" {
		return nil, fmt.Errorf("SESSION_SECRET is required but not set")
	}

	baseURL := os.Getenv("BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	portStr := os.Getenv("PORT")
	if portStr == "" {
		portStr = "8080"
	}
	port, err := strconv.Atoi(portStr)
	if err != nil || port < 1 {
		return nil, fmt.Errorf("invalid PORT: %q", portStr)
	}

	ttlStr := os.Getenv("SESSION_TTL_HOURS")
	if ttlStr == "" {
		ttlStr = "24"
	}
	ttlHours, err := strconv.Atoi(ttlStr)
	if err != nil {
		return nil, fmt.Errorf("invalid SESSION_TTL_HOURS: %v", err)
	}
	if ttlHours < 1 {
		return nil, fmt.Errorf("SESSION_TTL_HOURS must be at least 1 hour, got: %d", ttlHours)
	}

	cfg := &Config{
		DatabaseURL:     databaseURL,
		Port:            port,
		BaseURL:         baseURL,
		SessionSecret:   sessionSecret,
		SessionTTLHours: ttlHours,
		SMTP: SMTPConfig{
			Host: os.Getenv("SMTP_HOST"),
			Port: os.Getenv("SMTP_PORT"),
			User: os.Getenv("SMTP_USER"),
			Pass: os.Getenv("SMTP_PASS"),
		},
	}

	if cfg.SMTP.Host != "" && cfg.SMTP.Port == "" {
		cfg.SMTP.Port = "587"
	}

	return cfg, nil
}

// MailEnabled reports whether SMTP delivery is configured
func (c *SMTPConfig) MailEnabled() bool {
	return c.Host != "" && c.User != "" && c.Pass != ""
}
