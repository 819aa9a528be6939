package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every variable Load reads so ambient values from the host
// environment cannot leak into a test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"DATABASE_URL", "SESSION_SECRET", "PORT", "BASE_URL", "SESSION_TTL_HOURS",
		"SMTP_HOST", "SMTP_PORT", "SMTP_USER", "SMTP_PASS",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_RequiredVars(t *testing.T) {
	clearEnv(t)

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")

	t.Setenv("DATABASE_URL", "postgres://localhost/resume")
	_, err = Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SESSION_SECRET")
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URL", "postgres://localhost/resume")
	t.Setenv("SESSION_SECRET", "secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "http://localhost:8080", cfg.BaseURL)
	assert.Equal(t, 24, cfg.SessionTTLHours)
	assert.False(t, cfg.SMTP.MailEnabled())
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URL", "postgres://localhost/resume")
	t.Setenv("SESSION_SECRET", "secret")
	t.Setenv("PORT", "9090")
	t.Setenv("BASE_URL", "https://resume.example.com")
	t.Setenv("SESSION_TTL_HOURS", "72")
	t.Setenv("SMTP_HOST", "smtp.example.com")
	t.Setenv("SMTP_USER", "mailer")
	t.Setenv("SMTP_PASS", "hunter2")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "https://resume.example.com", cfg.BaseURL)
	assert.Equal(t, 72, cfg.SessionTTLHours)
	assert.True(t, cfg.SMTP.MailEnabled())
	// Port defaults when a host is set without one
	assert.Equal(t, "587", cfg.SMTP.Port)
}

func TestLoad_InvalidTTL(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URL", "postgres://localhost/resume")
	t.Setenv("SESSION_SECRET", "secret")

	t.Setenv("SESSION_TTL_HOURS", "abc")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid SESSION_TTL_HOURS")

	t.Setenv("SESSION_TTL_HOURS", "0")
	_, err = Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least 1 hour")
}

func TestLoad_InvalidPort(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URL", "postgres://localhost/resume")
	t.Setenv("SESSION_SECRET", "secret")
	t.Setenv("PORT", "http")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid PORT")
}
