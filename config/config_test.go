package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:3000", cfg.API.BaseURL)
	assert.Equal(t, 15*time.Second, cfg.API.RequestTimeout)
	assert.Equal(t, 60*time.Second, cfg.API.UploadTimeout)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Encoding)
	assert.True(t, cfg.Notifications.StreamEnabled)
	assert.Equal(t, 30*time.Second, cfg.Notifications.PollInterval)
	assert.NotEmpty(t, cfg.State.Dir)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("EVENTOSIA_API_URL", "https://api.eventosia.co/")
	t.Setenv("EVENTOSIA_REQUEST_TIMEOUT", "5s")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("EVENTOSIA_NOTIFICATIONS_STREAM", "false")
	t.Setenv("EVENTOSIA_STATE_DIR", "/tmp/eventosia-test")

	cfg, err := Load()
	require.NoError(t, err)

	// Trailing slash is stripped so path joins stay clean.
	assert.Equal(t, "https://api.eventosia.co", cfg.API.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.API.RequestTimeout)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.False(t, cfg.Notifications.StreamEnabled)
	assert.Equal(t, "/tmp/eventosia-test", cfg.State.Dir)
}

func TestLoad_BadValuesFallBack(t *testing.T) {
	t.Setenv("EVENTOSIA_REQUEST_TIMEOUT", "pronto")
	t.Setenv("EVENTOSIA_NOTIFICATIONS_STREAM", "tal vez")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 15*time.Second, cfg.API.RequestTimeout)
	assert.True(t, cfg.Notifications.StreamEnabled)
}
