package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "data", cfg.StorePath)
	assert.Equal(t, 15*time.Minute, cfg.RefreshInterval)
	assert.Equal(t, 10*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, "admin", cfg.Username)
	assert.Equal(t, "admin123", cfg.Password)
	assert.Equal(t, "light", cfg.DefaultTheme)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, ":9090", cfg.MetricsAddr)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("OPENWEATHER_API_KEY", "key123")
	t.Setenv("STORE_PATH", "/var/lib/envboard")
	t.Setenv("REFRESH_INTERVAL", "5m")
	t.Setenv("HTTP_TIMEOUT", "3s")
	t.Setenv("DEFAULT_THEME", "dark")
	t.Setenv("PORT", "9000")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "key123", cfg.OpenWeatherAPIKey)
	assert.Equal(t, "/var/lib/envboard", cfg.StorePath)
	assert.Equal(t, 5*time.Minute, cfg.RefreshInterval)
	assert.Equal(t, 3*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, "dark", cfg.DefaultTheme)
	assert.Equal(t, "9000", cfg.Port)
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Run("bad refresh interval", func(t *testing.T) {
		t.Setenv("REFRESH_INTERVAL", "often")
		_, err := Load()
		assert.ErrorContains(t, err, "REFRESH_INTERVAL")
	})

	t.Run("bad http timeout", func(t *testing.T) {
		t.Setenv("HTTP_TIMEOUT", "-")
		_, err := Load()
		assert.ErrorContains(t, err, "HTTP_TIMEOUT")
	})

	t.Run("unknown theme", func(t *testing.T) {
		t.Setenv("DEFAULT_THEME", "sepia")
		_, err := Load()
		assert.ErrorContains(t, err, "DEFAULT_THEME")
	})
}
