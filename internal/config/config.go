package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	OpenWeatherAPIKey string
	GeocoderAPIKey    string

	// StorePath is the directory holding the persisted JSON documents.
	StorePath string

	// RefreshInterval controls how often the cached weather for the selected
	// city is re-fetched.
	RefreshInterval time.Duration

	// HTTPTimeout applies to outbound weather and geocoding calls.
	HTTPTimeout time.Duration

	// Dashboard login credential pair.
	Username string
	Password string

	DefaultTheme string

	Port        string
	MetricsAddr string
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}
	cfg := &AppConfig{}

	cfg.OpenWeatherAPIKey = os.Getenv("OPENWEATHER_API_KEY")
	cfg.GeocoderAPIKey = os.Getenv("GEOCODER_API_KEY")

	cfg.StorePath = getenvDefault("STORE_PATH", "data")

	intervalStr := getenvDefault("REFRESH_INTERVAL", "15m")
	interval, err := time.ParseDuration(intervalStr)
	if err != nil {
		return nil, fmt.Errorf("invalid REFRESH_INTERVAL: %w", err)
	}
	cfg.RefreshInterval = interval

	timeoutStr := getenvDefault("HTTP_TIMEOUT", "10s")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT: %w", err)
	}
	cfg.HTTPTimeout = timeout

	cfg.Username = getenvDefault("DASHBOARD_USERNAME", "admin")
	cfg.Password = getenvDefault("DASHBOARD_PASSWORD", "admin123")

	cfg.DefaultTheme = getenvDefault("DEFAULT_THEME", "light")
	switch cfg.DefaultTheme {
	case "dark", "light":
	default:
		return nil, fmt.Errorf("invalid DEFAULT_THEME %q (allowed: dark, light)", cfg.DefaultTheme)
	}

	cfg.Port = getenvDefault("PORT", "8080")
	cfg.MetricsAddr = getenvDefault("METRICS_ADDR", ":9090")

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
