package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	// GeocoderAPIKey authorizes reverse geocoding of device coordinates.
	GeocoderAPIKey string

	// PollInterval controls how often the poller refreshes the observation.
	PollInterval time.Duration

	// SpeechTimeout bounds the wait before a timeout apology is spoken.
	SpeechTimeout time.Duration

	// DefaultPlace seeds the fallback location cache; empty means requests
	// without a spoken or device location are apologized away until a device
	// fix arrives.
	DefaultPlace string

	Language        string
	TemperatureUnit string

	// Outbound provider limits.
	HTTPTimeout       time.Duration
	RequestsPerSecond float64
	Burst             int

	// In-memory observation history retention.
	StoreMaxHistory int

	Port string
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}
	cfg := &AppConfig{}

	cfg.GeocoderAPIKey = os.Getenv("GEOCODER_API_KEY")
	cfg.DefaultPlace = os.Getenv("DEFAULT_LOCATION")
	cfg.Language = getenvDefault("LANGUAGE", "en")
	cfg.TemperatureUnit = getenvDefault("TEMPERATURE_UNIT", "c")
	cfg.Port = getenvDefault("PORT", "8080")

	var err error
	if cfg.PollInterval, err = getenvDuration("POLL_INTERVAL", time.Minute); err != nil {
		return nil, err
	}
	if cfg.SpeechTimeout, err = getenvDuration("SPEECH_TIMEOUT", 10*time.Second); err != nil {
		return nil, err
	}
	if cfg.HTTPTimeout, err = getenvDuration("HTTP_TIMEOUT", 10*time.Second); err != nil {
		return nil, err
	}

	cfg.RequestsPerSecond = getenvFloat("PROVIDER_RPS", 2)
	cfg.Burst = getenvInt("PROVIDER_BURST", 4)
	cfg.StoreMaxHistory = getenvInt("STORE_MAX_HISTORY", 96)

	if cfg.TemperatureUnit != "c" && cfg.TemperatureUnit != "f" {
		return nil, fmt.Errorf("invalid TEMPERATURE_UNIT %q: want c or f", cfg.TemperatureUnit)
	}

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}

func getenvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err == nil {
			return f
		}
	}
	return def
}

func getenvDuration(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
