package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/nholik/nasa-data-aggregation/internal/nasa"
)

var validate = validator.New()

type AppConfig struct {
	// NASAAPIKey authenticates the APOD and NeoWs calls; the image library
	// does not require one.
	NASAAPIKey string `validate:"required"`

	// RequestTimeout is the per-call budget applied to the APOD and feed
	// upstream calls.
	RequestTimeout time.Duration

	// Endpoints are the upstream base URLs, overridable for tests.
	Endpoints nasa.Endpoints

	CORSOrigin string
	Port       string `validate:"required"`
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}

	cfg := &AppConfig{}

	cfg.NASAAPIKey = os.Getenv("NASA_API_KEY")

	timeoutStr := getenvDefault("NASA_REQUEST_TIMEOUT", "8s")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid NASA_REQUEST_TIMEOUT: %w", err)
	}
	cfg.RequestTimeout = timeout

	defaults := nasa.DefaultEndpoints()
	cfg.Endpoints = nasa.Endpoints{
		APOD:      getenvDefault("NASA_APOD_URL", defaults.APOD),
		NeoFeed:   getenvDefault("NASA_NEO_FEED_URL", defaults.NeoFeed),
		NeoLookup: getenvDefault("NASA_NEO_LOOKUP_URL", defaults.NeoLookup),
		Images:    getenvDefault("NASA_IMAGES_URL", defaults.Images),
	}

	cfg.CORSOrigin = getenvDefault("CORS_ORIGIN", "http://localhost:3000")
	cfg.Port = getenvDefault("PORT", "8080")

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
