// Package config loads nps-explorer settings from the environment.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/pfrederiksen/nps-explorer/internal/cache"
	"github.com/pfrederiksen/nps-explorer/internal/places"
	"github.com/pfrederiksen/nps-explorer/internal/scraper"
)

// Config holds all application configuration.
type Config struct {
	// MapQuestAPIKey authenticates nearby place searches.
	MapQuestAPIKey string

	// MapQuestBaseURL overrides the places API host.
	MapQuestBaseURL string // default: http://www.mapquestapi.com

	// BaseURL is the site the directory is scraped from.
	BaseURL string // default: https://www.nps.gov

	// CacheDir holds one file per fetched page plus the directory snapshot.
	CacheDir string // default: ~/.cache/nps-explorer

	// DirectoryTTL is how long the saved state directory is reused.
	DirectoryTTL time.Duration // default: 168h

	// DirectoryLength, when positive, replaces the TTL check with an exact
	// byte-length check of the saved state directory.
	DirectoryLength int // default: 0

	// HTTPTimeout bounds each page fetch.
	HTTPTimeout time.Duration // default: 30s

	// LogLevel is DEBUG, INFO, WARN or ERROR.
	LogLevel string // default: WARN
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		MapQuestAPIKey:  os.Getenv("MAPQUEST_API_KEY"),
		MapQuestBaseURL: envOr("MAPQUEST_BASE_URL", places.DefaultBaseURL),
		BaseURL:         envOr("NPS_BASE_URL", scraper.BaseURL),
		CacheDir:        envOr("NPS_CACHE_DIR", "~/.cache/nps-explorer"),
		DirectoryTTL:    envDurationOr("NPS_DIRECTORY_TTL", scraper.DirectoryTTL),
		DirectoryLength: envIntOr("NPS_DIRECTORY_LENGTH", 0),
		HTTPTimeout:     envDurationOr("NPS_HTTP_TIMEOUT", scraper.Timeout),
		LogLevel:        envOr("NPS_LOG_LEVEL", "WARN"),
	}
}

// DirectoryValidator returns the rule deciding whether the saved state directory is reused.
func (c *Config) DirectoryValidator() cache.Validator {
	if c.DirectoryLength > 0 {
		return cache.ExactLength(c.DirectoryLength)
	}
	return cache.MaxAge(c.DirectoryTTL)
}

// ScraperOptions converts the configuration for scraper.New.
func (c *Config) ScraperOptions() scraper.Options {
	return scraper.Options{
		BaseURL:            c.BaseURL,
		Timeout:            c.HTTPTimeout,
		DirectoryValidator: c.DirectoryValidator(),
	}
}

// --- helper functions ---

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func envDurationOr(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
