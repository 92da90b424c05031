package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds application configuration
type Config struct {
	ServerPort   string
	CatalogPath  string
	CacheDir     string
	AssetsDir    string
	FetchTimeout time.Duration
	Workers      int
}

// Load reads configuration from environment variables with sensible defaults
func Load() *Config {
	return &Config{
		ServerPort:   getEnv("PORT", "8080"),
		CatalogPath:  getEnv("AWARDGEN_CATALOG", "award_images.json"),
		CacheDir:     getEnv("AWARDGEN_CACHE_DIR", "images"),
		AssetsDir:    getEnv("AWARDGEN_ASSETS_DIR", "images"),
		FetchTimeout: getDuration("AWARDGEN_FETCH_TIMEOUT", 10*time.Second),
		Workers:      getInt("AWARDGEN_WORKERS", 4),
	}
}

// getEnv reads an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getInt(key string, defaultValue int) int {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil && v > 0 {
		return v
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	if v, err := time.ParseDuration(os.Getenv(key)); err == nil && v > 0 {
		return v
	}
	return defaultValue
}
