// Package config handles application configuration via environment variables.
package config

import (
	"crypto/rand"
	"encoding/hex"
	"log"
	"os"
	"strconv"
)

// Config holds all configurable values for the app.
type Config struct {
	Env           string
	Port          string
	MongoURI      string
	DBName        string
	CascadePath   string
	JWTSecret     string
	DetectWorkers int64
}

// Load reads environment variables and populates a Config struct.
func Load() *Config {
	workers, err := strconv.ParseInt(getEnv("DETECT_WORKERS", "4"), 10, 64)
	if err != nil || workers <= 0 {
		log.Panicf("Invalid DETECT_WORKERS: %v", err)
	}

	secret := getEnv("JWT_SECRET", "")
	if secret == "" {
		// Not for production: every restart invalidates outstanding tokens.
		secret = GenerateRandomKey()
	}

	return &Config{
		Env:           getEnv("ENV", "development"),
		Port:          getEnv("PORT", "8080"),
		MongoURI:      getEnv("MONGO_URI", "mongodb://localhost:27017"),
		DBName:        getEnv("DB_NAME", "stress_detection_db"),
		CascadePath:   getEnv("CASCADE_PATH", "cascade/facefinder"),
		JWTSecret:     secret,
		DetectWorkers: workers,
	}
}

// GenerateRandomKey returns a random hex key used as a JWT secret fallback.
func GenerateRandomKey() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		log.Panicf("Failed to generate random key: %v", err)
	}
	return hex.EncodeToString(b)
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
