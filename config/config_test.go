package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cfg := Load()

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURI)
	assert.Equal(t, "stress_detection_db", cfg.DBName)
	assert.Equal(t, "cascade/facefinder", cfg.CascadePath)
	assert.Equal(t, "test-secret", cfg.JWTSecret)
	assert.Equal(t, int64(4), cfg.DetectWorkers)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("PORT", "9090")
	t.Setenv("MONGO_URI", "mongodb://db:27017")
	t.Setenv("DB_NAME", "stress_test_db")
	t.Setenv("CASCADE_PATH", "/opt/models/facefinder")
	t.Setenv("DETECT_WORKERS", "8")
	t.Setenv("JWT_SECRET", "override")

	cfg := Load()

	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "mongodb://db:27017", cfg.MongoURI)
	assert.Equal(t, "stress_test_db", cfg.DBName)
	assert.Equal(t, "/opt/models/facefinder", cfg.CascadePath)
	assert.Equal(t, int64(8), cfg.DetectWorkers)
	assert.Equal(t, "override", cfg.JWTSecret)
}

func TestLoadGeneratesSecretWhenUnset(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	cfg := Load()

	assert.NotEmpty(t, cfg.JWTSecret)
	assert.Len(t, cfg.JWTSecret, 64)
}

func TestLoadPanicsOnBadWorkerCount(t *testing.T) {
	t.Setenv("DETECT_WORKERS", "not-a-number")

	assert.Panics(t, func() { Load() })
}
