package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"APP_ENV", "HTTP_PORT", "DB_HOST", "DB_NAME", "AVAILABILITY_CACHE_TTL", "FREE_CANCELLATION_WINDOW",
		"SEED_DEMO_DATA", "STORAGE_BACKEND", "INVENTORY_BACKEND", "MONGO_URL", "RABBITMQ_URL", "CORS_ORIGINS",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "hotel_reservation", cfg.Database.DBName)
	assert.Equal(t, 10*time.Second, cfg.AvailabilityTTL)
	assert.Equal(t, time.Duration(0), cfg.FreeCancellationWindow)
	assert.Equal(t, BackendPostgres, cfg.StorageBackend)
	assert.Equal(t, BackendPostgres, cfg.InventoryBackend)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.False(t, cfg.SeedDemoData)
	assert.False(t, cfg.Development())
	assert.Equal(t, "localhost:6379", cfg.RedisAddr())
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("FREE_CANCELLATION_WINDOW", "-48h")
	t.Setenv("AVAILABILITY_CACHE_TTL", "30s")
	t.Setenv("SEED_DEMO_DATA", "true")
	t.Setenv("STORAGE_BACKEND", "Memory")
	t.Setenv("INVENTORY_BACKEND", "mongo")
	t.Setenv("MONGO_URL", "mongodb://localhost:27017")
	t.Setenv("CORS_ORIGINS", "http://a.test, http://b.test,")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.True(t, cfg.Development())
	assert.Equal(t, -48*time.Hour, cfg.FreeCancellationWindow)
	assert.Equal(t, 30*time.Second, cfg.AvailabilityTTL)
	assert.True(t, cfg.SeedDemoData)
	assert.Equal(t, BackendMemory, cfg.StorageBackend)
	assert.Equal(t, BackendMongo, cfg.InventoryBackend)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSOrigins)
}

func TestLoad_DotEnvFile(t *testing.T) {
	t.Setenv("HTTP_PORT", "")
	require.NoError(t, os.Unsetenv("HTTP_PORT"))

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("HTTP_PORT=9090\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.HTTPPort)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"bad duration", "FREE_CANCELLATION_WINDOW", "two days"},
		{"bad ttl", "AVAILABILITY_CACHE_TTL", "soon"},
		{"bad bool", "SEED_DEMO_DATA", "maybe"},
		{"unknown storage", "STORAGE_BACKEND", "sqlite"},
		{"unknown inventory", "INVENTORY_BACKEND", "mysql"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("STORAGE_BACKEND", "")
			t.Setenv("INVENTORY_BACKEND", "")
			t.Setenv(tt.key, tt.val)

			_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
			assert.ErrorContains(t, err, tt.key)
		})
	}
}

func TestLoad_MongoRequiresURL(t *testing.T) {
	t.Setenv("INVENTORY_BACKEND", "mongo")
	t.Setenv("MONGO_URL", "")

	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.ErrorContains(t, err, "MONGO_URL")
}
