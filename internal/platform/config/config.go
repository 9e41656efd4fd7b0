package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/srgjo27/hotel_reservation/internal/platform/database"
)

const (
	BackendPostgres = "postgres"
	BackendMongo    = "mongo"
	BackendMemory   = "memory"
)

type Config struct {
	Env      string
	HTTPPort string

	Database database.Config

	RedisHost        string
	RedisPort        string
	AvailabilityTTL  time.Duration
	MongoURL         string
	MongoDB          string
	InventoryBackend string
	StorageBackend   string
	RabbitMQURL      string

	FreeCancellationWindow time.Duration
	SeedDemoData           bool
	CORSOrigins            []string
}

func (c Config) Development() bool {
	return c.Env == "development"
}

func (c Config) RedisAddr() string {
	return c.RedisHost + ":" + c.RedisPort
}

// Load reads an optional .env file and then the process environment.
func Load(files ...string) (Config, error) {
	// a missing .env is fine, variables may come from the environment
	_ = godotenv.Load(files...)

	cfg := Config{
		Env:      envOrDefault("APP_ENV", "production"),
		HTTPPort: envOrDefault("HTTP_PORT", "8080"),
		Database: database.Config{
			Host:     envOrDefault("DB_HOST", "localhost"),
			Port:     envOrDefault("DB_PORT", "5432"),
			User:     envOrDefault("DB_USER", "postgres"),
			Password: os.Getenv("DB_PASSWORD"),
			DBName:   envOrDefault("DB_NAME", "hotel_reservation"),
		},
		RedisHost:        envOrDefault("REDIS_HOST", "localhost"),
		RedisPort:        envOrDefault("REDIS_PORT", "6379"),
		MongoURL:         strings.TrimSpace(os.Getenv("MONGO_URL")),
		MongoDB:          envOrDefault("MONGO_DB", "hotel_reservation"),
		InventoryBackend: strings.ToLower(envOrDefault("INVENTORY_BACKEND", BackendPostgres)),
		StorageBackend:   strings.ToLower(envOrDefault("STORAGE_BACKEND", BackendPostgres)),
		RabbitMQURL:      strings.TrimSpace(os.Getenv("RABBITMQ_URL")),
		CORSOrigins:      splitList(envOrDefault("CORS_ORIGINS", "*")),
	}

	var err error

	if cfg.AvailabilityTTL, err = durationOrDefault("AVAILABILITY_CACHE_TTL", 10*time.Second); err != nil {
		return Config{}, err
	}

	if cfg.FreeCancellationWindow, err = durationOrDefault("FREE_CANCELLATION_WINDOW", 0); err != nil {
		return Config{}, err
	}

	if cfg.SeedDemoData, err = boolOrDefault("SEED_DEMO_DATA", false); err != nil {
		return Config{}, err
	}

	switch cfg.StorageBackend {
	case BackendPostgres, BackendMemory:
	default:
		return Config{}, fmt.Errorf("unsupported STORAGE_BACKEND %q", cfg.StorageBackend)
	}

	switch cfg.InventoryBackend {
	case BackendPostgres, BackendMongo:
	default:
		return Config{}, fmt.Errorf("unsupported INVENTORY_BACKEND %q", cfg.InventoryBackend)
	}

	if cfg.InventoryBackend == BackendMongo && cfg.MongoURL == "" {
		return Config{}, fmt.Errorf("MONGO_URL is required when INVENTORY_BACKEND=mongo")
	}

	return cfg, nil
}

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func durationOrDefault(key string, def time.Duration) (time.Duration, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def, nil
	}

	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}

	return d, nil
}

func boolOrDefault(key string, def bool) (bool, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def, nil
	}

	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}

	return b, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
