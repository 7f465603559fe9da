package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr                string
	DBPath              string
	LogLevel            string
	ImportWorkerCount   int
	ImportQueueSize     int
	RequestRetention    float64
	MaximumIntervalDays int
	QueueLimit          int
}

// Load reads configuration from a .env file (if present) and environment
// variables, applying sensible defaults when values are missing or invalid.
func Load() Config {
	// Ignore error so the app still starts when .env is absent in production.
	_ = godotenv.Load()

	return Config{
		Addr:                envOr("ADDR", ":8080"),
		DBPath:              envOr("DB_PATH", "file:memoflash.db"),
		LogLevel:            envOr("LOG_LEVEL", "INFO"),
		ImportWorkerCount:   envIntOr("IMPORT_WORKER_COUNT", 2),
		ImportQueueSize:     envIntOr("IMPORT_QUEUE_SIZE", 32),
		RequestRetention:    envFloatOr("REQUEST_RETENTION", 0.9),
		MaximumIntervalDays: envIntOr("MAXIMUM_INTERVAL_DAYS", 36500),
		QueueLimit:          envIntOr("QUEUE_LIMIT", 50),
	}
}

// Validate checks that the configuration is internally consistent.
func (c Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("addr must not be empty")
	}
	if c.DBPath == "" {
		return fmt.Errorf("db path must not be empty")
	}
	if c.RequestRetention <= 0 || c.RequestRetention >= 1 {
		return fmt.Errorf("request retention %v must be in (0, 1)", c.RequestRetention)
	}
	if c.MaximumIntervalDays <= 0 {
		return fmt.Errorf("maximum interval %d must be positive", c.MaximumIntervalDays)
	}
	if c.ImportWorkerCount <= 0 {
		return fmt.Errorf("import worker count %d must be positive", c.ImportWorkerCount)
	}
	if c.ImportQueueSize <= 0 {
		return fmt.Errorf("import queue size %d must be positive", c.ImportQueueSize)
	}
	if c.QueueLimit <= 0 {
		return fmt.Errorf("queue limit %d must be positive", c.QueueLimit)
	}
	return nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envIntOr(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
		log.Printf("invalid value for %s=%q, using default %d", key, v, def)
	}
	return def
}

func envFloatOr(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
		log.Printf("invalid value for %s=%q, using default %v", key, v, def)
	}
	return def
}
