package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/memoflash/memoflash/internal/config"
)

func validConfig() config.Config {
	return config.Config{
		Addr:                ":8080",
		DBPath:              "test.db",
		LogLevel:            "INFO",
		ImportWorkerCount:   2,
		ImportQueueSize:     32,
		RequestRetention:    0.9,
		MaximumIntervalDays: 36500,
		QueueLimit:          50,
	}
}

func TestValidate_ValidConfig(t *testing.T) {
	assert.NoError(t, validConfig().Validate())
}

func TestValidate_EmptyAddr(t *testing.T) {
	cfg := validConfig()
	cfg.Addr = ""
	assert.Error(t, cfg.Validate())
}

func TestValidate_EmptyDBPath(t *testing.T) {
	cfg := validConfig()
	cfg.DBPath = ""
	assert.Error(t, cfg.Validate())
}

func TestValidate_RetentionBounds(t *testing.T) {
	for _, retention := range []float64{0, 1, -0.5, 1.5} {
		cfg := validConfig()
		cfg.RequestRetention = retention
		assert.Error(t, cfg.Validate(), "retention %v", retention)
	}

	cfg := validConfig()
	cfg.RequestRetention = 0.85
	assert.NoError(t, cfg.Validate())
}

func TestValidate_NonPositiveCounts(t *testing.T) {
	cfg := validConfig()
	cfg.ImportWorkerCount = 0
	assert.Error(t, cfg.Validate())

	cfg = validConfig()
	cfg.ImportQueueSize = -1
	assert.Error(t, cfg.Validate())

	cfg = validConfig()
	cfg.MaximumIntervalDays = 0
	assert.Error(t, cfg.Validate())

	cfg = validConfig()
	cfg.QueueLimit = 0
	assert.Error(t, cfg.Validate())
}

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"ADDR", "DB_PATH", "LOG_LEVEL", "IMPORT_WORKER_COUNT",
		"IMPORT_QUEUE_SIZE", "REQUEST_RETENTION", "MAXIMUM_INTERVAL_DAYS",
		"QUEUE_LIMIT",
	} {
		t.Setenv(key, "")
	}

	cfg := config.Load()
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "INFO", cfg.LogLevel)
	assert.Equal(t, 0.9, cfg.RequestRetention)
	assert.Equal(t, 36500, cfg.MaximumIntervalDays)
	assert.Equal(t, 2, cfg.ImportWorkerCount)
}

func TestLoad_EnvOverridesAndBadValues(t *testing.T) {
	t.Setenv("ADDR", ":9999")
	t.Setenv("REQUEST_RETENTION", "0.8")
	t.Setenv("IMPORT_WORKER_COUNT", "not-a-number")

	cfg := config.Load()
	require.Equal(t, ":9999", cfg.Addr)
	assert.Equal(t, 0.8, cfg.RequestRetention)
	assert.Equal(t, 2, cfg.ImportWorkerCount, "bad value falls back to default")
}
