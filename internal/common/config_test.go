package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig()

	assert.Equal(t, ":8080", cfg.Server.HTTPAddr)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.True(t, cfg.Pipeline.ValidateOutput)
	assert.True(t, cfg.Pipeline.CacheEnabled)
	assert.Equal(t, 4096, cfg.Pipeline.CacheMaxEntries)

	require.NoError(t, cfg.Validate())
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9999")
	t.Setenv("HTTP_READ_TIMEOUT", "5s")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("DEFAULT_JURISDICTION", "UAE")
	t.Setenv("RESULT_CACHE_ENABLED", "false")
	t.Setenv("RESULT_CACHE_MAX_ENTRIES", "128")

	cfg := LoadConfig()

	assert.Equal(t, ":9999", cfg.Server.HTTPAddr)
	assert.Equal(t, 5*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "UAE", cfg.Pipeline.DefaultJurisdiction)
	assert.False(t, cfg.Pipeline.CacheEnabled)
	assert.Equal(t, 128, cfg.Pipeline.CacheMaxEntries)
}

func TestLoadConfigIgnoresMalformedValues(t *testing.T) {
	t.Setenv("HTTP_READ_TIMEOUT", "not-a-duration")
	t.Setenv("RESULT_CACHE_MAX_ENTRIES", "many")

	cfg := LoadConfig()

	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 4096, cfg.Pipeline.CacheMaxEntries)
}

func TestConfigValidate(t *testing.T) {
	cfg := LoadConfig()
	cfg.Server.HTTPAddr = ""
	assert.Error(t, cfg.Validate())

	cfg = LoadConfig()
	cfg.Pipeline.CacheEnabled = true
	cfg.Pipeline.CacheMaxEntries = 0
	assert.Error(t, cfg.Validate())
}
