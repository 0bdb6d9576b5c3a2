package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("JWT_EXPIRY_DURATION", "")
	t.Setenv("SALES_WINDOW_DAYS", "")
	t.Setenv("DISPLAY_TIMEZONE", "")
	t.Setenv("RATE_LIMIT", "")
	t.Setenv("CURRENCY_PREFIX", "")
	t.Setenv("REDIS_ADDR", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, time.Hour, cfg.JWTExpiryDuration)
	assert.Equal(t, 30, cfg.SalesWindowDays)
	assert.Equal(t, "300-M", cfg.RateLimit)
	assert.Equal(t, "Africa/Johannesburg", cfg.DisplayTimezone)
	require.NotNil(t, cfg.DisplayLocation)
	assert.Equal(t, "R", cfg.CurrencyPrefix)
	assert.Empty(t, cfg.RedisAddr)
	assert.Equal(t, "file://migrations", cfg.MigrationsPath)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("IS_PRODUCTION", "true")
	t.Setenv("JWT_EXPIRY_DURATION", "15m")
	t.Setenv("SALES_WINDOW_DAYS", "7")
	t.Setenv("SALES_CACHE_TTL", "2m")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("DISPLAY_TIMEZONE", "UTC")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.True(t, cfg.IsProduction)
	assert.Equal(t, 15*time.Minute, cfg.JWTExpiryDuration)
	assert.Equal(t, 7, cfg.SalesWindowDays)
	assert.Equal(t, 2*time.Minute, cfg.SalesCacheTTL)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, 2, cfg.RedisDB)
	assert.Equal(t, time.UTC, cfg.DisplayLocation)
}

func TestLoadConfig_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("JWT_EXPIRY_DURATION", "soon")
	t.Setenv("SALES_WINDOW_DAYS", "-3")
	t.Setenv("DISPLAY_TIMEZONE", "Mars/Olympus_Mons")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, time.Hour, cfg.JWTExpiryDuration)
	assert.Equal(t, 30, cfg.SalesWindowDays)
	assert.Equal(t, "UTC", cfg.DisplayTimezone)
	assert.Equal(t, time.UTC, cfg.DisplayLocation)
}
