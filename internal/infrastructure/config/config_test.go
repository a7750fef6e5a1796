package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "shopfront-backend", cfg.App.Name)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "memory", cfg.Cart.Backend)
	assert.Equal(t, 12*time.Hour, cfg.Cart.SessionTTL)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.HTTP.CORSAllowOrigins)
	assert.Contains(t, cfg.HTTP.CORSAllowHeaders, "X-Store-ID")
	assert.Contains(t, cfg.HTTP.CORSAllowHeaders, "X-Cart-Session")
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("SHOPFRONT_DATABASE_HOST", "db.internal")
	t.Setenv("SHOPFRONT_CART_BACKEND", "redis")
	t.Setenv("SHOPFRONT_CART_SESSION_TTL", "30m")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "redis", cfg.Cart.Backend)
	assert.Equal(t, 30*time.Minute, cfg.Cart.SessionTTL)
}

func TestLoadRejectsBadCartConfig(t *testing.T) {
	t.Run("unknown backend", func(t *testing.T) {
		t.Setenv("SHOPFRONT_CART_BACKEND", "memcached")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("ttl below a minute", func(t *testing.T) {
		t.Setenv("SHOPFRONT_CART_SESSION_TTL", "5s")
		_, err := Load()
		assert.Error(t, err)
	})
}

func TestDatabaseDSN(t *testing.T) {
	d := DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "postgres",
		Password: "p@ss/word",
		DBName:   "shopfront",
		SSLMode:  "disable",
	}

	dsn := d.DSN()
	assert.Contains(t, dsn, "postgres://")
	assert.Contains(t, dsn, "localhost:5432/shopfront")
	assert.Contains(t, dsn, "sslmode=disable")
	// password must be escaped, not embedded raw
	assert.NotContains(t, dsn, "p@ss/word")
}

func TestRedisAddr(t *testing.T) {
	r := RedisConfig{Host: "cache.internal", Port: 6380}
	assert.Equal(t, "cache.internal:6380", r.Addr())
}
