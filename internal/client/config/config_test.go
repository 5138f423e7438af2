package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "https://reqres.in/api", c.ServerBaseURL)
	assert.Empty(t, c.APIKey)
	assert.Equal(t, BackendSQLite, c.CacheBackend)
	assert.Equal(t, "session.db", c.CacheDSN)
	assert.Equal(t, "127.0.0.1:6379", c.RedisAddr)
	assert.Equal(t, 5, c.PageSize)
	assert.Equal(t, 30*time.Second, c.HTTPTimeout)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "https://reqres.in/api", cfg.ServerBaseURL)
	assert.Equal(t, BackendSQLite, cfg.CacheBackend)
	assert.Equal(t, 30*time.Second, cfg.HTTPTimeout)
}
