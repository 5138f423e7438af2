package config

import "time"

// Cache backend selectors accepted in CacheBackend.
const (
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
)

// Config holds runtime settings for the SessionKeeper CLI.
//
// Fields:
//   - ServerBaseURL: base URL of the account service REST API.
//   - APIKey: optional x-api-key header value; empty disables the header.
//   - CacheBackend: durable cache implementation, "sqlite" or "redis".
//   - CacheDSN: SQLite file path (or DSN) for the sqlite backend.
//   - RedisAddr: host:port of the Redis server for the redis backend.
//   - PageSize: per_page value for user listing requests.
//   - HTTPTimeout: per-request timeout for the REST client.
type Config struct {
	ServerBaseURL string
	APIKey        string
	CacheBackend  string
	CacheDSN      string
	RedisAddr     string
	PageSize      int
	HTTPTimeout   time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "https://reqres.in/api"
	c.APIKey = ""
	c.CacheBackend = BackendSQLite
	c.CacheDSN = "session.db"
	c.RedisAddr = "127.0.0.1:6379"
	c.PageSize = 5
	c.HTTPTimeout = 30 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
