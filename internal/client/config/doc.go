// Package config loads runtime configuration for the SessionKeeper CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the account service REST API
//	-k string   API key sent in the x-api-key header
//	-b string   cache backend, "sqlite" or "redis"
//	-d string   SQLite file path for the session cache
//	-r string   address:port of the Redis server
//	-p int      page size for user listing requests
//	-t int      HTTP request timeout (seconds)
//
// # JSON schema
//
// The JSON loader uses timex.Duration for the timeout, so values can be
// either strings like "30s" or integer nanoseconds:
//
//	{
//	  "server_base_url": "https://reqres.in/api",
//	  "api_key": "reqres-free-v1",
//	  "cache_backend": "sqlite",
//	  "cache_dsn": "session.db",
//	  "page_size": 5,
//	  "http_timeout": "30s"
//	}
//
// Primary API
//
//   - type Config                     — holds the REST, cache and paging settings
//   - func LoadConfig() *Config       — builds Config by applying defaults, JSON, then flags
//   - func (*Config) LoadDefaults()   — sets sensible defaults
//
// Note: This package does not read environment variables directly; use the
// JSON file or flags to configure values.
package config
