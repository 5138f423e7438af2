package config

import (
	"flag"
	"os"
	"time"

	"github.com/avetins/sessionkeeper/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the account service API (default from Config)
//	-k string   API key sent in the x-api-key header
//	-b string   cache backend, "sqlite" or "redis"
//	-d string   SQLite file path for the sqlite cache backend
//	-r string   host:port of the Redis server for the redis cache backend
//	-p int      page size for user listing requests
//	-t int      HTTP request timeout in seconds
//
// Note: The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	// Filter args to include only those handled here.
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-k", "-b", "-d", "-r", "-p", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerBaseURL, "a", cfg.ServerBaseURL, "base URL of the account service API")
	fs.StringVar(&cfg.APIKey, "k", cfg.APIKey, "API key sent in the x-api-key header")
	fs.StringVar(&cfg.CacheBackend, "b", cfg.CacheBackend, "cache backend (sqlite or redis)")
	fs.StringVar(&cfg.CacheDSN, "d", cfg.CacheDSN, "SQLite file path for the session cache")
	fs.StringVar(&cfg.RedisAddr, "r", cfg.RedisAddr, "address and port of the Redis server")
	fs.IntVar(&cfg.PageSize, "p", cfg.PageSize, "page size for user listing requests")
	httpTimeout := fs.Int("t", int(cfg.HTTPTimeout.Seconds()), "HTTP request timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.HTTPTimeout = time.Duration(*httpTimeout) * time.Second
}
