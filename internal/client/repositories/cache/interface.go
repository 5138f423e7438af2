// Package cache implements the durable session cache: a small key-value
// store that survives restarts so the client can rehydrate a session on the
// next start. Two backends exist, SQLite (default) and Redis.
package cache

import "context"

// Well-known cache keys.
const (
	// KeyToken holds the raw bearer credential.
	KeyToken = "token"
	// KeyUser holds the JSON-encoded minimal identity snapshot ({id, email}).
	KeyUser = "user"
)

// Repository is the durable key-value store behind the session services.
// Get returns (nil, nil) for a missing key.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	// SetMany stores all entries atomically; either every key is written or
	// none is.
	SetMany(ctx context.Context, values map[string][]byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
