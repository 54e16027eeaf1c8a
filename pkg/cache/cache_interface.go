package cache

import (
	"context"
	"time"
)

// Cache is the contract for the read-through cache layer.
// Implementations: Redis (internal/infrastructure/cache) and Noop.
type Cache interface {
	// Get unmarshals the cached value into dest.
	// found is false on a miss, dest is left untouched.
	Get(ctx context.Context, key string, dest interface{}) (found bool, err error)

	// Set stores value under key with the given TTL
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Delete removes keys. Missing keys are not an error.
	Delete(ctx context.Context, keys ...string) error

	Ping(ctx context.Context) error
}

// Noop is used when no cache backend is configured. Every read is a miss.
type Noop struct{}

func NewNoop() Cache {
	return Noop{}
}

func (Noop) Get(context.Context, string, interface{}) (bool, error)         { return false, nil }
func (Noop) Set(context.Context, string, interface{}, time.Duration) error { return nil }
func (Noop) Delete(context.Context, ...string) error                       { return nil }
func (Noop) Ping(context.Context) error                                    { return nil }
