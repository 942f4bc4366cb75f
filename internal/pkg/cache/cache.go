// Package cache defines the key-value cache port used by the idempotency
// layer, with a Redis implementation for deployment and an in-memory one for
// tests and single-process runs.
package cache

import (
	"context"
	"fmt"
	"time"
)

// Cache is the port implemented by every backend. Get returns the empty
// string (and no error) on a miss.
type Cache interface {
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	GenerateKey(operation, key string) string
}

func generateKey(serviceName, operation, key string) string {
	return fmt.Sprintf("%s:%s:%s", serviceName, operation, key)
}
