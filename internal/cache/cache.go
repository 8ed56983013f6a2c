// Package cache is a small byte cache with in-process and redis backends.
package cache

import (
	"context"
	"time"
)

// Cache stores opaque values. Backends log their own failures; a failed Get
// is reported as a miss.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration)
}

const (
	DriverMemory = "memory"
	DriverRedis  = "redis"
)
