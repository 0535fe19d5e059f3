package ratelimit

import (
	"context"
	"time"
)

// Store counts hits per key in fixed windows. The first hit of a key opens a
// window; the count resets once resetAt has passed.
type Store interface {
	Hit(ctx context.Context, key string, window time.Duration) (count int64, resetAt time.Time, err error)
}
