package ratelimit

import (
	"context"
	"fmt"
	"time"

	limiter "github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// Decision is the outcome of one rate limit check.
type Decision struct {
	Allowed   bool
	Limit     int64
	Remaining int64
	ResetAt   time.Time
}

// Limiter counts requests per key over a fixed window.
type Limiter interface {
	Allow(ctx context.Context, key string) (Decision, error)
}

// MemoryLimiter keeps counters in process memory. Counts are per instance.
type MemoryLimiter struct {
	inner *limiter.Limiter
}

// NewMemoryLimiter allows max requests per window for each key.
func NewMemoryLimiter(max int64, window time.Duration) *MemoryLimiter {
	store := memory.NewStoreWithOptions(limiter.StoreOptions{
		Prefix:          "laundry",
		CleanUpInterval: window,
	})
	return &MemoryLimiter{inner: limiter.New(store, limiter.Rate{Period: window, Limit: max})}
}

// Allow implements Limiter.
func (l *MemoryLimiter) Allow(ctx context.Context, key string) (Decision, error) {
	lctx, err := l.inner.Get(ctx, key)
	if err != nil {
		return Decision{}, fmt.Errorf("rate limit %q: %w", key, err)
	}
	return Decision{
		Allowed:   !lctx.Reached,
		Limit:     lctx.Limit,
		Remaining: lctx.Remaining,
		ResetAt:   time.Unix(lctx.Reset, 0),
	}, nil
}
