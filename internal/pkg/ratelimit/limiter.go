// Package ratelimit caps outbound provider calls. Both limiters fail
// fast: Allow never waits for a token.
package ratelimit

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-redis/redis_rate/v10"
	"golang.org/x/time/rate"
)

type rateAllower interface {
	Allow(ctx context.Context, key string, limit redis_rate.Limit) (*redis_rate.Result, error)
}

// RedisLimiter shares the budget between every instance using the same Redis.
type RedisLimiter struct {
	limiter rateAllower
	limit   redis_rate.Limit
}

func NewRedisLimiter(limiter *redis_rate.Limiter, perMinute int) *RedisLimiter {
	return &RedisLimiter{
		limiter: limiter,
		limit:   redis_rate.PerMinute(perMinute),
	}
}

func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	res, err := l.limiter.Allow(ctx, fmt.Sprintf("limit:%s", key), l.limit)
	if err != nil {
		return false, fmt.Errorf("failed to rate limit: %w", err)
	}

	return res.Allowed > 0, nil
}

// LocalLimiter keeps one token bucket per key in process memory.
type LocalLimiter struct {
	limiters map[string]*rate.Limiter
	mu       sync.RWMutex
	limit    rate.Limit
	burst    int
}

// NewLocalLimiter allows perMinute calls per key; zero or less disables limiting.
func NewLocalLimiter(perMinute int) *LocalLimiter {
	l := &LocalLimiter{
		limiters: make(map[string]*rate.Limiter),
		limit:    rate.Inf,
		burst:    1,
	}

	if perMinute > 0 {
		l.limit = rate.Every(time.Minute / time.Duration(perMinute))
		l.burst = perMinute
	}

	return l
}

func (l *LocalLimiter) Allow(_ context.Context, key string) (bool, error) {
	return l.getLimiter(key).Allow(), nil
}

func (l *LocalLimiter) getLimiter(key string) *rate.Limiter {
	l.mu.RLock()
	limiter, exists := l.limiters[key]
	l.mu.RUnlock()

	if exists {
		return limiter
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if limiter, exists = l.limiters[key]; exists {
		return limiter
	}

	limiter = rate.NewLimiter(l.limit, l.burst)
	l.limiters[key] = limiter
	return limiter
}
