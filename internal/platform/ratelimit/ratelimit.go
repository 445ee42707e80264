package ratelimit

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
	sredis "github.com/ulule/limiter/v3/drivers/store/redis"
	"github.com/vinque/vinque_backend/internal/apperrors"
	portssvc "github.com/vinque/vinque_backend/internal/core/ports/services"
)

// TooManyAttemptsMessage is returned once a key exhausts its allowance.
const TooManyAttemptsMessage = "Too many attempts. Please try again later."

// NewStore returns a Redis backed store when redisURL is set, otherwise an
// in-process memory store. The returned close func releases the Redis client.
func NewStore(ctx context.Context, redisURL, prefix string, logger *slog.Logger) (limiter.Store, func() error, error) {
	if redisURL == "" {
		logger.Info("Rate limiter using in-memory store")
		return memory.NewStoreWithOptions(limiter.StoreOptions{Prefix: prefix, CleanUpInterval: limiter.DefaultCleanUpInterval}), func() error { return nil }, nil
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opts)
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("ping redis: %w", err)
	}
	store, err := NewRedisStore(client, prefix)
	if err != nil {
		_ = client.Close()
		return nil, nil, err
	}
	logger.Info("Rate limiter using redis store")
	return store, client.Close, nil
}

// NewRedisStore wraps an existing client.
func NewRedisStore(client *redis.Client, prefix string) (limiter.Store, error) {
	store, err := sredis.NewStoreWithOptions(client, limiter.StoreOptions{Prefix: prefix})
	if err != nil {
		return nil, fmt.Errorf("create redis limiter store: %w", err)
	}
	return store, nil
}

// AttemptLimiter caps attempts per key (user id, username) inside a window.
type AttemptLimiter struct {
	limiter *limiter.Limiter
}

var _ portssvc.AttemptLimiter = (*AttemptLimiter)(nil)

// NewAttemptLimiter allows attempts hits per window for each key.
func NewAttemptLimiter(store limiter.Store, attempts int64, window time.Duration) *AttemptLimiter {
	return &AttemptLimiter{limiter: limiter.New(store, limiter.Rate{Period: window, Limit: attempts})}
}

func (l *AttemptLimiter) Hit(ctx context.Context, key string) error {
	res, err := l.limiter.Get(ctx, key)
	if err != nil {
		return fmt.Errorf("rate limit check for %s: %w", key, err)
	}
	if res.Reached {
		return apperrors.NewTooManyRequestsError(TooManyAttemptsMessage)
	}
	return nil
}

func (l *AttemptLimiter) Reset(ctx context.Context, key string) error {
	if _, err := l.limiter.Reset(ctx, key); err != nil {
		return fmt.Errorf("rate limit reset for %s: %w", key, err)
	}
	return nil
}

// NewIPLimiter builds the per-client limiter used on the auth routes, from a
// formatted rate such as "5-M".
func NewIPLimiter(store limiter.Store, formatted string) (*limiter.Limiter, error) {
	rate, err := limiter.NewRateFromFormatted(formatted)
	if err != nil {
		return nil, fmt.Errorf("parse rate %q: %w", formatted, err)
	}
	return limiter.New(store, rate), nil
}
