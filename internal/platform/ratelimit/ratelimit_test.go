package ratelimit

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
	"github.com/vinque/vinque_backend/internal/apperrors"
)

func exhaust(t *testing.T, l *AttemptLimiter, key string, allowed int) {
	t.Helper()
	ctx := context.Background()
	for i := 0; i < allowed; i++ {
		require.NoError(t, l.Hit(ctx, key), "attempt %d should pass", i+1)
	}
	err := l.Hit(ctx, key)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrTooManyRequests))
}

func TestAttemptLimiter_Memory(t *testing.T) {
	store := memory.NewStoreWithOptions(limiter.StoreOptions{Prefix: "test", CleanUpInterval: time.Minute})
	l := NewAttemptLimiter(store, 5, 10*time.Minute)

	exhaust(t, l, "otp:1", 5)
	require.NoError(t, l.Hit(context.Background(), "otp:2"), "keys are independent")

	require.NoError(t, l.Reset(context.Background(), "otp:1"))
	assert.NoError(t, l.Hit(context.Background(), "otp:1"))
}

func TestAttemptLimiter_Redis(t *testing.T) {
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	store, err := NewRedisStore(client, "vinque")
	require.NoError(t, err)
	l := NewAttemptLimiter(store, 3, 10*time.Minute)

	exhaust(t, l, "login:ana", 3)
	require.NoError(t, l.Reset(context.Background(), "login:ana"))
	assert.NoError(t, l.Hit(context.Background(), "login:ana"))
}

func TestNewStore_FallsBackToMemory(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store, closeFn, err := NewStore(context.Background(), "", "vinque", logger)
	require.NoError(t, err)
	assert.NotNil(t, store)
	assert.NoError(t, closeFn())
}

func TestNewStore_Redis(t *testing.T) {
	server := miniredis.RunT(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store, closeFn, err := NewStore(context.Background(), "redis://"+server.Addr(), "vinque", logger)
	require.NoError(t, err)
	assert.NotNil(t, store)
	assert.NoError(t, closeFn())
}

func TestNewIPLimiter(t *testing.T) {
	store := memory.NewStore()
	_, err := NewIPLimiter(store, "5-M")
	assert.NoError(t, err)
	_, err = NewIPLimiter(store, "five per minute")
	assert.Error(t, err)
}
