package services

import (
	"context"
	"time"
)

// Mailer delivers one-time codes.
type Mailer interface {
	SendOTP(ctx context.Context, to, firstName, code string, ttl time.Duration) error
}

// AttemptLimiter counts attempts per key inside a sliding window.
type AttemptLimiter interface {
	// Hit records an attempt and returns a too-many-requests error once the
	// key has used up its allowance.
	Hit(ctx context.Context, key string) error
	// Reset forgets the key's attempts.
	Reset(ctx context.Context, key string) error
}
