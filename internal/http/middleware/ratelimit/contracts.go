package ratelimit

import (
	"context"
	"time"
)

// Limiter decides whether the request identified by key may proceed.
// Backends return an error only when they cannot reach their state.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// Clock drives token refill so tests can step time.
type Clock interface {
	Now() time.Time
}

// RealClock reads the wall clock.
type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }

// NopLimiter admits everything; it stands in when RATE_LIMIT_ENABLED is off.
type NopLimiter struct{}

func (NopLimiter) Allow(context.Context, string) (bool, error) { return true, nil }
