package app

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"agrimarket-delivery/internal/logx"
	"agrimarket-delivery/internal/repository"
)

var newPool = repository.NewPool

const (
	dbAttemptTimeout = 3 * time.Second
	dbMaxRetryDelay  = 10 * time.Second
)

// connectDbWithRetry keeps dialing Postgres while it starts up next to us.
// The pause after each failure doubles from delay up to dbMaxRetryDelay.
func connectDbWithRetry(ctx context.Context, logger logx.Logger, dsn string, retries int, delay time.Duration) (*pgxpool.Pool, error) {
	var lastErr error
	wait := delay
	for attempt := 1; attempt <= retries; attempt++ {
		attemptCtx, cancel := context.WithTimeout(ctx, dbAttemptTimeout)
		pool, err := newPool(attemptCtx, dsn)
		cancel()
		if err == nil {
			logger.Info("db connected",
				logx.String("event", "db_connected"),
				logx.Int("attempt", attempt))
			return pool, nil
		}
		lastErr = err
		if attempt == retries {
			break
		}

		logger.Warn("db connect failed",
			logx.String("event", "db_connect_retry"),
			logx.Int("attempt", attempt),
			logx.Int("retries", retries),
			logx.Duration("wait", wait),
			logx.Err(err))
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(wait):
		}
		wait = min(wait*2, dbMaxRetryDelay)
	}
	return nil, fmt.Errorf("db connect failed after %d attempts: %w", retries, lastErr)
}
