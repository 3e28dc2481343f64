package lock

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/books_ledger/internal/platform/config"
	"github.com/redis/go-redis/v9"
)

const maxConnectBackoff = 30 * time.Second

// ConnectRedisWithRetry pings redis until it answers, backing off exponentially
// between attempts. It gives up after maxAttempts or when ctx ends.
func ConnectRedisWithRetry(ctx context.Context, cfg config.RedisConfig, maxAttempts int) (*redis.Client, error) {
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Address,
			Password: cfg.Password,
			DB:       cfg.DB,
			PoolSize: 100,
		})
		lastErr = rdb.Ping(ctx).Err()
		if lastErr == nil {
			slog.Info("Connected to redis", slog.Int("attempt", attempt), slog.String("addr", cfg.Address))
			return rdb, nil
		}
		_ = rdb.Close()

		if attempt == maxAttempts {
			break
		}
		sleep := time.Second * time.Duration(1<<min(attempt, 5))
		if sleep > maxConnectBackoff {
			sleep = maxConnectBackoff
		}
		slog.Warn("Failed to connect to redis, retrying",
			slog.Int("attempt", attempt),
			slog.String("addr", cfg.Address),
			slog.String("error", lastErr.Error()),
			slog.Duration("retry_in", sleep))

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("connect to redis at %s: %w", cfg.Address, ctx.Err())
		case <-time.After(sleep):
		}
	}
	return nil, fmt.Errorf("connect to redis at %s after %d attempts: %w", cfg.Address, maxAttempts, lastErr)
}
