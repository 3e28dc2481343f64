// Package lock provides DocumentLocker implementations that serialize writers
// of the same posting set.
package lock

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/SscSPs/books_ledger/internal/apperrors"
	portsrepo "github.com/SscSPs/books_ledger/internal/core/ports/repositories"
	"github.com/bsm/redislock"
	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix      = "lock:"
	defaultBackoff = 100 * time.Millisecond
)

// RedisLocker holds document locks in redis so that several instances share them.
type RedisLocker struct {
	client *redislock.Client
	ttl    time.Duration
	wait   time.Duration
}

var _ portsrepo.DocumentLocker = (*RedisLocker)(nil)

// NewRedisLocker creates a locker whose locks expire after ttl. Lock keeps
// retrying for at most wait before giving up.
func NewRedisLocker(rdb redis.UniversalClient, ttl, wait time.Duration) *RedisLocker {
	return &RedisLocker{client: redislock.New(rdb), ttl: ttl, wait: wait}
}

// Lock obtains the lock for key.
func (l *RedisLocker) Lock(ctx context.Context, key string) (portsrepo.ReleaseFunc, error) {
	obtainCtx, cancel := context.WithTimeout(ctx, l.wait)
	defer cancel()

	lock, err := l.client.Obtain(obtainCtx, keyPrefix+key, l.ttl, &redislock.Options{
		RetryStrategy: redislock.LinearBackoff(defaultBackoff),
	})
	if errors.Is(err, redislock.ErrNotObtained) || errors.Is(err, context.DeadlineExceeded) {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrLocked, key)
	}
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to obtain document lock", err)
	}

	return func(releaseCtx context.Context) error {
		if err := lock.Release(releaseCtx); err != nil && !errors.Is(err, redislock.ErrLockNotHeld) {
			return fmt.Errorf("release lock %s: %w", key, err)
		}
		return nil
	}, nil
}
