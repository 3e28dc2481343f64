package lock

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/SscSPs/books_ledger/internal/apperrors"
	portsrepo "github.com/SscSPs/books_ledger/internal/core/ports/repositories"
)

// MemoryLocker serializes writers inside one process. It is used when no
// redis address is configured.
type MemoryLocker struct {
	mu   sync.Mutex
	held map[string]chan struct{}
	wait time.Duration
}

var _ portsrepo.DocumentLocker = (*MemoryLocker)(nil)

// NewMemoryLocker creates a locker that waits at most wait for a held key.
func NewMemoryLocker(wait time.Duration) *MemoryLocker {
	return &MemoryLocker{held: make(map[string]chan struct{}), wait: wait}
}

// Lock blocks until key is free, the wait budget is spent, or ctx ends.
func (l *MemoryLocker) Lock(ctx context.Context, key string) (portsrepo.ReleaseFunc, error) {
	timer := time.NewTimer(l.wait)
	defer timer.Stop()

	for {
		l.mu.Lock()
		done, busy := l.held[key]
		if !busy {
			done = make(chan struct{})
			l.held[key] = done
			l.mu.Unlock()
			return l.releaser(key, done), nil
		}
		l.mu.Unlock()

		select {
		case <-done:
		case <-timer.C:
			return nil, fmt.Errorf("%w: %s", apperrors.ErrLocked, key)
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: %s: %w", apperrors.ErrLocked, key, ctx.Err())
		}
	}
}

func (l *MemoryLocker) releaser(key string, done chan struct{}) portsrepo.ReleaseFunc {
	var once sync.Once
	return func(context.Context) error {
		once.Do(func() {
			l.mu.Lock()
			if l.held[key] == done {
				delete(l.held, key)
			}
			l.mu.Unlock()
			close(done)
		})
		return nil
	}
}
