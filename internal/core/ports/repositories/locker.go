package repositories

import "context"

// ReleaseFunc releases a lock obtained from a DocumentLocker.
type ReleaseFunc func(ctx context.Context) error

// DocumentLocker serializes writers of the same source document.
// Lock returns ErrLocked when the key stays held past the locker's wait budget.
type DocumentLocker interface {
	Lock(ctx context.Context, key string) (ReleaseFunc, error)
}
