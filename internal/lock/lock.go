package lock

import (
	"context"
	"errors"
)

// ErrLockTimeout is returned when a lock could not be acquired within the wait limit
var ErrLockTimeout = errors.New("timed out waiting for lock")

// Release releases a held lock. Calling it more than once is a no-op.
type Release func(ctx context.Context) error

// Locker serializes work on a key across goroutines, or across processes for distributed implementations
//
//go:generate mockgen -source=lock.go -destination=../mocks/lock.go -package=mocks -mock_names=Locker=MockLocker
type Locker interface {
	// Acquire blocks until the lock for key is held or ctx is done
	Acquire(ctx context.Context, key string) (Release, error)
}

// ProductKey returns the lock key guarding the ownership chain of a product
func ProductKey(productID string) string {
	return "product:" + productID
}
