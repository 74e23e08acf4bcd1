package lock

import (
	"context"
	"sync"
)

type localEntry struct {
	// sem holds a token while the lock is taken
	sem  chan struct{}
	refs int
}

type localLocker struct {
	mu      sync.Mutex
	entries map[string]*localEntry
}

// NewLocalLocker creates an in-process keyed mutex.
// Entries are dropped once no goroutine holds or waits for the key.
func NewLocalLocker() Locker {
	return &localLocker{entries: make(map[string]*localEntry)}
}

func (l *localLocker) Acquire(ctx context.Context, key string) (Release, error) {
	l.mu.Lock()
	e, ok := l.entries[key]
	if !ok {
		e = &localEntry{sem: make(chan struct{}, 1)}
		l.entries[key] = e
	}
	e.refs++
	l.mu.Unlock()

	select {
	case e.sem <- struct{}{}:
	case <-ctx.Done():
		l.unref(key, e)
		return nil, ctx.Err()
	}

	var once sync.Once
	return func(context.Context) error {
		once.Do(func() {
			<-e.sem
			l.unref(key, e)
		})
		return nil
	}, nil
}

func (l *localLocker) unref(key string, e *localEntry) {
	l.mu.Lock()
	defer l.mu.Unlock()

	e.refs--
	if e.refs == 0 {
		delete(l.entries, key)
	}
}

// size returns the number of tracked keys
func (l *localLocker) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}
