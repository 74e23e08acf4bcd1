package lock

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/feral-file/farmtrace/internal/adapter"
	"github.com/feral-file/farmtrace/internal/logger"
)

var errLockHeld = errors.New("lock held by another owner")

// RedisConfig holds the configuration for the Redis locker
type RedisConfig struct {
	// Prefix is prepended to every key
	Prefix string
	// TTL bounds how long a crashed holder can block others
	TTL time.Duration
	// Wait bounds how long Acquire retries before giving up
	Wait time.Duration
}

type redisLocker struct {
	client adapter.RedisClient
	cfg    RedisConfig
}

// NewRedisLocker creates a distributed locker using SET NX PX with a per-acquisition token.
// Release only deletes the key while it still holds the token.
func NewRedisLocker(client adapter.RedisClient, cfg RedisConfig) Locker {
	if cfg.TTL <= 0 {
		cfg.TTL = 30 * time.Second
	}
	if cfg.Wait <= 0 {
		cfg.Wait = 10 * time.Second
	}
	if cfg.Prefix == "" {
		cfg.Prefix = "farmtrace:lock:"
	}
	return &redisLocker{client: client, cfg: cfg}
}

func (l *redisLocker) Acquire(ctx context.Context, key string) (Release, error) {
	redisKey := l.cfg.Prefix + key
	token := ulid.Make().String()

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 10 * time.Millisecond
	b.MaxInterval = 250 * time.Millisecond
	b.MaxElapsedTime = l.cfg.Wait
	b.Multiplier = 2.0
	b.RandomizationFactor = 0.5

	operation := func() error {
		ok, err := l.client.SetNX(ctx, redisKey, token, l.cfg.TTL)
		if err != nil {
			return fmt.Errorf("failed to set lock key: %w", err)
		}
		if !ok {
			return errLockHeld
		}
		return nil
	}

	if err := backoff.Retry(operation, backoff.WithContext(b, ctx)); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		if errors.Is(err, errLockHeld) {
			return nil, fmt.Errorf("%w: %s", ErrLockTimeout, key)
		}
		return nil, err
	}

	var once sync.Once
	return func(ctx context.Context) error {
		var releaseErr error
		once.Do(func() {
			released, err := l.client.CompareAndDelete(ctx, redisKey, token)
			if err != nil {
				releaseErr = fmt.Errorf("failed to release lock: %w", err)
				return
			}
			if !released {
				logger.WarnCtx(ctx, "Lock expired before release", zap.String("key", key))
			}
		})
		return releaseErr
	}, nil
}
