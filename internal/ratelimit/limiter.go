package ratelimit

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-redis/redis_rate/v10"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/feral-file/farmtrace/internal/adapter"
	"github.com/feral-file/farmtrace/internal/config"
	"github.com/feral-file/farmtrace/internal/logger"
)

// maxLocalKeys bounds the number of per-key limiters kept in memory before idle ones are evicted
const maxLocalKeys = 10000

// Decision is the outcome of a single rate limit check
type Decision struct {
	Allowed    bool
	Remaining  int
	RetryAfter time.Duration
}

// Limiter decides whether a request identified by key may proceed
//
//go:generate mockgen -source=limiter.go -destination=../mocks/ratelimit_limiter.go -package=mocks -mock_names=Limiter=MockRateLimiter
type Limiter interface {
	// Allow consumes one token for key if one is available
	Allow(ctx context.Context, key string) (Decision, error)
}

// localLimiter keeps one token bucket per key in process memory
type localLimiter struct {
	mu       sync.Mutex
	rps      rate.Limit
	burst    int
	clock    adapter.Clock
	limiters map[string]*rate.Limiter
}

// NewLocalLimiter creates a limiter that only counts requests seen by this process
func NewLocalLimiter(cfg config.RateLimitConfig, clock adapter.Clock) (Limiter, error) {
	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &localLimiter{
		rps:      rate.Limit(cfg.RequestsPerSecond),
		burst:    cfg.Burst,
		clock:    clock,
		limiters: make(map[string]*rate.Limiter),
	}, nil
}

func (l *localLimiter) Allow(_ context.Context, key string) (Decision, error) {
	now := l.clock.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	lim, ok := l.limiters[key]
	if !ok {
		if len(l.limiters) >= maxLocalKeys {
			l.evictIdle(now)
		}
		lim = rate.NewLimiter(l.rps, l.burst)
		l.limiters[key] = lim
	}

	r := lim.ReserveN(now, 1)
	if !r.OK() {
		return Decision{Allowed: false}, nil
	}
	if delay := r.DelayFrom(now); delay > 0 {
		r.CancelAt(now)
		return Decision{Allowed: false, RetryAfter: delay}, nil
	}

	return Decision{Allowed: true, Remaining: int(lim.TokensAt(now))}, nil
}

// evictIdle drops limiters whose bucket has refilled, they carry no state worth keeping
func (l *localLimiter) evictIdle(now time.Time) {
	for key, lim := range l.limiters {
		if lim.TokensAt(now) >= float64(l.burst) {
			delete(l.limiters, key)
		}
	}
}

// redisLimiter shares the budget of every key across all API instances through Redis
type redisLimiter struct {
	limiter  adapter.RedisRateLimiter
	limit    redis_rate.Limit
	prefix   string
	fallback Limiter
}

// NewRedisLimiter creates a distributed limiter.
// When fallback is non-nil, Redis errors are logged and the request is checked against it instead.
func NewRedisLimiter(cfg config.RateLimitConfig, rl adapter.RedisRateLimiter, fallback Limiter) (Limiter, error) {
	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &redisLimiter{
		limiter: rl,
		limit: redis_rate.Limit{
			Rate:   cfg.RequestsPerSecond,
			Burst:  cfg.Burst,
			Period: time.Second,
		},
		prefix:   cfg.KeyPrefix,
		fallback: fallback,
	}, nil
}

func (l *redisLimiter) Allow(ctx context.Context, key string) (Decision, error) {
	res, err := l.limiter.Allow(ctx, l.prefix+key, l.limit)
	if err != nil {
		if l.fallback == nil || ctx.Err() != nil {
			return Decision{}, fmt.Errorf("redis rate limiter unavailable: %w", err)
		}
		logger.WarnCtx(ctx, "Redis rate limiter error, falling back to local", zap.String("key", key), zap.Error(err))
		return l.fallback.Allow(ctx, key)
	}

	if res.Allowed == 0 {
		logger.DebugCtx(ctx, "Rate limit exceeded",
			zap.String("key", key),
			zap.Duration("retry_after", res.RetryAfter),
		)
		return Decision{Allowed: false, Remaining: res.Remaining, RetryAfter: res.RetryAfter}, nil
	}

	return Decision{Allowed: true, Remaining: res.Remaining}, nil
}

// validateConfig validates and sets defaults for the configuration
func validateConfig(cfg *config.RateLimitConfig) error {
	if cfg.RequestsPerSecond <= 0 {
		return fmt.Errorf("requests_per_second must be positive")
	}
	if cfg.Burst <= 0 {
		cfg.Burst = cfg.RequestsPerSecond
	}
	if cfg.KeyPrefix == "" {
		cfg.KeyPrefix = "farmtrace:ratelimit:"
	}
	return nil
}
