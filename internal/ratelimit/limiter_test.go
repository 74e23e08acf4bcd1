package ratelimit_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redis_rate/v10"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/farmtrace/internal/config"
	"github.com/feral-file/farmtrace/internal/mocks"
	"github.com/feral-file/farmtrace/internal/ratelimit"
)

func TestLocalLimiter_Allow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	clock := mocks.NewMockClock(ctrl)
	clock.EXPECT().Now().DoAndReturn(func() time.Time { return now }).AnyTimes()

	l, err := ratelimit.NewLocalLimiter(config.RateLimitConfig{RequestsPerSecond: 1, Burst: 2}, clock)
	require.NoError(t, err)
	ctx := context.Background()

	for i := range 2 {
		d, err := l.Allow(ctx, "10.0.0.1")
		require.NoError(t, err)
		assert.True(t, d.Allowed, "request %d", i)
	}

	d, err := l.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.False(t, d.Allowed)
	assert.Equal(t, time.Second, d.RetryAfter)

	// Keys have independent budgets
	d, err = l.Allow(ctx, "10.0.0.2")
	require.NoError(t, err)
	assert.True(t, d.Allowed)

	// A denied request does not consume a token
	now = now.Add(time.Second)
	d, err = l.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.True(t, d.Allowed)
}

func TestNewLocalLimiter_InvalidConfig(t *testing.T) {
	_, err := ratelimit.NewLocalLimiter(config.RateLimitConfig{}, nil)
	assert.Error(t, err)
}

func TestRedisLimiter_Allow(t *testing.T) {
	limit := redis_rate.Limit{Rate: 5, Burst: 5, Period: time.Second}

	tests := []struct {
		name         string
		result       *redis_rate.Result
		redisErr     error
		withFallback bool
		want         ratelimit.Decision
		wantErr      bool
	}{
		{
			name:   "allowed",
			result: &redis_rate.Result{Limit: limit, Allowed: 1, Remaining: 4},
			want:   ratelimit.Decision{Allowed: true, Remaining: 4},
		},
		{
			name:   "limited",
			result: &redis_rate.Result{Limit: limit, Allowed: 0, Remaining: 0, RetryAfter: 200 * time.Millisecond},
			want:   ratelimit.Decision{Allowed: false, RetryAfter: 200 * time.Millisecond},
		},
		{
			name:         "redis error uses fallback",
			redisErr:     errors.New("connection refused"),
			withFallback: true,
			want:         ratelimit.Decision{Allowed: true, Remaining: 1},
		},
		{
			name:     "redis error without fallback",
			redisErr: errors.New("connection refused"),
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			rl := mocks.NewMockRedisRateLimiter(ctrl)
			rl.EXPECT().
				Allow(gomock.Any(), "farmtrace:ratelimit:10.0.0.1", limit).
				Return(tt.result, tt.redisErr)

			var fallback ratelimit.Limiter
			if tt.withFallback {
				fb := mocks.NewMockRateLimiter(ctrl)
				fb.EXPECT().Allow(gomock.Any(), "10.0.0.1").Return(ratelimit.Decision{Allowed: true, Remaining: 1}, nil)
				fallback = fb
			}

			l, err := ratelimit.NewRedisLimiter(config.RateLimitConfig{RequestsPerSecond: 5}, rl, fallback)
			require.NoError(t, err)

			got, err := l.Allow(context.Background(), "10.0.0.1")
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
