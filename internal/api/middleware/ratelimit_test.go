package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/feral-file/farmtrace/internal/mocks"
	"github.com/feral-file/farmtrace/internal/ratelimit"
)

func TestRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		method     string
		decision   ratelimit.Decision
		limiterErr error
		callsLimit bool
		wantStatus int
		wantRetry  string
	}{
		{name: "reads are not limited", method: http.MethodGet, wantStatus: http.StatusOK},
		{name: "allowed write", method: http.MethodPost, callsLimit: true, decision: ratelimit.Decision{Allowed: true, Remaining: 3}, wantStatus: http.StatusOK},
		{name: "limited write", method: http.MethodPost, callsLimit: true, decision: ratelimit.Decision{RetryAfter: 1500 * time.Millisecond}, wantStatus: http.StatusTooManyRequests, wantRetry: "2"},
		{name: "limiter failure lets request through", method: http.MethodPatch, callsLimit: true, limiterErr: errors.New("redis down"), wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			limiter := mocks.NewMockRateLimiter(ctrl)
			if tt.callsLimit {
				limiter.EXPECT().Allow(gomock.Any(), "192.0.2.1").Return(tt.decision, tt.limiterErr)
			}

			router := gin.New()
			router.Use(RateLimit(limiter))
			router.Handle(tt.method, "/resource", func(c *gin.Context) {
				c.Status(http.StatusOK)
			})

			req := httptest.NewRequest(tt.method, "/resource", nil)
			req.RemoteAddr = "192.0.2.1:4321"
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantRetry, w.Header().Get("Retry-After"))
			if tt.wantStatus == http.StatusTooManyRequests {
				assert.JSONEq(t, `{"error":{"code":"too_many_requests","message":"Too many requests"}}`, w.Body.String())
			}
		})
	}
}
