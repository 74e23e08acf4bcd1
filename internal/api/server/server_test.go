package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"

	"github.com/feral-file/farmtrace/internal/metrics"
	"github.com/feral-file/farmtrace/internal/mocks"
	"github.com/feral-file/farmtrace/internal/ratelimit"
)

func TestRouter_MetricsAndHealth(t *testing.T) {
	ctrl := gomock.NewController(t)
	handler := mocks.NewMockAPIHandler(ctrl)
	reg := prometheus.NewRegistry()

	s := New(Config{}, handler, metrics.New(reg), reg)
	router := s.Router()

	handler.EXPECT().HealthCheck(gomock.Any()).Do(func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `farmtrace_http_request_duration_seconds_count{method="GET",route="/health",status="200"} 1`)
}

func TestRouter_CORSPreflight(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := New(Config{}, mocks.NewMockAPIHandler(ctrl), nil, nil)
	router := s.Router()

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/transfer/request", nil)
	req.Header.Set("Origin", "https://app.example.org")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouter_RateLimitsWrites(t *testing.T) {
	ctrl := gomock.NewController(t)
	handler := mocks.NewMockAPIHandler(ctrl)
	limiter := mocks.NewMockRateLimiter(ctrl)

	s := New(Config{RateLimiter: limiter}, handler, nil, nil)
	router := s.Router()

	limiter.EXPECT().Allow(gomock.Any(), gomock.Any()).Return(ratelimit.Decision{Allowed: false}, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/transfer/request", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)

	// Reads skip the limiter
	handler.EXPECT().GetProduct(gomock.Any()).Do(func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/product/p1", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
