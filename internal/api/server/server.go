package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/feral-file/farmtrace/internal/api/middleware"
	"github.com/feral-file/farmtrace/internal/api/rest"
	"github.com/feral-file/farmtrace/internal/logger"
	"github.com/feral-file/farmtrace/internal/metrics"
	"github.com/feral-file/farmtrace/internal/ratelimit"
)

// Config holds the server configuration
type Config struct {
	Debug        bool
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	Auth         middleware.AuthConfig
	// RateLimiter limits mutating requests per client; nil disables limiting
	RateLimiter ratelimit.Limiter
}

// Server wraps the HTTP server
type Server struct {
	config     Config
	handler    rest.Handler
	metrics    *metrics.Metrics
	gatherer   prometheus.Gatherer
	httpServer *http.Server
}

// New creates a new API server
func New(cfg Config, handler rest.Handler, m *metrics.Metrics, gatherer prometheus.Gatherer) *Server {
	return &Server{
		config:   cfg,
		handler:  handler,
		metrics:  m,
		gatherer: gatherer,
	}
}

// Router builds the gin engine with every middleware and route
func (s *Server) Router() *gin.Engine {
	// Set Gin mode based on debug flag
	if s.config.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Setup middleware
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())
	router.Use(middleware.Metrics(s.metrics))
	router.Use(middleware.SetupCORS())
	if s.config.RateLimiter != nil {
		router.Use(middleware.RateLimit(s.config.RateLimiter))
	}

	if s.gatherer != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{})))
	}

	rest.SetupRoutes(router, s.handler, s.config.Auth)

	return router
}

// Start initializes and starts the HTTP server
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.Router(),
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
		IdleTimeout:  s.config.IdleTimeout,
	}

	logger.Info("Starting API server",
		zap.String("address", addr),
		zap.Bool("auth", s.config.Auth.Enabled),
		zap.Bool("rate_limit", s.config.RateLimiter != nil),
	)

	// Start server
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	logger.Info("Shutting down API server")

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			return fmt.Errorf("failed to shutdown server: %w", err)
		}
	}

	return nil
}
