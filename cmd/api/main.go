package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/feral-file/farmtrace/internal/adapter"
	"github.com/feral-file/farmtrace/internal/api/middleware"
	"github.com/feral-file/farmtrace/internal/api/rest"
	"github.com/feral-file/farmtrace/internal/api/server"
	"github.com/feral-file/farmtrace/internal/config"
	"github.com/feral-file/farmtrace/internal/directory"
	"github.com/feral-file/farmtrace/internal/ledger"
	"github.com/feral-file/farmtrace/internal/lock"
	"github.com/feral-file/farmtrace/internal/logger"
	"github.com/feral-file/farmtrace/internal/messaging"
	"github.com/feral-file/farmtrace/internal/metrics"
	"github.com/feral-file/farmtrace/internal/notify"
	"github.com/feral-file/farmtrace/internal/product"
	"github.com/feral-file/farmtrace/internal/providers/jetstream"
	"github.com/feral-file/farmtrace/internal/ratelimit"
	"github.com/feral-file/farmtrace/internal/store"
	"github.com/feral-file/farmtrace/internal/sweeper"
	"github.com/feral-file/farmtrace/internal/transfer"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadAPIConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "farmtrace-api",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting farmtrace API")

	// Connect to database
	db, err := store.Open(cfg.Database.Driver, cfg.Database.DSN(), cfg.Debug)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err), zap.String("driver", cfg.Database.Driver))
	}
	defer func() {
		if err := store.Close(db); err != nil {
			logger.Error(err, zap.String("message", "Failed to close database"))
		}
	}()

	// Configure connection pool (SQLite keeps its single connection)
	if cfg.Database.Driver != config.DriverSQLite {
		if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
			logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
		}
	}
	logger.InfoCtx(ctx, "Connected to database",
		zap.String("driver", cfg.Database.Driver),
		zap.Int("max_open_conns", cfg.Database.MaxOpenConns),
		zap.Int("max_idle_conns", cfg.Database.MaxIdleConns),
	)

	if cfg.Database.AutoMigrate {
		if err := store.Migrate(db); err != nil {
			logger.FatalCtx(ctx, "Failed to migrate database", zap.Error(err))
		}
		logger.InfoCtx(ctx, "Database schema migrated")
	}

	// Initialize store
	dataStore := store.NewPGStore(db)

	// Initialize adapters
	clock := adapter.NewClock()
	jsonAdapter := adapter.NewJSON()

	// Initialize metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(registry)

	// Initialize the per-product lock
	var locker lock.Locker
	var redisClient adapter.RedisClient
	if cfg.Redis.Addr != "" {
		redisClient = adapter.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err := redisClient.Ping(ctx); err != nil {
			logger.FatalCtx(ctx, "Failed to connect to Redis", zap.Error(err), zap.String("addr", cfg.Redis.Addr))
		}
		defer func() {
			_ = redisClient.Close()
		}()
		locker = lock.NewRedisLocker(redisClient, lock.RedisConfig{
			Prefix: cfg.Redis.KeyPrefix,
			TTL:    cfg.Ledger.LockTTL,
			Wait:   cfg.Ledger.LockWait,
		})
		logger.InfoCtx(ctx, "Using Redis product lock", zap.String("addr", cfg.Redis.Addr))
	} else {
		locker = lock.NewLocalLocker()
		logger.WarnCtx(ctx, "Redis not configured, using in-process product lock; run a single API instance")
	}

	// Initialize the request rate limiter
	var limiter ratelimit.Limiter
	if cfg.RateLimit.Enabled {
		limiter, err = ratelimit.NewLocalLimiter(cfg.RateLimit, clock)
		if err != nil {
			logger.FatalCtx(ctx, "Failed to create rate limiter", zap.Error(err))
		}
		if redisClient != nil {
			limiter, err = ratelimit.NewRedisLimiter(cfg.RateLimit, redisClient.NewRateLimiter(), limiter)
			if err != nil {
				logger.FatalCtx(ctx, "Failed to create Redis rate limiter", zap.Error(err))
			}
		}
		logger.InfoCtx(ctx, "Rate limiting mutating requests",
			zap.Int("requests_per_second", cfg.RateLimit.RequestsPerSecond),
			zap.Bool("distributed", redisClient != nil),
		)
	}

	// Connect to NATS JetStream for notification events
	var publisher messaging.Publisher
	if cfg.NATS.URL != "" {
		publisher, err = jetstream.NewPublisher(ctx, jetstream.Config{
			URL:            cfg.NATS.URL,
			StreamName:     cfg.NATS.StreamName,
			SubjectPrefix:  cfg.NATS.SubjectPrefix,
			MaxReconnects:  cfg.NATS.MaxReconnects,
			ReconnectWait:  cfg.NATS.ReconnectWait,
			ConnectionName: cfg.NATS.ConnectionName,
		}, adapter.NewNatsJetStream(), jsonAdapter)
		if err != nil {
			logger.FatalCtx(ctx, "Failed to connect to NATS", zap.Error(err), zap.String("url", cfg.NATS.URL))
		}
		defer publisher.Close()
		logger.InfoCtx(ctx, "Connected to NATS JetStream", zap.String("stream", cfg.NATS.StreamName))
	}

	// Initialize services
	notifier := notify.NewNotifier(notify.Config{
		PoolSize:  cfg.Notifier.WorkerPoolSize,
		QueueSize: cfg.Notifier.WorkerQueueSize,
	}, dataStore, publisher, clock, m)
	defer notifier.Close()

	ownershipLedger := ledger.NewLedger(dataStore, ledger.NewHasher(jsonAdapter, adapter.NewJCS()), clock, m)
	products := product.NewService(dataStore, ownershipLedger, notifier, clock)
	workflow := transfer.NewWorkflow(transfer.Config{
		AcceptMaxRetries:     cfg.Ledger.AcceptMaxRetries,
		RetryInitialInterval: cfg.Ledger.RetryInitialInterval,
		RetryMaxInterval:     cfg.Ledger.RetryMaxInterval,
	}, dataStore, ownershipLedger, locker, notifier, clock, m)
	users := directory.NewDirectory(dataStore, clock)
	inbox := notify.NewInbox(dataStore)

	// Optionally run the ownership reconciler in-process
	var reconciler sweeper.OwnershipReconciler
	if cfg.Reconciler.Enabled {
		reconciler = sweeper.NewOwnershipReconciler(sweeper.OwnershipReconcilerConfig{
			Interval:         cfg.Reconciler.Interval,
			BatchSize:        cfg.Reconciler.BatchSize,
			WorkerPoolSize:   cfg.Reconciler.Worker.WorkerPoolSize,
			RepairMaxElapsed: cfg.Reconciler.RepairMaxElapsed,
		}, dataStore, ownershipLedger, locker, clock, m)
		go func() {
			if err := reconciler.Start(ctx); err != nil {
				logger.ErrorCtx(ctx, err, zap.String("component", reconciler.Name()))
			}
		}()
		logger.InfoCtx(ctx, "Started in-process ownership reconciler", zap.Duration("interval", cfg.Reconciler.Interval))
	}

	// Create server config
	serverConfig := server.Config{
		Debug:        cfg.Debug,
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
		Auth: middleware.AuthConfig{
			Enabled:      cfg.Auth.Enabled,
			JWTPublicKey: cfg.Auth.JWTPublicKey,
			APIKeys:      cfg.Auth.APIKeys,
		},
		RateLimiter: limiter,
	}

	// Create and start server
	handler := rest.NewHandler(products, workflow, ownershipLedger, users, inbox, dataStore)
	srv := server.New(serverConfig, handler, m, registry)

	// Start server in a goroutine
	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil {
			errCh <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "server"))
		cancel()
	}

	// Create shutdown context with timeout (don't use canceled ctx)
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	logger.InfoCtx(shutdownCtx, "Shutting down server...")

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.ErrorCtx(shutdownCtx, err, zap.String("component", "server"))
	}

	if reconciler != nil {
		if err := reconciler.Stop(shutdownCtx); err != nil {
			logger.ErrorCtx(shutdownCtx, err, zap.String("component", reconciler.Name()))
		}
	}

	// Use non-context logger for final message since original ctx is canceled
	logger.Info("API server stopped")
}
