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
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/feral-file/farmtrace/internal/adapter"
	"github.com/feral-file/farmtrace/internal/config"
	"github.com/feral-file/farmtrace/internal/ledger"
	"github.com/feral-file/farmtrace/internal/lock"
	"github.com/feral-file/farmtrace/internal/logger"
	"github.com/feral-file/farmtrace/internal/metrics"
	"github.com/feral-file/farmtrace/internal/store"
	"github.com/feral-file/farmtrace/internal/sweeper"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadReconcilerConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "farmtrace-reconciler",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting ownership reconciler")

	// Connect to database
	db, err := store.Open(cfg.Database.Driver, cfg.Database.DSN(), cfg.Debug)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err), zap.String("driver", cfg.Database.Driver))
	}
	defer func() {
		_ = store.Close(db)
	}()

	// Configure connection pool
	if cfg.Database.Driver != config.DriverSQLite {
		if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
			logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
		}
	}
	logger.InfoCtx(ctx, "Connected to database",
		zap.Int("max_open_conns", cfg.Database.MaxOpenConns),
		zap.Int("max_idle_conns", cfg.Database.MaxIdleConns),
	)

	// Initialize store
	dataStore := store.NewPGStore(db)

	// Initialize clock adapter
	clock := adapter.NewClock()

	// The reconciler must take the same product lock as the API,
	// otherwise a repair could interleave with an accept
	var locker lock.Locker
	if cfg.Redis.Addr != "" {
		redisClient := adapter.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
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
	} else {
		locker = lock.NewLocalLocker()
		logger.WarnCtx(ctx, "Redis not configured; repairs are only serialized within this process")
	}

	m := metrics.New(prometheus.NewRegistry())
	ownershipLedger := ledger.NewLedger(dataStore, ledger.NewHasher(adapter.NewJSON(), adapter.NewJCS()), clock, m)

	// Initialize ownership reconciler
	reconciler := sweeper.NewOwnershipReconciler(sweeper.OwnershipReconcilerConfig{
		Interval:         cfg.Reconciler.Interval,
		BatchSize:        cfg.Reconciler.BatchSize,
		WorkerPoolSize:   cfg.Reconciler.Worker.WorkerPoolSize,
		RepairMaxElapsed: cfg.Reconciler.RepairMaxElapsed,
	}, dataStore, ownershipLedger, locker, clock, m)

	logger.InfoCtx(ctx, "Initialized ownership reconciler (continuous mode)",
		zap.Duration("interval", cfg.Reconciler.Interval),
		zap.Int("batch_size", cfg.Reconciler.BatchSize),
		zap.Int("worker_pool_size", cfg.Reconciler.Worker.WorkerPoolSize),
	)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	runUntilSignal(ctx, cancel, reconciler, sigCh, 10*time.Second)
}

// runUntilSignal runs s until a signal arrives or Start fails, then stops it within stopTimeout
func runUntilSignal(ctx context.Context, cancel context.CancelFunc, s sweeper.Sweeper, sigCh <-chan os.Signal, stopTimeout time.Duration) {
	errChan := make(chan error, 1)
	go func() {
		if err := s.Start(ctx); err != nil {
			errChan <- err
		}
	}()

	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
	case err := <-errChan:
		logger.ErrorCtx(ctx, err, zap.String("component", s.Name()))
	}

	// Cancel context to stop the sweeper
	cancel()

	// Give the sweeper time to finish the in-flight pass
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), stopTimeout)
	defer shutdownCancel()

	if err := s.Stop(shutdownCtx); err != nil {
		logger.ErrorCtx(shutdownCtx, err)
	}

	logger.InfoCtx(shutdownCtx, "Sweeper stopped", zap.String("component", s.Name()))
}
