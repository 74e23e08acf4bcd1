package main

import (
	"fmt"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/gorm"

	"github.com/feral-file/farmtrace/internal/adapter"
	"github.com/feral-file/farmtrace/internal/config"
	"github.com/feral-file/farmtrace/internal/ledger"
	"github.com/feral-file/farmtrace/internal/lock"
	"github.com/feral-file/farmtrace/internal/logger"
	"github.com/feral-file/farmtrace/internal/metrics"
	"github.com/feral-file/farmtrace/internal/store"
)

const programName = "farmtracectl"

// app carries the configuration and adapters shared by every subcommand
type app struct {
	configFile string
	envPath    string
	debug      bool

	cfg  *config.CtlConfig
	fs   adapter.FileSystem
	json adapter.JSON
}

func newApp() *app {
	return &app{
		fs:   adapter.NewFileSystem(),
		json: adapter.NewJSON(),
	}
}

// load reads the configuration and initializes the logger
func (a *app) load() error {
	cfg, err := config.LoadCtlConfig(a.configFile, a.envPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if a.debug {
		cfg.Debug = true
	}
	a.cfg = cfg

	return logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": programName,
		},
	})
}

// openDB connects to the configured database. Callers close it with store.Close.
func (a *app) openDB() (*gorm.DB, error) {
	db, err := store.Open(a.cfg.Database.Driver, a.cfg.Database.DSN(), a.cfg.Debug)
	if err != nil {
		return nil, err
	}

	if a.cfg.Database.Driver != config.DriverSQLite {
		if err := store.ConfigureConnectionPool(db, a.cfg.Database.MaxOpenConns, a.cfg.Database.MaxIdleConns, a.cfg.Database.ConnMaxLifetime, a.cfg.Database.ConnMaxIdleTime); err != nil {
			_ = store.Close(db)
			return nil, err
		}
	}

	logger.Debug("Connected to database", zap.String("driver", a.cfg.Database.Driver))
	return db, nil
}

// newLedger builds a ledger over the given store
func (a *app) newLedger(st store.Store) ledger.Ledger {
	return ledger.NewLedger(st, ledger.NewHasher(a.json, adapter.NewJCS()), adapter.NewClock(), metrics.New(prometheus.NewRegistry()))
}

// newLocker returns the product lock shared with the API, and a function releasing its connection
func (a *app) newLocker(cmd *cobra.Command) (lock.Locker, func(), error) {
	if a.cfg.Redis.Addr == "" {
		logger.Warn("Redis not configured; the product lock is not shared with running services")
		return lock.NewLocalLocker(), func() {}, nil
	}

	client := adapter.NewRedisClient(a.cfg.Redis.Addr, a.cfg.Redis.Password, a.cfg.Redis.DB)
	if err := client.Ping(cmd.Context()); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	locker := lock.NewRedisLocker(client, lock.RedisConfig{
		Prefix: a.cfg.Redis.KeyPrefix,
		TTL:    a.cfg.Ledger.LockTTL,
		Wait:   a.cfg.Ledger.LockWait,
	})
	return locker, func() { _ = client.Close() }, nil
}

// printJSON writes v as indented JSON to the command output
func (a *app) printJSON(cmd *cobra.Command, v any) error {
	data, err := a.json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}

func newRootCommand(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           programName,
		Short:         "Operate the farmtrace ownership ledger",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Offline verification needs no configuration
			if cmd.Name() == "verify" && cmd.Flags().Changed("file") {
				return nil
			}
			return a.load()
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.configFile, "config", "", "Path to configuration file")
	rootCmd.PersistentFlags().StringVar(&a.envPath, "env", "config/", "Path to environment files")
	rootCmd.PersistentFlags().BoolVarP(&a.debug, "debug", "D", false, "enable debug logging")

	rootCmd.AddCommand(
		migrateCommand(a),
		verifyCommand(a),
		chainCommand(a),
		reconcileCommand(a),
	)

	return rootCmd
}

func main() {
	config.ChdirRepoRoot()

	rootCmd := newRootCommand(newApp())
	err := rootCmd.Execute()
	logger.Flush(2 * time.Second)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", programName, err)
		os.Exit(1)
	}
}
