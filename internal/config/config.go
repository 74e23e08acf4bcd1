package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// BaseConfig holds base configuration
type BaseConfig struct {
	Debug     bool   `mapstructure:"debug"`
	SentryDSN string `mapstructure:"sentry_dsn"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver"` // postgres or sqlite
	Path            string        `mapstructure:"path"`   // SQLite file or DSN, used when driver is sqlite
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`     // Maximum number of open connections to the database
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`     // Maximum number of idle connections in the pool
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`  // Maximum amount of time a connection may be reused (e.g., "5m", "1h")
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"` // Maximum amount of time a connection may be idle (e.g., "10m", "30m")
	AutoMigrate     bool          `mapstructure:"auto_migrate"`       // Run schema migration at startup
}

// NATSConfig holds NATS JetStream configuration.
// Publishing is disabled when URL is empty.
type NATSConfig struct {
	URL            string        `mapstructure:"url"`
	StreamName     string        `mapstructure:"stream_name"`
	SubjectPrefix  string        `mapstructure:"subject_prefix"`
	MaxReconnects  int           `mapstructure:"max_reconnects"`
	ReconnectWait  time.Duration `mapstructure:"reconnect_wait"`
	ConnectionName string        `mapstructure:"connection_name"`
}

// RedisConfig holds Redis configuration for the distributed product lock.
// An in-process lock is used when Addr is empty.
type RedisConfig struct {
	Addr      string `mapstructure:"addr"`
	Password  string `mapstructure:"password"`
	DB        int    `mapstructure:"db"`
	KeyPrefix string `mapstructure:"key_prefix"`
}

// LedgerConfig holds ownership ledger write settings
type LedgerConfig struct {
	AcceptMaxRetries     uint64        `mapstructure:"accept_max_retries"`
	RetryInitialInterval time.Duration `mapstructure:"retry_initial_interval"`
	RetryMaxInterval     time.Duration `mapstructure:"retry_max_interval"`
	LockTTL              time.Duration `mapstructure:"lock_ttl"`
	LockWait             time.Duration `mapstructure:"lock_wait"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	ReadTimeout  int    `mapstructure:"read_timeout"`  // in seconds
	WriteTimeout int    `mapstructure:"write_timeout"` // in seconds
	IdleTimeout  int    `mapstructure:"idle_timeout"`  // in seconds
}

// AuthConfig holds authentication configuration
type AuthConfig struct {
	Enabled      bool     `mapstructure:"enabled"`
	JWTPublicKey string   `mapstructure:"jwt_public_key"`
	APIKeys      []string `mapstructure:"api_keys"`
}

// RateLimitConfig holds per-client limits for mutating API requests
type RateLimitConfig struct {
	Enabled           bool   `mapstructure:"enabled"`
	RequestsPerSecond int    `mapstructure:"requests_per_second"`
	Burst             int    `mapstructure:"burst"`
	KeyPrefix         string `mapstructure:"key_prefix"`
}

// WorkerConfig holds worker configuration
type WorkerConfig struct {
	WorkerPoolSize  int `mapstructure:"pool_size"`
	WorkerQueueSize int `mapstructure:"queue_size"`
}

// OwnershipReconcilerConfig holds configuration for the ownership reconciler
type OwnershipReconcilerConfig struct {
	Enabled          bool          `mapstructure:"enabled"` // only read by the API, which can run the reconciler in-process
	Interval         time.Duration `mapstructure:"interval"`
	BatchSize        int           `mapstructure:"batch_size"`
	RepairMaxElapsed time.Duration `mapstructure:"repair_max_elapsed"`
	Worker           WorkerConfig  `mapstructure:"worker"`
}

// APIConfig holds configuration for API server
type APIConfig struct {
	BaseConfig `mapstructure:",squash"`
	Server     ServerConfig              `mapstructure:"server"`
	Database   DatabaseConfig            `mapstructure:"database"`
	Auth       AuthConfig                `mapstructure:"auth"`
	RateLimit  RateLimitConfig           `mapstructure:"rate_limit"`
	NATS       NATSConfig                `mapstructure:"nats"`
	Redis      RedisConfig               `mapstructure:"redis"`
	Ledger     LedgerConfig              `mapstructure:"ledger"`
	Notifier   WorkerConfig              `mapstructure:"notifier"`
	Reconciler OwnershipReconcilerConfig `mapstructure:"reconciler"`
}

// ReconcilerConfig holds configuration for the reconciler program
type ReconcilerConfig struct {
	BaseConfig `mapstructure:",squash"`
	Database   DatabaseConfig            `mapstructure:"database"`
	Redis      RedisConfig               `mapstructure:"redis"`
	Ledger     LedgerConfig              `mapstructure:"ledger"`
	Reconciler OwnershipReconcilerConfig `mapstructure:"reconciler"`
}

// CtlConfig holds configuration for the operator CLI
type CtlConfig struct {
	BaseConfig `mapstructure:",squash"`
	Database   DatabaseConfig            `mapstructure:"database"`
	Redis      RedisConfig               `mapstructure:"redis"`
	Ledger     LedgerConfig              `mapstructure:"ledger"`
	Reconciler OwnershipReconcilerConfig `mapstructure:"reconciler"`
}

// LoadAPIConfig loads configuration for API server
func LoadAPIConfig(configFile string, envPath string) (*APIConfig, error) {
	v := configureViper("api", configFile, envPath)

	// Set defaults
	setCommonDefaults(v)
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 10)
	v.SetDefault("server.idle_timeout", 120)
	v.SetDefault("auth.enabled", false)
	v.SetDefault("rate_limit.enabled", false)
	v.SetDefault("rate_limit.requests_per_second", 10)
	v.SetDefault("rate_limit.burst", 20)
	v.SetDefault("rate_limit.key_prefix", "farmtrace:ratelimit:")
	v.SetDefault("nats.stream_name", "FARMTRACE_NOTIFICATIONS")
	v.SetDefault("nats.subject_prefix", "farmtrace.notifications")
	v.SetDefault("nats.max_reconnects", 10)
	v.SetDefault("nats.reconnect_wait", "2s")
	v.SetDefault("nats.connection_name", "farmtrace-api")
	v.SetDefault("notifier.pool_size", 4)
	v.SetDefault("notifier.queue_size", 1024)
	v.SetDefault("reconciler.enabled", false)

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var config APIConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Database.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// LoadReconcilerConfig loads configuration for the reconciler program
func LoadReconcilerConfig(configFile string, envPath string) (*ReconcilerConfig, error) {
	v := configureViper("reconciler", configFile, envPath)

	// Set defaults
	setCommonDefaults(v)
	v.SetDefault("database.max_open_conns", 5)
	v.SetDefault("database.max_idle_conns", 2)

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var config ReconcilerConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Database.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// LoadCtlConfig loads configuration for the operator CLI
func LoadCtlConfig(configFile string, envPath string) (*CtlConfig, error) {
	v := configureViper("farmtracectl", configFile, envPath)

	// Set defaults
	setCommonDefaults(v)
	v.SetDefault("database.max_open_conns", 2)
	v.SetDefault("database.max_idle_conns", 1)

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var config CtlConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Database.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// setCommonDefaults sets the defaults shared by every program
func setCommonDefaults(v *viper.Viper) {
	v.SetDefault("debug", false)
	v.SetDefault("database.driver", DriverPostgres)
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_open_conns", 20)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "1h")
	v.SetDefault("database.conn_max_idle_time", "10m")
	v.SetDefault("database.auto_migrate", false)
	v.SetDefault("redis.key_prefix", "farmtrace:lock:")
	v.SetDefault("ledger.accept_max_retries", 3)
	v.SetDefault("ledger.retry_initial_interval", "50ms")
	v.SetDefault("ledger.retry_max_interval", "1s")
	v.SetDefault("ledger.lock_ttl", "30s")
	v.SetDefault("ledger.lock_wait", "5s")
	v.SetDefault("reconciler.interval", "5m")
	v.SetDefault("reconciler.batch_size", 100)
	v.SetDefault("reconciler.repair_max_elapsed", "30s")
	v.SetDefault("reconciler.worker.pool_size", 4)
	v.SetDefault("reconciler.worker.queue_size", 100)
}

// readConfig reads the config file, falling back to environment variables when none exists
func readConfig(v *viper.Viper) error {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist) {
			// Config file not found, use environment variables
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}
	return nil
}

// configureViper returns a viper instance with the config file and environment variables set
func configureViper(service string, configFile string, envPath string) *viper.Viper {
	v := viper.New()

	// Load environment variables
	loadEnv(envPath, service)

	// Set config file
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		// Search for config.yaml in multiple locations:
		// 1. Current directory
		v.AddConfigPath(".")
		// 2. Service-specific directory (e.g., cmd/api/, cmd/reconciler/)
		v.AddConfigPath(fmt.Sprintf("cmd/%s/", service))
		// 3. Config directory
		v.AddConfigPath("config/")
	}

	// Set environment variables
	v.SetEnvPrefix("FARMTRACE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Explicitly bind all environment variables
	bindAllEnvVars(v)
	return v
}

// bindAllEnvVars explicitly binds all possible environment variables
// This is required for viper to map env vars to config struct fields when no config file exists
func bindAllEnvVars(v *viper.Viper) {
	// Common config keys
	commonKeys := []string{
		"debug",
		"sentry_dsn",
		// Database
		"database.driver",
		"database.path",
		"database.host",
		"database.port",
		"database.user",
		"database.password",
		"database.dbname",
		"database.sslmode",
		"database.max_open_conns",
		"database.max_idle_conns",
		"database.conn_max_lifetime",
		"database.conn_max_idle_time",
		"database.auto_migrate",
		// NATS
		"nats.url",
		"nats.stream_name",
		"nats.subject_prefix",
		"nats.max_reconnects",
		"nats.reconnect_wait",
		"nats.connection_name",
		// Redis
		"redis.addr",
		"redis.password",
		"redis.db",
		"redis.key_prefix",
		// Ledger
		"ledger.accept_max_retries",
		"ledger.retry_initial_interval",
		"ledger.retry_max_interval",
		"ledger.lock_ttl",
		"ledger.lock_wait",
		// Server
		"server.host",
		"server.port",
		"server.read_timeout",
		"server.write_timeout",
		"server.idle_timeout",
		// Auth
		"auth.enabled",
		"auth.jwt_public_key",
		"auth.api_keys",
		// Rate limit
		"rate_limit.enabled",
		"rate_limit.requests_per_second",
		"rate_limit.burst",
		"rate_limit.key_prefix",
		// Notifier
		"notifier.pool_size",
		"notifier.queue_size",
		// Reconciler
		"reconciler.enabled",
		"reconciler.interval",
		"reconciler.batch_size",
		"reconciler.repair_max_elapsed",
		"reconciler.worker.pool_size",
		"reconciler.worker.queue_size",
	}

	for _, key := range commonKeys {
		_ = v.BindEnv(key)
	}
}

// loadEnv loads environment variables from the config directory
func loadEnv(envPath string, service string) {
	// Always try shared base first, then local, then optional per-service local.
	envFiles := []string{".env", ".env.local"}
	if service != "" {
		envFiles = append(envFiles, ".env."+service+".local")
	}

	// Default to config directory
	if envPath == "" {
		envPath = "config/"
	}

	// Create candidates list
	for _, envFile := range envFiles {
		candidate := filepath.Join(envPath, envFile)
		_ = godotenv.Overload(candidate) // Overload lets later files override earlier ones
	}
}

// ChdirRepoRoot changes the current working directory to the repository root
func ChdirRepoRoot() {
	cwd, _ := os.Getwd()
	for range 5 {
		if _, err := os.Stat(filepath.Join(cwd, "config")); err == nil {
			_ = os.Chdir(cwd)
			return
		}
		cwd = filepath.Dir(cwd)
	}
}

// Validate checks the fields required by the selected driver
func (c *DatabaseConfig) Validate() error {
	switch c.Driver {
	case DriverSQLite:
		if c.Path == "" {
			return errors.New("database.path is required for the sqlite driver")
		}
	case DriverPostgres, "":
		if c.Host == "" {
			return errors.New("database.host is required")
		}
		if c.DBName == "" {
			return errors.New("database.dbname is required")
		}
	default:
		return fmt.Errorf("unsupported database.driver: %s", c.Driver)
	}
	return nil
}

// DSN returns the database connection string
func (c *DatabaseConfig) DSN() string {
	if c.Driver == DriverSQLite {
		return c.Path
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}
