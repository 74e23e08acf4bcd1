package store

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

// openPGTestDB connects to an external database when TEST_DB_HOST is set,
// otherwise it starts a PostgreSQL container for the duration of the test
func openPGTestDB(t *testing.T) *gorm.DB {
	ctx := context.Background()

	var dsn string
	if dbHost := os.Getenv("TEST_DB_HOST"); dbHost != "" {
		dbPort := os.Getenv("TEST_DB_PORT")
		if dbPort == "" {
			dbPort = "5432"
		}
		dbUser := os.Getenv("TEST_DB_USER")
		if dbUser == "" {
			dbUser = "postgres"
		}
		dbPassword := os.Getenv("TEST_DB_PASSWORD")
		if dbPassword == "" {
			dbPassword = "postgres"
		}
		dbName := os.Getenv("TEST_DB_NAME")
		if dbName == "" {
			dbName = "test_db"
		}

		dsn = fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			dbHost, dbPort, dbUser, dbPassword, dbName)
	} else {
		testcontainers.SkipIfProviderIsNotHealthy(t)

		pgContainer, err := postgres.Run(ctx,
			"postgres:18-alpine",
			postgres.WithDatabase("test_db"),
			postgres.WithUsername("postgres"),
			postgres.WithPassword("postgres"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(30*time.Second)),
		)
		require.NoError(t, err)
		t.Cleanup(func() {
			if err := pgContainer.Terminate(context.Background()); err != nil {
				t.Logf("Failed to terminate PostgreSQL container: %v", err)
			}
		})

		dsn, err = pgContainer.ConnectionString(ctx, "sslmode=disable")
		require.NoError(t, err)
	}

	db, err := Open(DriverPostgres, dsn, false)
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	t.Cleanup(func() {
		_ = Close(db)
	})

	return db
}

// TestPostgreSQLStore runs all store tests against PostgreSQL.
// Each test runs inside a transaction that is rolled back afterwards.
func TestPostgreSQLStore(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping PostgreSQL store tests in short mode")
	}

	testDB := openPGTestDB(t)

	initPGTestDB := func(t *testing.T) Store {
		tx := testDB.Begin()
		require.NotNil(t, tx)
		require.NoError(t, tx.Error)

		t.Cleanup(func() {
			tx.Rollback()
		})

		return NewPGStore(tx)
	}

	// Cleanup is handled by transaction rollback in t.Cleanup
	cleanupPGTestDB := func(t *testing.T) {}

	RunStoreTests(t, initPGTestDB, cleanupPGTestDB)
}
