package store

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// initSQLiteTestDB opens a private in-memory database for each test
func initSQLiteTestDB(t *testing.T) Store {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", uuid.NewString())
	db, err := Open(DriverSQLite, dsn, false)
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	t.Cleanup(func() {
		_ = Close(db)
	})

	return NewPGStore(db)
}

func cleanupSQLiteTestDB(t *testing.T) {
	// The in-memory database is dropped when its last connection closes
}

// TestSQLiteStore runs all store tests against an in-memory SQLite database
func TestSQLiteStore(t *testing.T) {
	RunStoreTests(t, initSQLiteTestDB, cleanupSQLiteTestDB)
}
