package testdb

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/phrazzld/task-api/internal/config"
	"github.com/phrazzld/task-api/internal/platform/database"
)

// DatabaseURLEnv names the environment variable holding the PostgreSQL URL
// used by integration tests.
const DatabaseURLEnv = "DATABASE_URL"

// silentLogger discards migration output so test logs stay readable.
var silentLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// Open returns a migrated SQLite database unique to t. The database is closed
// when the test completes.
func Open(t *testing.T) *sql.DB {
	t.Helper()

	cfg := config.DatabaseConfig{
		Driver: database.DriverSQLite,
		URL:    filepath.Join(t.TempDir(), "test.db"),
	}
	return open(t, cfg)
}

// ShouldSkipDatabaseTest reports whether no PostgreSQL database is configured.
func ShouldSkipDatabaseTest() bool {
	return os.Getenv(DatabaseURLEnv) == ""
}

// OpenPostgres returns a migrated PostgreSQL database from DATABASE_URL, or
// skips the test when the variable is unset.
func OpenPostgres(t *testing.T) *sql.DB {
	t.Helper()

	if ShouldSkipDatabaseTest() {
		t.Skip(DatabaseURLEnv + " not set - skipping integration test")
	}

	cfg := config.DatabaseConfig{
		Driver:                 database.DriverPostgres,
		URL:                    os.Getenv(DatabaseURLEnv),
		MaxOpenConns:           10,
		MaxIdleConns:           5,
		ConnMaxLifetimeMinutes: 5,
	}
	return open(t, cfg)
}

func open(t *testing.T, cfg config.DatabaseConfig) *sql.DB {
	t.Helper()
	ctx := context.Background()

	db, err := database.Open(ctx, cfg, silentLogger)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Logf("failed to close test database: %v", err)
		}
	})

	migrator, err := database.NewMigrator(db, cfg.Driver, silentLogger)
	if err != nil {
		t.Fatalf("failed to create migrator: %v", err)
	}
	if err := migrator.Up(ctx); err != nil {
		t.Fatalf("failed to apply migrations: %v", err)
	}
	return db
}

// WithTx runs fn inside a transaction that is always rolled back, isolating
// the test's changes from other tests sharing the database.
func WithTx(t *testing.T, db *sql.DB, fn func(t *testing.T, tx *sql.Tx)) {
	t.Helper()

	tx, err := db.BeginTx(context.Background(), nil)
	if err != nil {
		t.Fatalf("failed to begin transaction: %v", err)
	}
	defer func() {
		if err := tx.Rollback(); err != nil && err != sql.ErrTxDone {
			t.Logf("failed to roll back transaction: %v", err)
		}
	}()

	fn(t, tx)
}
