// Package database opens the application's *sql.DB for the configured driver
// and applies the embedded schema migrations with goose.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/phrazzld/task-api/internal/config"
	"github.com/phrazzld/task-api/internal/redact"

	// Register database/sql drivers: "pgx" and "sqlite".
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// Supported values of config.DatabaseConfig.Driver.
const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite"
)

// sqliteParams are appended to every SQLite DSN that does not already set
// the keyed option.
var sqliteParams = []struct{ key, param string }{
	{"foreign_keys", "_pragma=foreign_keys(1)"},
	{"busy_timeout", "_pragma=busy_timeout(5000)"},
	{"journal_mode", "_pragma=journal_mode(WAL)"},
	{"_time_format", "_time_format=sqlite"},
}

// pingTimeout bounds the connectivity check performed by Open.
const pingTimeout = 5 * time.Second

// Open establishes a connection for cfg.Driver, configures the pool and
// verifies connectivity.
func Open(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (*sql.DB, error) {
	if logger == nil {
		logger = slog.Default()
	}

	var (
		db  *sql.DB
		err error
	)
	switch cfg.Driver {
	case DriverPostgres:
		db, err = sql.Open(DriverPostgres, cfg.URL)
		if err != nil {
			return nil, fmt.Errorf("failed to open database connection: %s", redact.Error(err))
		}
		db.SetMaxOpenConns(cfg.MaxOpenConns)
		db.SetMaxIdleConns(cfg.MaxIdleConns)
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime())
	case DriverSQLite:
		db, err = sql.Open(DriverSQLite, SQLiteDSN(cfg.URL))
		if err != nil {
			return nil, fmt.Errorf("failed to open database connection: %s", redact.Error(err))
		}
		// SQLite serializes writers; one connection avoids SQLITE_BUSY under load.
		db.SetMaxOpenConns(1)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %s", redact.Error(err))
	}

	logger.Info("database connection established",
		slog.String("driver", cfg.Driver),
		slog.String("url", MaskURL(cfg.URL)))
	return db, nil
}

// SQLiteDSN adds the pragmas the stores rely on (foreign keys, busy timeout,
// WAL, sortable time format) to a SQLite path or file: URI.
func SQLiteDSN(dsn string) string {
	var missing []string
	for _, p := range sqliteParams {
		if !strings.Contains(dsn, p.key) {
			missing = append(missing, p.param)
		}
	}
	if len(missing) == 0 {
		return dsn
	}

	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + strings.Join(missing, "&")
}

// MaskURL hides the password of a connection URL for logging. URLs without
// a password are returned unchanged; unparseable ones are redacted whole.
func MaskURL(dbURL string) string {
	parsed, err := url.Parse(dbURL)
	if err != nil {
		return redact.String(dbURL)
	}
	if parsed.User == nil {
		return dbURL
	}
	if _, ok := parsed.User.Password(); !ok {
		return dbURL
	}
	return strings.Replace(parsed.Redacted(), ":xxxxx@", ":****@", 1)
}
