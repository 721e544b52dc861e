// Package testdb provides database fixtures for tests.
//
// Open returns a migrated SQLite database backed by a file in the test's
// temporary directory, so every test gets an isolated schema without any
// external service. OpenPostgres returns a migrated PostgreSQL database when
// DATABASE_URL is set and skips the test otherwise; combine it with WithTx so
// changes are rolled back when the test completes.
//
// Basic usage:
//
//	func TestTaskStore(t *testing.T) {
//	    t.Parallel()
//	    db := testdb.Open(t)
//	    store := postgres.NewPostgresTaskStore(db, nil)
//	    // ...
//	}
package testdb
