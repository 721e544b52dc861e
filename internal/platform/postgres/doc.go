// Package postgres implements the store interfaces on database/sql.
//
// Queries use PostgreSQL's numbered placeholders ($1, $2, ...) and restrict
// themselves to syntax SQLite also understands, so the same stores run on
// the pgx driver in production and on the embedded modernc.org/sqlite driver
// in local development and tests. Driver-specific integrity errors are
// normalized by MapError.
package postgres
