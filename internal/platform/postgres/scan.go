package postgres

import (
	"database/sql"
	"time"
)

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// nullTime converts a nullable column into a UTC *time.Time.
func nullTime(nt sql.NullTime) *time.Time {
	if !nt.Valid {
		return nil
	}
	t := nt.Time.UTC()
	return &t
}

// timeOrNil is the inverse of nullTime for query arguments.
func timeOrNil(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.UTC()
}

// stringOrNil stores empty strings as NULL.
func stringOrNil(s string) any {
	if s == "" {
		return nil
	}
	return s
}
