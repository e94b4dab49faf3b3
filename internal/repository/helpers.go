package repository

import (
	"database/sql"
	"time"
)

// nullableID stores a zero id as SQL NULL.
func nullableID(id int64) any {
	if id <= 0 {
		return nil
	}
	return id
}

// idFromNull reads a nullable id column, mapping NULL to 0.
func idFromNull(v sql.NullInt64) int64 {
	if !v.Valid {
		return 0
	}
	return v.Int64
}

// nowUTC returns the current UTC time formatted as RFC3339.
func nowUTC() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}
