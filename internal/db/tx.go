// Package db holds database/sql helpers shared by the library index and
// the session store.
package db

import (
	"context"
	"database/sql"
)

// WithTx executes fn within a transaction.
// It handles Begin, Rollback on error, and Commit on success.
func WithTx(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback() //nolint:errcheck // rollback on error is intentional

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}

// NullInt returns the value as an int, or 0 if not valid.
func NullInt(n sql.NullInt64) int {
	if !n.Valid {
		return 0
	}
	return int(n.Int64)
}

// NullString returns the string value or empty string if not valid.
func NullString(n sql.NullString) string {
	if !n.Valid {
		return ""
	}
	return n.String
}

// OptionalInt stores zero as NULL. Tags such as year or disc number use
// zero for "unknown".
func OptionalInt(v int64) sql.NullInt64 {
	return sql.NullInt64{Int64: v, Valid: v != 0}
}

// OptionalString stores the empty string as NULL.
func OptionalString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
