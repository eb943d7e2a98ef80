package db

import (
	"database/sql"
	"fmt"
)

// State lives in a single key-value table: one row per slot, the whole slot
// serialized as one JSON blob. Writes are therefore atomic at slot
// granularity and slots load and fail independently of each other.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS slots (
		name       TEXT PRIMARY KEY,
		value      TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,
}

// Migrate runs all schema migrations. Statements are idempotent.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
