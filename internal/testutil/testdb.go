package testutil

import (
	"database/sql"
	"testing"

	"github.com/rankor24/BIM-AI-Crew/internal/db"
	"github.com/rankor24/BIM-AI-Crew/internal/store"
)

// NewTestDB creates an in-memory SQLite database with the slot schema
// applied. The database is closed when the test completes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		database.Close()
	})
	return database
}

// NewTestStore creates a Store over a fresh in-memory database.
func NewTestStore(t *testing.T) *store.Store {
	t.Helper()
	return store.New(NewTestDB(t))
}
