package testutil

import (
	"testing"

	"aquafarm/internal/farm"
	"aquafarm/internal/store"
)

// NewTestStore creates a new in-memory SQLite key-value store with the
// schema applied. The store is automatically closed when the test completes.
func NewTestStore(t *testing.T) farm.Store {
	t.Helper()

	sqlDB, err := store.OpenConnection(":memory:")
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}

	if _, err := sqlDB.Exec(store.Schema); err != nil {
		sqlDB.Close()
		t.Fatalf("failed to apply schema: %v", err)
	}

	s := store.NewSQLiteStoreFromDB(sqlDB)

	t.Cleanup(func() {
		s.Close()
	})

	return s
}

// NewMemoryStore creates a plain map-backed store for tests that do not
// need SQLite.
func NewMemoryStore() farm.Store {
	return store.NewMemoryStore()
}
