package store_test

import (
	"path/filepath"
	"testing"

	"aquafarm/internal/config"
	"aquafarm/internal/farm"
	"aquafarm/internal/store"
	"aquafarm/internal/testutil"
)

func TestSQLiteStore(t *testing.T) {
	t.Parallel()

	t.Run("get absent key returns nil", func(t *testing.T) {
		t.Parallel()
		s := testutil.NewTestStore(t)

		got, err := s.Get("missing")
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if got != nil {
			t.Errorf("Get(missing) = %v, want nil", got)
		}
	})

	t.Run("put then get", func(t *testing.T) {
		t.Parallel()
		s := testutil.NewTestStore(t)

		if err := s.Put(farm.StateKey, []byte(`{"users":[]}`)); err != nil {
			t.Fatalf("Put() error = %v", err)
		}
		got, err := s.Get(farm.StateKey)
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if string(got) != `{"users":[]}` {
			t.Errorf("Get() = %q", got)
		}
	})

	t.Run("put overwrites", func(t *testing.T) {
		t.Parallel()
		s := testutil.NewTestStore(t)

		if err := s.Put("k", []byte("v1")); err != nil {
			t.Fatalf("Put() error = %v", err)
		}
		if err := s.Put("k", []byte("v2")); err != nil {
			t.Fatalf("second Put() error = %v", err)
		}
		got, err := s.Get("k")
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if string(got) != "v2" {
			t.Errorf("Get() = %q, want v2", got)
		}
	})

	t.Run("delete", func(t *testing.T) {
		t.Parallel()
		s := testutil.NewTestStore(t)

		if err := s.Put("k", []byte("v")); err != nil {
			t.Fatalf("Put() error = %v", err)
		}
		if err := s.Delete("k"); err != nil {
			t.Fatalf("Delete() error = %v", err)
		}
		got, err := s.Get("k")
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if got != nil {
			t.Errorf("Get() after delete = %v, want nil", got)
		}

		// Deleting an absent key is not an error.
		if err := s.Delete("k"); err != nil {
			t.Errorf("Delete(absent) error = %v", err)
		}
	})

	t.Run("keys are independent", func(t *testing.T) {
		t.Parallel()
		s := testutil.NewTestStore(t)

		if err := s.Put(farm.StateKey, []byte("state")); err != nil {
			t.Fatalf("Put() error = %v", err)
		}
		if err := s.Put(farm.SessionKey, []byte("session")); err != nil {
			t.Fatalf("Put() error = %v", err)
		}
		if err := s.Delete(farm.SessionKey); err != nil {
			t.Fatalf("Delete() error = %v", err)
		}

		got, err := s.Get(farm.StateKey)
		if err != nil || string(got) != "state" {
			t.Errorf("Get(state) = %q, %v; deleting another key must not affect it", got, err)
		}
	})
}

func TestNewSQLiteStore_PersistsAcrossOpens(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "aquafarm.db")

	s, err := store.NewSQLiteStore(path)
	if err != nil {
		t.Fatalf("NewSQLiteStore() error = %v", err)
	}
	if err := s.CheckMigrations(); err != nil {
		t.Errorf("CheckMigrations() error = %v", err)
	}
	if err := s.Put("k", []byte("persisted")); err != nil {
		t.Fatalf("Put() error = %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	s2, err := store.NewSQLiteStore(path)
	if err != nil {
		t.Fatalf("reopen NewSQLiteStore() error = %v", err)
	}
	defer s2.Close()

	got, err := s2.Get("k")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if string(got) != "persisted" {
		t.Errorf("Get() after reopen = %q, want persisted", got)
	}
}

func TestNewStoreFromConfig(t *testing.T) {
	t.Parallel()

	t.Run("sqlite", func(t *testing.T) {
		t.Parallel()
		cfg := config.DatabaseConfig{Type: "sqlite", DataDir: t.TempDir()}
		s, err := store.NewStoreFromConfig(cfg)
		if err != nil {
			t.Fatalf("NewStoreFromConfig() error = %v", err)
		}
		defer s.Close()

		if _, ok := s.(*store.SQLiteStore); !ok {
			t.Errorf("store type = %T, want *store.SQLiteStore", s)
		}
	})

	t.Run("memory", func(t *testing.T) {
		t.Parallel()
		cfg := config.DatabaseConfig{Type: "memory"}
		s, err := store.NewStoreFromConfig(cfg)
		if err != nil {
			t.Fatalf("NewStoreFromConfig() error = %v", err)
		}
		defer s.Close()

		if _, ok := s.(*store.MemoryStore); !ok {
			t.Errorf("store type = %T, want *store.MemoryStore", s)
		}
	})

	t.Run("sqlite without data dir", func(t *testing.T) {
		t.Parallel()
		if _, err := store.NewStoreFromConfig(config.DatabaseConfig{Type: "sqlite"}); err == nil {
			t.Error("expected error for sqlite without data_dir")
		}
	})

	t.Run("unknown type", func(t *testing.T) {
		t.Parallel()
		if _, err := store.NewStoreFromConfig(config.DatabaseConfig{Type: "cassandra"}); err == nil {
			t.Error("expected error for unknown type")
		}
	})
}
