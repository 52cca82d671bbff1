package remote_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"aquafarm/internal/model"
	"aquafarm/internal/remote"
)

func TestFileSystemRemote(t *testing.T) {
	t.Parallel()

	t.Run("fetch before any upsert returns nil", func(t *testing.T) {
		t.Parallel()
		r, err := remote.NewFileSystemRemote(t.TempDir())
		if err != nil {
			t.Fatalf("NewFileSystemRemote() error = %v", err)
		}

		env, err := r.Fetch(context.Background())
		if err != nil {
			t.Fatalf("Fetch() error = %v", err)
		}
		if env != nil {
			t.Errorf("Fetch() = %+v, want nil for never-synced remote", env)
		}
	})

	t.Run("upsert then fetch round trip", func(t *testing.T) {
		t.Parallel()
		root := t.TempDir()
		r, err := remote.NewFileSystemRemote(root)
		if err != nil {
			t.Fatalf("NewFileSystemRemote() error = %v", err)
		}

		state := model.DefaultState()
		state.Lines = append(state.Lines, model.Line{ID: "l1", Name: "North"})
		in := &model.SyncEnvelope{
			ID:       model.SingletonID,
			State:    state,
			LastSync: time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC),
		}

		if err := r.Upsert(context.Background(), in); err != nil {
			t.Fatalf("Upsert() error = %v", err)
		}

		// The singleton file lives under farm_data/.
		if _, err := os.Stat(filepath.Join(root, "farm_data", "singleton.json")); err != nil {
			t.Fatalf("singleton file missing: %v", err)
		}

		got, err := r.Fetch(context.Background())
		if err != nil {
			t.Fatalf("Fetch() error = %v", err)
		}
		if got.ID != model.SingletonID {
			t.Errorf("ID = %q, want singleton", got.ID)
		}
		if !got.LastSync.Equal(in.LastSync) {
			t.Errorf("LastSync = %v, want %v", got.LastSync, in.LastSync)
		}
		if len(got.State.Lines) != 1 || got.State.Lines[0].Name != "North" {
			t.Errorf("State.Lines = %+v", got.State.Lines)
		}
	})

	t.Run("upsert replaces prior row", func(t *testing.T) {
		t.Parallel()
		r, err := remote.NewFileSystemRemote(t.TempDir())
		if err != nil {
			t.Fatalf("NewFileSystemRemote() error = %v", err)
		}

		first := model.DefaultState()
		first.Lines = append(first.Lines, model.Line{ID: "old"})
		if err := r.Upsert(context.Background(), &model.SyncEnvelope{ID: model.SingletonID, State: first}); err != nil {
			t.Fatalf("Upsert() error = %v", err)
		}

		second := model.DefaultState()
		second.Lines = append(second.Lines, model.Line{ID: "new"})
		if err := r.Upsert(context.Background(), &model.SyncEnvelope{ID: model.SingletonID, State: second}); err != nil {
			t.Fatalf("second Upsert() error = %v", err)
		}

		got, err := r.Fetch(context.Background())
		if err != nil {
			t.Fatalf("Fetch() error = %v", err)
		}
		if len(got.State.Lines) != 1 || got.State.Lines[0].ID != "new" {
			t.Errorf("State.Lines = %+v, want only the new line", got.State.Lines)
		}
	})

	t.Run("validate", func(t *testing.T) {
		t.Parallel()
		root := t.TempDir()
		r, err := remote.NewFileSystemRemote(root)
		if err != nil {
			t.Fatalf("NewFileSystemRemote() error = %v", err)
		}

		if err := r.Validate(context.Background()); err != nil {
			t.Errorf("Validate() error = %v", err)
		}

		if err := os.RemoveAll(root); err != nil {
			t.Fatalf("RemoveAll() error = %v", err)
		}
		if err := r.Validate(context.Background()); err == nil {
			t.Error("Validate() should fail after the root disappears")
		}
	})
}
