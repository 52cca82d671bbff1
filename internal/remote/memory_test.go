package remote_test

import (
	"context"
	"errors"
	"testing"

	"aquafarm/internal/model"
	"aquafarm/internal/remote"
)

func TestMemoryRemote(t *testing.T) {
	t.Parallel()

	t.Run("fetch returns an independent copy", func(t *testing.T) {
		t.Parallel()
		r := remote.NewMemoryRemote()

		state := model.DefaultState()
		state.Lines = append(state.Lines, model.Line{ID: "l1", Name: "North"})
		if err := r.Upsert(context.Background(), &model.SyncEnvelope{ID: model.SingletonID, State: state}); err != nil {
			t.Fatalf("Upsert() error = %v", err)
		}

		got, err := r.Fetch(context.Background())
		if err != nil {
			t.Fatalf("Fetch() error = %v", err)
		}
		got.State.Lines[0].Name = "mutated"

		again, err := r.Fetch(context.Background())
		if err != nil {
			t.Fatalf("second Fetch() error = %v", err)
		}
		if again.State.Lines[0].Name != "North" {
			t.Error("mutating a fetched envelope must not affect the stored one")
		}
	})

	t.Run("failure switches", func(t *testing.T) {
		t.Parallel()
		r := remote.NewMemoryRemote()
		boom := errors.New("boom")

		r.FailFetch = boom
		if _, err := r.Fetch(context.Background()); !errors.Is(err, boom) {
			t.Errorf("Fetch() error = %v, want boom", err)
		}
		if err := r.Validate(context.Background()); !errors.Is(err, boom) {
			t.Errorf("Validate() error = %v, want boom", err)
		}

		r.FailFetch = nil
		r.FailUpsert = boom
		err := r.Upsert(context.Background(), &model.SyncEnvelope{ID: model.SingletonID, State: model.DefaultState()})
		if !errors.Is(err, boom) {
			t.Errorf("Upsert() error = %v, want boom", err)
		}
	})
}
