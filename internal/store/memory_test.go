package store_test

import (
	"testing"

	"aquafarm/internal/store"
)

func TestMemoryStore(t *testing.T) {
	t.Parallel()

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()
		s := store.NewMemoryStore()

		if err := s.Put("k", []byte("v")); err != nil {
			t.Fatalf("Put() error = %v", err)
		}
		got, err := s.Get("k")
		if err != nil || string(got) != "v" {
			t.Errorf("Get() = %q, %v", got, err)
		}

		if err := s.Delete("k"); err != nil {
			t.Fatalf("Delete() error = %v", err)
		}
		got, err = s.Get("k")
		if err != nil || got != nil {
			t.Errorf("Get() after delete = %v, %v; want nil, nil", got, err)
		}
	})

	t.Run("values are copied", func(t *testing.T) {
		t.Parallel()
		s := store.NewMemoryStore()

		in := []byte("original")
		if err := s.Put("k", in); err != nil {
			t.Fatalf("Put() error = %v", err)
		}
		in[0] = 'X'

		got, err := s.Get("k")
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if string(got) != "original" {
			t.Errorf("Get() = %q, stored value must not alias the caller's slice", got)
		}

		got[0] = 'Y'
		again, _ := s.Get("k")
		if string(again) != "original" {
			t.Error("mutating a returned value must not affect the store")
		}
	})
}
