package testutil

import (
	"aquafarm/internal/remote"
)

// NewTestRemote creates a new in-memory remote store for testing.
func NewTestRemote() *remote.MemoryRemote {
	return remote.NewMemoryRemote()
}
