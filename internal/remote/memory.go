package remote

import (
	"context"
	"sync"

	"aquafarm/internal/farm"
	"aquafarm/internal/model"
)

// MemoryRemote is an in-memory implementation of the farm.Remote
// interface, useful for testing. Safe for concurrent use.
type MemoryRemote struct {
	mu  sync.RWMutex
	env *model.SyncEnvelope

	// FailFetch and FailUpsert force errors, simulating an unreachable
	// remote store.
	FailFetch  error
	FailUpsert error
}

var _ farm.Remote = (*MemoryRemote)(nil)

// NewMemoryRemote creates an empty in-memory remote.
func NewMemoryRemote() *MemoryRemote {
	return &MemoryRemote{}
}

// Fetch returns the stored envelope, or (nil, nil) if nothing was upserted.
func (m *MemoryRemote) Fetch(_ context.Context) (*model.SyncEnvelope, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.FailFetch != nil {
		return nil, m.FailFetch
	}
	if m.env == nil {
		return nil, nil
	}
	env := *m.env
	env.State = m.env.State.Clone()
	return &env, nil
}

// Upsert replaces the stored envelope.
func (m *MemoryRemote) Upsert(_ context.Context, env *model.SyncEnvelope) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.FailUpsert != nil {
		return m.FailUpsert
	}
	stored := *env
	stored.State = env.State.Clone()
	m.env = &stored
	return nil
}

// Validate fails only when Fetch is forced to fail.
func (m *MemoryRemote) Validate(_ context.Context) error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.FailFetch
}

// Seed stores an envelope directly, bypassing the failure switches.
func (m *MemoryRemote) Seed(env *model.SyncEnvelope) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.env = env
}
