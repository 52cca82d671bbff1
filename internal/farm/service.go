package farm

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"aquafarm/internal/model"
)

// FarmService is the orchestration layer owning the single authoritative
// in-memory aggregate. Every mutation produces a new aggregate and funnels
// through setState, which persists locally and mirrors remotely.
type FarmService struct {
	store  Store
	remote Remote // nil when remote sync is not configured
	logger Logger
	clock  Clock
	idgen  IDGenerator

	state   *model.AppState
	session *model.Session
}

// NewFarmService creates a new FarmService with the provided dependencies.
// remote may be nil; every sync step is then a no-op.
func NewFarmService(store Store, remote Remote, logger Logger, clock Clock, idgen IDGenerator) *FarmService {
	return &FarmService{
		store:  store,
		remote: remote,
		logger: logger,
		clock:  clock,
		idgen:  idgen,
	}
}

// SetRemote swaps the remote adapter. Used after the remote configuration
// changes at runtime.
func (s *FarmService) SetRemote(r Remote) { s.remote = r }

// Load runs the full load protocol: recover the saved session, read the
// local aggregate (falling back to the canonical default when absent or
// malformed), then — if a remote store is configured — fetch the singleton
// row and let it overwrite the local aggregate unconditionally.
// Load never fails because of bad persisted data or an unreachable remote;
// both degrade to local-only operation.
func (s *FarmService) Load() error {
	s.restoreSession()

	state, err := s.loadLocal()
	if err != nil {
		return err
	}

	if s.remote != nil {
		env, err := s.remote.Fetch(context.Background())
		switch {
		case err != nil:
			s.logger.Warn("remote unreachable, operating in local mode", "error", err)
		case env != nil && env.State != nil:
			state = env.State
			model.Normalize(state)
			if !env.LastSync.IsZero() {
				state.LastSync = env.LastSync.UTC().Format(time.RFC3339)
			}
			// Remote wins on load; mirror it back into local storage.
			if b, err := json.Marshal(state); err == nil {
				if err := s.store.Put(StateKey, b); err != nil {
					s.logger.Warn("writing remote state to local store", "error", err)
				}
			}
			s.logger.Info("state loaded from remote store")
		}
	}

	s.state = state
	return nil
}

// loadLocal reads the aggregate blob from the local store. An absent key or
// a blob that fails to parse yields the canonical default aggregate.
func (s *FarmService) loadLocal() (*model.AppState, error) {
	raw, err := s.store.Get(StateKey)
	if err != nil {
		return nil, fmt.Errorf("reading local state: %w", err)
	}
	if raw == nil {
		return model.DefaultState(), nil
	}

	var state model.AppState
	if err := json.Unmarshal(raw, &state); err != nil {
		s.logger.Warn("local state is malformed, using defaults", "error", err)
		return model.DefaultState(), nil
	}
	model.Normalize(&state)
	return &state, nil
}

// State returns the current aggregate. Callers must treat it as an
// immutable snapshot; mutations go through the service operations.
func (s *FarmService) State() *model.AppState {
	return s.state
}

// setState replaces the aggregate: serialize and write the local blob
// synchronously, then attempt a best-effort remote upsert. Remote failures
// are logged and swallowed — the local copy is already safe, sync is simply
// delayed until the next save.
func (s *FarmService) setState(next *model.AppState) error {
	b, err := json.Marshal(next)
	if err != nil {
		return fmt.Errorf("encoding state: %w", err)
	}
	if err := s.store.Put(StateKey, b); err != nil {
		return fmt.Errorf("saving state: %w", err)
	}
	s.state = next

	if s.remote != nil {
		env := &model.SyncEnvelope{
			ID:       model.SingletonID,
			State:    next,
			LastSync: s.clock.Now().UTC(),
		}
		if err := s.remote.Upsert(context.Background(), env); err != nil {
			s.logger.Error("remote upsert failed, sync delayed until next save", "error", err)
		} else {
			next.LastSync = env.LastSync.Format(time.RFC3339)
		}
	}

	return nil
}

// requireUser returns the logged-in user or ErrNotLoggedIn.
func (s *FarmService) requireUser() (model.User, error) {
	if s.session == nil {
		return model.User{}, ErrNotLoggedIn
	}
	return s.session.User, nil
}

// requireEditor returns the logged-in user if they may mutate records.
func (s *FarmService) requireEditor() (model.User, error) {
	u, err := s.requireUser()
	if err != nil {
		return model.User{}, err
	}
	if !u.CanEdit {
		return model.User{}, ErrPermissionDenied
	}
	return u, nil
}
