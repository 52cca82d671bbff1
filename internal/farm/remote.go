package farm

import (
	"context"

	"aquafarm/internal/model"
)

// Remote provides an interface for the optional remote mirror of the
// aggregate. The remote store holds exactly one row, keyed by
// model.SingletonID; operations are point read-by-key and upsert-by-key.
//
// Callers treat every Remote failure as non-fatal: the local copy stays
// authoritative and sync is retried on the next save.
type Remote interface {
	// Fetch reads the singleton row. Returns (nil, nil) when the row has
	// never been written.
	Fetch(ctx context.Context) (*model.SyncEnvelope, error)

	// Upsert inserts or replaces the singleton row.
	Upsert(ctx context.Context, env *model.SyncEnvelope) error

	// Validate verifies that the remote store is reachable and properly
	// configured.
	Validate(ctx context.Context) error
}
