package remote

import (
	"context"
	"fmt"

	"aquafarm/internal/farm"
	"aquafarm/internal/model"
)

// NewRemoteFromConfig creates a farm.Remote implementation based on the
// persisted remote config. A nil config means remote sync is disabled and
// yields (nil, nil).
func NewRemoteFromConfig(ctx context.Context, cfg *model.RemoteConfig) (farm.Remote, error) {
	if cfg == nil {
		return nil, nil
	}
	switch cfg.Type {
	case "", "none":
		return nil, nil
	case "s3":
		return NewS3Remote(ctx, *cfg)
	case "filesystem":
		if cfg.Root == "" {
			return nil, fmt.Errorf("filesystem remote requires root to be set")
		}
		return NewFileSystemRemote(cfg.Root)
	case "memory":
		return NewMemoryRemote(), nil
	default:
		return nil, fmt.Errorf("unknown remote type: %s", cfg.Type)
	}
}
