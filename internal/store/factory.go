package store

import (
	"fmt"
	"os"
	"path/filepath"

	"aquafarm/internal/config"
	"aquafarm/internal/farm"
)

// NewStoreFromConfig creates a farm.Store implementation based on the
// database config type.
func NewStoreFromConfig(cfg config.DatabaseConfig) (farm.Store, error) {
	switch cfg.Type {
	case "sqlite":
		if cfg.DataDir == "" {
			return nil, fmt.Errorf("data_dir required for sqlite database")
		}
		if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
			return nil, fmt.Errorf("creating data directory: %w", err)
		}
		return NewSQLiteStore(filepath.Join(cfg.DataDir, "aquafarm.db"))
	case "memory":
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown database type: %s", cfg.Type)
	}
}
