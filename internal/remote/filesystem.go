package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"aquafarm/internal/farm"
	"aquafarm/internal/model"
)

// FileSystemRemote mirrors the aggregate to a directory, typically on a
// mounted network share. The singleton row is a single JSON file:
//
//	<root>/farm_data/singleton.json
type FileSystemRemote struct {
	root    string
	dataDir string
}

var _ farm.Remote = (*FileSystemRemote)(nil)

// NewFileSystemRemote creates a filesystem remote rooted at the given path.
func NewFileSystemRemote(root string) (*FileSystemRemote, error) {
	dataDir := filepath.Join(root, "farm_data")
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create remote data directory: %w", err)
	}
	return &FileSystemRemote{root: root, dataDir: dataDir}, nil
}

func (r *FileSystemRemote) path() string {
	return filepath.Join(r.dataDir, model.SingletonID+".json")
}

// Fetch reads the singleton file; absent means never synced.
func (r *FileSystemRemote) Fetch(_ context.Context) (*model.SyncEnvelope, error) {
	data, err := os.ReadFile(r.path())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading remote state: %w", err)
	}

	var env model.SyncEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("parsing remote state: %w", err)
	}
	return &env, nil
}

// Upsert replaces the singleton file using an atomic write (temp file +
// rename).
func (r *FileSystemRemote) Upsert(_ context.Context, env *model.SyncEnvelope) error {
	data, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("encoding remote state: %w", err)
	}

	// Create temp file in the same directory to ensure atomic rename works
	tmpFile, err := os.CreateTemp(r.dataDir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	success := false
	defer func() {
		if !success {
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		tmpFile.Close()
		return fmt.Errorf("failed to write data: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmpPath, r.path()); err != nil {
		return fmt.Errorf("failed to rename temp file: %w", err)
	}

	success = true
	return nil
}

// Validate verifies that the remote root is accessible.
func (r *FileSystemRemote) Validate(_ context.Context) error {
	info, err := os.Stat(r.root)
	if err != nil {
		return fmt.Errorf("remote root not accessible: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("remote root is not a directory: %s", r.root)
	}
	return nil
}
