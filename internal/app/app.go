package app

import (
	"context"
	"fmt"
	"os"
	"time"

	"aquafarm/internal/config"
	"aquafarm/internal/encryption"
	"aquafarm/internal/farm"
	"aquafarm/internal/remote"
	"aquafarm/internal/store"
)

// FarmApp is the application layer between the CLI and FarmService.
// It constructs all dependencies from config, loads the farm state
// (and syncs from the remote when one is configured), and manages
// resource lifecycle on Close.
type FarmApp struct {
	cfg       *config.Config
	store     farm.Store
	encryptor farm.Encryptor
	service   *farm.FarmService
	logFile   *os.File
}

// NewFarmApp creates a fully wired FarmApp from the given config.
// operation identifies the CLI command being run (e.g. "Login", "StockCage").
// The caller must call Close when done.
func NewFarmApp(cfg *config.Config, operation string) (*FarmApp, error) {
	st, err := store.NewStoreFromConfig(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("creating store: %w", err)
	}

	if checker, ok := st.(interface{ CheckMigrations() error }); ok {
		if err := checker.CheckMigrations(); err != nil {
			st.Close()
			return nil, fmt.Errorf("store schema out of date: %w", err)
		}
	}

	enc, err := encryption.NewEncryptorFromConfig(cfg.Encryption)
	if err != nil {
		st.Close()
		return nil, fmt.Errorf("creating encryptor: %w", err)
	}

	opID := time.Now().UTC().Format("20060102T150405Z")
	logger, logFile, err := newLogger(cfg.LogDir, opID)
	if err != nil {
		st.Close()
		return nil, fmt.Errorf("creating logger: %w", err)
	}
	l := &slogAdapter{l: logger.With("op", operation)}

	svc := farm.NewFarmService(st, nil, l, farm.RealClock{}, farm.UUIDGenerator{})

	// A remote is optional. A broken remote configuration must not lock the
	// operator out of their local data, so failures here degrade to local-only.
	remoteCfg, err := farm.LoadRemoteConfig(st, l)
	if err != nil {
		l.Warn("reading remote configuration failed, continuing local-only", "error", err)
	} else if remoteCfg != nil {
		rem, err := remote.NewRemoteFromConfig(context.Background(), remoteCfg)
		if err != nil {
			l.Warn("remote backend unavailable, continuing local-only", "error", err)
		} else {
			svc.SetRemote(rem)
		}
	}

	if err := svc.Load(); err != nil {
		st.Close()
		logFile.Close()
		return nil, fmt.Errorf("loading farm state: %w", err)
	}

	return &FarmApp{
		cfg:       cfg,
		store:     st,
		encryptor: enc,
		service:   svc,
		logFile:   logFile,
	}, nil
}

// Service returns the underlying FarmService.
func (a *FarmApp) Service() *farm.FarmService { return a.service }

// Encryptor returns the configured encryptor.
func (a *FarmApp) Encryptor() farm.Encryptor { return a.encryptor }

// Config returns the application config.
func (a *FarmApp) Config() *config.Config { return a.cfg }

// Close releases all resources held by the app.
func (a *FarmApp) Close() error {
	var firstErr error

	if err := a.store.Close(); err != nil {
		firstErr = fmt.Errorf("closing store: %w", err)
	}

	if a.logFile != nil {
		a.logFile.Close()
	}

	return firstErr
}
