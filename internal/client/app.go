// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"
	"os"

	"github.com/protonpass/ios-pass-sub006/internal/adapter"
	"github.com/protonpass/ios-pass-sub006/internal/backoff"
	"github.com/protonpass/ios-pass-sub006/internal/config"
	"github.com/protonpass/ios-pass-sub006/internal/crypto"
	"github.com/protonpass/ios-pass-sub006/internal/keymanager"
	"github.com/protonpass/ios-pass-sub006/internal/logger"
	"github.com/protonpass/ios-pass-sub006/internal/service"
	"github.com/protonpass/ios-pass-sub006/internal/store"
)

// App is the assembled sync engine. The host process signs accounts in and
// out, chooses the foreground account, and drives the lifecycle with Run;
// everything else happens in the background loop.
type App struct {
	cfg      *config.Config
	logger   *logger.Logger
	remote   adapter.RemoteDataSource
	accounts *accountRegistry
	loop     service.SyncLoop
}

var _ Engine = (*App)(nil)

// NewApp wires transport, storage, key management and the event loop.
// observer may be nil; userEventsEnabled may be nil to always use the full
// share reconciliation path.
func NewApp(ctx context.Context, cfg *config.Config, userEventsEnabled service.UserEventsToggle, observer service.LoopObserver, log *logger.Logger) (*App, error) {
	cipher := crypto.NewLocalCipher()

	salt, err := loadOrCreateSalt(cfg.Storage.DSN)
	if err != nil {
		return nil, fmt.Errorf("load key derivation salt: %w", err)
	}
	localKeys := crypto.NewDerivedKeyProvider(cfg.App.LocalKeySecret, salt)

	remote := adapter.NewHTTPRemoteDataSource(adapter.HTTPClientConfig{
		BaseURL: cfg.Remote.BaseURL,
		Timeout: cfg.Remote.RequestTimeout,
	})

	storages, err := store.NewStorages(ctx, cfg.Storage, remote, cipher, localKeys, log)
	if err != nil {
		return nil, fmt.Errorf("create local storages: %w", err)
	}

	accounts := newAccountRegistry()
	keys := keymanager.NewKeyManager(remote, storages.ShareKeyRepository, cipher, accounts, log)

	reconciler := service.NewEventSynchronizer(
		remote,
		storages.ShareRepository,
		storages.ItemRepository,
		storages.EventCursorRepository,
		keys,
		cfg.Sync.MaxDrainPages,
		log,
	)
	userEvents := service.NewUserEventsSynchronizer(
		remote,
		storages.ItemRepository,
		storages.EventCursorRepository,
		cfg.Sync.MaxDrainPages,
		log,
	)
	satellites := []service.SatelliteSynchronizer{
		service.NewAliasSynchronizer(remote, storages.ItemRepository, cfg.Sync.AliasPageSize, log),
		service.NewAliasNoteSynchronizer(remote, storages.ItemRepository, cfg.Sync.AliasPageSize, log),
	}

	loop := service.NewSyncEventLoop(
		reconciler,
		userEvents,
		userEventsEnabled,
		satellites,
		accounts,
		adapter.NewNetReachability(cfg.Remote.BaseURL, cfg.Remote.RequestTimeout),
		backoff.NewManager(backoff.SystemDateProvider{}),
		cfg.Sync,
		observer,
		log,
	)

	return &App{
		cfg:      cfg,
		logger:   log,
		remote:   remote,
		accounts: accounts,
		loop:     loop,
	}, nil
}

// SignIn registers an account with its session token and user key material.
// The first signed-in account becomes the foreground account.
func (a *App) SignIn(accountID, sessionToken string, userKey []byte) {
	a.remote.SetSessionToken(accountID, sessionToken)
	a.accounts.add(accountID, userKey)
	a.logger.Info().Str("account_id", accountID).Msg("account signed in")
}

// SignOut removes the account from sync fan-out. Locally cached data stays
// on disk; the host decides separately whether to wipe it.
func (a *App) SignOut(accountID string) {
	a.accounts.remove(accountID)
	a.logger.Info().Str("account_id", accountID).Msg("account signed out")
}

// SetForegroundAccount picks the account whose satellite jobs and extra
// tasks run. Unknown IDs are ignored.
func (a *App) SetForegroundAccount(accountID string) {
	a.accounts.setForeground(accountID)
}

// ForceSync triggers an immediate sync cycle.
func (a *App) ForceSync() {
	a.loop.ForceSync()
}

// AddTask registers an extra per-cycle task under a unique label.
func (a *App) AddTask(label string, task service.TaskFunc) error {
	return a.loop.AddTask(label, task)
}

// RemoveTask unregisters a previously added task.
func (a *App) RemoveTask(label string) {
	a.loop.RemoveTask(label)
}

// Run implements [Engine].
func (a *App) Run(ctx context.Context) error {
	a.loop.Start(ctx)
	defer a.loop.Stop()

	<-ctx.Done()
	a.logger.Info().Msg("shutting down sync engine")
	return nil
}

// loadOrCreateSalt keeps the Argon2 salt in a sidecar file next to the
// local database, creating it on first run. The salt is not a secret. An
// in-memory database gets a fresh salt every run.
func loadOrCreateSalt(dsn string) ([]byte, error) {
	if dsn == ":memory:" {
		return crypto.GenerateSalt()
	}

	path := dsn + ".salt"
	salt, err := os.ReadFile(path)
	if err == nil && len(salt) > 0 {
		return salt, nil
	}
	if err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	salt, err = crypto.GenerateSalt()
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(path, salt, 0o600); err != nil {
		return nil, err
	}
	return salt, nil
}
