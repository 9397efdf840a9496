// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/protonpass/ios-pass-sub006/internal/adapter"
	"github.com/protonpass/ios-pass-sub006/internal/config"
	"github.com/protonpass/ios-pass-sub006/internal/crypto"
	"github.com/protonpass/ios-pass-sub006/internal/logger"
)

// Storages groups all local cache repositories into a single value that can
// be passed around the service layer.
type Storages struct {
	ShareRepository       ShareRepository
	ItemRepository        ItemRepository
	EventCursorRepository EventCursorRepository
	ShareKeyRepository    ShareKeyRepository
}

// NewStorages initialises the local cache layer: opens the SQLite database
// at cfg.DSN (creating the file if needed), runs pending schema migrations
// and wires every repository to the shared connection.
func NewStorages(ctx context.Context, cfg config.Storage, remote adapter.RemoteDataSource, cipher crypto.LocalCipher, keys crypto.SymmetricKeyProvider, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	return &Storages{
		ShareRepository:       NewShareRepository(db, logger),
		ItemRepository:        NewItemRepository(db, remote, cipher, keys, logger),
		EventCursorRepository: NewEventCursorRepository(db, logger),
		ShareKeyRepository:    NewShareKeyRepository(db, logger),
	}, nil
}
