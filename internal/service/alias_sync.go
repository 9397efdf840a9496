// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/protonpass/ios-pass-sub006/internal/adapter"
	"github.com/protonpass/ios-pass-sub006/internal/logger"
	"github.com/protonpass/ios-pass-sub006/internal/store"
)

// aliasSynchronizer materialises pending SimpleLogin aliases as local items
// in the account's default share. A cheap settings check guards the paging
// work: most passes have nothing pending.
type aliasSynchronizer struct {
	remote   adapter.RemoteDataSource
	items    store.ItemRepository
	pageSize int
	logger   *logger.Logger
}

func NewAliasSynchronizer(remote adapter.RemoteDataSource, items store.ItemRepository, pageSize int, logger *logger.Logger) SatelliteSynchronizer {
	logger.Debug().Msg("creating alias synchronizer")
	return &aliasSynchronizer{
		remote:   remote,
		items:    items,
		pageSize: pageSize,
		logger:   logger,
	}
}

func (s *aliasSynchronizer) Label() string {
	return "aliasSync"
}

func (s *aliasSynchronizer) Sync(ctx context.Context, accountID string) (bool, error) {
	log := logger.FromContext(ctx)

	access, err := s.remote.GetAccess(ctx, accountID)
	if err != nil {
		return false, err
	}
	if !access.AliasSyncEnabled || access.PendingAliasCount == 0 || access.DefaultShareID == "" {
		return false, nil
	}

	created := false
	var sinceToken *string
	for {
		if err := ctx.Err(); err != nil {
			return created, err
		}

		page, err := s.remote.GetPendingAliases(ctx, accountID, sinceToken, s.pageSize)
		if err != nil {
			return created, err
		}
		if len(page.Aliases) == 0 {
			break
		}

		if err := s.items.CreateAliasItems(ctx, accountID, access.DefaultShareID, page.Aliases); err != nil {
			return created, err
		}
		created = true

		if page.LastToken == nil {
			break
		}
		sinceToken = page.LastToken
	}

	if created {
		log.Info().
			Str("func", "*aliasSynchronizer.Sync").
			Str("account_id", accountID).
			Int("pending", access.PendingAliasCount).
			Msg("pending aliases materialised")
	}

	return created, nil
}
