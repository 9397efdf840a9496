// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/protonpass/ios-pass-sub006/internal/adapter"
	"github.com/protonpass/ios-pass-sub006/internal/logger"
	"github.com/protonpass/ios-pass-sub006/internal/store"
)

// aliasNoteSynchronizer applies note changes made on the SimpleLogin side to
// the matching local alias items.
type aliasNoteSynchronizer struct {
	remote   adapter.RemoteDataSource
	items    store.ItemRepository
	pageSize int
	logger   *logger.Logger
}

func NewAliasNoteSynchronizer(remote adapter.RemoteDataSource, items store.ItemRepository, pageSize int, logger *logger.Logger) SatelliteSynchronizer {
	logger.Debug().Msg("creating alias note synchronizer")
	return &aliasNoteSynchronizer{
		remote:   remote,
		items:    items,
		pageSize: pageSize,
		logger:   logger,
	}
}

func (s *aliasNoteSynchronizer) Label() string {
	return "aliasNoteSync"
}

func (s *aliasNoteSynchronizer) Sync(ctx context.Context, accountID string) (bool, error) {
	log := logger.FromContext(ctx)

	access, err := s.remote.GetAccess(ctx, accountID)
	if err != nil {
		return false, err
	}
	if access.PendingNoteCount == 0 {
		return false, nil
	}

	updated := false
	var sinceToken *string
	for {
		if err := ctx.Err(); err != nil {
			return updated, err
		}

		page, err := s.remote.GetPendingAliasNotes(ctx, accountID, sinceToken, s.pageSize)
		if err != nil {
			return updated, err
		}
		if len(page.Notes) == 0 {
			break
		}

		if err := s.items.UpdateAliasNotes(ctx, accountID, page.Notes); err != nil {
			return updated, err
		}
		updated = true

		if page.LastToken == nil {
			break
		}
		sinceToken = page.LastToken
	}

	if updated {
		log.Info().
			Str("func", "*aliasNoteSynchronizer.Sync").
			Str("account_id", accountID).
			Int("pending", access.PendingNoteCount).
			Msg("alias note changes applied")
	}

	return updated, nil
}
