// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/protonpass/ios-pass-sub006/internal/adapter"
	"github.com/protonpass/ios-pass-sub006/internal/logger"
	"github.com/protonpass/ios-pass-sub006/internal/store"
	"github.com/protonpass/ios-pass-sub006/models"
)

// userEventsSynchronizer drains the account-global change stream: one cursor
// per account instead of one per share. It never bootstraps its own cursor;
// a missing cursor means the account has to go through a full share
// reconciliation first, which is reported to the caller instead of hit over
// the network.
type userEventsSynchronizer struct {
	remote        adapter.RemoteDataSource
	items         store.ItemRepository
	cursors       store.EventCursorRepository
	maxDrainPages int
	logger        *logger.Logger
}

func NewUserEventsSynchronizer(
	remote adapter.RemoteDataSource,
	items store.ItemRepository,
	cursors store.EventCursorRepository,
	maxDrainPages int,
	logger *logger.Logger,
) UserEventsSynchronizer {
	logger.Debug().Msg("creating user events synchronizer")
	return &userEventsSynchronizer{
		remote:        remote,
		items:         items,
		cursors:       cursors,
		maxDrainPages: maxDrainPages,
		logger:        logger,
	}
}

func (s *userEventsSynchronizer) Sync(ctx context.Context, accountID string) (models.UserEventsResult, error) {
	log := logger.FromContext(ctx)

	var result models.UserEventsResult

	cursor, err := s.cursors.GetUserLastEventID(ctx, accountID)
	if err != nil {
		return result, err
	}
	if cursor == "" {
		result.FullRefreshNeeded = true
		return result, nil
	}

	for page := 0; page < s.maxDrainPages; page++ {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		events, err := s.remote.GetUserEvents(ctx, accountID, cursor)
		if err != nil {
			return result, err
		}

		// persisted before applying, even for an empty page
		if events.LatestEventID != "" {
			if err := s.cursors.UpsertUserLastEventID(ctx, accountID, events.LatestEventID); err != nil {
				return result, err
			}
			cursor = events.LatestEventID
		}

		if events.FullRefresh {
			result.FullRefreshNeeded = true
			return result, nil
		}

		// flags only flip false to true across pages
		if events.PlanChanged {
			result.PlanChanged = true
		}

		for _, updated := range events.ItemsUpdated {
			if err := s.items.RefreshItem(ctx, accountID, updated.ShareID, updated.ItemID, updated.EventToken); err != nil {
				return result, err
			}
			result.DataUpdated = true
		}

		if len(events.ItemsDeleted) > 0 {
			if err := s.items.DeleteItems(ctx, events.ItemsDeleted); err != nil {
				return result, err
			}
			result.DataUpdated = true
		}

		if !events.EventsPending {
			break
		}
	}

	log.Debug().
		Str("func", "*userEventsSynchronizer.Sync").
		Str("account_id", accountID).
		Bool("data_updated", result.DataUpdated).
		Bool("plan_changed", result.PlanChanged).
		Msg("account stream drained")

	return result, nil
}
