// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/protonpass/ios-pass-sub006/internal/adapter"
	"github.com/protonpass/ios-pass-sub006/internal/keymanager"
	"github.com/protonpass/ios-pass-sub006/internal/logger"
	"github.com/protonpass/ios-pass-sub006/internal/store"
	"github.com/protonpass/ios-pass-sub006/models"
)

// eventSynchronizer is the [ShareSynchronizer] implementation. One Sync call
// is one full pass: reconcile the share topology against the remote list,
// then drain every surviving share's event stream. Shares are processed
// concurrently; within one share pages apply strictly in order.
type eventSynchronizer struct {
	remote        adapter.RemoteDataSource
	shares        store.ShareRepository
	items         store.ItemRepository
	cursors       store.EventCursorRepository
	keys          keymanager.KeyManager
	maxDrainPages int
	logger        *logger.Logger
}

func NewEventSynchronizer(
	remote adapter.RemoteDataSource,
	shares store.ShareRepository,
	items store.ItemRepository,
	cursors store.EventCursorRepository,
	keys keymanager.KeyManager,
	maxDrainPages int,
	logger *logger.Logger,
) ShareSynchronizer {
	logger.Debug().Msg("creating event synchronizer")
	return &eventSynchronizer{
		remote:        remote,
		shares:        shares,
		items:         items,
		cursors:       cursors,
		keys:          keys,
		maxDrainPages: maxDrainPages,
		logger:        logger,
	}
}

func (s *eventSynchronizer) Sync(ctx context.Context, accountID string) (bool, error) {
	log := logger.FromContext(ctx)

	localShares, err := s.shares.GetShares(ctx, accountID)
	if err != nil {
		return false, err
	}
	remoteShares, err := s.remote.GetShares(ctx, accountID)
	if err != nil {
		return false, err
	}

	var hadNewEvents atomic.Bool
	if !models.SharesLooselyEqual(localShares, remoteShares) {
		hadNewEvents.Store(true)
	}

	localByID := make(map[string]models.Share, len(localShares))
	for _, share := range localShares {
		localByID[share.ShareID] = share
	}
	remoteByID := make(map[string]models.Share, len(remoteShares))
	for _, share := range remoteShares {
		remoteByID[share.ShareID] = share
	}

	// create/update phase: every remote share in parallel. One share
	// failing must not cancel its siblings or skip the delete phase, so
	// the goroutines run on the parent context and the first error is
	// only reported once everything finished.
	var g errgroup.Group
	for _, remoteShare := range remoteShares {
		remoteShare := remoteShare
		g.Go(func() error {
			_, known := localByID[remoteShare.ShareID]

			var shareHadNew bool
			var err error
			if known {
				shareHadNew, err = s.syncKnownShare(ctx, accountID, remoteShare)
			} else {
				shareHadNew, err = s.bootstrapNewShare(ctx, accountID, remoteShare)
			}
			if shareHadNew {
				hadNewEvents.Store(true)
			}
			return err
		})
	}
	firstErr := g.Wait()

	// delete phase: every local share missing remotely in parallel
	var d errgroup.Group
	for _, localShare := range localShares {
		if _, stillRemote := remoteByID[localShare.ShareID]; stillRemote {
			continue
		}
		localShare := localShare
		d.Go(func() error {
			deleted, err := s.confirmAndDeleteShare(ctx, accountID, localShare.ShareID)
			if deleted {
				hadNewEvents.Store(true)
			}
			return err
		})
	}
	if err := d.Wait(); err != nil && firstErr == nil {
		firstErr = err
	}
	if firstErr != nil {
		return hadNewEvents.Load(), firstErr
	}

	log.Debug().
		Str("func", "*eventSynchronizer.Sync").
		Str("account_id", accountID).
		Bool("had_new_events", hadNewEvents.Load()).
		Msg("share pass finished")

	return hadNewEvents.Load(), nil
}

// syncKnownShare refreshes the metadata of an already known share and drains
// its event stream.
func (s *eventSynchronizer) syncKnownShare(ctx context.Context, accountID string, share models.Share) (bool, error) {
	if err := s.shares.UpsertShares(ctx, accountID, []models.Share{share}); err != nil {
		return false, err
	}
	return s.drainShare(ctx, accountID, share.ShareID)
}

// bootstrapNewShare makes a remotely discovered share usable locally: warm
// its latest key, persist it, pull the full item listing, and position the
// cursor at the current end of its stream. An inactive user key makes the
// share unusable for now but must not fail the whole pass.
func (s *eventSynchronizer) bootstrapNewShare(ctx context.Context, accountID string, share models.Share) (bool, error) {
	log := logger.FromContext(ctx)

	if _, err := s.keys.GetLatestShareKey(ctx, accountID, share.ShareID); err != nil {
		if keymanager.IsInactiveUserKey(err) {
			log.Warn().
				Str("func", "*eventSynchronizer.bootstrapNewShare").
				Str("share_id", share.ShareID).
				Msg("user key inactive, skipping share")
			return false, nil
		}
		return false, err
	}

	if err := s.shares.UpsertShares(ctx, accountID, []models.Share{share}); err != nil {
		return false, err
	}
	if err := s.items.RefreshItems(ctx, accountID, share.ShareID); err != nil {
		return false, err
	}

	eventID, err := s.remote.GetShareLastEventID(ctx, accountID, share.ShareID)
	if err != nil {
		return false, err
	}
	if err := s.cursors.UpsertShareLastEventID(ctx, accountID, share.ShareID, eventID); err != nil {
		return false, err
	}

	return true, nil
}

// confirmAndDeleteShare handles a share that vanished from the remote list.
// Absence alone is not proof of deletion (list endpoints can lag), so the
// share is deleted locally only once a targeted event fetch answers with the
// disabled-share code.
func (s *eventSynchronizer) confirmAndDeleteShare(ctx context.Context, accountID string, shareID string) (bool, error) {
	log := logger.FromContext(ctx)

	cursor, err := s.cursors.GetShareLastEventID(ctx, accountID, shareID)
	if err != nil {
		return false, err
	}

	_, err = s.remote.GetShareEvents(ctx, accountID, shareID, cursor)
	if err == nil {
		// still answering: the share is alive, keep it
		return false, nil
	}
	if !adapter.IsDisabledShare(err) {
		return false, err
	}

	log.Info().
		Str("func", "*eventSynchronizer.confirmAndDeleteShare").
		Str("share_id", shareID).
		Msg("share disabled remotely, deleting local copy")

	if err := s.shares.DeleteShareLocally(ctx, accountID, shareID); err != nil {
		return false, err
	}
	s.keys.Invalidate(shareID)

	return true, nil
}

// drainShare pulls the share's event stream page by page until the server
// reports no more pending events or the page cap is reached. The returned
// cursor is persisted after every page, before the page is applied: events
// apply idempotently, so replaying a half-applied page is safe while losing
// cursor progress is not.
func (s *eventSynchronizer) drainShare(ctx context.Context, accountID string, shareID string) (bool, error) {
	log := logger.FromContext(ctx)

	cursor, err := s.cursors.GetShareLastEventID(ctx, accountID, shareID)
	if err != nil {
		return false, err
	}
	if cursor == "" {
		cursor, err = s.remote.GetShareLastEventID(ctx, accountID, shareID)
		if err != nil {
			return false, err
		}
		if err := s.cursors.UpsertShareLastEventID(ctx, accountID, shareID, cursor); err != nil {
			return false, err
		}
	}

	hadNewEvents := false
	for page := 0; page < s.maxDrainPages; page++ {
		if err := ctx.Err(); err != nil {
			return hadNewEvents, err
		}

		events, err := s.remote.GetShareEvents(ctx, accountID, shareID, cursor)
		if err != nil {
			return hadNewEvents, err
		}

		// persisted before applying, even for an empty page, so an
		// interrupted apply resumes from the page it already saw
		if events.LatestEventID != "" {
			if err := s.cursors.UpsertShareLastEventID(ctx, accountID, shareID, events.LatestEventID); err != nil {
				return hadNewEvents, err
			}
			cursor = events.LatestEventID
		}

		if events.FullRefresh {
			if err := s.items.RefreshItems(ctx, accountID, shareID); err != nil {
				return hadNewEvents, err
			}
			return true, nil
		}

		applied, err := s.applyShareEvents(ctx, accountID, shareID, events)
		if err != nil {
			return hadNewEvents, err
		}
		if applied {
			hadNewEvents = true
		}

		if !events.EventsPending {
			break
		}
	}

	if hadNewEvents {
		log.Debug().
			Str("func", "*eventSynchronizer.drainShare").
			Str("share_id", shareID).
			Msg("share stream drained with new events")
	}

	return hadNewEvents, nil
}

// applyShareEvents applies one event page. The order is fixed: share
// metadata, item upserts, item deletions, last-use bumps, key rotation.
func (s *eventSynchronizer) applyShareEvents(ctx context.Context, accountID string, shareID string, events models.ShareEvents) (bool, error) {
	applied := false

	if events.UpdatedShare != nil {
		if err := s.shares.UpsertShares(ctx, accountID, []models.Share{*events.UpdatedShare}); err != nil {
			return applied, err
		}
		applied = true
	}

	if len(events.UpdatedItems) > 0 {
		if err := s.items.UpsertItems(ctx, accountID, shareID, events.UpdatedItems); err != nil {
			return applied, err
		}
		applied = true
	}

	if len(events.DeletedItemIDs) > 0 {
		if err := s.items.DeleteItemsLocally(ctx, shareID, events.DeletedItemIDs); err != nil {
			return applied, err
		}
		applied = true
	}

	if len(events.LastUseItems) > 0 {
		if err := s.items.UpdateLastUseTime(ctx, shareID, events.LastUseItems); err != nil {
			return applied, err
		}
		applied = true
	}

	if events.NewKeyRotation != nil {
		s.keys.Invalidate(shareID)
		if _, err := s.keys.GetShareKey(ctx, accountID, shareID, *events.NewKeyRotation); err != nil {
			if !keymanager.IsInactiveUserKey(err) {
				return applied, fmt.Errorf("failed to fetch rotated key of share %s: %w", shareID, err)
			}
			logger.FromContext(ctx).Warn().
				Str("func", "*eventSynchronizer.applyShareEvents").
				Str("share_id", shareID).
				Msg("user key inactive, rotated key not warmed")
		}
		applied = true
	}

	return applied, nil
}
