// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/protonpass/ios-pass-sub006/internal/logger"
)

// eventCursorRepository persists the opaque server cursors. A cursor that was
// never stored reads back as an empty string so the callers can branch on
// "first sync" without a sentinel error.
type eventCursorRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewEventCursorRepository(db *DB, logger *logger.Logger) EventCursorRepository {
	logger.Debug().Msg("creating event cursor repository")
	return &eventCursorRepository{
		db:     db,
		logger: logger,
	}
}

func (r *eventCursorRepository) GetShareLastEventID(ctx context.Context, accountID string, shareID string) (string, error) {
	log := logger.FromContext(ctx)

	var eventID string
	err := r.db.QueryRowContext(ctx, getShareLastEventID, accountID, shareID).Scan(&eventID)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		log.Err(err).Str("func", "*eventCursorRepository.GetShareLastEventID").Str("share_id", shareID).Msg("failed to read share cursor")
		return "", fmt.Errorf("failed to read cursor of share %s: %w", shareID, err)
	}

	return eventID, nil
}

func (r *eventCursorRepository) UpsertShareLastEventID(ctx context.Context, accountID string, shareID string, eventID string) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, upsertShareLastEventID, accountID, shareID, eventID); err != nil {
		log.Err(err).Str("func", "*eventCursorRepository.UpsertShareLastEventID").Str("share_id", shareID).Msg("failed to store share cursor")
		return fmt.Errorf("failed to store cursor of share %s: %w", shareID, err)
	}

	return nil
}

func (r *eventCursorRepository) GetUserLastEventID(ctx context.Context, accountID string) (string, error) {
	log := logger.FromContext(ctx)

	var eventID string
	err := r.db.QueryRowContext(ctx, getUserLastEventID, accountID).Scan(&eventID)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		log.Err(err).Str("func", "*eventCursorRepository.GetUserLastEventID").Str("account_id", accountID).Msg("failed to read account cursor")
		return "", fmt.Errorf("failed to read cursor of account %s: %w", accountID, err)
	}

	return eventID, nil
}

func (r *eventCursorRepository) UpsertUserLastEventID(ctx context.Context, accountID string, eventID string) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, upsertUserLastEventID, accountID, eventID); err != nil {
		log.Err(err).Str("func", "*eventCursorRepository.UpsertUserLastEventID").Str("account_id", accountID).Msg("failed to store account cursor")
		return fmt.Errorf("failed to store cursor of account %s: %w", accountID, err)
	}

	return nil
}
