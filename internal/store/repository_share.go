// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/protonpass/ios-pass-sub006/internal/logger"
	"github.com/protonpass/ios-pass-sub006/models"
)

// shareRepository is the SQLite-backed implementation of [ShareRepository].
type shareRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewShareRepository(db *DB, logger *logger.Logger) ShareRepository {
	logger.Debug().Msg("creating share repository")
	return &shareRepository{
		db:     db,
		logger: logger,
	}
}

func (r *shareRepository) GetShares(ctx context.Context, accountID string) ([]models.Share, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectSharesQuery(accountID)
	if err != nil {
		log.Err(err).Str("func", "*shareRepository.GetShares").Msg("error building query")
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*shareRepository.GetShares").Str("account_id", accountID).Msg("failed to query shares")
		return nil, fmt.Errorf("failed to query shares: %w", err)
	}
	defer rows.Close()

	var shares []models.Share
	for rows.Next() {
		var share models.Share
		if err := rows.Scan(
			&share.AccountID,
			&share.ShareID,
			&share.VaultID,
			&share.Permission,
			&share.ExpireTime,
			&share.KeyRotation,
			&share.Content,
			&share.CreateTime,
			&share.ModifyTime,
		); err != nil {
			log.Err(err).Str("func", "*shareRepository.GetShares").Msg("failed to scan share row")
			return nil, fmt.Errorf("failed to scan share row: %w", err)
		}
		shares = append(shares, share)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate share rows: %w", err)
	}

	return shares, nil
}

func (r *shareRepository) UpsertShares(ctx context.Context, accountID string, shares []models.Share) error {
	log := logger.FromContext(ctx)

	for _, share := range shares {
		_, err := r.db.ExecContext(ctx, upsertShare,
			accountID,
			share.ShareID,
			share.VaultID,
			share.Permission,
			share.ExpireTime,
			share.KeyRotation,
			share.Content,
			share.CreateTime,
			share.ModifyTime,
		)
		if err != nil {
			log.Err(err).
				Str("func", "*shareRepository.UpsertShares").
				Str("account_id", accountID).
				Str("share_id", share.ShareID).
				Msg("failed to upsert share")
			return fmt.Errorf("failed to upsert share %s: %w", share.ShareID, err)
		}
	}

	return nil
}

// DeleteShareLocally removes every local trace of the share in one
// transaction: the share row, its items, its event cursor and its cached
// keys.
func (r *shareRepository) DeleteShareLocally(ctx context.Context, accountID string, shareID string) error {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*shareRepository.DeleteShareLocally").Msg("failed to begin transaction")
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, deleteShare, accountID, shareID); err != nil {
		log.Err(err).Str("func", "*shareRepository.DeleteShareLocally").Str("share_id", shareID).Msg("failed to delete share row")
		return fmt.Errorf("failed to delete share %s: %w", shareID, err)
	}
	if _, err := tx.ExecContext(ctx, deleteAllShareItems, shareID); err != nil {
		log.Err(err).Str("func", "*shareRepository.DeleteShareLocally").Str("share_id", shareID).Msg("failed to delete share items")
		return fmt.Errorf("failed to delete items of share %s: %w", shareID, err)
	}
	if _, err := tx.ExecContext(ctx, deleteShareCursor, accountID, shareID); err != nil {
		log.Err(err).Str("func", "*shareRepository.DeleteShareLocally").Str("share_id", shareID).Msg("failed to delete share cursor")
		return fmt.Errorf("failed to delete cursor of share %s: %w", shareID, err)
	}
	if _, err := tx.ExecContext(ctx, deleteShareKeys, shareID); err != nil {
		log.Err(err).Str("func", "*shareRepository.DeleteShareLocally").Str("share_id", shareID).Msg("failed to delete share keys")
		return fmt.Errorf("failed to delete keys of share %s: %w", shareID, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit share deletion: %w", err)
	}

	return nil
}
