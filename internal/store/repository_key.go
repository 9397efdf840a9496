// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/protonpass/ios-pass-sub006/internal/logger"
	"github.com/protonpass/ios-pass-sub006/models"
)

// shareKeyRepository caches encrypted share keys. Keys stay encrypted at rest
// here; the key manager decrypts on demand.
type shareKeyRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewShareKeyRepository(db *DB, logger *logger.Logger) ShareKeyRepository {
	logger.Debug().Msg("creating share key repository")
	return &shareKeyRepository{
		db:     db,
		logger: logger,
	}
}

func (r *shareKeyRepository) GetKeys(ctx context.Context, shareID string) ([]models.EncryptedShareKey, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, getShareKeys, shareID)
	if err != nil {
		log.Err(err).Str("func", "*shareKeyRepository.GetKeys").Str("share_id", shareID).Msg("failed to query share keys")
		return nil, fmt.Errorf("failed to query keys of share %s: %w", shareID, err)
	}
	defer rows.Close()

	var keys []models.EncryptedShareKey
	for rows.Next() {
		var key models.EncryptedShareKey
		if err := rows.Scan(&key.ShareID, &key.KeyRotation, &key.EncryptedKey); err != nil {
			log.Err(err).Str("func", "*shareKeyRepository.GetKeys").Msg("failed to scan share key row")
			return nil, fmt.Errorf("failed to scan share key row: %w", err)
		}
		keys = append(keys, key)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate share key rows: %w", err)
	}

	return keys, nil
}

func (r *shareKeyRepository) UpsertKeys(ctx context.Context, shareID string, keys []models.EncryptedShareKey) error {
	log := logger.FromContext(ctx)

	for _, key := range keys {
		if _, err := r.db.ExecContext(ctx, upsertShareKey, shareID, key.KeyRotation, key.EncryptedKey); err != nil {
			log.Err(err).
				Str("func", "*shareKeyRepository.UpsertKeys").
				Str("share_id", shareID).
				Int64("rotation", key.KeyRotation).
				Msg("failed to upsert share key")
			return fmt.Errorf("failed to upsert key rotation %d of share %s: %w", key.KeyRotation, shareID, err)
		}
	}

	return nil
}

func (r *shareKeyRepository) DeleteKeys(ctx context.Context, shareID string) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, deleteShareKeys, shareID); err != nil {
		log.Err(err).Str("func", "*shareKeyRepository.DeleteKeys").Str("share_id", shareID).Msg("failed to delete share keys")
		return fmt.Errorf("failed to delete keys of share %s: %w", shareID, err)
	}

	return nil
}
