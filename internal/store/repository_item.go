// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/protonpass/ios-pass-sub006/internal/adapter"
	"github.com/protonpass/ios-pass-sub006/internal/crypto"
	"github.com/protonpass/ios-pass-sub006/internal/logger"
	"github.com/protonpass/ios-pass-sub006/internal/utils"
	"github.com/protonpass/ios-pass-sub006/models"
)

// itemRepository is the SQLite-backed implementation of [ItemRepository].
// Besides the local cache it holds the remote data source: refreshing a share
// or a single item is a remote fetch followed by a local write, and keeping
// both sides behind one repository keeps the callers free of that plumbing.
type itemRepository struct {
	db     *DB
	remote adapter.RemoteDataSource
	cipher crypto.LocalCipher
	keys   crypto.SymmetricKeyProvider
	uuid   *utils.UUIDGenerator
	logger *logger.Logger
}

func NewItemRepository(db *DB, remote adapter.RemoteDataSource, cipher crypto.LocalCipher, keys crypto.SymmetricKeyProvider, logger *logger.Logger) ItemRepository {
	logger.Debug().Msg("creating item repository")
	return &itemRepository{
		db:     db,
		remote: remote,
		cipher: cipher,
		keys:   keys,
		uuid:   utils.NewUUIDGenerator(),
		logger: logger,
	}
}

// aliasItemContent is the plaintext form of an alias item created locally
// from a pending SimpleLogin alias. It is sealed before persisting.
type aliasItemContent struct {
	Email string `json:"email"`
	Note  string `json:"note"`
}

func (r *itemRepository) RefreshItems(ctx context.Context, accountID string, shareID string) error {
	log := logger.FromContext(ctx)

	items, err := r.remote.GetShareItems(ctx, accountID, shareID)
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.RefreshItems").Str("share_id", shareID).Msg("failed to fetch full item listing")
		return fmt.Errorf("failed to fetch items of share %s: %w", shareID, err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, deleteAllShareItems, shareID); err != nil {
		log.Err(err).Str("func", "*itemRepository.RefreshItems").Str("share_id", shareID).Msg("failed to clear local items")
		return fmt.Errorf("failed to clear items of share %s: %w", shareID, err)
	}

	for _, item := range items {
		sealed, err := r.seal(item.Content)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, upsertItem,
			shareID, item.ItemID, item.Revision, item.KeyRotation, item.State,
			sealed, item.CreateTime, item.ModifyTime, item.LastUseTime,
		); err != nil {
			log.Err(err).Str("func", "*itemRepository.RefreshItems").Str("item_id", item.ItemID).Msg("failed to insert item")
			return fmt.Errorf("failed to insert item %s: %w", item.ItemID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit item refresh: %w", err)
	}

	return nil
}

func (r *itemRepository) RefreshItem(ctx context.Context, accountID string, shareID string, itemID string, eventToken string) error {
	log := logger.FromContext(ctx)

	item, err := r.remote.GetItem(ctx, accountID, shareID, itemID, eventToken)
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.RefreshItem").Str("share_id", shareID).Str("item_id", itemID).Msg("failed to fetch item")
		return fmt.Errorf("failed to fetch item %s: %w", itemID, err)
	}

	return r.UpsertItems(ctx, accountID, shareID, []models.ItemEvent{item})
}

func (r *itemRepository) UpsertItems(ctx context.Context, accountID string, shareID string, items []models.ItemEvent) error {
	log := logger.FromContext(ctx)

	for _, item := range items {
		sealed, err := r.seal(item.Content)
		if err != nil {
			return err
		}
		if _, err := r.db.ExecContext(ctx, upsertItem,
			shareID, item.ItemID, item.Revision, item.KeyRotation, item.State,
			sealed, item.CreateTime, item.ModifyTime, item.LastUseTime,
		); err != nil {
			log.Err(err).
				Str("func", "*itemRepository.UpsertItems").
				Str("account_id", accountID).
				Str("share_id", shareID).
				Str("item_id", item.ItemID).
				Msg("failed to upsert item")
			return fmt.Errorf("failed to upsert item %s: %w", item.ItemID, err)
		}
	}

	return nil
}

func (r *itemRepository) DeleteItemsLocally(ctx context.Context, shareID string, itemIDs []string) error {
	if len(itemIDs) == 0 {
		return nil
	}
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteItemsQuery(shareID, itemIDs)
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.DeleteItemsLocally").Msg("error building query")
		return err
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*itemRepository.DeleteItemsLocally").Str("share_id", shareID).Msg("failed to delete items")
		return fmt.Errorf("failed to delete items of share %s: %w", shareID, err)
	}

	return nil
}

func (r *itemRepository) DeleteAllItemsLocally(ctx context.Context, shareID string) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, deleteAllShareItems, shareID); err != nil {
		log.Err(err).Str("func", "*itemRepository.DeleteAllItemsLocally").Str("share_id", shareID).Msg("failed to delete items")
		return fmt.Errorf("failed to delete items of share %s: %w", shareID, err)
	}

	return nil
}

func (r *itemRepository) UpdateLastUseTime(ctx context.Context, shareID string, lastUses []models.LastUseItem) error {
	log := logger.FromContext(ctx)

	for _, lastUse := range lastUses {
		if _, err := r.db.ExecContext(ctx, updateItemLastUse, lastUse.LastUseTime, shareID, lastUse.ItemID); err != nil {
			log.Err(err).
				Str("func", "*itemRepository.UpdateLastUseTime").
				Str("share_id", shareID).
				Str("item_id", lastUse.ItemID).
				Msg("failed to update last use time")
			return fmt.Errorf("failed to update last use time of item %s: %w", lastUse.ItemID, err)
		}
	}

	return nil
}

func (r *itemRepository) DeleteItems(ctx context.Context, refs []models.ItemRef) error {
	if len(refs) == 0 {
		return nil
	}
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteItemRefsQuery(refs)
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.DeleteItems").Msg("error building query")
		return err
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*itemRepository.DeleteItems").Int("count", len(refs)).Msg("failed to delete items")
		return fmt.Errorf("failed to delete items: %w", err)
	}

	return nil
}

func (r *itemRepository) UpdateAliasNotes(ctx context.Context, accountID string, notes []models.AliasNoteUpdate) error {
	log := logger.FromContext(ctx)

	for _, note := range notes {
		sealed, err := r.seal(note.Note)
		if err != nil {
			return err
		}
		if _, err := r.db.ExecContext(ctx, updateItemAliasNote, sealed, note.ShareID, note.ItemID); err != nil {
			log.Err(err).
				Str("func", "*itemRepository.UpdateAliasNotes").
				Str("account_id", accountID).
				Str("share_id", note.ShareID).
				Str("item_id", note.ItemID).
				Msg("failed to update alias note")
			return fmt.Errorf("failed to update alias note of item %s: %w", note.ItemID, err)
		}
	}

	return nil
}

func (r *itemRepository) CreateAliasItems(ctx context.Context, accountID string, shareID string, aliases []models.PendingAlias) error {
	log := logger.FromContext(ctx)

	for _, alias := range aliases {
		content, err := json.Marshal(aliasItemContent{Email: alias.AliasEmail, Note: alias.AliasNote})
		if err != nil {
			return fmt.Errorf("failed to marshal alias item content: %w", err)
		}
		sealed, err := r.seal(string(content))
		if err != nil {
			return err
		}

		itemID := r.uuid.Generate()
		if _, err := r.db.ExecContext(ctx, upsertItem,
			shareID, itemID, int64(1), int64(0), models.ItemStateActive,
			sealed, int64(0), int64(0), int64(0),
		); err != nil {
			log.Err(err).
				Str("func", "*itemRepository.CreateAliasItems").
				Str("account_id", accountID).
				Str("share_id", shareID).
				Str("alias_email", alias.AliasEmail).
				Msg("failed to create alias item")
			return fmt.Errorf("failed to create alias item for %s: %w", alias.AliasEmail, err)
		}
	}

	return nil
}

func (r *itemRepository) seal(content string) (string, error) {
	key, err := r.keys.GetSymmetricKey()
	if err != nil {
		return "", fmt.Errorf("failed to obtain local symmetric key: %w", err)
	}

	sealed, err := r.cipher.Seal([]byte(content), key)
	if err != nil {
		return "", fmt.Errorf("failed to seal item content: %w", err)
	}

	return sealed, nil
}
