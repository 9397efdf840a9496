// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store holds the local cache repositories backed by SQLite. Every
// item blob is re-encrypted under the local symmetric key before it touches
// the database: server-side encryption alone is not enough once the blob is
// at rest on the device.
package store

import (
	"context"

	"github.com/protonpass/ios-pass-sub006/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ShareRepository maintains the locally known share topology per account.
type ShareRepository interface {
	GetShares(ctx context.Context, accountID string) ([]models.Share, error)
	UpsertShares(ctx context.Context, accountID string, shares []models.Share) error
	// DeleteShareLocally removes the share row together with its items,
	// cursor and cached keys.
	DeleteShareLocally(ctx context.Context, accountID string, shareID string) error
}

// ItemRepository maintains the locally cached items of every share.
type ItemRepository interface {
	// RefreshItems replaces the whole local item set of a share from the
	// remote full listing.
	RefreshItems(ctx context.Context, accountID string, shareID string) error
	// RefreshItem fetches a single item remotely and upserts it locally.
	RefreshItem(ctx context.Context, accountID string, shareID string, itemID string, eventToken string) error
	UpsertItems(ctx context.Context, accountID string, shareID string, items []models.ItemEvent) error
	DeleteItemsLocally(ctx context.Context, shareID string, itemIDs []string) error
	DeleteAllItemsLocally(ctx context.Context, shareID string) error
	UpdateLastUseTime(ctx context.Context, shareID string, lastUses []models.LastUseItem) error
	DeleteItems(ctx context.Context, refs []models.ItemRef) error
	UpdateAliasNotes(ctx context.Context, accountID string, notes []models.AliasNoteUpdate) error
	CreateAliasItems(ctx context.Context, accountID string, shareID string, aliases []models.PendingAlias) error
}

// EventCursorRepository persists the per-share and per-account event cursors.
// A missing cursor is reported as an empty string, not an error.
type EventCursorRepository interface {
	GetShareLastEventID(ctx context.Context, accountID string, shareID string) (string, error)
	UpsertShareLastEventID(ctx context.Context, accountID string, shareID string, eventID string) error
	GetUserLastEventID(ctx context.Context, accountID string) (string, error)
	UpsertUserLastEventID(ctx context.Context, accountID string, eventID string) error
}

// ShareKeyRepository caches the still-encrypted share keys fetched from the
// server. Decryption happens in the key manager, never here.
type ShareKeyRepository interface {
	GetKeys(ctx context.Context, shareID string) ([]models.EncryptedShareKey, error)
	UpsertKeys(ctx context.Context, shareID string, keys []models.EncryptedShareKey) error
	DeleteKeys(ctx context.Context, shareID string) error
}
