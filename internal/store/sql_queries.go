// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/protonpass/ios-pass-sub006/models"
)

const (
	upsertShare = `INSERT INTO shares (account_id, share_id, vault_id, permission, expire_time, key_rotation, content, create_time, modify_time)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT (account_id, share_id) DO UPDATE SET
		vault_id = excluded.vault_id,
		permission = excluded.permission,
		expire_time = excluded.expire_time,
		key_rotation = excluded.key_rotation,
		content = excluded.content,
		create_time = excluded.create_time,
		modify_time = excluded.modify_time;`

	deleteShare = `DELETE FROM shares WHERE account_id = ? AND share_id = ?;`

	upsertItem = `INSERT INTO items (share_id, item_id, revision, key_rotation, state, encrypted_content, create_time, modify_time, last_use_time)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT (share_id, item_id) DO UPDATE SET
		revision = excluded.revision,
		key_rotation = excluded.key_rotation,
		state = excluded.state,
		encrypted_content = excluded.encrypted_content,
		create_time = excluded.create_time,
		modify_time = excluded.modify_time,
		last_use_time = excluded.last_use_time;`

	deleteAllShareItems = `DELETE FROM items WHERE share_id = ?;`

	updateItemLastUse = `UPDATE items SET last_use_time = ? WHERE share_id = ? AND item_id = ?;`

	updateItemAliasNote = `UPDATE items SET alias_note = ? WHERE share_id = ? AND item_id = ?;`

	getShareLastEventID = `SELECT last_event_id FROM share_events WHERE account_id = ? AND share_id = ?;`

	upsertShareLastEventID = `INSERT INTO share_events (account_id, share_id, last_event_id)
	VALUES (?, ?, ?)
	ON CONFLICT (account_id, share_id) DO UPDATE SET last_event_id = excluded.last_event_id;`

	deleteShareCursor = `DELETE FROM share_events WHERE account_id = ? AND share_id = ?;`

	getUserLastEventID = `SELECT last_event_id FROM user_events WHERE account_id = ?;`

	upsertUserLastEventID = `INSERT INTO user_events (account_id, last_event_id)
	VALUES (?, ?)
	ON CONFLICT (account_id) DO UPDATE SET last_event_id = excluded.last_event_id;`

	getShareKeys = `SELECT share_id, rotation, encrypted_key FROM share_keys WHERE share_id = ? ORDER BY rotation;`

	upsertShareKey = `INSERT INTO share_keys (share_id, rotation, encrypted_key)
	VALUES (?, ?, ?)
	ON CONFLICT (share_id, rotation) DO UPDATE SET encrypted_key = excluded.encrypted_key;`

	deleteShareKeys = `DELETE FROM share_keys WHERE share_id = ?;`
)

// buildSelectSharesQuery builds the share listing query for one account.
func buildSelectSharesQuery(accountID string) (string, []any, error) {
	query, args, err := sq.
		Select("account_id", "share_id", "vault_id", "permission", "expire_time", "key_rotation", "content", "create_time", "modify_time").
		From("shares").
		Where(sq.Eq{"account_id": accountID}).
		OrderBy("share_id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrQueryBuild, err)
	}

	return query, args, nil
}

// buildDeleteItemsQuery builds a bulk delete over an arbitrary item ID set
// within one share.
func buildDeleteItemsQuery(shareID string, itemIDs []string) (string, []any, error) {
	query, args, err := sq.
		Delete("items").
		Where(sq.Eq{"share_id": shareID}).
		Where(sq.Eq{"item_id": itemIDs}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrQueryBuild, err)
	}

	return query, args, nil
}

// buildDeleteItemRefsQuery builds a bulk delete over (share, item) pairs, as
// delivered by the account-level event stream.
func buildDeleteItemRefsQuery(refs []models.ItemRef) (string, []any, error) {
	or := make(sq.Or, 0, len(refs))
	for _, ref := range refs {
		or = append(or, sq.Eq{"share_id": ref.ShareID, "item_id": ref.ItemID})
	}

	query, args, err := sq.
		Delete("items").
		Where(or).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrQueryBuild, err)
	}

	return query, args, nil
}
