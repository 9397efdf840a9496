// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ItemState mirrors the remote authority's item lifecycle states.
type ItemState int64

const (
	ItemStateActive  ItemState = 1
	ItemStateTrashed ItemState = 2
)

// ItemEvent is the wire representation of an item carried inside an event
// batch or a full item listing. Content is encrypted server-side; the local
// store re-encrypts it under the local symmetric key before persisting.
type ItemEvent struct {
	ItemID string `json:"ItemID"`
	// Revision increases monotonically per item on every remote change.
	Revision int64 `json:"Revision"`
	// KeyRotation identifies which share key rotation encrypted the content.
	KeyRotation int64     `json:"KeyRotation"`
	State       ItemState `json:"State"`
	Content     string    `json:"Content"`
	CreateTime  int64     `json:"CreateTime"`
	ModifyTime  int64     `json:"ModifyTime"`
	LastUseTime int64     `json:"LastUseTime"`
}

// Item is the locally cached row: the server-encrypted content re-encrypted
// under a local-only key for fast at-rest protection.
type Item struct {
	ShareID          string    `db:"share_id"`
	ItemID           string    `db:"item_id"`
	Revision         int64     `db:"revision"`
	KeyRotation      int64     `db:"key_rotation"`
	State            ItemState `db:"state"`
	EncryptedContent string    `db:"encrypted_content"`
	CreateTime       int64     `db:"create_time"`
	ModifyTime       int64     `db:"modify_time"`
	LastUseTime      int64     `db:"last_use_time"`
}

// LastUseItem carries a last-used-time bump for a single item.
type LastUseItem struct {
	ItemID      string `json:"ItemID"`
	LastUseTime int64  `json:"LastUseTime"`
}

// ItemRef addresses one item within one share, used by bulk deletions coming
// from the account-level event stream.
type ItemRef struct {
	ShareID string `json:"ShareID"`
	ItemID  string `json:"ItemID"`
}
