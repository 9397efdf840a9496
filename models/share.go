// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Share is an encrypted container (vault) of items with its own key-rotation
// lineage. The same struct represents both the remote authority's view and
// the locally cached row; AccountID is only meaningful locally.
type Share struct {
	AccountID string `json:"-" db:"account_id"`
	// ShareID uniquely identifies the share across all accounts.
	ShareID string `json:"ShareID" db:"share_id"`
	// VaultID identifies the underlying vault the share grants access to.
	VaultID string `json:"VaultID" db:"vault_id"`
	// Permission is the bitmask of rights the account holds on the share.
	Permission int64 `json:"Permission" db:"permission"`
	// ExpireTime is a unix timestamp after which the share is void, 0 if none.
	ExpireTime int64 `json:"ExpireTime" db:"expire_time"`
	// KeyRotation is the latest key rotation the remote reported for the share.
	KeyRotation int64 `json:"ContentKeyRotation" db:"key_rotation"`
	// Content is the share's encrypted metadata blob (base64), opaque here.
	Content    string `json:"Content" db:"content"`
	CreateTime int64  `json:"CreateTime" db:"create_time"`
	ModifyTime int64  `json:"ModifyTime" db:"modify_time"`
}

// LooselyEqual reports whether two shares are the same for topology-change
// detection. Only identity, permission and expiry participate; content and
// timestamps churn without the share set actually changing.
// Field choice is flagged for product sign-off in DESIGN.md.
func (s Share) LooselyEqual(other Share) bool {
	return s.ShareID == other.ShareID &&
		s.VaultID == other.VaultID &&
		s.Permission == other.Permission &&
		s.ExpireTime == other.ExpireTime
}

// SharesLooselyEqual reports whether two share lists describe the same share
// topology, ignoring order.
func SharesLooselyEqual(a, b []Share) bool {
	if len(a) != len(b) {
		return false
	}

	index := make(map[string]Share, len(a))
	for _, share := range a {
		index[share.ShareID] = share
	}
	for _, share := range b {
		local, ok := index[share.ShareID]
		if !ok || !local.LooselyEqual(share) {
			return false
		}
	}
	return true
}
