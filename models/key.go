// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// EncryptedShareKey is a share key as stored: wrapped key material that only
// the account's user key can open. Keys are immutable once issued; a
// rotation replaces which key is latest, it never mutates existing material.
type EncryptedShareKey struct {
	ShareID      string `json:"-" db:"share_id"`
	KeyRotation  int64  `json:"KeyRotation" db:"rotation"`
	EncryptedKey string `json:"Key" db:"encrypted_key"`
}

// DecryptedShareKey is raw share key material held only in memory.
type DecryptedShareKey struct {
	ShareID     string
	KeyRotation int64
	Key         []byte
}

// DecryptedItemKey is raw per-item key material held only in memory.
type DecryptedItemKey struct {
	ShareID     string
	ItemID      string
	KeyRotation int64
	Key         []byte
}

// ItemKeyDescriptor is the remote's current key descriptor for one item: the
// item key wrapped (AEAD-sealed) under the share key of KeyRotation.
type ItemKeyDescriptor struct {
	KeyRotation int64  `json:"KeyRotation"`
	Key         string `json:"Key"`
}
