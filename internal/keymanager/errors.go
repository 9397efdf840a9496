// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package keymanager

import (
	"errors"
	"fmt"
)

// Kind classifies key manager failures so callers can decide between
// aborting a sync pass and skipping one share.
type Kind int

const (
	// KindKeyNotFound means no key material exists for the requested
	// rotation, locally or remotely.
	KindKeyNotFound Kind = iota + 1
	// KindUnwrapFailed means key material exists but could not be
	// decrypted (wrong user key, corrupted blob).
	KindUnwrapFailed
	// KindInactiveUserKey means the account's user key is inactive on the
	// remote side; the share is skipped until the key is reactivated.
	KindInactiveUserKey
)

func (k Kind) String() string {
	switch k {
	case KindKeyNotFound:
		return "key not found"
	case KindUnwrapFailed:
		return "unwrap failed"
	case KindInactiveUserKey:
		return "inactive user key"
	default:
		return "unknown"
	}
}

// CryptoError is the typed failure of every key manager operation.
type CryptoError struct {
	Kind    Kind
	ShareID string
	Err     error
}

func (e *CryptoError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("key manager: %s (share %s): %v", e.Kind, e.ShareID, e.Err)
	}
	return fmt.Sprintf("key manager: %s (share %s)", e.Kind, e.ShareID)
}

func (e *CryptoError) Unwrap() error {
	return e.Err
}

// IsInactiveUserKey reports whether err is a key manager failure caused by
// an inactive user key.
func IsInactiveUserKey(err error) bool {
	var cryptoErr *CryptoError
	return errors.As(err, &cryptoErr) && cryptoErr.Kind == KindInactiveUserKey
}

// IsKeyNotFound reports whether err is a missing-key failure.
func IsKeyNotFound(err error) bool {
	var cryptoErr *CryptoError
	return errors.As(err, &cryptoErr) && cryptoErr.Kind == KindKeyNotFound
}
