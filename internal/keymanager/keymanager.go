// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package keymanager decrypts and caches share keys. Cached plaintext keys
// are tagged with a per-share generation counter; invalidating a share bumps
// the counter, which both drops existing entries and discards any decrypt
// that was already in flight when the rotation happened.
package keymanager

import (
	"context"
	"sync"

	"github.com/protonpass/ios-pass-sub006/internal/adapter"
	"github.com/protonpass/ios-pass-sub006/internal/crypto"
	"github.com/protonpass/ios-pass-sub006/internal/logger"
	"github.com/protonpass/ios-pass-sub006/internal/store"
	"github.com/protonpass/ios-pass-sub006/models"
)

//go:generate mockgen -source=keymanager.go -destination=../mock/keymanager_mock.go -package=mock

// UserKeyProvider supplies the per-account key under which share keys are
// wrapped. The provider surfaces remote "inactive user key" failures
// unchanged so the manager can classify them.
type UserKeyProvider interface {
	GetUserKey(ctx context.Context, accountID string) ([]byte, error)
}

// KeyManager hands out decrypted key material for shares and items.
type KeyManager interface {
	// GetShareKey returns the decrypted share key of one specific rotation,
	// fetching and caching it if needed.
	GetShareKey(ctx context.Context, accountID string, shareID string, rotation int64) (models.DecryptedShareKey, error)
	// GetLatestShareKey returns the decrypted share key with the highest
	// known rotation.
	GetLatestShareKey(ctx context.Context, accountID string, shareID string) (models.DecryptedShareKey, error)
	// GetLatestItemKey fetches the latest item key descriptor remotely,
	// unwraps it under the matching share key and caches the result.
	GetLatestItemKey(ctx context.Context, accountID string, shareID string, itemID string) (models.DecryptedItemKey, error)
	// Invalidate drops all cached key material of a share. Subsequent
	// lookups refetch and re-decrypt.
	Invalidate(shareID string)
}

type cacheKey struct {
	shareID  string
	rotation int64
}

type cacheEntry struct {
	key []byte
	gen uint64
}

type itemCacheKey struct {
	shareID string
	itemID  string
}

type itemCacheEntry struct {
	key models.DecryptedItemKey
	gen uint64
}

type keyManager struct {
	remote   adapter.RemoteDataSource
	keys     store.ShareKeyRepository
	cipher   crypto.LocalCipher
	userKeys UserKeyProvider
	logger   *logger.Logger

	mu        sync.Mutex
	cache     map[cacheKey]cacheEntry
	itemCache map[itemCacheKey]itemCacheEntry
	gens      map[string]uint64
}

func NewKeyManager(remote adapter.RemoteDataSource, keys store.ShareKeyRepository, cipher crypto.LocalCipher, userKeys UserKeyProvider, logger *logger.Logger) KeyManager {
	logger.Debug().Msg("creating key manager")
	return &keyManager{
		remote:    remote,
		keys:      keys,
		cipher:    cipher,
		userKeys:  userKeys,
		logger:    logger,
		cache:     make(map[cacheKey]cacheEntry),
		itemCache: make(map[itemCacheKey]itemCacheEntry),
		gens:      make(map[string]uint64),
	}
}

func (m *keyManager) GetShareKey(ctx context.Context, accountID string, shareID string, rotation int64) (models.DecryptedShareKey, error) {
	log := logger.FromContext(ctx)

	m.mu.Lock()
	gen := m.gens[shareID]
	if entry, ok := m.cache[cacheKey{shareID: shareID, rotation: rotation}]; ok && entry.gen == gen {
		m.mu.Unlock()
		return models.DecryptedShareKey{ShareID: shareID, KeyRotation: rotation, Key: entry.key}, nil
	}
	m.mu.Unlock()

	encrypted, fromRemote, err := m.loadEncryptedKeys(ctx, accountID, shareID)
	if err != nil {
		return models.DecryptedShareKey{}, err
	}

	encKey, ok := findRotation(encrypted, rotation)
	if !ok && !fromRemote {
		// local rows lag behind a rotation event; the remote set is authoritative
		encrypted, err = m.refreshEncryptedKeys(ctx, accountID, shareID)
		if err != nil {
			return models.DecryptedShareKey{}, err
		}
		encKey, ok = findRotation(encrypted, rotation)
	}
	if !ok {
		log.Warn().
			Str("func", "*keyManager.GetShareKey").
			Str("share_id", shareID).
			Int64("rotation", rotation).
			Msg("no key material for requested rotation")
		return models.DecryptedShareKey{}, &CryptoError{Kind: KindKeyNotFound, ShareID: shareID}
	}

	key, err := m.unwrap(ctx, accountID, shareID, encKey)
	if err != nil {
		return models.DecryptedShareKey{}, err
	}
	m.cacheKeyMaterial(shareID, rotation, gen, key)

	return models.DecryptedShareKey{ShareID: shareID, KeyRotation: rotation, Key: key}, nil
}

func findRotation(keys []models.EncryptedShareKey, rotation int64) (models.EncryptedShareKey, bool) {
	for _, encKey := range keys {
		if encKey.KeyRotation == rotation {
			return encKey, true
		}
	}
	return models.EncryptedShareKey{}, false
}

func (m *keyManager) GetLatestShareKey(ctx context.Context, accountID string, shareID string) (models.DecryptedShareKey, error) {
	m.mu.Lock()
	gen := m.gens[shareID]
	m.mu.Unlock()

	encrypted, _, err := m.loadEncryptedKeys(ctx, accountID, shareID)
	if err != nil {
		return models.DecryptedShareKey{}, err
	}
	if len(encrypted) == 0 {
		return models.DecryptedShareKey{}, &CryptoError{Kind: KindKeyNotFound, ShareID: shareID}
	}

	latest := encrypted[0]
	for _, encKey := range encrypted[1:] {
		if encKey.KeyRotation > latest.KeyRotation {
			latest = encKey
		}
	}

	m.mu.Lock()
	if entry, ok := m.cache[cacheKey{shareID: shareID, rotation: latest.KeyRotation}]; ok && entry.gen == m.gens[shareID] {
		m.mu.Unlock()
		return models.DecryptedShareKey{ShareID: shareID, KeyRotation: latest.KeyRotation, Key: entry.key}, nil
	}
	m.mu.Unlock()

	key, err := m.unwrap(ctx, accountID, shareID, latest)
	if err != nil {
		return models.DecryptedShareKey{}, err
	}
	m.cacheKeyMaterial(shareID, latest.KeyRotation, gen, key)

	return models.DecryptedShareKey{ShareID: shareID, KeyRotation: latest.KeyRotation, Key: key}, nil
}

func (m *keyManager) GetLatestItemKey(ctx context.Context, accountID string, shareID string, itemID string) (models.DecryptedItemKey, error) {
	log := logger.FromContext(ctx)

	m.mu.Lock()
	gen := m.gens[shareID]
	if entry, ok := m.itemCache[itemCacheKey{shareID: shareID, itemID: itemID}]; ok && entry.gen == gen {
		m.mu.Unlock()
		return entry.key, nil
	}
	m.mu.Unlock()

	descriptor, err := m.remote.GetLatestItemKey(ctx, accountID, shareID, itemID)
	if err != nil {
		if adapter.IsInactiveUserKey(err) {
			return models.DecryptedItemKey{}, &CryptoError{Kind: KindInactiveUserKey, ShareID: shareID, Err: err}
		}
		return models.DecryptedItemKey{}, err
	}

	shareKey, err := m.GetShareKey(ctx, accountID, shareID, descriptor.KeyRotation)
	if err != nil {
		return models.DecryptedItemKey{}, err
	}

	itemKey, err := m.cipher.OpenWithAAD(descriptor.Key, shareKey.Key, []byte("itemkey"))
	if err != nil {
		log.Err(err).
			Str("func", "*keyManager.GetLatestItemKey").
			Str("share_id", shareID).
			Str("item_id", itemID).
			Msg("failed to unwrap item key")
		return models.DecryptedItemKey{}, &CryptoError{Kind: KindUnwrapFailed, ShareID: shareID, Err: err}
	}

	decrypted := models.DecryptedItemKey{
		ShareID:     shareID,
		ItemID:      itemID,
		KeyRotation: descriptor.KeyRotation,
		Key:         itemKey,
	}

	m.mu.Lock()
	if m.gens[shareID] == gen {
		m.itemCache[itemCacheKey{shareID: shareID, itemID: itemID}] = itemCacheEntry{key: decrypted, gen: gen}
	}
	m.mu.Unlock()

	return decrypted, nil
}

func (m *keyManager) Invalidate(shareID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.gens[shareID]++
	for key := range m.cache {
		if key.shareID == shareID {
			delete(m.cache, key)
		}
	}
	for key := range m.itemCache {
		if key.shareID == shareID {
			delete(m.itemCache, key)
		}
	}
}

// loadEncryptedKeys reads the locally cached encrypted keys and falls back
// to a remote fetch (persisting the result) when nothing is cached yet. The
// second return reports whether the keys came from the remote.
func (m *keyManager) loadEncryptedKeys(ctx context.Context, accountID string, shareID string) ([]models.EncryptedShareKey, bool, error) {
	local, err := m.keys.GetKeys(ctx, shareID)
	if err != nil {
		return nil, false, err
	}
	if len(local) > 0 {
		return local, false, nil
	}

	remote, err := m.refreshEncryptedKeys(ctx, accountID, shareID)
	if err != nil {
		return nil, false, err
	}
	return remote, true, nil
}

// refreshEncryptedKeys fetches the full key set from the remote and persists
// it. Rows for older rotations stay valid, so the upsert never deletes.
func (m *keyManager) refreshEncryptedKeys(ctx context.Context, accountID string, shareID string) ([]models.EncryptedShareKey, error) {
	log := logger.FromContext(ctx)

	remote, err := m.remote.GetShareKeys(ctx, accountID, shareID)
	if err != nil {
		if adapter.IsInactiveUserKey(err) {
			return nil, &CryptoError{Kind: KindInactiveUserKey, ShareID: shareID, Err: err}
		}
		return nil, err
	}

	if err := m.keys.UpsertKeys(ctx, shareID, remote); err != nil {
		// decryption can proceed on the fetched keys even if caching failed
		log.Err(err).Str("func", "*keyManager.refreshEncryptedKeys").Str("share_id", shareID).Msg("failed to cache share keys")
	}

	return remote, nil
}

func (m *keyManager) unwrap(ctx context.Context, accountID string, shareID string, encKey models.EncryptedShareKey) ([]byte, error) {
	log := logger.FromContext(ctx)

	userKey, err := m.userKeys.GetUserKey(ctx, accountID)
	if err != nil {
		if adapter.IsInactiveUserKey(err) {
			return nil, &CryptoError{Kind: KindInactiveUserKey, ShareID: shareID, Err: err}
		}
		return nil, err
	}

	key, err := m.cipher.Open(encKey.EncryptedKey, userKey)
	if err != nil {
		log.Err(err).
			Str("func", "*keyManager.unwrap").
			Str("share_id", shareID).
			Int64("rotation", encKey.KeyRotation).
			Msg("failed to unwrap share key")
		return nil, &CryptoError{Kind: KindUnwrapFailed, ShareID: shareID, Err: err}
	}

	return key, nil
}

// cacheKeyMaterial inserts a decrypted key unless the share was invalidated
// after gen was read; a stale decrypt must not resurrect old material.
func (m *keyManager) cacheKeyMaterial(shareID string, rotation int64, gen uint64, key []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.gens[shareID] != gen {
		return
	}
	m.cache[cacheKey{shareID: shareID, rotation: rotation}] = cacheEntry{key: key, gen: gen}
}
