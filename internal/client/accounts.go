// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"sync"
)

// ErrUnknownAccount is returned when key material is requested for an
// account that never signed in (or already signed out).
var ErrUnknownAccount = errors.New("unknown account")

// accountRegistry is the engine's in-memory account state. It implements
// both service.AccountRegistry and keymanager.UserKeyProvider: the host
// hands over user key material at sign-in and the registry serves it to the
// key manager for share-key unwrapping. Nothing here is ever persisted.
type accountRegistry struct {
	mu         sync.RWMutex
	order      []string
	userKeys   map[string][]byte
	foreground string
}

func newAccountRegistry() *accountRegistry {
	return &accountRegistry{userKeys: make(map[string][]byte)}
}

func (r *accountRegistry) add(accountID string, userKey []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, known := r.userKeys[accountID]; !known {
		r.order = append(r.order, accountID)
	}
	r.userKeys[accountID] = userKey
	if r.foreground == "" {
		r.foreground = accountID
	}
}

func (r *accountRegistry) remove(accountID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.userKeys, accountID)
	for i, id := range r.order {
		if id == accountID {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	if r.foreground == accountID {
		r.foreground = ""
		if len(r.order) > 0 {
			r.foreground = r.order[0]
		}
	}
}

func (r *accountRegistry) setForeground(accountID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, known := r.userKeys[accountID]; known {
		r.foreground = accountID
	}
}

// SignedInAccounts implements service.AccountRegistry. Sign-in order is
// preserved so sync fan-out stays deterministic.
func (r *accountRegistry) SignedInAccounts() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string(nil), r.order...)
}

// ForegroundAccount implements service.AccountRegistry.
func (r *accountRegistry) ForegroundAccount() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.foreground
}

// GetUserKey implements keymanager.UserKeyProvider.
func (r *accountRegistry) GetUserKey(_ context.Context, accountID string) ([]byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	key, known := r.userKeys[accountID]
	if !known {
		return nil, ErrUnknownAccount
	}
	return key, nil
}
