// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer for communicating with the
// remote authority.
//
// The primary abstraction is [RemoteDataSource], which decouples the sync
// services from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPRemoteDataSource]).
//
// Error values defined in errors.go are mapped from HTTP statuses and API
// response codes by mapAPIError so that callers can use [errors.Is] /
// [errors.As] for transport-agnostic error handling (e.g. [IsDisabledShare]
// for the share-deletion confirmation protocol, [Is5xx] for backoff).
package adapter

import (
	"context"

	"github.com/protonpass/ios-pass-sub006/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/remote_mock.go -package=mock

// RemoteDataSource defines transport-agnostic communication with the remote
// authority. All calls are scoped to one signed-in account; implementations
// are responsible for serialisation, per-account authentication headers, and
// mapping transport-level errors to the typed values of this package.
//
// Event cursors returned by one method are opaque and must only ever be
// passed back to the same endpoint that issued them.
type RemoteDataSource interface {
	// SetSessionToken stores the bearer token attached to all subsequent
	// requests for accountID. Called by the account layer after sign-in.
	SetSessionToken(accountID, token string)

	// GetShares fetches the full share list the account has access to.
	GetShares(ctx context.Context, accountID string) ([]models.Share, error)

	// GetShareKeys fetches every wrapped key of one share, all rotations.
	GetShareKeys(ctx context.Context, accountID, shareID string) ([]models.EncryptedShareKey, error)

	// GetLatestItemKey fetches the item's current key descriptor: the item
	// key wrapped under the share key of the descriptor's rotation.
	GetLatestItemKey(ctx context.Context, accountID, shareID, itemID string) (models.ItemKeyDescriptor, error)

	// GetShareLastEventID asks the server for a fresh cursor positioned at
	// the current end of the share's stream; used to bootstrap shares that
	// have no local cursor yet.
	GetShareLastEventID(ctx context.Context, accountID, shareID string) (string, error)

	// GetShareEvents fetches one page of the share's change stream since
	// lastEventID.
	GetShareEvents(ctx context.Context, accountID, shareID, lastEventID string) (models.ShareEvents, error)

	// GetUserEvents fetches one page of the account-global change stream.
	GetUserEvents(ctx context.Context, accountID, lastEventID string) (models.UserEvents, error)

	// GetShareItems lists every item of a share, used for full refreshes.
	GetShareItems(ctx context.Context, accountID, shareID string) ([]models.ItemEvent, error)

	// GetItem re-fetches one item by the event token carried in a user
	// event.
	GetItem(ctx context.Context, accountID, shareID, itemID, eventToken string) (models.ItemEvent, error)

	// GetAccess fetches the account's settings blob consulted by the
	// satellite sync jobs.
	GetAccess(ctx context.Context, accountID string) (models.AccessSettings, error)

	// GetPendingAliases pages through SimpleLogin aliases awaiting local
	// item creation. sinceToken is nil for the first page.
	GetPendingAliases(ctx context.Context, accountID string, sinceToken *string, pageSize int) (models.PaginatedPendingAliases, error)

	// GetPendingAliasNotes pages through alias note changes awaiting local
	// application. sinceToken is nil for the first page.
	GetPendingAliasNotes(ctx context.Context, accountID string, sinceToken *string, pageSize int) (models.PaginatedAliasNotes, error)
}

// Reachability answers whether the network is currently usable. The sync
// event loop consults it before every fan-out and skips the cycle offline.
type Reachability interface {
	IsNetworkAvailable() bool
}
