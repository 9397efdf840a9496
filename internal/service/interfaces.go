// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the client-side synchronization engine: the
// share reconciler, the account-level event stream, the satellite jobs and
// the scheduler loop that drives them all.
package service

import (
	"context"

	"github.com/protonpass/ios-pass-sub006/models"
)

// ShareSynchronizer reconciles the local share topology against the remote
// authority and drains every share's change stream. The returned flag is
// true when anything locally visible changed.
type ShareSynchronizer interface {
	Sync(ctx context.Context, accountID string) (hadNewEvents bool, err error)
}

// UserEventsSynchronizer drains the account-global change stream.
type UserEventsSynchronizer interface {
	Sync(ctx context.Context, accountID string) (models.UserEventsResult, error)
}

// SatelliteSynchronizer is a secondary sync job run for the foreground
// account after the main pass. The returned flag is true when the job
// created or changed local data.
type SatelliteSynchronizer interface {
	// Label names the job in observer events and logs.
	Label() string
	Sync(ctx context.Context, accountID string) (bool, error)
}

// AccountRegistry exposes the signed-in account set to the scheduler. The
// account layer owning sessions implements it.
type AccountRegistry interface {
	// SignedInAccounts returns the IDs of all signed-in accounts.
	SignedInAccounts() []string
	// ForegroundAccount returns the ID of the account currently in the
	// foreground, or an empty string when none is.
	ForegroundAccount() string
}

// UserEventsToggle reports whether the account-global stream is enabled for
// an account. Accounts with the toggle off sync through the share
// reconciler on every pass.
type UserEventsToggle func(accountID string) bool

// TaskFunc is an extra job registered on the scheduler with AddTask.
type TaskFunc func(ctx context.Context) error

// SyncLoop is the scheduler driving periodic sync passes.
type SyncLoop interface {
	// Start launches the loop. Calling Start on a running loop restarts it.
	Start(ctx context.Context)
	// Stop cancels the loop and every in-flight pass and waits for them.
	Stop()
	// ForceSync triggers a sync cycle immediately, without waiting for the
	// timer threshold. No-op when the loop is stopped.
	ForceSync()
	// AddTask registers an extra job run for the foreground account after
	// each pass. Labels are unique; a duplicate returns
	// ErrDuplicateTaskLabel and leaves the existing task in place.
	AddTask(label string, task TaskFunc) error
	// RemoveTask unregisters a task by label. Unknown labels are ignored.
	RemoveTask(label string)
}
