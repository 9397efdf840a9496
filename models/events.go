// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ShareEvents is one page of a share's change stream, fetched with the
// cursor LatestEventID of the previous page. Cursors are opaque and only
// ever passed back to the endpoint that issued them.
type ShareEvents struct {
	UpdatedShare   *Share        `json:"UpdatedShare,omitempty"`
	UpdatedItems   []ItemEvent   `json:"UpdatedItems"`
	DeletedItemIDs []string      `json:"DeletedItemIDs"`
	LastUseItems   []LastUseItem `json:"LastUseItems"`
	// NewKeyRotation is set when the share's key rotated inside this page.
	NewKeyRotation *int64 `json:"NewKeyRotation,omitempty"`
	LatestEventID  string `json:"LatestEventID"`
	EventsPending  bool   `json:"EventsPending"`
	// FullRefresh tells the client its cursor is too old to replay from.
	FullRefresh bool `json:"FullRefresh"`
}

// UserEventItem is a lightweight pointer to an item that changed, carried by
// the account-level stream. The item itself is re-fetched by EventToken.
type UserEventItem struct {
	ShareID    string `json:"ShareID"`
	ItemID     string `json:"ItemID"`
	EventToken string `json:"EventToken"`
}

// UserEvents is one page of the account-global change stream.
type UserEvents struct {
	ItemsUpdated  []UserEventItem `json:"ItemsUpdated"`
	ItemsDeleted  []ItemRef       `json:"ItemsDeleted"`
	PlanChanged   bool            `json:"PlanChanged"`
	LatestEventID string          `json:"LatestEventID"`
	EventsPending bool            `json:"EventsPending"`
	FullRefresh   bool            `json:"FullRefresh"`
}

// UserEventsResult aggregates the outcome of draining the account-global
// stream. Flags only ever flip false to true across pages.
type UserEventsResult struct {
	// DataUpdated means items changed and the UI should refresh its lists.
	DataUpdated bool
	// PlanChanged means the account's subscription plan changed.
	PlanChanged bool
	// FullRefreshNeeded means the cursor is absent or obsolete and the
	// caller must run a full share reconciliation instead.
	FullRefreshNeeded bool
}
