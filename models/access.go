// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AccessSettings is the small account-scoped settings blob the satellite
// sync jobs consult before doing any paging work.
type AccessSettings struct {
	// AliasSyncEnabled gates the SimpleLogin alias catch-up job.
	AliasSyncEnabled bool `json:"AliasSyncEnabled"`
	// PendingAliasCount is how many remote aliases await local item creation.
	PendingAliasCount int `json:"PendingAliasCount"`
	// DefaultShareID is where alias items are created; empty disables the job.
	DefaultShareID string `json:"DefaultShareID"`
	// PendingNoteCount is how many alias note changes await application.
	PendingNoteCount int `json:"PendingNoteCount"`
}

// PendingAlias is a remote SimpleLogin alias not yet materialised locally.
type PendingAlias struct {
	PendingAliasID string `json:"PendingAliasID"`
	AliasEmail     string `json:"AliasEmail"`
	AliasNote      string `json:"AliasNote"`
}

// PaginatedPendingAliases is one page of pending aliases. LastToken is the
// opaque continuation token for the next page, nil on the last page.
type PaginatedPendingAliases struct {
	Total     int            `json:"Total"`
	LastToken *string        `json:"LastToken"`
	Aliases   []PendingAlias `json:"Aliases"`
}

// AliasNoteUpdate carries a changed SimpleLogin note for an alias item.
type AliasNoteUpdate struct {
	ShareID string `json:"ShareID"`
	ItemID  string `json:"ItemID"`
	Note    string `json:"Note"`
}

// PaginatedAliasNotes is one page of pending alias note changes.
type PaginatedAliasNotes struct {
	Total     int               `json:"Total"`
	LastToken *string           `json:"LastToken"`
	Notes     []AliasNoteUpdate `json:"Notes"`
}
