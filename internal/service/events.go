// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

// SkipReason explains why the scheduler skipped an account in a cycle.
type SkipReason string

const (
	SkipReasonOffline             SkipReason = "offline"
	SkipReasonBackOff             SkipReason = "backOff"
	SkipReasonPreviousNotFinished SkipReason = "previousNotFinished"
)

// LoopEventKind enumerates everything the scheduler reports to its observer.
type LoopEventKind int

const (
	LoopStarted LoopEventKind = iota + 1
	LoopStopped

	// per-account pass lifecycle
	SyncBegun
	SyncSkipped
	SyncFinished
	SyncFailed

	// satellite jobs and registered extra tasks
	TaskBegun
	TaskFinished
	TaskFailed
)

// LoopEvent is one observer notification. Only the fields relevant to Kind
// are set: AccountID for pass and task events, Reason for SyncSkipped,
// HadNewEvents for SyncFinished and TaskFinished, Err for the failure kinds,
// Label for task events.
type LoopEvent struct {
	Kind         LoopEventKind
	AccountID    string
	Reason       SkipReason
	HadNewEvents bool
	Err          error
	Label        string
}

// LoopObserver receives scheduler notifications. Invoked from the loop
// goroutine and from pass goroutines, so implementations must be safe for
// concurrent use and must not block.
type LoopObserver func(LoopEvent)
