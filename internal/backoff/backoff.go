// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package backoff implements the capped exponential backoff policy the sync
// event loop consults before starting a reconciliation pass.
package backoff

import (
	"sync"
	"time"
)

//go:generate mockgen -source=backoff.go -destination=../mock/backoff_mock.go -package=mock

// DateProvider supplies the current time. Injected so tests can step the
// clock deterministically.
type DateProvider interface {
	CurrentDate() time.Time
}

// SystemDateProvider is the production [DateProvider] backed by time.Now.
type SystemDateProvider struct{}

func (SystemDateProvider) CurrentDate() time.Time { return time.Now() }

// Manager tracks consecutive failures and answers whether enough time has
// passed since the last one to try again. Safe for concurrent use.
type Manager interface {
	// CanProceed reports whether the caller may attempt the next pass.
	// With no recorded failures it always returns true; otherwise the
	// stride for the current failure count must have elapsed since the
	// most recent failure.
	CanProceed() bool
	// RecordSuccess clears all recorded failures.
	RecordSuccess()
	// RecordFailure appends the current time to the failure history.
	RecordFailure()
}

type manager struct {
	dateProvider DateProvider

	mu           sync.Mutex
	failureDates []time.Time
}

// NewManager constructs a [Manager] using dateProvider as its clock.
func NewManager(dateProvider DateProvider) Manager {
	return &manager{dateProvider: dateProvider}
}

func (m *manager) CanProceed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.failureDates) == 0 {
		return true
	}

	lastFailure := m.failureDates[len(m.failureDates)-1]
	threshold := lastFailure.Add(Stride(len(m.failureDates)))
	return !m.dateProvider.CurrentDate().Before(threshold)
}

func (m *manager) RecordSuccess() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failureDates = nil
}

func (m *manager) RecordFailure() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failureDates = append(m.failureDates, m.dateProvider.CurrentDate())
}

// Stride maps a consecutive-failure count to the waiting period before the
// next attempt. The progression is capped at thirty minutes.
func Stride(failureCount int) time.Duration {
	switch {
	case failureCount <= 0:
		return 0
	case failureCount == 1:
		return time.Second
	case failureCount == 2:
		return 2 * time.Second
	case failureCount == 3:
		return 5 * time.Second
	case failureCount == 4:
		return 10 * time.Second
	case failureCount == 5:
		return 30 * time.Second
	case failureCount == 6:
		return time.Minute
	case failureCount == 7:
		return 2 * time.Minute
	case failureCount == 8:
		return 5 * time.Minute
	case failureCount == 9:
		return 10 * time.Minute
	default:
		return 30 * time.Minute
	}
}
