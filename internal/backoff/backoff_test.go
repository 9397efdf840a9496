// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package backoff

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubDateProvider returns a settable fixed time.
type stubDateProvider struct {
	now time.Time
}

func (s *stubDateProvider) CurrentDate() time.Time { return s.now }

func TestStride(t *testing.T) {
	assert.Equal(t, time.Duration(0), Stride(-2))
	assert.Equal(t, time.Duration(0), Stride(-1))
	assert.Equal(t, time.Duration(0), Stride(0))
	assert.Equal(t, time.Second, Stride(1))
	assert.Equal(t, 2*time.Second, Stride(2))
	assert.Equal(t, 5*time.Second, Stride(3))
	assert.Equal(t, 10*time.Second, Stride(4))
	assert.Equal(t, 30*time.Second, Stride(5))
	assert.Equal(t, time.Minute, Stride(6))
	assert.Equal(t, 2*time.Minute, Stride(7))
	assert.Equal(t, 5*time.Minute, Stride(8))
	assert.Equal(t, 10*time.Minute, Stride(9))
	assert.Equal(t, 30*time.Minute, Stride(10))
	assert.Equal(t, 30*time.Minute, Stride(11))
	assert.Equal(t, 30*time.Minute, Stride(12))
}

func TestCanProceed_NoFailures(t *testing.T) {
	clock := &stubDateProvider{now: time.Now()}
	m := NewManager(clock)

	assert.True(t, m.CanProceed())
}

func TestCanProceed_OneFailureBacksOffOneSecond(t *testing.T) {
	start := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	clock := &stubDateProvider{now: start}
	m := NewManager(clock)

	m.RecordFailure()
	require.False(t, m.CanProceed())

	// One second later the stride has elapsed.
	clock.now = start.Add(time.Second)
	assert.True(t, m.CanProceed())
}

func TestCanProceed_StrideGrowsWithConsecutiveFailures(t *testing.T) {
	start := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	clock := &stubDateProvider{now: start}
	m := NewManager(clock)

	m.RecordFailure() // count=1, stride 1s
	clock.now = start.Add(2 * time.Second)
	m.RecordFailure() // count=2, stride 2s from second failure

	require.False(t, m.CanProceed())

	clock.now = start.Add(3 * time.Second)
	assert.False(t, m.CanProceed(), "only 1s after last failure")

	clock.now = start.Add(4 * time.Second)
	assert.True(t, m.CanProceed())
}

func TestRecordSuccess_ClearsFailures(t *testing.T) {
	clock := &stubDateProvider{now: time.Now()}
	m := NewManager(clock)

	m.RecordFailure()
	m.RecordFailure()
	require.False(t, m.CanProceed())

	m.RecordSuccess()
	assert.True(t, m.CanProceed())
}
