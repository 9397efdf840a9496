// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/protonpass/ios-pass-sub006/internal/adapter"
	"github.com/protonpass/ios-pass-sub006/internal/config"
	"github.com/protonpass/ios-pass-sub006/internal/logger"
	"github.com/protonpass/ios-pass-sub006/internal/mock"
	"github.com/protonpass/ios-pass-sub006/models"
)

// hand stubs for the loop's own interfaces, mocks would pull the package
// into an import cycle with internal/mock

type stubShareSync struct {
	mu    sync.Mutex
	calls int
	fn    func(ctx context.Context, accountID string) (bool, error)
}

func (s *stubShareSync) Sync(ctx context.Context, accountID string) (bool, error) {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()
	if s.fn != nil {
		return s.fn(ctx, accountID)
	}
	return false, nil
}

func (s *stubShareSync) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

type stubUserEventsSync struct {
	mu    sync.Mutex
	calls int
	fn    func(ctx context.Context, accountID string) (models.UserEventsResult, error)
}

func (s *stubUserEventsSync) Sync(ctx context.Context, accountID string) (models.UserEventsResult, error) {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()
	if s.fn != nil {
		return s.fn(ctx, accountID)
	}
	return models.UserEventsResult{}, nil
}

type stubSatellite struct {
	label string
	err   error

	mu       sync.Mutex
	accounts []string
}

func (s *stubSatellite) Label() string { return s.label }

func (s *stubSatellite) Sync(_ context.Context, accountID string) (bool, error) {
	s.mu.Lock()
	s.accounts = append(s.accounts, accountID)
	s.mu.Unlock()
	return s.err == nil, s.err
}

func (s *stubSatellite) syncedAccounts() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.accounts...)
}

type stubRegistry struct {
	signedIn   []string
	foreground string
}

func (r *stubRegistry) SignedInAccounts() []string { return r.signedIn }
func (r *stubRegistry) ForegroundAccount() string  { return r.foreground }

// loopEventRecorder is a concurrency-safe LoopObserver for assertions.
type loopEventRecorder struct {
	mu     sync.Mutex
	events []LoopEvent
}

func (r *loopEventRecorder) observe(event LoopEvent) {
	r.mu.Lock()
	r.events = append(r.events, event)
	r.mu.Unlock()
}

func (r *loopEventRecorder) snapshot() []LoopEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]LoopEvent(nil), r.events...)
}

func (r *loopEventRecorder) count(kind LoopEventKind) int {
	total := 0
	for _, event := range r.snapshot() {
		if event.Kind == kind {
			total++
		}
	}
	return total
}

func (r *loopEventRecorder) countSkips(reason SkipReason) int {
	total := 0
	for _, event := range r.snapshot() {
		if event.Kind == SyncSkipped && event.Reason == reason {
			total++
		}
	}
	return total
}

// quietCfg keeps the ticker from ever firing on its own, passes run only
// through ForceSync.
func quietCfg() config.Sync {
	return config.Sync{ThresholdMinSeconds: 3600, ThresholdMaxSeconds: 3600, MaxDrainPages: 50}
}

func alwaysOnline(ctrl *gomock.Controller) *mock.MockReachability {
	reachability := mock.NewMockReachability(ctrl)
	reachability.EXPECT().IsNetworkAvailable().Return(true).AnyTimes()
	return reachability
}

func relaxedBackoff(ctrl *gomock.Controller) *mock.MockManager {
	backOff := mock.NewMockManager(ctrl)
	backOff.EXPECT().CanProceed().Return(true).AnyTimes()
	backOff.EXPECT().RecordSuccess().AnyTimes()
	return backOff
}

func waitFor(t *testing.T, condition func() bool) {
	t.Helper()
	require.Eventually(t, condition, 3*time.Second, 10*time.Millisecond)
}

func TestSyncLoop_ForceSyncRunsOnePassPerAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reconciler := &stubShareSync{fn: func(context.Context, string) (bool, error) { return true, nil }}
	recorder := &loopEventRecorder{}

	loop := NewSyncEventLoop(
		reconciler, &stubUserEventsSync{}, nil, nil,
		&stubRegistry{signedIn: []string{"acc-1", "acc-2"}},
		alwaysOnline(ctrl), relaxedBackoff(ctrl),
		quietCfg(), recorder.observe, logger.Nop(),
	)

	loop.Start(context.Background())
	defer loop.Stop()

	loop.ForceSync()
	waitFor(t, func() bool { return recorder.count(SyncFinished) == 2 })

	assert.Equal(t, 2, reconciler.callCount())
	for _, event := range recorder.snapshot() {
		if event.Kind == SyncFinished {
			assert.True(t, event.HadNewEvents)
		}
	}
}

func TestSyncLoop_BusyAccountSkippedUntilPassFinishes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	release := make(chan struct{})
	reconciler := &stubShareSync{fn: func(context.Context, string) (bool, error) {
		<-release
		return false, nil
	}}
	recorder := &loopEventRecorder{}

	loop := NewSyncEventLoop(
		reconciler, &stubUserEventsSync{}, nil, nil,
		&stubRegistry{signedIn: []string{"acc-1"}},
		alwaysOnline(ctrl), relaxedBackoff(ctrl),
		quietCfg(), recorder.observe, logger.Nop(),
	)

	loop.Start(context.Background())

	loop.ForceSync()
	waitFor(t, func() bool { return recorder.count(SyncBegun) == 1 })

	loop.ForceSync()
	waitFor(t, func() bool { return recorder.countSkips(SkipReasonPreviousNotFinished) == 1 })

	close(release)
	waitFor(t, func() bool { return recorder.count(SyncFinished) == 1 })
	loop.Stop()

	assert.Equal(t, 1, reconciler.callCount())
}

func TestSyncLoop_ConcurrentForceSyncYieldsSinglePass(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	release := make(chan struct{})
	reconciler := &stubShareSync{fn: func(context.Context, string) (bool, error) {
		<-release
		return false, nil
	}}
	recorder := &loopEventRecorder{}

	loop := NewSyncEventLoop(
		reconciler, &stubUserEventsSync{}, nil, nil,
		&stubRegistry{signedIn: []string{"acc-1"}},
		alwaysOnline(ctrl), relaxedBackoff(ctrl),
		quietCfg(), recorder.observe, logger.Nop(),
	)

	loop.Start(context.Background())

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			loop.ForceSync()
		}()
	}
	wg.Wait()

	waitFor(t, func() bool { return recorder.count(SyncBegun) == 1 })

	// force once more and wait for a newer skip, proving the trigger channel
	// is drained before the pass is released
	skipsBefore := recorder.countSkips(SkipReasonPreviousNotFinished)
	loop.ForceSync()
	waitFor(t, func() bool { return recorder.countSkips(SkipReasonPreviousNotFinished) > skipsBefore })

	close(release)
	waitFor(t, func() bool { return recorder.count(SyncFinished) == 1 })
	loop.Stop()

	// the pending triggers coalesced into skips, never a second pass
	assert.Equal(t, 1, reconciler.callCount())
	assert.Equal(t, 1, recorder.count(SyncBegun))
}

func TestSyncLoop_OfflineSkipsWithoutTouchingBackoff(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reachability := mock.NewMockReachability(ctrl)
	reachability.EXPECT().IsNetworkAvailable().Return(false).AnyTimes()
	backOff := mock.NewMockManager(ctrl) // no expectations: may not be consulted

	reconciler := &stubShareSync{}
	recorder := &loopEventRecorder{}

	loop := NewSyncEventLoop(
		reconciler, &stubUserEventsSync{}, nil, nil,
		&stubRegistry{signedIn: []string{"acc-1"}},
		reachability, backOff,
		quietCfg(), recorder.observe, logger.Nop(),
	)

	loop.Start(context.Background())
	defer loop.Stop()

	loop.ForceSync()
	waitFor(t, func() bool { return recorder.countSkips(SkipReasonOffline) == 1 })

	assert.Zero(t, reconciler.callCount())
}

func TestSyncLoop_BackoffGateSkipsPass(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	backOff := mock.NewMockManager(ctrl)
	backOff.EXPECT().CanProceed().Return(false).AnyTimes()

	reconciler := &stubShareSync{}
	recorder := &loopEventRecorder{}

	loop := NewSyncEventLoop(
		reconciler, &stubUserEventsSync{}, nil, nil,
		&stubRegistry{signedIn: []string{"acc-1"}},
		alwaysOnline(ctrl), backOff,
		quietCfg(), recorder.observe, logger.Nop(),
	)

	loop.Start(context.Background())
	defer loop.Stop()

	loop.ForceSync()
	waitFor(t, func() bool { return recorder.countSkips(SkipReasonBackOff) == 1 })

	assert.Zero(t, reconciler.callCount())
}

func TestSyncLoop_ServerErrorRecordsBackoffFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	backOff := mock.NewMockManager(ctrl)
	backOff.EXPECT().CanProceed().Return(true).AnyTimes()
	backOff.EXPECT().RecordFailure().Times(1)

	reconciler := &stubShareSync{fn: func(context.Context, string) (bool, error) {
		return false, &adapter.ServerError{HTTPStatus: 503, Message: "overloaded"}
	}}
	recorder := &loopEventRecorder{}

	loop := NewSyncEventLoop(
		reconciler, &stubUserEventsSync{}, nil, nil,
		&stubRegistry{signedIn: []string{"acc-1"}},
		alwaysOnline(ctrl), backOff,
		quietCfg(), recorder.observe, logger.Nop(),
	)

	loop.Start(context.Background())

	loop.ForceSync()
	waitFor(t, func() bool { return recorder.count(SyncFailed) == 1 })
	loop.Stop()

	assert.Zero(t, recorder.count(SyncFinished))
}

func TestSyncLoop_ClientErrorDoesNotRecordBackoffFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	backOff := mock.NewMockManager(ctrl)
	backOff.EXPECT().CanProceed().Return(true).AnyTimes()
	// 4xx is the client's own fault, retrying later will not help

	reconciler := &stubShareSync{fn: func(context.Context, string) (bool, error) {
		return false, &adapter.ServerError{HTTPStatus: 422, Code: 2001, Message: "bad cursor"}
	}}
	recorder := &loopEventRecorder{}

	loop := NewSyncEventLoop(
		reconciler, &stubUserEventsSync{}, nil, nil,
		&stubRegistry{signedIn: []string{"acc-1"}},
		alwaysOnline(ctrl), backOff,
		quietCfg(), recorder.observe, logger.Nop(),
	)

	loop.Start(context.Background())

	loop.ForceSync()
	waitFor(t, func() bool { return recorder.count(SyncFailed) == 1 })
	loop.Stop()
}

func TestSyncLoop_CancelledPassEndsSilently(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	backOff := mock.NewMockManager(ctrl)
	backOff.EXPECT().CanProceed().Return(true).AnyTimes()

	began := make(chan struct{})
	var beganOnce sync.Once
	reconciler := &stubShareSync{fn: func(ctx context.Context, _ string) (bool, error) {
		beganOnce.Do(func() { close(began) })
		<-ctx.Done()
		return false, ctx.Err()
	}}
	recorder := &loopEventRecorder{}

	loop := NewSyncEventLoop(
		reconciler, &stubUserEventsSync{}, nil, nil,
		&stubRegistry{signedIn: []string{"acc-1"}},
		alwaysOnline(ctrl), backOff,
		quietCfg(), recorder.observe, logger.Nop(),
	)

	loop.Start(context.Background())
	loop.ForceSync()
	<-began
	loop.Stop()

	assert.Zero(t, recorder.count(SyncFailed))
	assert.Zero(t, recorder.count(SyncFinished))
}

func TestSyncLoop_UserEventsStreamFallsBackToReconcilerOnFullRefresh(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reconciler := &stubShareSync{fn: func(context.Context, string) (bool, error) { return true, nil }}
	userEvents := &stubUserEventsSync{fn: func(context.Context, string) (models.UserEventsResult, error) {
		return models.UserEventsResult{FullRefreshNeeded: true}, nil
	}}
	recorder := &loopEventRecorder{}

	loop := NewSyncEventLoop(
		reconciler, userEvents, func(string) bool { return true }, nil,
		&stubRegistry{signedIn: []string{"acc-1"}},
		alwaysOnline(ctrl), relaxedBackoff(ctrl),
		quietCfg(), recorder.observe, logger.Nop(),
	)

	loop.Start(context.Background())

	loop.ForceSync()
	waitFor(t, func() bool { return recorder.count(SyncFinished) == 1 })
	loop.Stop()

	assert.Equal(t, 1, reconciler.callCount())
}

func TestSyncLoop_UserEventsFlagsSurfaceAsNewEvents(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reconciler := &stubShareSync{}
	userEvents := &stubUserEventsSync{fn: func(context.Context, string) (models.UserEventsResult, error) {
		return models.UserEventsResult{PlanChanged: true}, nil
	}}
	recorder := &loopEventRecorder{}

	loop := NewSyncEventLoop(
		reconciler, userEvents, func(string) bool { return true }, nil,
		&stubRegistry{signedIn: []string{"acc-1"}},
		alwaysOnline(ctrl), relaxedBackoff(ctrl),
		quietCfg(), recorder.observe, logger.Nop(),
	)

	loop.Start(context.Background())

	loop.ForceSync()
	waitFor(t, func() bool { return recorder.count(SyncFinished) == 1 })
	loop.Stop()

	assert.Zero(t, reconciler.callCount())
	for _, event := range recorder.snapshot() {
		if event.Kind == SyncFinished {
			assert.True(t, event.HadNewEvents)
		}
	}
}

func TestSyncLoop_SatellitesAndTasksRunOnlyForForegroundAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	aliasJob := &stubSatellite{label: "aliasSync"}
	noteJob := &stubSatellite{label: "aliasNoteSync"}
	recorder := &loopEventRecorder{}

	loop := NewSyncEventLoop(
		&stubShareSync{}, &stubUserEventsSync{}, nil,
		[]SatelliteSynchronizer{aliasJob, noteJob},
		&stubRegistry{signedIn: []string{"acc-1", "acc-2"}, foreground: "acc-1"},
		alwaysOnline(ctrl), relaxedBackoff(ctrl),
		quietCfg(), recorder.observe, logger.Nop(),
	)

	require.NoError(t, loop.AddTask("vaultIconRefresh", func(context.Context) error { return nil }))

	loop.Start(context.Background())

	loop.ForceSync()
	waitFor(t, func() bool { return recorder.count(TaskFinished) == 3 })
	loop.Stop()

	assert.Equal(t, []string{"acc-1"}, aliasJob.syncedAccounts())
	assert.Equal(t, []string{"acc-1"}, noteJob.syncedAccounts())

	var labels []string
	for _, event := range recorder.snapshot() {
		if event.Kind == TaskBegun {
			assert.Equal(t, "acc-1", event.AccountID)
			labels = append(labels, event.Label)
		}
	}
	// satellites run first in registration order, then extra tasks
	assert.Equal(t, []string{"aliasSync", "aliasNoteSync", "vaultIconRefresh"}, labels)
}

func TestSyncLoop_FailedSatelliteDoesNotStopTheRest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	aliasJob := &stubSatellite{label: "aliasSync", err: errors.New("quota exceeded")}
	noteJob := &stubSatellite{label: "aliasNoteSync"}
	recorder := &loopEventRecorder{}

	loop := NewSyncEventLoop(
		&stubShareSync{}, &stubUserEventsSync{}, nil,
		[]SatelliteSynchronizer{aliasJob, noteJob},
		&stubRegistry{signedIn: []string{"acc-1"}, foreground: "acc-1"},
		alwaysOnline(ctrl), relaxedBackoff(ctrl),
		quietCfg(), recorder.observe, logger.Nop(),
	)

	loop.Start(context.Background())

	loop.ForceSync()
	waitFor(t, func() bool { return recorder.count(TaskFinished) == 1 })
	loop.Stop()

	assert.Equal(t, 1, recorder.count(TaskFailed))
	assert.Equal(t, []string{"acc-1"}, noteJob.syncedAccounts())
}

func TestSyncLoop_AddTaskRejectsDuplicateLabels(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	loop := NewSyncEventLoop(
		&stubShareSync{}, &stubUserEventsSync{}, nil, nil,
		&stubRegistry{}, alwaysOnline(ctrl), relaxedBackoff(ctrl),
		quietCfg(), nil, logger.Nop(),
	)

	noop := func(context.Context) error { return nil }

	require.NoError(t, loop.AddTask("vaultIconRefresh", noop))
	require.ErrorIs(t, loop.AddTask("vaultIconRefresh", noop), ErrDuplicateTaskLabel)

	loop.RemoveTask("vaultIconRefresh")
	require.NoError(t, loop.AddTask("vaultIconRefresh", noop))
}

func TestSyncLoop_StopIsIdempotentAndRestartable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	recorder := &loopEventRecorder{}
	loop := NewSyncEventLoop(
		&stubShareSync{}, &stubUserEventsSync{}, nil, nil,
		&stubRegistry{}, alwaysOnline(ctrl), relaxedBackoff(ctrl),
		quietCfg(), recorder.observe, logger.Nop(),
	)

	loop.Stop() // never started

	loop.Start(context.Background())
	waitFor(t, func() bool { return recorder.count(LoopStarted) == 1 })
	loop.Stop()
	loop.Stop()
	waitFor(t, func() bool { return recorder.count(LoopStopped) == 1 })

	loop.Start(context.Background())
	waitFor(t, func() bool { return recorder.count(LoopStarted) == 2 })
	loop.Stop()
}

func TestSyncLoop_ForceSyncWhileStoppedIsNoOp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reconciler := &stubShareSync{fn: func(context.Context, string) (bool, error) { return false, nil }}
	recorder := &loopEventRecorder{}

	loop := NewSyncEventLoop(
		reconciler, &stubUserEventsSync{}, nil, nil,
		&stubRegistry{signedIn: []string{"acc-1"}},
		alwaysOnline(ctrl), relaxedBackoff(ctrl),
		quietCfg(), recorder.observe, logger.Nop(),
	)

	// a force while stopped must not fire a cycle on the next start
	loop.ForceSync()

	loop.Start(context.Background())
	defer loop.Stop()
	waitFor(t, func() bool { return recorder.count(LoopStarted) == 1 })

	time.Sleep(100 * time.Millisecond)
	assert.Zero(t, recorder.count(SyncBegun))

	// forcing the running loop still works
	loop.ForceSync()
	waitFor(t, func() bool { return recorder.count(SyncFinished) == 1 })
	assert.Equal(t, 1, reconciler.callCount())
}
