// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/protonpass/ios-pass-sub006/internal/adapter"
	"github.com/protonpass/ios-pass-sub006/internal/backoff"
	"github.com/protonpass/ios-pass-sub006/internal/config"
	"github.com/protonpass/ios-pass-sub006/internal/logger"
)

// syncEventLoop is the [SyncLoop] implementation: a one-second cooperative
// ticker counts up to a randomized threshold and fires a sync cycle when it
// gets there. The threshold is re-drawn from [min, max] after every fire so
// that a fleet of clients does not hammer the server in lockstep.
//
// One cycle fans out over all signed-in accounts, at most one in-flight pass
// per account. Satellite jobs and registered extra tasks run only for the
// foreground account, sequentially after its main pass.
type syncEventLoop struct {
	reconciler        ShareSynchronizer
	userEvents        UserEventsSynchronizer
	userEventsEnabled UserEventsToggle
	satellites        []SatelliteSynchronizer
	accounts          AccountRegistry
	reachability      adapter.Reachability
	backOff           backoff.Manager
	cfg               config.Sync
	observer          LoopObserver
	logger            *logger.Logger

	mu       sync.Mutex
	cancel   context.CancelFunc
	wg       sync.WaitGroup
	inflight map[string]struct{}
	tasks    []extraTask

	forceCh chan struct{}
}

type extraTask struct {
	label string
	run   TaskFunc
}

// NewSyncEventLoop wires the scheduler. observer may be nil. The loop is
// idle until Start is called.
func NewSyncEventLoop(
	reconciler ShareSynchronizer,
	userEvents UserEventsSynchronizer,
	userEventsEnabled UserEventsToggle,
	satellites []SatelliteSynchronizer,
	accounts AccountRegistry,
	reachability adapter.Reachability,
	backOff backoff.Manager,
	cfg config.Sync,
	observer LoopObserver,
	logger *logger.Logger,
) SyncLoop {
	logger.Debug().Msg("creating sync event loop")
	return &syncEventLoop{
		reconciler:        reconciler,
		userEvents:        userEvents,
		userEventsEnabled: userEventsEnabled,
		satellites:        satellites,
		accounts:          accounts,
		reachability:      reachability,
		backOff:           backOff,
		cfg:               cfg,
		observer:          observer,
		logger:            logger,
		inflight:          make(map[string]struct{}),
		forceCh:           make(chan struct{}, 1),
	}
}

// Start implements [SyncLoop]. It stops any previously running loop, then
// launches the ticker goroutine. The goroutine exits when ctx is cancelled
// or Stop is called.
func (l *syncEventLoop) Start(ctx context.Context) {
	l.Stop()

	l.mu.Lock()
	// a force request issued while stopped must not fire a cycle now
	select {
	case <-l.forceCh:
	default:
	}
	loopCtx, cancel := context.WithCancel(ctx)
	l.cancel = cancel
	l.wg.Add(1)
	l.mu.Unlock()

	go func() {
		defer l.wg.Done()
		l.run(loopCtx)
	}()
}

// Stop implements [SyncLoop]. It cancels the ticker and every in-flight
// pass, then blocks until all of them have exited. Safe to call when the
// loop is not running.
func (l *syncEventLoop) Stop() {
	l.mu.Lock()
	cancel := l.cancel
	l.cancel = nil
	l.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	l.wg.Wait()
}

// ForceSync implements [SyncLoop]. The trigger channel holds one pending
// request; forcing an already forced loop coalesces.
func (l *syncEventLoop) ForceSync() {
	select {
	case l.forceCh <- struct{}{}:
	default:
	}
}

func (l *syncEventLoop) AddTask(label string, task TaskFunc) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, existing := range l.tasks {
		if existing.label == label {
			return ErrDuplicateTaskLabel
		}
	}
	l.tasks = append(l.tasks, extraTask{label: label, run: task})

	return nil
}

func (l *syncEventLoop) RemoveTask(label string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i, existing := range l.tasks {
		if existing.label == label {
			l.tasks = append(l.tasks[:i], l.tasks[i+1:]...)
			return
		}
	}
}

func (l *syncEventLoop) run(ctx context.Context) {
	l.emit(LoopEvent{Kind: LoopStarted})
	defer l.emit(LoopEvent{Kind: LoopStopped})

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	secondCount := 0
	threshold := l.rollThreshold()

	for {
		select {
		case <-ctx.Done():
			return
		case <-l.forceCh:
			secondCount = 0
			threshold = l.rollThreshold()
			l.fanOut(ctx)
		case <-ticker.C:
			secondCount++
			if secondCount < threshold {
				continue
			}
			secondCount = 0
			threshold = l.rollThreshold()
			l.fanOut(ctx)
		}
	}
}

// rollThreshold draws the next fire threshold uniformly from the configured
// [min, max] range.
func (l *syncEventLoop) rollThreshold() int {
	min, max := l.cfg.ThresholdMinSeconds, l.cfg.ThresholdMaxSeconds
	if max <= min {
		return min
	}
	return min + rand.Intn(max-min+1)
}

// fanOut starts one pass per signed-in account. An account with a pass still
// running is skipped outright; otherwise reachability and backoff gate the
// start.
func (l *syncEventLoop) fanOut(ctx context.Context) {
	for _, accountID := range l.accounts.SignedInAccounts() {
		l.mu.Lock()
		_, busy := l.inflight[accountID]
		l.mu.Unlock()

		if busy {
			l.emit(LoopEvent{Kind: SyncSkipped, AccountID: accountID, Reason: SkipReasonPreviousNotFinished})
			continue
		}
		if !l.reachability.IsNetworkAvailable() {
			l.emit(LoopEvent{Kind: SyncSkipped, AccountID: accountID, Reason: SkipReasonOffline})
			continue
		}
		if !l.backOff.CanProceed() {
			l.emit(LoopEvent{Kind: SyncSkipped, AccountID: accountID, Reason: SkipReasonBackOff})
			continue
		}

		l.mu.Lock()
		if _, raced := l.inflight[accountID]; raced {
			l.mu.Unlock()
			l.emit(LoopEvent{Kind: SyncSkipped, AccountID: accountID, Reason: SkipReasonPreviousNotFinished})
			continue
		}
		l.inflight[accountID] = struct{}{}
		l.wg.Add(1)
		l.mu.Unlock()

		go l.runPass(ctx, accountID)
	}
}

func (l *syncEventLoop) runPass(ctx context.Context, accountID string) {
	defer l.wg.Done()
	defer func() {
		l.mu.Lock()
		delete(l.inflight, accountID)
		l.mu.Unlock()
	}()

	l.emit(LoopEvent{Kind: SyncBegun, AccountID: accountID})

	hadNewEvents, err := l.syncAccount(ctx, accountID)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		if adapter.Is5xx(err) {
			l.backOff.RecordFailure()
		}
		l.logger.Err(err).Str("func", "*syncEventLoop.runPass").Str("account_id", accountID).Msg("sync pass failed")
		l.emit(LoopEvent{Kind: SyncFailed, AccountID: accountID, Err: err})
		return
	}

	l.backOff.RecordSuccess()
	l.emit(LoopEvent{Kind: SyncFinished, AccountID: accountID, HadNewEvents: hadNewEvents})

	if accountID == l.accounts.ForegroundAccount() {
		l.runSatellites(ctx, accountID)
		l.runExtraTasks(ctx, accountID)
	}
}

// syncAccount runs the main pass body: the account-global stream when the
// toggle allows it, falling back to a full share reconciliation when that
// stream cannot help; the reconciler directly otherwise.
func (l *syncEventLoop) syncAccount(ctx context.Context, accountID string) (bool, error) {
	if l.userEventsEnabled != nil && l.userEventsEnabled(accountID) {
		result, err := l.userEvents.Sync(ctx, accountID)
		if err != nil {
			return false, err
		}
		if result.FullRefreshNeeded {
			return l.reconciler.Sync(ctx, accountID)
		}
		return result.DataUpdated || result.PlanChanged, nil
	}

	return l.reconciler.Sync(ctx, accountID)
}

func (l *syncEventLoop) runSatellites(ctx context.Context, accountID string) {
	for _, satellite := range l.satellites {
		label := satellite.Label()
		l.emit(LoopEvent{Kind: TaskBegun, AccountID: accountID, Label: label})

		createdData, err := satellite.Sync(ctx, accountID)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			l.logger.Err(err).Str("func", "*syncEventLoop.runSatellites").Str("task", label).Msg("satellite job failed")
			l.emit(LoopEvent{Kind: TaskFailed, AccountID: accountID, Label: label, Err: err})
			continue
		}
		l.emit(LoopEvent{Kind: TaskFinished, AccountID: accountID, Label: label, HadNewEvents: createdData})
	}
}

func (l *syncEventLoop) runExtraTasks(ctx context.Context, accountID string) {
	l.mu.Lock()
	tasks := make([]extraTask, len(l.tasks))
	copy(tasks, l.tasks)
	l.mu.Unlock()

	for _, task := range tasks {
		l.emit(LoopEvent{Kind: TaskBegun, AccountID: accountID, Label: task.label})

		if err := task.run(ctx); err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			l.logger.Err(err).Str("func", "*syncEventLoop.runExtraTasks").Str("task", task.label).Msg("extra task failed")
			l.emit(LoopEvent{Kind: TaskFailed, AccountID: accountID, Label: task.label, Err: err})
			continue
		}
		l.emit(LoopEvent{Kind: TaskFinished, AccountID: accountID, Label: task.label})
	}
}

func (l *syncEventLoop) emit(event LoopEvent) {
	if l.observer != nil {
		l.observer(event)
	}
}
